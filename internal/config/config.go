// internal/config/config.go
//
// Runtime configuration for the wordgrid server.
// Sources, later ones winning:
//   - built-in defaults
//   - .env file (optional, via godotenv; never overrides real env vars)
//   - process environment
//   - HCL file named by WORDGRID_CONFIG (optional)

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordgrid/internal/daily"
)

// Config is the resolved server configuration.
type Config struct {
	Port         string
	LogLevel     string
	DatabasePath string

	// Salt seeds daily boards. HasDailySalt is false when the dev fallback is in use.
	Salt         string
	HasDailySalt bool

	// WordsFile is a newline-separated word list; empty means the embedded list.
	WordsFile string
	// DefinitionsFile is a tab-separated definitions file; empty means the embedded one.
	DefinitionsFile string

	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
}

// fileConfig mirrors the optional HCL file.
type fileConfig struct {
	Server     *serverBlock     `hcl:"server,block"`
	Dictionary *dictionaryBlock `hcl:"dictionary,block"`
	Auth       *authBlock       `hcl:"auth,block"`
}

type serverBlock struct {
	Port         int    `hcl:"port,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	DatabasePath string `hcl:"database_path,optional"`
	ClientOrigin string `hcl:"client_origin,optional"`
	DailySalt    string `hcl:"daily_salt,optional"`
}

type dictionaryBlock struct {
	WordsFile       string `hcl:"words_file,optional"`
	DefinitionsFile string `hcl:"definitions_file,optional"`
}

type authBlock struct {
	JWTSecret  string `hcl:"jwt_secret,optional"`
	ExpireDays int    `hcl:"expires_days,optional"`
	CookieName string `hcl:"cookie_name,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:           "5175",
		LogLevel:       "info",
		DatabasePath:   "./data/app.db",
		Salt:           daily.DevSalt,
		JWTSecret:      "dev_secret_change_me",
		JWTExpiresDays: 14,
		CookieName:     "wordgrid_token",
		ClientOrigin:   "http://localhost:5173",
	}
}

// Load resolves configuration from .env, the environment and WORDGRID_CONFIG.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := FromEnv(os.Getenv)
	if path := strings.TrimSpace(os.Getenv("WORDGRID_CONFIG")); path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from defaults overlaid with getenv lookups.
func FromEnv(getenv func(string) string) *Config {
	cfg := Default()
	str := func(k string, dst *string) {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			*dst = v
		}
	}
	str("PORT", &cfg.Port)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("DATABASE_PATH", &cfg.DatabasePath)
	str("WORDS_FILE", &cfg.WordsFile)
	str("DEFINITIONS_FILE", &cfg.DefinitionsFile)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("COOKIE_NAME", &cfg.CookieName)
	str("CLIENT_ORIGIN", &cfg.ClientOrigin)

	cfg.Salt, cfg.HasDailySalt = daily.ResolveSalt(getenv("BOARD_DAILY_SALT"))

	if v := getenv("JWT_EXPIRES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.JWTExpiresDays = n
		}
	}
	env := getenv("APP_ENV")
	if env == "" {
		env = getenv("NODE_ENV")
	}
	cfg.Production = env == "production"
	return cfg
}

// ApplyFile overlays non-zero values from an HCL config file.
func (c *Config) ApplyFile(filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if s := fc.Server; s != nil {
		if s.Port != 0 {
			c.Port = strconv.Itoa(s.Port)
		}
		setIf(&c.LogLevel, s.LogLevel)
		setIf(&c.DatabasePath, s.DatabasePath)
		setIf(&c.ClientOrigin, s.ClientOrigin)
		if salt, ok := daily.ResolveSalt(s.DailySalt); ok {
			c.Salt, c.HasDailySalt = salt, true
		}
	}
	if d := fc.Dictionary; d != nil {
		setIf(&c.WordsFile, d.WordsFile)
		setIf(&c.DefinitionsFile, d.DefinitionsFile)
	}
	if a := fc.Auth; a != nil {
		setIf(&c.JWTSecret, a.JWTSecret)
		setIf(&c.CookieName, a.CookieName)
		if a.ExpireDays > 0 {
			c.JWTExpiresDays = a.ExpireDays
		}
	}
	return c.Validate()
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Port)
	}
	if c.JWTExpiresDays < 1 {
		return fmt.Errorf("invalid jwt expiry: %d days", c.JWTExpiresDays)
	}
	return nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
