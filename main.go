package main

import (
	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/config"
	"github.com/robalobadob/wordgrid/internal/httpserver"
	"github.com/robalobadob/wordgrid/internal/store"
	"github.com/robalobadob/wordgrid/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.HasDailySalt {
		log.Warn().Msg("BOARD_DAILY_SALT not set; using development salt")
	}

	if err := words.Init(cfg.WordsFile); err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}
	dict := words.Default()

	defs, err := words.LoadDefinitions(cfg.DefinitionsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.DefinitionsFile).Msg("failed to load definitions")
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open database")
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv := httpserver.New(cfg, db, store.NewMemorySessions(), dict, defs, quartz.NewReal())
	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Int("definitions", defs.Len()).Msg("starting wordgrid server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
