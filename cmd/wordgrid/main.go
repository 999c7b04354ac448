// Command wordgrid works with daily boards from the terminal: print a board,
// check or find a word, list every word on it, score a length, define a word,
// or play.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/daily"
	"github.com/robalobadob/wordgrid/internal/words"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Salt        string `env:"BOARD_DAILY_SALT" help:"Daily salt used to seed boards (falls back to the development salt)"`
	Words       string `env:"WORDS_FILE" help:"Newline-separated word list (defaults to the embedded list)"`
	Definitions string `env:"DEFINITIONS_FILE" help:"Tab-separated definitions file (defaults to the embedded one)"`
	LogLevel    string `default:"warn" help:"Log level (debug|info|warn|error)"`
	Plain       bool   `help:"Disable colours and borders"`

	out io.Writer        `kong:"-"`
	now func() time.Time `kong:"-"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Board   BoardCmd         `cmd:"" help:"Print the board for a date"`
	Check   CheckCmd         `cmd:"" help:"Check a path of coordinates against a board"`
	Find    FindCmd          `cmd:"" help:"Find a word on a board"`
	Solve   SolveCmd         `cmd:"" help:"List every dictionary word on a board"`
	Score   ScoreCmd         `cmd:"" help:"Show the points for a word length"`
	Define  DefineCmd        `cmd:"" help:"Show the definition of a word"`
	Play    PlayCmd          `cmd:"" help:"Play a board interactively against the clock"`
}

func main() {
	cli := CLI{Globals: Globals{out: os.Stdout, now: time.Now}}
	ctx := kong.Parse(&cli,
		kong.Name("wordgrid"),
		kong.Description("Deterministic daily 5x5 word grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	setupLogger(cli.LogLevel)
	if termenv.EnvNoColor() || termenv.ColorProfile() == termenv.Ascii {
		cli.Plain = true
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setupLogger points the global logger at stderr in console format.
func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

// resolveDate returns date when it is a valid YYYY-MM-DD, today (UTC) when empty.
func (g *Globals) resolveDate(date string) (string, error) {
	if strings.TrimSpace(date) == "" {
		return daily.DateKey(g.now()), nil
	}
	d, ok := daily.NormalizeDate(date)
	if !ok {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return d, nil
}

// board generates the board for date with the configured salt.
func (g *Globals) board(date string) (board.Board, string, error) {
	d, err := g.resolveDate(date)
	if err != nil {
		return board.Board{}, "", err
	}
	salt, configured := daily.ResolveSalt(g.Salt)
	if !configured {
		log.Warn().Msg("no daily salt set; using development salt")
	}
	log.Debug().Str("date", d).Str("digest", daily.SeedDigest(d, salt)).Msg("generating board")
	return board.Generate(d, salt), d, nil
}

// dictionary loads the word list named by --words, or the embedded one.
func (g *Globals) dictionary() (*words.Set, error) {
	dict, err := words.Load(g.Words)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("words", dict.Len()).Msg("dictionary loaded")
	return dict, nil
}
