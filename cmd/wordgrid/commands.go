package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/robalobadob/wordgrid/internal/board"
	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/path"
	"github.com/robalobadob/wordgrid/internal/words"
)

type BoardCmd struct {
	Date string `help:"Board date as YYYY-MM-DD (default today, UTC)"`
	Flat bool   `help:"Print the 25-letter row-major form only"`
}

func (c *BoardCmd) Run(g *Globals) error {
	b, date, err := g.board(c.Date)
	if err != nil {
		return err
	}
	if c.Flat {
		fmt.Fprintln(g.out, board.Flatten(b))
		return nil
	}
	fmt.Fprintln(g.out, style(headerStyle, g.Plain, "Board for "+date))
	fmt.Fprintln(g.out, renderBoard(b, nil, g.Plain))
	return nil
}

type CheckCmd struct {
	Date string `help:"Board date as YYYY-MM-DD (default today, UTC)"`
	Path string `required:"" help:"Coordinates as 'row,col row,col ...' (0-based)"`
}

func (c *CheckCmd) Run(g *Globals) error {
	p, err := parseCoords(c.Path)
	if err != nil {
		return err
	}
	b, date, err := g.board(c.Date)
	if err != nil {
		return err
	}
	dict, err := g.dictionary()
	if err != nil {
		return err
	}
	res := game.Check(b, p, dict)

	fmt.Fprintln(g.out, style(headerStyle, g.Plain, "Board for "+date))
	fmt.Fprintln(g.out, renderBoard(b, validOnly(b, p), g.Plain))
	if res.OK {
		fmt.Fprintln(g.out, style(okStyle, g.Plain, fmt.Sprintf("%s: ok (%d points)", res.Word, game.ScoreWord(res.Word))))
		return nil
	}
	msg := string(res.Reason)
	if res.Word != "" {
		msg = res.Word + ": " + msg
	}
	fmt.Fprintln(g.out, style(failStyle, g.Plain, msg))
	return nil
}

// validOnly drops the highlight for paths that break the board rules.
func validOnly(b board.Board, p path.Path) path.Path {
	if path.Valid(b, p) {
		return p
	}
	return nil
}

// parseCoords reads "r,c r,c ..." into a path.
func parseCoords(s string) (path.Path, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	p := make(path.Path, 0, len(fields))
	for _, f := range fields {
		rs, cs, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("bad coordinate %q: want row,col", f)
		}
		r, err := strconv.Atoi(rs)
		if err != nil {
			return nil, fmt.Errorf("bad row in %q: %w", f, err)
		}
		col, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("bad column in %q: %w", f, err)
		}
		p = append(p, path.Coord{r, col})
	}
	return p, nil
}

type FindCmd struct {
	Word string `arg:"" help:"Word to look for"`
	Date string `help:"Board date as YYYY-MM-DD (default today, UTC)"`
}

func (c *FindCmd) Run(g *Globals) error {
	b, date, err := g.board(c.Date)
	if err != nil {
		return err
	}
	word := strings.ToUpper(strings.TrimSpace(c.Word))
	p, ok := path.Find(b, word)

	fmt.Fprintln(g.out, style(headerStyle, g.Plain, "Board for "+date))
	fmt.Fprintln(g.out, renderBoard(b, p, g.Plain))
	if !ok {
		fmt.Fprintln(g.out, style(failStyle, g.Plain, word+": not on board"))
		return nil
	}
	fmt.Fprintln(g.out, style(okStyle, g.Plain, word+": "+formatPath(p)))
	return nil
}

func formatPath(p path.Path) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%d,%d", c.Row(), c.Col())
	}
	return strings.Join(parts, " ")
}

type SolveCmd struct {
	Date  string `help:"Board date as YYYY-MM-DD (default today, UTC)"`
	Limit int    `short:"n" default:"0" help:"Show at most N words (0 for all)"`
}

func (c *SolveCmd) Run(g *Globals) error {
	b, date, err := g.board(c.Date)
	if err != nil {
		return err
	}
	dict, err := g.dictionary()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	found, err := game.Solve(ctx, b, dict)
	if err != nil {
		return err
	}

	total := 0
	for _, fw := range found {
		total += fw.Score
	}
	fmt.Fprintln(g.out, style(headerStyle, g.Plain,
		fmt.Sprintf("%s: %d words, %d points available", date, len(found), total)))

	shown := found
	if c.Limit > 0 && c.Limit < len(shown) {
		shown = shown[:c.Limit]
	}
	tw := tabwriter.NewWriter(g.out, 0, 0, 2, ' ', 0)
	for _, fw := range shown {
		fmt.Fprintf(tw, "%s\t%d\n", fw.Word, fw.Score)
	}
	return tw.Flush()
}

type ScoreCmd struct {
	Length float64 `arg:"" help:"Word length (fractions are floored)"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	fmt.Fprintln(g.out, game.ScoreFloat(c.Length))
	return nil
}

type DefineCmd struct {
	Word string `arg:"" help:"Word to define"`
}

func (c *DefineCmd) Run(g *Globals) error {
	defs, err := words.LoadDefinitions(g.Definitions)
	if err != nil {
		return err
	}
	def, ok := defs.Lookup(c.Word)
	if !ok {
		fmt.Fprintf(g.out, "%s: no definition found\n", strings.TrimSpace(c.Word))
		return nil
	}
	header := def.Word
	if def.PartOfSpeech != "" {
		header += " (" + def.PartOfSpeech + ")"
	}
	fmt.Fprintln(g.out, style(headerStyle, g.Plain, header))
	for i, d := range def.Definitions {
		fmt.Fprintf(g.out, "  %d. %s\n", i+1, d)
	}
	return nil
}
