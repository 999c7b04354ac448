package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/path"
)

type PlayCmd struct {
	Date     string        `help:"Board date as YYYY-MM-DD (default today, UTC)"`
	Duration time.Duration `default:"3m" help:"Time limit (0 for untimed)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	b, date, err := g.board(c.Date)
	if err != nil {
		return err
	}
	dict, err := g.dictionary()
	if err != nil {
		return err
	}
	sess := game.NewSession(date, b, dict)

	program := tea.NewProgram(newPlayModel(sess, c.Duration, g.Plain), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	found, total, _ := sess.Snapshot()
	fmt.Fprintln(g.out, style(headerStyle, g.Plain, fmt.Sprintf("%s: %d words, %d points", date, len(found), total)))
	for _, fw := range found {
		fmt.Fprintf(g.out, "  %s (%d)\n", fw.Word, fw.Score)
	}
	return nil
}

// playModel is the Bubble Tea model for one timed session.
type playModel struct {
	sess  *game.Session
	input textinput.Model
	timer timer.Model
	timed bool
	plain bool

	status   string
	statusOK bool
	lastPath path.Path
	done     bool
}

func newPlayModel(sess *game.Session, limit time.Duration, plain bool) *playModel {
	ti := textinput.New()
	ti.Placeholder = "type a word and press enter"
	ti.Focus()
	ti.CharLimit = 25
	ti.Width = 30
	ti.Prompt = "> "
	if !plain {
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	}

	return &playModel{
		sess:  sess,
		input: ti,
		timer: timer.NewWithInterval(limit, time.Second),
		timed: limit > 0,
		plain: plain,
	}
}

func (m *playModel) Init() tea.Cmd {
	if m.timed {
		return tea.Batch(textinput.Blink, m.timer.Init())
	}
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		return m, m.finish()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.finish()
		case "enter":
			m.submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// finish locks the session and quits the program.
func (m *playModel) finish() tea.Cmd {
	m.sess.Finish()
	m.done = true
	return tea.Sequence(tea.ClearScreen, tea.Quit)
}

// submit plays word and sets the status line.
func (m *playModel) submit(word string) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return
	}
	res, p, err := m.sess.SubmitWord(word)
	m.statusOK = false
	switch {
	case errors.Is(err, game.ErrNotOnBoard):
		m.status = word + ": not on board"
		m.lastPath = nil
	case errors.Is(err, game.ErrAlreadyFound):
		m.status = word + ": already found"
		m.lastPath = p
	case errors.Is(err, game.ErrFinished):
		m.status = "time's up"
	case !res.OK:
		m.status = word + ": " + string(res.Reason)
		m.lastPath = p
	default:
		m.status = fmt.Sprintf("%s: +%d", res.Word, game.ScoreWord(res.Word))
		m.statusOK = true
		m.lastPath = p
	}
}

func (m *playModel) View() string {
	if m.done {
		return ""
	}
	found, total, _ := m.sess.Snapshot()

	header := fmt.Sprintf("Board for %s   %d points", m.sess.Date, total)
	if m.timed {
		header += "   " + m.timer.View()
	}

	var sb strings.Builder
	sb.WriteString(style(headerStyle, m.plain, header))
	sb.WriteString("\n")
	sb.WriteString(renderBoard(m.sess.Board, m.lastPath, m.plain))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.status != "" {
		st := failStyle
		if m.statusOK {
			st = okStyle
		}
		sb.WriteString(style(st, m.plain, m.status))
		sb.WriteString("\n")
	}
	words := make([]string, len(found))
	for i, fw := range found {
		words[i] = fw.Word
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(words, " "))
	sb.WriteString("\n\nenter: submit   esc: finish\n")
	return sb.String()
}
