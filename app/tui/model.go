// Package tui renders a running focus session in the terminal. It only
// displays snapshots; the session itself is owned by the controller.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solosprint/sprint/internal/models"
)

const (
	padding    = 2
	maxWidth   = 60
	minWidth   = 10
	labelWidth = 14
)

type (
	// SnapshotMsg carries a new session snapshot into the program.
	SnapshotMsg struct {
		Session models.FocusSession
	}

	clockMsg time.Time
)

// Model is the bubbletea model of the live session view.
type Model struct {
	updates  <-chan models.FocusSession
	now      func() time.Time
	current  time.Time
	goal     string
	snap     models.FocusSession
	keys     keyMap
	help     help.Model
	progress progress.Model
	styles   Styles
	ending   bool
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the wall clock used for the elapsed time display.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStyles replaces the default dark styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// New returns a model showing initial and then every snapshot received on
// updates.
func New(
	goal string,
	initial models.FocusSession,
	updates <-chan models.FocusSession,
	opts ...Option,
) Model {
	m := Model{
		updates:  updates,
		now:      time.Now,
		goal:     goal,
		snap:     initial,
		keys:     defaultKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		styles:   NewStyles(true),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.progress.Width = maxWidth
	m.current = m.now()

	return m
}

// Relay returns a snapshot channel for New and the hook that feeds it. The
// hook never blocks: when the view falls behind, the stale snapshot is
// replaced by the newest one. The hook must not be called concurrently.
func Relay() (<-chan models.FocusSession, func(models.FocusSession)) {
	ch := make(chan models.FocusSession, 1)

	return ch, func(s models.FocusSession) {
		for {
			select {
			case ch <- s:
				return
			default:
			}

			select {
			case <-ch:
			default:
			}
		}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.listen())
}

// Ending reports whether the user asked to end the session.
func (m Model) Ending() bool {
	return m.ending
}

// Session returns the last snapshot the view received.
func (m Model) Session() models.FocusSession {
	return m.snap
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m Model) listen() tea.Cmd {
	if m.updates == nil {
		return nil
	}

	return func() tea.Msg {
		s, ok := <-m.updates
		if !ok {
			return nil
		}

		return SnapshotMsg{Session: s}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		m.snap = msg.Session
		return m, m.listen()

	case clockMsg:
		m.current = m.now()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.progress.Width = max(min(msg.Width-padding*2-4, maxWidth), minWidth)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.End):
			m.ending = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.ending {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.styles.Title.Render(m.goal))

	if m.snap.TaskTitle != "" {
		s.WriteString("\n" + m.styles.Hint.Render(m.snap.TaskTitle))
	}

	s.WriteString("\n\n")

	elapsed := max(m.current.Sub(m.snap.StartTime), 0).Truncate(time.Second)

	m.row(&s, "Elapsed", formatElapsed(elapsed))
	m.row(&s, "Focus", fmt.Sprintf("%d%%", m.snap.FocusPercentage))
	s.WriteString(m.progress.ViewAs(float64(m.snap.FocusPercentage)/100) + "\n")
	m.row(&s, "Distraction", fmt.Sprintf("%d%%", m.snap.DistractionPercentage))
	m.row(&s, "Tab switches", fmt.Sprintf("%d", m.snap.TabSwitches))

	s.WriteString(m.styles.Label.Render("State"))
	s.WriteString(
		m.styles.state(m.snap.EmotionalState).Render(string(m.snap.EmotionalState)),
	)

	s.WriteString("\n\n" + m.help.View(m.keys))

	return m.styles.Base.Render(s.String())
}

func (m Model) row(s *strings.Builder, label, value string) {
	s.WriteString(m.styles.Label.Render(label))
	s.WriteString(m.styles.Value.Render(value))
	s.WriteString("\n")
}

// formatElapsed renders d as "MM:SS", or "H:MM:SS" past the hour.
func formatElapsed(d time.Duration) string {
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}
