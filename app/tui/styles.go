package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/solosprint/sprint/internal/models"
)

// Styles holds the lipgloss styles of the session view.
type Styles struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Hint   lipgloss.Style
	States map[models.EmotionalState]lipgloss.Style
}

// NewStyles returns the styles for a dark or light terminal.
func NewStyles(dark bool) Styles {
	text := lipgloss.Color("#1e1e2e")
	muted := lipgloss.Color("#6c6f85")
	accent := lipgloss.Color("#1e66f5")

	if dark {
		text = lipgloss.Color("#cdd6f4")
		muted = lipgloss.Color("#a6adc8")
		accent = lipgloss.Color("#74c7ec")
	}

	state := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}

	return Styles{
		Base:  lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label: lipgloss.NewStyle().Foreground(muted).Width(labelWidth),
		Value: lipgloss.NewStyle().Foreground(text),
		Hint:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		States: map[models.EmotionalState]lipgloss.Style{
			models.Focused:    state("#a6e3a1"),
			models.Productive: state("#74c7ec"),
			models.Distracted: state("#f9e2af"),
			models.Frustrated: state("#f38ba8"),
			models.Tired:      state("#cba6f7"),
		},
	}
}

func (s Styles) state(e models.EmotionalState) lipgloss.Style {
	if st, ok := s.States[e]; ok {
		return st
	}

	return s.Value
}
