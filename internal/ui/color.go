// Package ui holds the colour and table helpers used for command output
package ui

import (
	"github.com/pterm/pterm"

	"github.com/solosprint/sprint/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// State colours an emotional state label.
func State(s models.EmotionalState) string {
	switch s {
	case models.Focused:
		return Green(s)
	case models.Productive:
		return Cyan(s)
	case models.Distracted:
		return Yellow(s)
	case models.Frustrated:
		return Red(s)
	default:
		return Magenta(s)
	}
}
