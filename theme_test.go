package main

import (
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/fintui/config"
)

func TestNewTheme(t *testing.T) {
	theme := newTheme(config.Colors{
		Primary:       "#ff0000",
		Error:         "21",
		Income:        "#00cc00",
		SecondaryText: "245",
	})

	be.Equal(t, lipgloss.Color("#ff0000"), theme.Primary)
	be.Equal(t, lipgloss.Color("21"), theme.Error)
	be.Equal(t, lipgloss.Color("#00cc00"), theme.Income)
	be.Equal(t, lipgloss.Color("245"), theme.SecondaryText)

	// unset colors fall back to the defaults
	be.Equal(t, lipgloss.Color("#ff4d4d"), theme.Expense)
	be.Equal(t, lipgloss.Color("#7D56F4"), theme.Border)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name         string
		colorStr     string
		defaultColor string
		expected     lipgloss.Color
	}{
		{"hex color", "#ff0000", "#000000", lipgloss.Color("#ff0000")},
		{"ansi color", "21", "#000000", lipgloss.Color("21")},
		{"empty string", "", "#000000", lipgloss.Color("#000000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, parseColor(tt.colorStr, tt.defaultColor))
		})
	}
}

func TestThemeSubViewColors(t *testing.T) {
	theme := newTheme(config.Colors{Income: "#111111", Expense: "#222222"})

	hc := theme.historyColors()
	be.Equal(t, "#111111", hc.Income)
	be.Equal(t, "#222222", hc.Expense)

	bc := theme.budgetColors()
	be.Equal(t, "#222222", bc.Expense)
	be.Equal(t, string(theme.Primary), bc.Primary)
}
