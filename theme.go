package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/fintui/budget"
	"github.com/Rshep3087/fintui/charts"
	"github.com/Rshep3087/fintui/config"
	"github.com/Rshep3087/fintui/history"
	"github.com/Rshep3087/fintui/home"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ffd644"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#00ff00"),
		Expense:       parseColor(colors.Expense, "#ff4d4d"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor returns colorStr as a lipgloss.Color, which accepts both hex
// and ANSI codes, or defaultColor when colorStr is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(colorStr)
}

func (t Theme) homeStyles() home.Styles {
	chartStyles := charts.DefaultStyles()
	chartStyles.Title = chartStyles.Title.Foreground(t.Primary)
	chartStyles.Label = chartStyles.Label.Foreground(t.SecondaryText)
	chartStyles.Bar = chartStyles.Bar.Foreground(t.Border)
	chartStyles.Placeholder = chartStyles.Placeholder.Foreground(t.Muted)

	return home.Styles{
		IncomeStyle:  lipgloss.NewStyle().Foreground(t.Income),
		SpentStyle:   lipgloss.NewStyle().Foreground(t.Expense),
		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(1, 2),
		PanelStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		Charts:       chartStyles,
	}
}

func (t Theme) historyColors() history.Colors {
	return history.Colors{
		Primary: string(t.Primary),
		Income:  string(t.Income),
		Expense: string(t.Expense),
	}
}

func (t Theme) budgetColors() budget.Colors {
	return budget.Colors{
		Primary: string(t.Primary),
		Income:  string(t.Income),
		Expense: string(t.Expense),
	}
}
