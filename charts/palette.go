package charts

import "github.com/charmbracelet/lipgloss"

// DefaultCategoryColor is used for categories without an assigned color.
const DefaultCategoryColor = lipgloss.Color("#c9cbcf")

var categoryColors = map[string]lipgloss.Color{
	"Food":          "#ff6384",
	"Transport":     "#36a2eb",
	"Shopping":      "#ffce56",
	"Entertainment": "#4bc0c0",
	"Bills":         "#9966ff",
	"Health":        "#ff9f40",
	"Education":     "#2ecc71",
	"Other":         "#e67e22",
	"Income":        "#00ff00",
}

// CategoryColor returns the fixed color for a category, or
// DefaultCategoryColor when it has none.
func CategoryColor(category string) lipgloss.Color {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultCategoryColor
}
