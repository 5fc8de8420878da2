// Package charts renders the dashboard's bar, category and trend charts as
// terminal text.
package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoData is shown in place of a chart with nothing to plot.
const NoData = "No data available"

const (
	defaultWidth = 40
	fullBlock    = "█"
	emptyBlock   = "░"
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
	// Color overrides the chart's bar style when set.
	Color lipgloss.Color
}

// Formatter renders a value for display next to its bar.
type Formatter func(float64) string

// Styles controls how charts are drawn.
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Bar         lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultStyles returns the styles used when a theme sets none.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		Bar:         lipgloss.NewStyle().Foreground(lipgloss.Color("#36a2eb")),
		Value:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

// Chart is a horizontal bar chart.
type Chart struct {
	Title  string
	Bars   []Bar
	Width  int
	Format Formatter
	Styles Styles
}

// New returns a chart with default styles and a plain number formatter.
func New(title string, bars []Bar) Chart {
	return Chart{
		Title:  title,
		Bars:   bars,
		Width:  defaultWidth,
		Format: func(v float64) string { return fmt.Sprintf("%.2f", v) },
		Styles: DefaultStyles(),
	}
}

// Empty reports whether the chart has no bars to draw.
func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

// View renders the title followed by one line per bar. An empty chart
// renders the NoData placeholder instead.
func (c Chart) View() string {
	lines := []string{c.Styles.Title.Render(c.Title)}
	if c.Empty() {
		lines = append(lines, c.Styles.Placeholder.Render(NoData))
		return strings.Join(lines, "\n")
	}

	labelWidth := 0
	peak := 0.0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		peak = math.Max(peak, math.Abs(b.Value))
	}

	width := c.Width
	if width <= 0 {
		width = defaultWidth
	}

	for _, b := range c.Bars {
		filled := scale(b.Value, peak, width)

		barStyle := c.Styles.Bar
		if b.Color != "" {
			barStyle = barStyle.Foreground(b.Color)
		}

		label := c.Styles.Label.Width(labelWidth).Render(b.Label)
		bar := barStyle.Render(strings.Repeat(fullBlock, filled)) +
			strings.Repeat(" ", width-filled)
		lines = append(lines, fmt.Sprintf("%s %s %s", label, bar, c.Styles.Value.Render(c.Format(b.Value))))
	}

	return strings.Join(lines, "\n")
}

// scale maps v onto [0, width] relative to peak. Any non-zero value gets at
// least one cell so it stays visible next to large ones.
func scale(v, peak float64, width int) int {
	if peak == 0 || v == 0 {
		return 0
	}
	n := int(math.Round(math.Abs(v) / peak * float64(width)))
	return min(max(n, 1), width)
}

// Split renders a single stacked bar of two parts, used for the spent versus
// remaining breakdown.
func Split(a, b float64, width int, aStyle, bStyle lipgloss.Style) string {
	if width <= 0 {
		width = defaultWidth
	}

	total := a + b
	if total <= 0 {
		return strings.Repeat(emptyBlock, width)
	}

	left := int(math.Round(a / total * float64(width)))
	left = min(max(left, 0), width)

	return aStyle.Render(strings.Repeat(fullBlock, left)) +
		bStyle.Render(strings.Repeat(fullBlock, width-left))
}
