// Package home renders the Home section: the period summary and the monthly,
// category and yearly trend charts.
package home

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/charts"
	"github.com/Rshep3087/fintui/dashboard"
)

var titleCaser = cases.Title(language.English)

// Model defines the state for the home widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	currency string
	period   dashboard.Period
	summary  api.Summary
	user     *api.User

	monthly    charts.Chart
	categories charts.Chart
	trend      charts.Chart
}

type Styles struct {
	IncomeStyle  lipgloss.Style
	SpentStyle   lipgloss.Style
	SummaryStyle lipgloss.Style
	PanelStyle   lipgloss.Style
	Charts       charts.Styles
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		PanelStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Charts:       charts.DefaultStyles(),
	}
}

type Option func(*Model)

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// WithCurrency sets the ISO code amounts are displayed in.
func WithCurrency(code string) Option {
	return func(m *Model) {
		m.currency = code
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: dashboard.DefaultCurrency,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.monthly = m.newChart("Monthly Expenses", nil)
	m.categories = m.newChart("Spending by Category", nil)
	m.trend = m.newChart("Yearly Spending Trend", nil)

	m.UpdateViewport()

	return m
}

func (m *Model) newChart(title string, bars []charts.Bar) charts.Chart {
	c := charts.New(title, bars)
	c.Styles = m.Styles.Charts
	c.Format = currencyFormatter(m.currency)
	return c
}

func currencyFormatter(code string) charts.Formatter {
	return func(v float64) string {
		return dashboard.FormatAmount(v, code)
	}
}

func (m Model) format(v float64) string {
	return dashboard.FormatAmount(v, m.currency)
}

// SetCurrency changes the display currency and redraws.
func (m *Model) SetCurrency(code string) {
	m.currency = code
	m.monthly.Format = currencyFormatter(code)
	m.categories.Format = currencyFormatter(code)
	m.trend.Format = currencyFormatter(code)
	m.UpdateViewport()
}

func (m *Model) SetUser(user *api.User) {
	m.user = user
	m.UpdateViewport()
}

// SetSummary replaces the summary panel.
func (m *Model) SetSummary(p dashboard.Period, s api.Summary) {
	m.period = p
	m.summary = s
	m.UpdateViewport()
}

// SetMonthly rebuilds the monthly bar chart, one bar per point.
func (m *Model) SetMonthly(points []api.MonthlyExpense) {
	bars := make([]charts.Bar, len(points))
	for i, p := range points {
		bars[i] = charts.Bar{Label: p.Month, Value: p.Amount}
	}
	m.monthly = m.newChart("Monthly Expenses", bars)
	m.UpdateViewport()
}

// SetCategories rebuilds the category chart, coloring each category with its
// fixed color.
func (m *Model) SetCategories(points []api.CategoryExpense) {
	bars := make([]charts.Bar, len(points))
	for i, p := range points {
		bars[i] = charts.Bar{
			Label: titleCaser.String(p.Category),
			Value: p.Amount,
			Color: charts.CategoryColor(p.Category),
		}
	}
	m.categories = m.newChart("Spending by Category", bars)
	m.UpdateViewport()
}

// SetTrend rebuilds the yearly trend chart in the order given.
func (m *Model) SetTrend(points []api.YearlyTrend) {
	bars := make([]charts.Bar, len(points))
	for i, p := range points {
		bars[i] = charts.Bar{Label: strconv.Itoa(p.Year), Value: p.Amount}
	}
	m.trend = m.newChart("Yearly Spending Trend", bars)
	m.UpdateViewport()
}

// Apply shows a completed refresh. The summary is always replaced; a chart
// whose fetch failed keeps what it showed before.
func (m *Model) Apply(data dashboard.HomeData) {
	m.period = data.Period
	m.summary = data.Summary

	if data.Monthly.OK() {
		m.SetMonthly(data.Monthly.Value)
	}
	if data.Categories.OK() {
		m.SetCategories(data.Categories.Value)
	}
	if data.Trend.OK() {
		m.SetTrend(data.Trend.Value)
	}

	m.UpdateViewport()
}

// Reset clears the summary, the user and every chart.
func (m *Model) Reset() {
	m.user = nil
	m.period = dashboard.Period{}
	m.summary = api.Summary{}
	m.monthly = m.newChart("Monthly Expenses", nil)
	m.categories = m.newChart("Spending by Category", nil)
	m.trend = m.newChart("Yearly Spending Trend", nil)
	m.UpdateViewport()
}

// TrendEmpty reports whether the trend chart shows the no-data placeholder.
func (m Model) TrendEmpty() bool {
	return m.trend.Empty()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
	m.UpdateViewport()
}

func (m *Model) UpdateViewport() {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		m.Styles.PanelStyle.Render(m.categories.View()),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.Styles.PanelStyle.Render(m.monthly.View()),
		m.Styles.PanelStyle.Render(m.trend.View()),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			top,
			bottom,
		),
	)
}

func (m *Model) headerView() string {
	if m.user == nil {
		return "Overview"
	}

	return fmt.Sprintf("Welcome - %s!", m.user.Username)
}

func (m Model) summaryView() string {
	var b strings.Builder

	if m.period != (dashboard.Period{}) {
		fmt.Fprintf(&b, "%s\n\n", lipgloss.NewStyle().Bold(true).Render(m.period.String()))
	}

	fmt.Fprintf(&b, "Income: %s\n", m.Styles.IncomeStyle.Render(m.format(m.summary.Income)))
	fmt.Fprintf(&b, "Expenses: %s\n", m.Styles.SpentStyle.Render(m.format(m.summary.Expenses)))
	if m.summary.Balance < 0 {
		fmt.Fprintf(&b, "Balance: %s", m.Styles.SpentStyle.Render(m.format(m.summary.Balance)))
	} else {
		fmt.Fprintf(&b, "Balance: %s", m.Styles.IncomeStyle.Render(m.format(m.summary.Balance)))
	}

	return m.Styles.SummaryStyle.Render(b.String())
}
