// Package budget renders the Budget section: the budget for the period, a
// progress bar of spending against it, the spent versus remaining split and
// the daily spending chart.
package budget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/fintui/charts"
	"github.com/Rshep3087/fintui/dashboard"
)

type Colors struct {
	Primary string
	Income  string
	Expense string
}

type Model struct {
	Viewport viewport.Model

	colors   Colors
	currency string
	data     dashboard.BudgetData
	progress progress.Model
	daily    charts.Chart
	status   string

	panel lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
}

func New(colors Colors) Model {
	m := Model{
		Viewport: viewport.New(0, 20),
		colors:   colors,
		currency: dashboard.DefaultCurrency,
		progress: progress.New(
			progress.WithSolidFill(colors.Primary),
			progress.WithWidth(40),
		),
		panel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		good:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Income)),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Expense)),
	}
	m.daily = m.newDailyChart(nil)
	m.UpdateViewport()
	return m
}

func (m *Model) SetCurrency(code string) {
	m.currency = code
	m.UpdateViewport()
}

// SetStatus shows a one-line message under the progress bar, such as the
// result of a save.
func (m *Model) SetStatus(s string) {
	m.status = s
	m.UpdateViewport()
}

// Apply shows a completed budget refresh. A failed daily series keeps the
// previous chart.
func (m *Model) Apply(data dashboard.BudgetData) {
	m.data = data
	if data.Daily.OK() {
		bars := make([]charts.Bar, len(data.Daily.Value))
		labels := dashboard.DailyLabels(data.Daily.Value)
		for i, p := range data.Daily.Value {
			bars[i] = charts.Bar{Label: labels[i], Value: p.Amount}
		}
		m.daily = m.newDailyChart(bars)
	}
	m.UpdateViewport()
}

// Reset forgets the budget on screen.
func (m *Model) Reset() {
	m.data = dashboard.BudgetData{}
	m.status = ""
	m.daily = m.newDailyChart(nil)
	m.UpdateViewport()
}

func (m *Model) newDailyChart(bars []charts.Bar) charts.Chart {
	c := charts.New("Daily Spending", bars)
	code := m.currency
	c.Format = func(v float64) string { return dashboard.FormatAmount(v, code) }
	return c
}

// Status returns the computed budget status for the period on screen.
func (m Model) Status() dashboard.BudgetStatus {
	return m.data.Status
}

// InputValue is the initial value for the budget input.
func (m Model) InputValue() string {
	return m.data.Status.InputValue()
}

// ProgressBar renders the bar filled to the clamped percentage, in the
// expense color once spending passes the budget.
func (m Model) ProgressBar() string {
	p := m.progress
	if m.data.Status.OverBudget() {
		p.FullColor = m.colors.Expense
	}
	return p.ViewAs(m.data.Status.FillPercent() / 100)
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
	m.progress.Width = min(max(width/2, 20), 60)
	m.UpdateViewport()
}

func (m *Model) UpdateViewport() {
	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			lipgloss.JoinHorizontal(lipgloss.Top,
				m.panel.Render(m.statusView()),
				m.panel.Render(m.splitView()),
			),
			m.panel.Render(m.daily.View()),
		),
	)
}

func (m Model) format(v float64) string {
	return dashboard.FormatAmount(v, m.currency)
}

func (m Model) statusView() string {
	s := m.data.Status
	var b strings.Builder

	title := "Budget"
	if m.data.Period != (dashboard.Period{}) {
		title = fmt.Sprintf("Budget for %s", m.data.Period)
	}
	fmt.Fprintf(&b, "%s\n\n", lipgloss.NewStyle().Bold(true).Render(title))

	if s.HasBudget {
		fmt.Fprintf(&b, "Budget: %s\n", m.format(s.Amount))
	} else {
		b.WriteString("Budget: not set\n")
	}
	fmt.Fprintf(&b, "Income: %s\n", m.good.Render(m.format(s.Income)))
	fmt.Fprintf(&b, "Expenses: %s\n", m.bad.Render(m.format(s.Expenses)))

	remaining := m.good
	if s.Remaining < 0 {
		remaining = m.bad
	}
	fmt.Fprintf(&b, "Remaining: %s\n\n", remaining.Render(m.format(s.Remaining)))

	b.WriteString(m.ProgressBar())
	fmt.Fprintf(&b, "\n%.1f%% of budget used", s.Progress)
	if s.OverBudget() {
		b.WriteString(" " + m.bad.Render("(over budget)"))
	}

	if m.status != "" {
		fmt.Fprintf(&b, "\n\n%s", m.status)
	}

	return b.String()
}

func (m Model) splitView() string {
	spent, remaining := m.data.Status.Split()
	bar := charts.Split(spent, remaining, 30, m.bad, m.good)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("Budget Breakdown"),
		bar,
		fmt.Sprintf("%s spent  %s remaining", m.bad.Render(m.format(spent)), m.good.Render(m.format(remaining))),
	)
}
