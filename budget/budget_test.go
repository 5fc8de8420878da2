package budget

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
)

var (
	colors = Colors{Primary: "#ffd644", Income: "#00ff00", Expense: "#ff0000"}
	march  = dashboard.Period{Month: time.March, Year: 2024}
)

func budgetData(amount *api.Budget, expenses float64) dashboard.BudgetData {
	return dashboard.BudgetData{
		Period: march,
		Status: dashboard.NewBudgetStatus(amount, api.Summary{Expenses: expenses}),
	}
}

func TestProgressBarWidthIsClamped(t *testing.T) {
	m := New(colors)
	width := lipgloss.Width(m.ProgressBar())

	m.Apply(budgetData(&api.Budget{Amount: 100}, 150))
	be.Equal(t, width, lipgloss.Width(m.ProgressBar()))
	be.Equal(t, 100.0, m.Status().FillPercent())
	be.True(t, m.Status().OverBudget())
	be.True(t, strings.Contains(m.statusView(), "over budget"))

	m.Apply(budgetData(&api.Budget{Amount: 100}, 50))
	be.Equal(t, width, lipgloss.Width(m.ProgressBar()))
	be.Equal(t, 50.0, m.Status().FillPercent())
	be.False(t, m.Status().OverBudget())
	be.False(t, strings.Contains(m.statusView(), "over budget"))
}

func TestAbsentBudgetClearsInput(t *testing.T) {
	m := New(colors)
	m.Apply(budgetData(&api.Budget{Amount: 250}, 0))
	be.Equal(t, "250", m.InputValue())

	m.Apply(budgetData(nil, 40))
	be.Equal(t, "", m.InputValue())
	be.True(t, strings.Contains(m.statusView(), "not set"))
}

func TestDailyChartUsesOrdinals(t *testing.T) {
	m := New(colors)

	data := budgetData(&api.Budget{Amount: 100}, 10)
	data.Daily = dashboard.Capture([]api.DailySpending{
		{Date: api.NewDate(2024, 3, 1), Amount: 4},
		{Date: api.NewDate(2024, 3, 12), Amount: 6},
	}, nil)
	m.Apply(data)

	be.Equal(t, 2, len(m.daily.Bars))
	be.Equal(t, "1st", m.daily.Bars[0].Label)
	be.Equal(t, "12th", m.daily.Bars[1].Label)

	failed := budgetData(&api.Budget{Amount: 100}, 10)
	failed.Daily = dashboard.Capture([]api.DailySpending(nil), errors.New("boom"))
	m.Apply(failed)
	be.Equal(t, 2, len(m.daily.Bars))
}

func TestSetStatus(t *testing.T) {
	m := New(colors)
	m.SetStatus("Budget saved")
	be.True(t, strings.Contains(m.statusView(), "Budget saved"))
}

func TestResetForgetsBudget(t *testing.T) {
	m := New(colors)
	m.Apply(budgetData(&api.Budget{Amount: 250}, 40))
	m.SetStatus("saved")

	m.Reset()
	be.Equal(t, "", m.InputValue())
	be.Equal(t, "", m.status)
	be.Zero(t, m.data.Period)
	be.Equal(t, 0, len(m.daily.Bars))
}
