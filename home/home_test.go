package home

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/carlmjohnson/be"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/charts"
	"github.com/Rshep3087/fintui/dashboard"
)

func TestTrendPlaceholder(t *testing.T) {
	m := New(WithCurrency("USD"))

	m.SetTrend(nil)
	be.True(t, m.TrendEmpty())
	be.True(t, strings.Contains(m.trend.View(), charts.NoData))

	m.SetTrend([]api.YearlyTrend{{Year: 2023, Amount: 120}, {Year: 2024, Amount: 80}})
	be.False(t, m.TrendEmpty())
	be.False(t, strings.Contains(m.trend.View(), charts.NoData))
	be.Equal(t, "2023", m.trend.Bars[0].Label)
	be.Equal(t, "2024", m.trend.Bars[1].Label)
}

func TestApplyKeepsFailedCharts(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetCategories([]api.CategoryExpense{{Category: "Food", Amount: 10}})

	march := dashboard.Period{Month: time.March, Year: 2024}
	m.Apply(dashboard.HomeData{
		Period:     march,
		Summary:    api.Summary{Income: 100, Expenses: 40, Balance: 60},
		Monthly:    dashboard.Capture([]api.MonthlyExpense{{Month: "January", Amount: 1}, {Month: "February", Amount: 2}}, nil),
		Categories: dashboard.Capture([]api.CategoryExpense(nil), errors.New("boom")),
		Trend:      dashboard.Capture([]api.YearlyTrend(nil), nil),
	})

	be.Equal(t, 2, len(m.monthly.Bars))
	be.Equal(t, 1, len(m.categories.Bars))
	be.Equal(t, "Food", m.categories.Bars[0].Label)
	be.True(t, m.TrendEmpty())
	be.Equal(t, 60.0, m.summary.Balance)
	be.True(t, strings.Contains(m.summaryView(), "March 2024"))
	be.True(t, strings.Contains(m.summaryView(), "$60.00"))
}

func TestCategoryColors(t *testing.T) {
	m := New()
	m.SetCategories([]api.CategoryExpense{
		{Category: "Food", Amount: 10},
		{Category: "Pets", Amount: 5},
	})

	be.Equal(t, charts.CategoryColor("Food"), m.categories.Bars[0].Color)
	be.Equal(t, charts.DefaultCategoryColor, m.categories.Bars[1].Color)
}

func TestHeaderView(t *testing.T) {
	m := New()
	be.Equal(t, "Overview", m.headerView())

	m.SetUser(&api.User{Username: "alice"})
	be.Equal(t, "Welcome - alice!", m.headerView())
}

func TestResetClearsScreen(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetUser(&api.User{Username: "asha"})
	m.SetTrend([]api.YearlyTrend{{Year: 2024, Amount: 80}})
	m.SetCategories([]api.CategoryExpense{{Category: "Food", Amount: 10}})

	m.Reset()
	be.True(t, m.user == nil)
	be.True(t, m.TrendEmpty())
	be.Equal(t, 0, len(m.categories.Bars))
	be.Zero(t, m.summary)
}
