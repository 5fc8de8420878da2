package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/fintui/api"
	"github.com/carlmjohnson/be"
)

var march2024 = Period{Month: time.March, Year: 2024}

func TestRefreshHomeSummaryIsFatal(t *testing.T) {
	f := &fakeBackend{summaryErr: &api.Error{StatusCode: 500, Detail: "boom"}}

	_, err := RefreshHome(context.Background(), f, march2024)
	be.Nonzero(t, err)
	be.Equal(t, 1, f.calls)
	be.True(t, strings.Contains(HomeErrorMessage(err), "boom"))
}

func TestRefreshHomeNetworkErrorHint(t *testing.T) {
	f := &fakeBackend{summaryErr: errBackendDown}

	_, err := RefreshHome(context.Background(), f, march2024)
	be.True(t, strings.Contains(HomeErrorMessage(err), "backend server is running"))
}

func TestRefreshHomeChartsAreBestEffort(t *testing.T) {
	f := &fakeBackend{
		summary:       &api.Summary{Income: 1000, Expenses: 400, Balance: 600},
		monthly:       []api.MonthlyExpense{{Month: "January", Amount: 10}},
		categoriesErr: &api.Error{StatusCode: 500},
		trend:         []api.YearlyTrend{{Year: 2023, Amount: 5}, {Year: 2024, Amount: 7}},
	}

	data, err := RefreshHome(context.Background(), f, march2024)
	be.NilErr(t, err)
	be.Equal(t, 600.0, data.Summary.Balance)
	be.True(t, data.Monthly.OK())
	be.False(t, data.Categories.OK())
	be.True(t, data.Trend.OK())
	be.Equal(t, 2024, data.Trend.Value[1].Year)
}

func TestRefreshHomeUnauthorizedChart(t *testing.T) {
	f := &fakeBackend{
		summary:  &api.Summary{},
		trendErr: api.ErrUnauthorized,
	}

	_, err := RefreshHome(context.Background(), f, march2024)
	be.True(t, errors.Is(err, api.ErrUnauthorized))
}

func TestSortByDateDesc(t *testing.T) {
	ts := []api.Transaction{
		{ID: 1, Date: api.NewDate(2024, 3, 1), Salary: 100},
		{ID: 2, Date: api.NewDate(2024, 3, 5), Expenses: 20},
		{ID: 3, Date: api.NewDate(2024, 2, 28), Expenses: 5},
		{ID: 4, Date: api.NewDate(2024, 3, 5), Expenses: 30},
	}

	sorted := SortByDateDesc(ts)

	ids := make([]int64, len(sorted))
	for i, s := range sorted {
		ids[i] = s.ID
	}
	be.AllEqual(t, []int64{2, 4, 1, 3}, ids)
	// input untouched
	be.Equal(t, int64(1), ts[0].ID)
}

func TestLedgerRowsSigned(t *testing.T) {
	ts := []api.Transaction{
		{ID: 1, Date: api.NewDate(2024, 3, 2), Category: "Income", Salary: 1500},
		{ID: 2, Date: api.NewDate(2024, 3, 1), Category: "Food", Description: "Lunch", Expenses: 12.5},
		{ID: 3, Date: api.NewDate(2024, 3, 1), Category: "Bills", Expenses: 99},
	}

	rows := LedgerRows(ts, "USD")
	be.Equal(t, 3, len(rows))

	be.True(t, rows[0].Income)
	be.Equal(t, "+$1,500.00", rows[0].Amount)
	be.Equal(t, "-", rows[0].Description)

	be.False(t, rows[1].Income)
	be.Equal(t, "-$12.50", rows[1].Amount)
	be.Equal(t, "Lunch", rows[1].Description)

	be.Equal(t, int64(3), rows[2].ID)
	be.Equal(t, "2024-03-01", rows[2].Date)
}

func TestRefreshHistory(t *testing.T) {
	f := &fakeBackend{transactions: []api.Transaction{
		{ID: 1, Date: api.NewDate(2023, 1, 1)},
		{ID: 2, Date: api.NewDate(2024, 1, 1)},
	}}

	ts, err := RefreshHistory(context.Background(), f)
	be.NilErr(t, err)
	be.Equal(t, int64(2), ts[0].ID)
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		name      string
		budget    *api.Budget
		expenses  float64
		fill      float64
		over      bool
		remaining float64
		input     string
	}{
		{name: "over budget", budget: &api.Budget{Amount: 100}, expenses: 150, fill: 100, over: true, remaining: -50, input: "100"},
		{name: "half spent", budget: &api.Budget{Amount: 100}, expenses: 50, fill: 50, remaining: 50, input: "100"},
		{name: "exactly spent", budget: &api.Budget{Amount: 100}, expenses: 100, fill: 100, remaining: 0, input: "100"},
		{name: "no budget", budget: nil, expenses: 75, fill: 0, remaining: -75, input: ""},
		{name: "zero budget", budget: &api.Budget{Amount: 0}, expenses: 75, fill: 0, remaining: -75, input: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBudgetStatus(tt.budget, api.Summary{Income: 500, Expenses: tt.expenses})
			be.Equal(t, tt.fill, s.FillPercent())
			be.Equal(t, tt.over, s.OverBudget())
			be.Equal(t, tt.remaining, s.Remaining)
			be.Equal(t, tt.input, s.InputValue())
		})
	}
}

func TestBudgetSplitFloorsRemaining(t *testing.T) {
	s := NewBudgetStatus(&api.Budget{Amount: 100}, api.Summary{Expenses: 150})
	spent, remaining := s.Split()
	be.Equal(t, 150.0, spent)
	be.Equal(t, 0.0, remaining)
}

func TestRefreshBudget(t *testing.T) {
	f := &fakeBackend{
		budgetErr: &api.Error{StatusCode: 404},
		summary:   &api.Summary{Income: 900, Expenses: 300},
		dailyErr:  errBackendDown,
	}

	data, err := RefreshBudget(context.Background(), f, march2024)
	be.NilErr(t, err)
	be.False(t, data.Status.HasBudget)
	be.Equal(t, -300.0, data.Status.Remaining)
	be.False(t, data.Daily.OK())
}

func TestRefreshBudgetUnauthorized(t *testing.T) {
	f := &fakeBackend{budgetErr: api.ErrUnauthorized}

	_, err := RefreshBudget(context.Background(), f, march2024)
	be.True(t, errors.Is(err, api.ErrUnauthorized))
	be.Equal(t, 1, f.calls)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 14: "14th",
		21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
		111: "111th", 101: "101st",
	}

	for n, expected := range tests {
		be.Equal(t, expected, Ordinal(n))
	}
}

func TestDailyLabels(t *testing.T) {
	labels := DailyLabels([]api.DailySpending{
		{Date: api.NewDate(2024, 3, 1)},
		{Date: api.NewDate(2024, 3, 2)},
		{Date: api.NewDate(2024, 3, 13)},
	})
	be.AllEqual(t, []string{"1st", "2nd", "13th"}, labels)
}
