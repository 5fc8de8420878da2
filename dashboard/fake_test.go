package dashboard

import (
	"context"
	"errors"

	"github.com/Rshep3087/fintui/api"
)

var errBackendDown = errors.New("connection refused")

// fakeBackend records calls and returns canned data or errors.
type fakeBackend struct {
	summary    *api.Summary
	summaryErr error

	monthly    []api.MonthlyExpense
	monthlyErr error

	categories    []api.CategoryExpense
	categoriesErr error

	trend    []api.YearlyTrend
	trendErr error

	daily    []api.DailySpending
	dailyErr error

	budget    *api.Budget
	budgetErr error

	transactions []api.Transaction

	created []api.Transaction
	deleted []int64
	saved   []api.Budget

	calls int
}

func (f *fakeBackend) GetSummary(_ context.Context, month, year int) (*api.Summary, error) {
	f.calls++
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	s := *f.summary
	s.Month, s.Year = month, year
	return &s, nil
}

func (f *fakeBackend) GetYearlyExpenses(context.Context, int) ([]api.MonthlyExpense, error) {
	f.calls++
	return f.monthly, f.monthlyErr
}

func (f *fakeBackend) GetCategoryExpenses(context.Context, int, int) ([]api.CategoryExpense, error) {
	f.calls++
	return f.categories, f.categoriesErr
}

func (f *fakeBackend) GetDailySpending(context.Context, int, int) ([]api.DailySpending, error) {
	f.calls++
	return f.daily, f.dailyErr
}

func (f *fakeBackend) GetYearlySpendingTrend(context.Context) ([]api.YearlyTrend, error) {
	f.calls++
	return f.trend, f.trendErr
}

func (f *fakeBackend) GetBudget(context.Context, int, int) (*api.Budget, error) {
	f.calls++
	return f.budget, f.budgetErr
}

func (f *fakeBackend) SaveBudget(_ context.Context, b api.Budget) (*api.Budget, error) {
	f.calls++
	f.saved = append(f.saved, b)
	return &b, nil
}

func (f *fakeBackend) GetTransactions(context.Context) ([]api.Transaction, error) {
	f.calls++
	return f.transactions, nil
}

func (f *fakeBackend) CreateTransaction(_ context.Context, t api.Transaction) (*api.Transaction, error) {
	f.calls++
	t.ID = int64(len(f.created) + 1)
	f.created = append(f.created, t)
	return &t, nil
}

func (f *fakeBackend) DeleteTransaction(_ context.Context, id int64) error {
	f.calls++
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) GetUser(context.Context) (*api.User, error) {
	f.calls++
	return &api.User{Username: "alice", Email: "alice@example.com"}, nil
}
