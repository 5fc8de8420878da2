package main

import (
	"context"
	"sync"
	"time"

	"github.com/Rshep3087/fintui/api"
)

var march2024 = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return march2024 }

// fakeBackend returns canned data, or err for every call when set.
type fakeBackend struct {
	mu  sync.Mutex
	err error

	summary      api.Summary
	budget       *api.Budget
	transactions []api.Transaction
	user         api.User

	created []api.Transaction
	deleted []int64
	saved   []api.Budget
}

func (f *fakeBackend) fail() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeBackend) GetSummary(_ context.Context, month, year int) (*api.Summary, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	s := f.summary
	s.Month, s.Year = month, year
	return &s, nil
}

func (f *fakeBackend) GetYearlyExpenses(context.Context, int) ([]api.MonthlyExpense, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []api.MonthlyExpense{{Month: "January", Amount: 120}}, nil
}

func (f *fakeBackend) GetCategoryExpenses(context.Context, int, int) ([]api.CategoryExpense, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []api.CategoryExpense{{Category: "food", Amount: 80}}, nil
}

func (f *fakeBackend) GetDailySpending(context.Context, int, int) ([]api.DailySpending, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeBackend) GetYearlySpendingTrend(context.Context) ([]api.YearlyTrend, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeBackend) GetBudget(context.Context, int, int) (*api.Budget, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.budget, nil
}

func (f *fakeBackend) SaveBudget(_ context.Context, b api.Budget) (*api.Budget, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, b)
	return &b, nil
}

func (f *fakeBackend) GetTransactions(context.Context) ([]api.Transaction, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return f.transactions, nil
}

func (f *fakeBackend) CreateTransaction(_ context.Context, t api.Transaction) (*api.Transaction, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, t)
	t.ID = int64(len(f.created))
	return &t, nil
}

func (f *fakeBackend) DeleteTransaction(_ context.Context, id int64) error {
	if err := f.fail(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) GetUser(context.Context) (*api.User, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	u := f.user
	return &u, nil
}
