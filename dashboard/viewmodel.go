// Package dashboard holds the period-scoped state of the finance dashboard and
// the refresh logic that keeps its widgets consistent with that period.
package dashboard

import (
	"context"
	"time"

	"github.com/Rshep3087/fintui/api"
)

// Section is one of the dashboard's top-level views.
type Section int

const (
	Home Section = iota
	History
	Budget
)

func (s Section) String() string {
	switch s {
	case Home:
		return "home"
	case History:
		return "history"
	case Budget:
		return "budget"
	}
	return "unknown"
}

// Refresh is a set of section refreshes to run.
type Refresh uint8

const (
	NeedHome Refresh = 1 << iota
	NeedHistory
	NeedBudget

	NeedNothing Refresh = 0
)

// Has reports whether r includes other.
func (r Refresh) Has(other Refresh) bool {
	return r&other != 0
}

// AfterLedgerChange is what a create or delete must refresh so the summary
// and the ledger move together.
const AfterLedgerChange = NeedHome | NeedHistory

// Backend is the subset of the API the dashboard reads and writes.
type Backend interface {
	GetSummary(ctx context.Context, month, year int) (*api.Summary, error)
	GetYearlyExpenses(ctx context.Context, year int) ([]api.MonthlyExpense, error)
	GetCategoryExpenses(ctx context.Context, month, year int) ([]api.CategoryExpense, error)
	GetDailySpending(ctx context.Context, month, year int) ([]api.DailySpending, error)
	GetYearlySpendingTrend(ctx context.Context) ([]api.YearlyTrend, error)
	GetBudget(ctx context.Context, month, year int) (*api.Budget, error)
	SaveBudget(ctx context.Context, b api.Budget) (*api.Budget, error)
	GetTransactions(ctx context.Context) ([]api.Transaction, error)
	CreateTransaction(ctx context.Context, t api.Transaction) (*api.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	GetUser(ctx context.Context) (*api.User, error)
}

// ViewModel owns the shared period, the two period selectors that mirror it
// and the visible section.
type ViewModel struct {
	period         Period
	homeSelector   Period
	budgetSelector Period
	section        Section
}

// New returns a view model on the Home section for period p.
func New(p Period) *ViewModel {
	return &ViewModel{
		period:         p,
		homeSelector:   p,
		budgetSelector: p,
		section:        Home,
	}
}

// NewCurrent returns a view model for the month containing now.
func NewCurrent(now time.Time) *ViewModel {
	return New(PeriodOf(now))
}

func (vm *ViewModel) Period() Period {
	return vm.period
}

func (vm *ViewModel) Section() Section {
	return vm.section
}

// Selectors returns the values shown by the home and budget period selectors.
func (vm *ViewModel) Selectors() (home, budget Period) {
	return vm.homeSelector, vm.budgetSelector
}

// SetPeriod updates the shared period, synchronizes both selectors and
// returns the refresh owned by the visible section. History is never
// refreshed by a period change.
func (vm *ViewModel) SetPeriod(month, year int) (Refresh, error) {
	p, err := NewPeriod(month, year)
	if err != nil {
		return NeedNothing, err
	}

	vm.period = p
	vm.homeSelector = p
	vm.budgetSelector = p

	switch vm.section {
	case Home:
		return NeedHome, nil
	case Budget:
		return NeedBudget, nil
	}
	return NeedNothing, nil
}

// Shift moves the period by n months. A move before year 1 leaves the
// period unchanged and returns the error.
func (vm *ViewModel) Shift(months int) (Refresh, error) {
	p := vm.period.Add(months)
	return vm.SetPeriod(p.MonthNumber(), p.Year)
}

// Navigate makes s the visible section and returns the refresh it needs.
func (vm *ViewModel) Navigate(s Section) Refresh {
	vm.section = s

	switch s {
	case Home:
		return NeedHome
	case History:
		return NeedHistory
	case Budget:
		return NeedBudget
	}
	return NeedNothing
}
