package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rshep3087/fintui/api"
	"github.com/charmbracelet/log"
)

// ErrInvalidBudget is returned for a budget amount that is not a
// non-negative number.
var ErrInvalidBudget = errors.New("please enter a valid budget amount")

// BudgetStatus is the budget for a period set against what was spent.
type BudgetStatus struct {
	Amount    float64
	HasBudget bool
	Income    float64
	Expenses  float64
	Remaining float64
	// Progress is the share of the budget spent, in percent. It is not
	// clamped and is 0 when no budget is set.
	Progress float64
}

// NewBudgetStatus derives the status from an optional budget and the
// period's summary.
func NewBudgetStatus(b *api.Budget, s api.Summary) BudgetStatus {
	st := BudgetStatus{
		Income:   s.Income,
		Expenses: s.Expenses,
	}

	if b != nil {
		st.Amount = b.Amount
		st.HasBudget = true
	}

	st.Remaining = st.Amount - st.Expenses
	if st.Amount > 0 {
		st.Progress = st.Expenses / st.Amount * 100
	}

	return st
}

// FillPercent is the width of the progress bar, clamped to [0, 100].
func (s BudgetStatus) FillPercent() float64 {
	return math.Min(math.Max(s.Progress, 0), 100)
}

// OverBudget reports whether spending exceeded the budget.
func (s BudgetStatus) OverBudget() bool {
	return s.Progress > 100
}

// Split returns spent and remaining for the breakdown chart; remaining never
// goes below zero.
func (s BudgetStatus) Split() (spent, remaining float64) {
	return s.Expenses, math.Max(s.Remaining, 0)
}

// InputValue is what the budget input shows: empty when no budget is set
// rather than "0".
func (s BudgetStatus) InputValue() string {
	if !s.HasBudget {
		return ""
	}
	return strconv.FormatFloat(s.Amount, 'f', -1, 64)
}

// BudgetData is everything the Budget section renders for one period.
type BudgetData struct {
	Period Period
	Status BudgetStatus
	Daily  Result[[]api.DailySpending]
}

// RefreshBudget fetches the budget setting, the summary and the daily
// spending series for p. A missing budget is treated as zero and the daily
// series is best effort.
func RefreshBudget(ctx context.Context, b Backend, p Period) (BudgetData, error) {
	budget, err := b.GetBudget(ctx, p.MonthNumber(), p.Year)
	if errors.Is(err, api.ErrUnauthorized) {
		return BudgetData{}, err
	}
	if err != nil {
		log.Debug("budget fetch failed, treating as unset", "period", p, "error", err)
		budget = nil
	}

	summary, err := b.GetSummary(ctx, p.MonthNumber(), p.Year)
	if err != nil {
		return BudgetData{}, fmt.Errorf("failed to fetch summary: %w", err)
	}

	data := BudgetData{
		Period: p,
		Status: NewBudgetStatus(budget, *summary),
		Daily:  Capture(b.GetDailySpending(ctx, p.MonthNumber(), p.Year)),
	}

	if unauthorized(data.Daily.Err) {
		return BudgetData{}, api.ErrUnauthorized
	}

	return data, nil
}

// ParseBudgetAmount validates user input for a budget.
func ParseBudgetAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, ErrInvalidBudget
	}
	return amount, nil
}

// SaveBudget validates input and upserts the budget for p. Invalid input
// never reaches the backend.
func SaveBudget(ctx context.Context, b Backend, p Period, input string) (*api.Budget, error) {
	amount, err := ParseBudgetAmount(input)
	if err != nil {
		return nil, err
	}

	saved, err := b.SaveBudget(ctx, api.Budget{Month: p.MonthNumber(), Year: p.Year, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return saved, nil
}

// Ordinal renders a day of the month as 1st, 2nd, 3rd, 4th ... 11th, 12th,
// 13th ... 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// DailyLabels returns the ordinal day label of every point.
func DailyLabels(points []api.DailySpending) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = Ordinal(p.Date.Day())
	}
	return labels
}
