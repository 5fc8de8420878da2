package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rshep3087/fintui/api"
)

// Kind classifies a transaction as income or expense.
type Kind string

const (
	Expense Kind = "Expense"
	Income  Kind = "Income"
)

// incomeLabel is the name and category every income record is filed under.
const incomeLabel = "Income"

// ExpenseCategories are the categories offered for new expenses.
var ExpenseCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Entertainment",
	"Bills",
	"Health",
	"Education",
	"Other",
}

// ErrOutsidePeriod is matched by errors returned for a date outside the
// selected period.
var ErrOutsidePeriod = errors.New("date outside the selected period")

// PeriodMismatchError names the period a transaction date must fall in.
type PeriodMismatchError struct {
	Period Period
}

func (e *PeriodMismatchError) Error() string {
	return fmt.Sprintf("Please select a date in %s", e.Period)
}

func (e *PeriodMismatchError) Is(target error) bool {
	return target == ErrOutsidePeriod
}

// Draft is the unvalidated content of the new transaction form.
type Draft struct {
	Kind        Kind
	Date        string
	Description string
	Category    string
	Amount      string
}

// Validate checks the draft against the selected period and returns the
// record to send. A date outside p is rejected before anything else so no
// request is ever made for it.
func (d Draft) Validate(p Period) (api.Transaction, error) {
	date, err := api.ParseDate(d.Date)
	if err != nil {
		return api.Transaction{}, err
	}

	if !p.Contains(date.Time) {
		return api.Transaction{}, &PeriodMismatchError{Period: p}
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return api.Transaction{}, err
	}

	desc := strings.TrimSpace(d.Description)

	switch d.Kind {
	case Income:
		return api.Transaction{
			Date:        date,
			Name:        incomeLabel,
			Description: desc,
			Category:    incomeLabel,
			Salary:      amount,
		}, nil

	case Expense:
		if desc == "" {
			return api.Transaction{}, errors.New("description is required")
		}
		category := strings.TrimSpace(d.Category)
		if category == "" {
			return api.Transaction{}, errors.New("category is required")
		}
		return api.Transaction{
			Date:        date,
			Name:        desc,
			Description: desc,
			Category:    category,
			Expenses:    amount,
		}, nil
	}

	return api.Transaction{}, fmt.Errorf("unknown transaction type %q", d.Kind)
}

// ParseAmount parses a strictly positive amount.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.New("amount must be a valid number")
	}
	if amount <= 0 {
		return 0, errors.New("amount must be greater than zero")
	}
	return amount, nil
}

// CreateTransaction validates d and posts it.
func CreateTransaction(ctx context.Context, b Backend, p Period, d Draft) (*api.Transaction, error) {
	t, err := d.Validate(p)
	if err != nil {
		return nil, err
	}

	created, err := b.CreateTransaction(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return created, nil
}

// DeleteTransaction removes the record with id.
func DeleteTransaction(ctx context.Context, b Backend, id int64) error {
	if err := b.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}
