package api

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format the backend uses for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	// the backend sometimes serializes datetimes for date columns
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML keeps dates readable in yaml output.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Transaction is a single ledger record. Exactly one of Salary and Expenses is
// non-zero.
type Transaction struct {
	ID          int64   `json:"id,omitempty" yaml:"id,omitempty"`
	Date        Date    `json:"date" yaml:"date"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string  `json:"category" yaml:"category"`
	Salary      float64 `json:"salary" yaml:"salary"`
	Expenses    float64 `json:"expenses" yaml:"expenses"`
}

// IsIncome reports whether the record is classified as income.
func (t Transaction) IsIncome() bool {
	return t.Salary > 0
}

// Amount returns the non-zero side of the record.
func (t Transaction) Amount() float64 {
	if t.IsIncome() {
		return t.Salary
	}
	return t.Expenses
}

// Summary holds the aggregated figures for a period.
type Summary struct {
	Month    int     `json:"month,omitempty" yaml:"month,omitempty"`
	Year     int     `json:"year,omitempty" yaml:"year,omitempty"`
	Income   float64 `json:"income" yaml:"income"`
	Expenses float64 `json:"expenses" yaml:"expenses"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// MonthlyExpense is one point of the year-scoped expense series.
type MonthlyExpense struct {
	Month  string  `json:"month" yaml:"month"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// CategoryExpense is the total spent in one category.
type CategoryExpense struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// DailySpending is the total spent on one day.
type DailySpending struct {
	Date   Date    `json:"date" yaml:"date"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// YearlyTrend is the total spent in one year.
type YearlyTrend struct {
	Year   int     `json:"year" yaml:"year"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Budget is the spending ceiling for a period.
type Budget struct {
	ID     int64   `json:"id,omitempty" yaml:"id,omitempty"`
	Month  int     `json:"month" yaml:"month"`
	Year   int     `json:"year" yaml:"year"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// User is the profile of the authenticated user.
type User struct {
	ID       int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
