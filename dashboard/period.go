package dashboard

import (
	"fmt"
	"time"
)

// Period is the month and year that scopes every financial query.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod validates month and year.
func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// MonthNumber returns the month as 1..12.
func (p Period) MonthNumber() int {
	return int(p.Month)
}

func (p Period) start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) end() time.Time {
	return p.start().AddDate(0, 1, 0).Add(-time.Second)
}

// Contains reports whether the calendar date of t falls in the period.
func (p Period) Contains(t time.Time) bool {
	return t.Month() == p.Month && t.Year() == p.Year
}

// Add moves the period by n months.
func (p Period) Add(months int) Period {
	return PeriodOf(p.start().AddDate(0, months, 0))
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return p.end().Day()
}

// DefaultDate is the date a new transaction form starts with: today when the
// period is the current month, otherwise the first day of the period.
func (p Period) DefaultDate(today time.Time) time.Time {
	if p.Contains(today) {
		return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}
	return p.start()
}
