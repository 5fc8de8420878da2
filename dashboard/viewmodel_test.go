package dashboard

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestSetPeriodSyncsSelectors(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		month   int
		year    int
		refresh Refresh
	}{
		{name: "home refreshes home", section: Home, month: 3, year: 2024, refresh: NeedHome},
		{name: "budget refreshes budget", section: Budget, month: 12, year: 2023, refresh: NeedBudget},
		{name: "history refreshes nothing", section: History, month: 1, year: 2025, refresh: NeedNothing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := New(Period{Month: time.June, Year: 2022})
			vm.Navigate(tt.section)

			r, err := vm.SetPeriod(tt.month, tt.year)
			be.NilErr(t, err)
			be.Equal(t, tt.refresh, r)

			want := Period{Month: time.Month(tt.month), Year: tt.year}
			home, budget := vm.Selectors()
			be.Equal(t, want, vm.Period())
			be.Equal(t, want, home)
			be.Equal(t, want, budget)
		})
	}
}

func TestSetPeriodAllMonths(t *testing.T) {
	vm := New(Period{Month: time.January, Year: 2024})
	for year := 2020; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			_, err := vm.SetPeriod(month, year)
			be.NilErr(t, err)

			home, budget := vm.Selectors()
			be.Equal(t, vm.Period(), home)
			be.Equal(t, vm.Period(), budget)
		}
	}
}

func TestSetPeriodRejectsInvalidMonth(t *testing.T) {
	vm := New(Period{Month: time.May, Year: 2024})

	r, err := vm.SetPeriod(13, 2024)
	be.Nonzero(t, err)
	be.Equal(t, NeedNothing, r)
	be.Equal(t, Period{Month: time.May, Year: 2024}, vm.Period())
}

func TestShiftCrossesYears(t *testing.T) {
	vm := New(Period{Month: time.December, Year: 2023})

	r, err := vm.Shift(1)
	be.NilErr(t, err)
	be.Equal(t, NeedHome, r)
	be.Equal(t, Period{Month: time.January, Year: 2024}, vm.Period())

	_, err = vm.Shift(-2)
	be.NilErr(t, err)
	be.Equal(t, Period{Month: time.November, Year: 2023}, vm.Period())
}

func TestShiftBeforeYearOne(t *testing.T) {
	vm := New(Period{Month: time.January, Year: 1})

	r, err := vm.Shift(-1)
	be.Nonzero(t, err)
	be.Equal(t, NeedNothing, r)
	be.Equal(t, Period{Month: time.January, Year: 1}, vm.Period())
}

func TestNavigate(t *testing.T) {
	vm := NewCurrent(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	be.Equal(t, NeedHistory, vm.Navigate(History))
	be.Equal(t, History, vm.Section())
	be.Equal(t, NeedBudget, vm.Navigate(Budget))
	be.Equal(t, NeedHome, vm.Navigate(Home))
}

func TestAfterLedgerChange(t *testing.T) {
	be.True(t, AfterLedgerChange.Has(NeedHome))
	be.True(t, AfterLedgerChange.Has(NeedHistory))
	be.False(t, AfterLedgerChange.Has(NeedBudget))
}

func TestPeriodDefaultDate(t *testing.T) {
	today := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	current := Period{Month: time.March, Year: 2024}
	be.Equal(t, "2024-03-15", current.DefaultDate(today).Format("2006-01-02"))

	past := Period{Month: time.January, Year: 2024}
	be.Equal(t, "2024-01-01", past.DefaultDate(today).Format("2006-01-02"))
}

func TestPeriodString(t *testing.T) {
	p := Period{Month: time.March, Year: 2024}
	be.Equal(t, "March 2024", p.String())
	be.Equal(t, 31, p.Days())
	be.Equal(t, 29, Period{Month: time.February, Year: 2024}.Days())
}
