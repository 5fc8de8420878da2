package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/Rshep3087/fintui/api"
	"github.com/carlmjohnson/be"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
		want    api.Transaction
	}{
		{
			name:  "expense",
			draft: Draft{Kind: Expense, Date: "2024-03-10", Description: " Lunch ", Category: "Food", Amount: "12.50"},
			want: api.Transaction{
				Date: api.NewDate(2024, 3, 10), Name: "Lunch", Description: "Lunch",
				Category: "Food", Expenses: 12.5,
			},
		},
		{
			name:  "income ignores category",
			draft: Draft{Kind: Income, Date: "2024-03-01", Category: "Food", Amount: "2000"},
			want: api.Transaction{
				Date: api.NewDate(2024, 3, 1), Name: "Income", Category: "Income", Salary: 2000,
			},
		},
		{name: "expense without description", draft: Draft{Kind: Expense, Date: "2024-03-10", Category: "Food", Amount: "1"}, wantErr: true},
		{name: "expense without category", draft: Draft{Kind: Expense, Date: "2024-03-10", Description: "x", Amount: "1"}, wantErr: true},
		{name: "zero amount", draft: Draft{Kind: Income, Date: "2024-03-10", Amount: "0"}, wantErr: true},
		{name: "negative amount", draft: Draft{Kind: Income, Date: "2024-03-10", Amount: "-4"}, wantErr: true},
		{name: "bad date", draft: Draft{Kind: Income, Date: "10/03/2024", Amount: "4"}, wantErr: true},
		{name: "unknown kind", draft: Draft{Kind: "Transfer", Date: "2024-03-10", Amount: "4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.draft.Validate(march2024)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.want.Date.String(), got.Date.String())
			be.Equal(t, tt.want.Name, got.Name)
			be.Equal(t, tt.want.Category, got.Category)
			be.Equal(t, tt.want.Salary, got.Salary)
			be.Equal(t, tt.want.Expenses, got.Expenses)
		})
	}
}

func TestCreateTransactionOutsidePeriod(t *testing.T) {
	f := &fakeBackend{}
	d := Draft{Kind: Expense, Date: "2024-04-05", Description: "Taxi", Category: "Transport", Amount: "20"}

	_, err := CreateTransaction(context.Background(), f, march2024, d)
	be.True(t, errors.Is(err, ErrOutsidePeriod))
	be.Equal(t, "Please select a date in March 2024", err.Error())
	be.Equal(t, 0, f.calls)
}

func TestCreateTransaction(t *testing.T) {
	f := &fakeBackend{}
	d := Draft{Kind: Expense, Date: "2024-03-31", Description: "Taxi", Category: "Transport", Amount: "20"}

	created, err := CreateTransaction(context.Background(), f, march2024, d)
	be.NilErr(t, err)
	be.Equal(t, int64(1), created.ID)
	be.Equal(t, 1, len(f.created))
	be.Equal(t, "Transport", f.created[0].Category)
}

func TestDeleteTransaction(t *testing.T) {
	f := &fakeBackend{}
	be.NilErr(t, DeleteTransaction(context.Background(), f, 42))
	be.AllEqual(t, []int64{42}, f.deleted)
}

func TestParseBudgetAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "500", want: 500},
		{input: " 12.75 ", want: 12.75},
		{input: "0", want: 0},
		{input: "-5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "NaN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBudgetAmount(tt.input)
			if tt.wantErr {
				be.True(t, errors.Is(err, ErrInvalidBudget))
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.want, got)
		})
	}
}

func TestSaveBudgetRejectsInvalidInput(t *testing.T) {
	f := &fakeBackend{}

	for _, input := range []string{"-5", "abc"} {
		_, err := SaveBudget(context.Background(), f, march2024, input)
		be.True(t, errors.Is(err, ErrInvalidBudget))
	}
	be.Equal(t, 0, f.calls)

	saved, err := SaveBudget(context.Background(), f, march2024, "500")
	be.NilErr(t, err)
	be.Equal(t, 500.0, saved.Amount)
	be.Equal(t, 3, f.saved[0].Month)
	be.Equal(t, 2024, f.saved[0].Year)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher[func(Target) error]()
	var got int64
	d.Register(ActionDeleteTransaction, func(tg Target) error {
		got = tg.TransactionID
		return nil
	}).Register(ActionEditTransaction, func(Target) error {
		return ErrEditUnsupported
	})

	h, err := d.Lookup(ActionDeleteTransaction)
	be.NilErr(t, err)
	be.NilErr(t, h(Target{TransactionID: 7}))
	be.Equal(t, int64(7), got)

	h, err = d.Lookup(ActionEditTransaction)
	be.NilErr(t, err)
	be.True(t, errors.Is(h(Target{}), ErrEditUnsupported))

	_, err = d.Lookup("transfer")
	be.Nonzero(t, err)
}

func TestFormatAmount(t *testing.T) {
	be.Equal(t, "$0.10", FormatAmount(0.1, "usd"))
	be.Equal(t, "-$5.00", FormatSigned(5, false, "USD"))
	be.True(t, ValidCurrency("INR"))
	be.False(t, ValidCurrency("XYZ"))
}
