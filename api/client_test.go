package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "test-token")
	be.NilErr(t, err)
	return c
}

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "empty falls back to dev origin", raw: "", expected: DefaultBaseURL},
		{name: "trailing slash trimmed", raw: "https://finance.example.com/", expected: "https://finance.example.com"},
		{name: "path prefix kept", raw: "https://example.com/app", expected: "https://example.com/app"},
		{name: "bad scheme", raw: "ftp://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ResolveBaseURL(tt.raw)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.expected, u.String())
		})
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"income": 1000, "expenses": 250.5, "balance": 749.5}`))
	})

	s, err := c.GetSummary(context.Background(), 3, 2024)
	be.NilErr(t, err)
	be.Equal(t, "Bearer test-token", gotAuth)
	be.Equal(t, "month=3&year=2024", gotQuery)
	be.Equal(t, 749.5, s.Balance)
}

func TestEveryEndpointMapsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	})
	ctx := context.Background()

	calls := map[string]func() error{
		"summary": func() error { _, err := c.GetSummary(ctx, 1, 2024); return err },
		"yearly expenses": func() error {
			_, err := c.GetYearlyExpenses(ctx, 2024)
			return err
		},
		"category expenses": func() error {
			_, err := c.GetCategoryExpenses(ctx, 1, 2024)
			return err
		},
		"daily spending": func() error {
			_, err := c.GetDailySpending(ctx, 1, 2024)
			return err
		},
		"trend":       func() error { _, err := c.GetYearlySpendingTrend(ctx); return err },
		"get budget":  func() error { _, err := c.GetBudget(ctx, 1, 2024); return err },
		"save budget": func() error { _, err := c.SaveBudget(ctx, Budget{Month: 1, Year: 2024, Amount: 5}); return err },
		"list ledger": func() error { _, err := c.GetTransactions(ctx); return err },
		"create transaction": func() error {
			_, err := c.CreateTransaction(ctx, Transaction{Name: "x", Expenses: 1})
			return err
		},
		"delete transaction": func() error { return c.DeleteTransaction(ctx, 7) },
		"profile":            func() error { _, err := c.GetUser(ctx); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			be.True(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestErrorDetailIsDecoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "database is locked"}`))
	})

	_, err := c.GetSummary(context.Background(), 1, 2024)

	var apiErr *Error
	be.True(t, errors.As(err, &apiErr))
	be.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	be.Equal(t, "database is locked", apiErr.Detail)
}

func TestGetBudgetAbsent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	b, err := c.GetBudget(context.Background(), 2, 2024)
	be.NilErr(t, err)
	be.True(t, b == nil)
}

func TestCreateTransactionBody(t *testing.T) {
	var got Transaction
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/ledger/", r.URL.Path)
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&got))
		got.ID = 42
		_ = json.NewEncoder(w).Encode(got)
	})

	created, err := c.CreateTransaction(context.Background(), Transaction{
		Date:     NewDate(2024, time.March, 5),
		Name:     "Groceries",
		Category: "Food",
		Expenses: 12.5,
	})
	be.NilErr(t, err)
	be.Equal(t, int64(42), created.ID)
	be.Equal(t, "2024-03-05", got.Date.String())
	be.Equal(t, 12.5, got.Expenses)
}

func TestDeleteTransactionPath(t *testing.T) {
	var path, method string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	be.NilErr(t, c.DeleteTransaction(context.Background(), 17))
	be.Equal(t, "/ledger/17", path)
	be.Equal(t, http.MethodDelete, method)
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.NilErr(t, r.ParseForm())
		be.Equal(t, "alice", r.PostForm.Get("username"))
		be.Equal(t, "", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"access_token": "abc", "token_type": "bearer"}`))
	})

	tok, err := c.WithToken("").Login(context.Background(), "alice", "secret")
	be.NilErr(t, err)
	be.Equal(t, "abc", tok.AccessToken)
}

func TestDateUnmarshalDatetime(t *testing.T) {
	var d DailySpending
	be.NilErr(t, json.Unmarshal([]byte(`{"date": "2024-03-09T00:00:00", "amount": 3}`), &d))
	be.Equal(t, 9, d.Date.Day())
}
