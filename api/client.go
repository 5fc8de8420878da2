// Package api is a client for the personal-finance backend: ledger records,
// period summaries, chart series and budget settings.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the backend's local development origin.
const DefaultBaseURL = "http://127.0.0.1:8000"

// ErrUnauthorized is returned by every call the backend rejects with 401.
var ErrUnauthorized = errors.New("session expired")

// Error is a non-success response from the backend.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the backend on behalf of one session.
type Client struct {
	// HTTP is the underlying client; its Transport may be wrapped by callers.
	HTTP    *http.Client
	baseURL *url.URL
	token   string
}

// NewClient creates a client for baseURL that authenticates with token.
// An empty baseURL resolves to DefaultBaseURL.
func NewClient(baseURL, token string) (*Client, error) {
	u, err := ResolveBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		HTTP:    &http.Client{Transport: http.DefaultTransport},
		baseURL: u,
		token:   token,
	}, nil
}

// ResolveBaseURL parses the configured base URL, falling back to the local
// development origin when none is configured.
func ResolveBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	return u, nil
}

// WithToken returns a copy of the client using a different bearer token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token returns the bearer token the client sends.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the resolved backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), r)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do sends req and decodes a JSON response into out. out may be nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.URL.Path, err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(b, &payload) == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			apiErr.Detail = s
		} else {
			// validation errors come back as a list of objects
			apiErr.Detail = string(payload.Detail)
		}
	}

	return apiErr
}

func periodQuery(month, year int) url.Values {
	q := url.Values{}
	q.Set("month", strconv.Itoa(month))
	q.Set("year", strconv.Itoa(year))
	return q
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/token", nil), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var tok Token
	if err := c.do(req, &tok); err != nil {
		return nil, err
	}

	if tok.AccessToken == "" {
		return nil, errors.New("login response did not contain an access token")
	}

	return &tok, nil
}

// GetSummary returns income, expenses and balance for the period.
func (c *Client) GetSummary(ctx context.Context, month, year int) (*Summary, error) {
	var s Summary
	if err := c.get(ctx, "/api/summary", periodQuery(month, year), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetYearlyExpenses returns one point per month of year.
func (c *Client) GetYearlyExpenses(ctx context.Context, year int) ([]MonthlyExpense, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))

	var out []MonthlyExpense
	if err := c.get(ctx, "/api/yearly-expenses", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategoryExpenses returns the period's spending grouped by category.
func (c *Client) GetCategoryExpenses(ctx context.Context, month, year int) ([]CategoryExpense, error) {
	var out []CategoryExpense
	if err := c.get(ctx, "/api/category-expenses", periodQuery(month, year), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDailySpending returns the period's spending per day.
func (c *Client) GetDailySpending(ctx context.Context, month, year int) ([]DailySpending, error) {
	var out []DailySpending
	if err := c.get(ctx, "/api/daily-spending", periodQuery(month, year), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetYearlySpendingTrend returns total spending per year, oldest first.
func (c *Client) GetYearlySpendingTrend(ctx context.Context) ([]YearlyTrend, error) {
	var out []YearlyTrend
	if err := c.get(ctx, "/api/yearly-spending-trend", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBudget returns the budget for the period, or nil when none is set.
func (c *Client) GetBudget(ctx context.Context, month, year int) (*Budget, error) {
	var b *Budget
	if err := c.get(ctx, "/api/budget", periodQuery(month, year), &b); err != nil {
		return nil, err
	}
	return b, nil
}

// SaveBudget creates or replaces the budget for the period.
func (c *Client) SaveBudget(ctx context.Context, b Budget) (*Budget, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/budget", nil, b)
	if err != nil {
		return nil, err
	}

	var saved Budget
	if err := c.do(req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetTransactions returns every ledger record of the user.
func (c *Client) GetTransactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	if err := c.get(ctx, "/ledger/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction posts a new ledger record.
func (c *Client) CreateTransaction(ctx context.Context, t Transaction) (*Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/ledger/", nil, t)
	if err != nil {
		return nil, err
	}

	var created Transaction
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteTransaction removes the ledger record with id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/ledger/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// GetUser returns the profile of the token's owner.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/api/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
