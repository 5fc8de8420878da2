package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
	"github.com/Rshep3087/fintui/session"
)

// Message types for different API responses.
type (
	homeMsg struct {
		data dashboard.HomeData
	}

	homeErrMsg struct {
		err error
	}

	historyMsg struct {
		ts []api.Transaction
	}

	budgetMsg struct {
		data dashboard.BudgetData
	}

	profileMsg struct {
		user *api.User
	}

	// fetchErrMsg is a failed fetch whose error is only logged.
	fetchErrMsg struct {
		key fetchKey
		err error
	}

	// authErrorMsg is sent whenever the backend rejects the session.
	authErrorMsg struct {
		err error
	}

	loginMsg struct {
		token string
	}

	loginErrMsg struct {
		err error
	}

	transactionCreatedMsg struct {
		t *api.Transaction
	}

	transactionDeletedMsg struct {
		id int64
	}

	budgetSavedMsg struct {
		budget *api.Budget
		period dashboard.Period
	}

	// actionErrMsg is a failed user action.
	actionErrMsg struct {
		action dashboard.Action
		err    error
	}
)

// guard turns a rejected session into authErrorMsg and anything else into
// the message built by fallback.
func guard(err error, fallback func(error) tea.Msg) tea.Msg {
	if errors.Is(err, api.ErrUnauthorized) {
		return authErrorMsg{err: err}
	}
	return fallback(err)
}

// API call functions.
func (m model) fetchHome(p dashboard.Period) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		data, err := dashboard.RefreshHome(context.Background(), backend, p)
		if err != nil {
			return guard(err, func(err error) tea.Msg { return homeErrMsg{err: err} })
		}
		return homeMsg{data: data}
	}
}

func (m model) fetchHistory() tea.Msg {
	ts, err := dashboard.RefreshHistory(context.Background(), m.backend)
	if err != nil {
		return guard(err, func(err error) tea.Msg { return fetchErrMsg{key: historyKey, err: err} })
	}
	return historyMsg{ts: ts}
}

func (m model) fetchBudget(p dashboard.Period) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		data, err := dashboard.RefreshBudget(context.Background(), backend, p)
		if err != nil {
			return guard(err, func(err error) tea.Msg { return fetchErrMsg{key: budgetKey, err: err} })
		}
		return budgetMsg{data: data}
	}
}

func (m model) fetchProfile() tea.Msg {
	u, err := m.backend.GetUser(context.Background())
	if err != nil {
		return guard(err, func(err error) tea.Msg { return fetchErrMsg{key: profileKey, err: err} })
	}
	return profileMsg{user: u}
}

// refresh returns the fetches r asks for, all for the current period.
func (m *model) refresh(r dashboard.Refresh) tea.Cmd {
	var cmds []tea.Cmd
	p := m.vm.Period()

	if r.Has(dashboard.NeedHome) {
		m.loadingState.unset(homeKey)
		cmds = append(cmds, m.fetchHome(p))
	}
	if r.Has(dashboard.NeedHistory) {
		m.loadingState.unset(historyKey)
		cmds = append(cmds, m.fetchHistory)
	}
	if r.Has(dashboard.NeedBudget) {
		m.loadingState.unset(budgetKey)
		cmds = append(cmds, m.fetchBudget(p))
	}

	if len(cmds) == 0 {
		return nil
	}

	if m.sessionState == homeState || m.sessionState == historyState || m.sessionState == budgetState {
		m.sessionState = loading
		cmds = append(cmds, m.loadingSpinner.Tick)
	}

	return tea.Batch(cmds...)
}

// finishLoading marks key as loaded and leaves the loading state once
// nothing else is pending.
func (m *model) finishLoading(key fetchKey) {
	m.loadingState.set(key)
	if m.sessionState == loading {
		m.sessionState = m.checkIfLoading()
	}
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *model) setError(msg string) {
	m.statusMsg = msg
	m.statusIsErr = true
}

// setToken points the client, and the backend when it is the client, at a
// new session.
func (m *model) setToken(token string) {
	if m.client == nil {
		return
	}

	_, backendIsClient := m.backend.(*api.Client)
	m.client = m.client.WithToken(token)
	if backendIsClient || m.backend == nil {
		m.backend = m.client
	}

	m.claims, _ = session.ParseClaims(token)
}

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()
	width, height := msg.Width-h, msg.Height-v-takenHeight

	m.home.SetSize(width, height)
	m.history.SetSize(width, height)
	m.budget.SetSize(width, height)
	m.configView.SetSize(width, height)

	m.help.Width = msg.Width

	for _, f := range []**huh.Form{&m.loginForm, &m.transactionForm, &m.deleteForm, &m.budgetForm, &m.periodForm} {
		if *f != nil {
			*f = (*f).WithWidth(width).WithHeight(height)
		}
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleHome(msg homeMsg) (tea.Model, tea.Cmd) {
	m.home.Apply(msg.data)
	m.homeLoaded = true
	if m.statusIsErr {
		m.setStatus("")
	}
	m.finishLoading(homeKey)
	return m, nil
}

// handleHomeErr shows why the summary could not be loaded. Before any Home
// data exists there is nothing to fall back to, so the error takes over the
// screen until the user retries.
func (m model) handleHomeErr(msg homeErrMsg) (tea.Model, tea.Cmd) {
	log.Error("home refresh failed", "error", msg.err)

	text := dashboard.HomeErrorMessage(msg.err)
	m.loadingState.set(homeKey)

	if !m.homeLoaded {
		m.errorMsg = text
		m.sessionState = errorState
		return m, nil
	}

	m.setError(text)
	m.finishLoading(homeKey)
	return m, nil
}

func (m model) handleHistory(msg historyMsg) (tea.Model, tea.Cmd) {
	m.history.SetTransactions(msg.ts)
	m.finishLoading(historyKey)
	return m, nil
}

func (m model) handleBudget(msg budgetMsg) (tea.Model, tea.Cmd) {
	m.budget.Apply(msg.data)
	m.finishLoading(budgetKey)
	return m, nil
}

func (m model) handleProfile(msg profileMsg) (tea.Model, tea.Cmd) {
	m.user = msg.user
	m.home.SetUser(msg.user)
	m.finishLoading(profileKey)
	return m, nil
}

func (m model) handleFetchErr(msg fetchErrMsg) (tea.Model, tea.Cmd) {
	log.Error("fetch failed", "fetch", msg.key, "error", msg.err)

	if msg.key == budgetKey {
		var apiErr *api.Error
		if errors.As(msg.err, &apiErr) {
			m.setError(fmt.Sprintf("Error loading budget: %s", apiErr.Detail))
		}
	}

	m.finishLoading(msg.key)
	return m, nil
}

// handleAuthError applies the session guard: the stored token is removed and
// the login form replaces whatever was on screen.
func (m model) handleAuthError(msg authErrorMsg) (tea.Model, tea.Cmd) {
	log.Warn("session rejected by backend", "error", msg.err)

	m.endSession()
	cmd := m.showLogin("")
	m.setError("Session expired. Please log in again.")
	return m, cmd
}

// endSession forgets the token and everything fetched with it, so the next
// login starts on an empty Home.
func (m *model) endSession() {
	if err := m.store.Clear(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	m.setToken("")

	m.user = nil
	m.homeLoaded = false
	m.draft = nil
	m.budgetInput = ""

	m.vm.Navigate(dashboard.Home)
	m.home.Reset()
	m.history.SetTransactions(nil)
	m.budget.Reset()
}

func (m model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	if err := m.store.Save(msg.token); err != nil {
		log.Error("failed to store session", "error", err)
	}
	m.setToken(msg.token)
	m.loginForm = nil
	m.setStatus("")

	m.homeLoaded = false
	m.loadingState = newLoadingState(homeKey, profileKey)
	m.sessionState = loading

	return m, tea.Batch(
		m.fetchHome(m.vm.Period()),
		m.fetchProfile,
		m.loadingSpinner.Tick,
	)
}

func (m model) handleLoginErr(msg loginErrMsg) (tea.Model, tea.Cmd) {
	log.Error("login failed", "error", msg.err)

	text := "Login failed. Please check your credentials."
	var apiErr *api.Error
	if errors.As(msg.err, &apiErr) && apiErr.Detail != "" {
		text = fmt.Sprintf("Login failed: %s", apiErr.Detail)
	} else if !errors.Is(msg.err, api.ErrUnauthorized) {
		text = fmt.Sprintf("Login failed: %v", msg.err)
	}

	cmd := m.showLogin("")
	m.setError(text)
	return m, cmd
}

func (m model) handleTransactionCreated(msg transactionCreatedMsg) (tea.Model, tea.Cmd) {
	log.Debug("transaction created", "id", msg.t.ID)
	m.draft = nil
	m.setStatus("Transaction saved successfully!")
	return m, m.refresh(dashboard.AfterLedgerChange)
}

func (m model) handleTransactionDeleted(msg transactionDeletedMsg) (tea.Model, tea.Cmd) {
	log.Debug("transaction deleted", "id", msg.id)
	m.setStatus(fmt.Sprintf("Transaction #%d deleted", msg.id))
	return m, m.refresh(dashboard.AfterLedgerChange)
}

func (m model) handleBudgetSaved(msg budgetSavedMsg) (tea.Model, tea.Cmd) {
	m.budgetInput = ""
	text := fmt.Sprintf("Budget for %s saved", msg.period)
	m.setStatus(text)
	m.budget.SetStatus(text)
	return m, m.refresh(dashboard.NeedBudget)
}

// handleActionErr reports a failed action. A failed save reopens its form
// with what the user entered.
func (m model) handleActionErr(msg actionErrMsg) (tea.Model, tea.Cmd) {
	log.Error("action failed", "action", msg.action, "error", msg.err)

	var cmd tea.Cmd
	switch msg.action {
	case dashboard.ActionCreateTransaction:
		if m.draft != nil {
			cmd = m.openTransactionForm()
		}
	case dashboard.ActionSaveBudget:
		cmd = m.openBudgetForm(m.budgetInput)
	}

	m.setError(msg.err.Error())
	return m, cmd
}
