package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/dashboard"
)

type keyMap struct {
	home              key.Binding
	history           key.Binding
	budget            key.Binding
	config            key.Binding
	profile           key.Binding
	newTransaction    key.Binding
	deleteTransaction key.Binding
	editTransaction   key.Binding
	suggestCategory   key.Binding
	setBudget         key.Binding
	selectPeriod      key.Binding
	nextPeriod        key.Binding
	previousPeriod    key.Binding
	logout            key.Binding
	retry             key.Binding
	escape            key.Binding
	fullHelp          key.Binding
	quit              key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.home,
		km.history,
		km.budget,
		km.newTransaction,
		km.selectPeriod,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.home,
			km.history,
			km.budget,
			km.config,
			km.profile,
			km.quit,
			km.fullHelp,
		},
		{
			km.newTransaction,
			km.deleteTransaction,
			km.editTransaction,
			km.suggestCategory,
			km.setBudget,
		},
		{
			km.nextPeriod,
			km.previousPeriod,
			km.selectPeriod,
			km.logout,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		history: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "history"),
		),
		budget: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "budget"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		newTransaction: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new transaction"),
		),
		deleteTransaction: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		editTransaction: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		suggestCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "suggest category"),
		),
		setBudget: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "set budget"),
		),
		selectPeriod: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "select month"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		previousPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
		retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// handleKeyPress handles global keys. The returned bool is false when the key
// belongs to the current state's component.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	log.Debug("key pressed", "key", msg.String(), "state", m.sessionState)

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit, true
	}

	// forms get every key except esc
	if isInputBlocked(m) {
		if key.Matches(msg, m.keys.escape) && m.sessionState != loginState {
			model, cmd := handleEscape(m)
			return model, cmd, true
		}
		return m, nil, false
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit, true
	}

	switch m.sessionState {
	case loading:
		return m, nil, true
	case errorState:
		if key.Matches(msg, m.keys.retry) {
			model, cmd := retry(m)
			return model, cmd, true
		}
		return m, nil, true
	}

	if key.Matches(msg, m.keys.escape) {
		model, cmd := handleEscape(m)
		return model, cmd, true
	}

	if model, cmd, ok := handleNavigationKeys(msg, m); ok {
		return model, cmd, true
	}

	if model, cmd, ok := handleActionKeys(msg, m); ok {
		return model, cmd, true
	}

	return m, nil, false
}

// isInputBlocked reports whether a form currently owns the keyboard.
func isInputBlocked(m *model) bool {
	switch m.sessionState {
	case loginState, insertTransaction, confirmDelete, editBudget, selectPeriod:
		return true
	}
	return false
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.home):
		model, cmd := navigateTo(m, dashboard.Home)
		return model, cmd, true

	case key.Matches(msg, m.keys.history):
		model, cmd := navigateTo(m, dashboard.History)
		return model, cmd, true

	case key.Matches(msg, m.keys.budget):
		model, cmd := navigateTo(m, dashboard.Budget)
		return model, cmd, true

	case key.Matches(msg, m.keys.nextPeriod):
		model, cmd := shiftPeriod(m, 1)
		return model, cmd, true

	case key.Matches(msg, m.keys.previousPeriod):
		model, cmd := shiftPeriod(m, -1)
		return model, cmd, true

	case key.Matches(msg, m.keys.selectPeriod):
		return m, m.showPeriodForm(), true

	case key.Matches(msg, m.keys.config):
		if m.sessionState == configView {
			m.showSection()
			return m, nil, true
		}
		m.history.SetFocus(false)
		m.configView.SetFocus(true)
		m.sessionState = configView
		return m, nil, true

	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	}

	return m, nil, false
}

func handleActionKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.newTransaction):
		return m, m.showTransactionForm(), true

	case key.Matches(msg, m.keys.profile):
		model, cmd := m.dispatch(dashboard.ActionShowProfile, dashboard.Target{})
		return model, cmd, true

	case key.Matches(msg, m.keys.logout):
		model, cmd := m.dispatch(dashboard.ActionLogout, dashboard.Target{})
		return model, cmd, true

	case key.Matches(msg, m.keys.setBudget):
		if m.sessionState != budgetState {
			return m, nil, false
		}
		return m, m.openBudgetForm(m.budget.InputValue()), true
	}

	if m.sessionState != historyState {
		return m, nil, false
	}

	row, ok := m.history.Selected()
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.deleteTransaction):
		return m, m.showDeleteConfirm(row), true

	case key.Matches(msg, m.keys.editTransaction):
		model, cmd := m.dispatch(dashboard.ActionEditTransaction, dashboard.Target{TransactionID: row.ID})
		return model, cmd, true

	case key.Matches(msg, m.keys.suggestCategory):
		return m, m.suggestCategory(row), true
	}

	return m, nil, false
}

// handleEscape closes the open form or panel, or returns to Home from
// another section.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState.overlay() {
		log.Debug("closing overlay", "state", m.sessionState)
		m.closeForms()
		m.showSection()
		return m, nil
	}

	if m.sessionState != homeState {
		return navigateTo(m, dashboard.Home)
	}

	return m, nil
}
