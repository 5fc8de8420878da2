package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/dashboard"
)

// actionHandler runs a dashboard action against the model.
type actionHandler func(m *model, t dashboard.Target) (tea.Model, tea.Cmd)

func newActionTable() *dashboard.Dispatcher[actionHandler] {
	return dashboard.NewDispatcher[actionHandler]().
		Register(dashboard.ActionCreateTransaction, createTransactionAction).
		Register(dashboard.ActionDeleteTransaction, deleteTransactionAction).
		Register(dashboard.ActionEditTransaction, editTransactionAction).
		Register(dashboard.ActionSaveBudget, saveBudgetAction).
		Register(dashboard.ActionShowProfile, showProfileAction).
		Register(dashboard.ActionLogout, logoutAction)
}

// dispatch looks up and runs the handler for a.
func (m *model) dispatch(a dashboard.Action, t dashboard.Target) (tea.Model, tea.Cmd) {
	h, err := m.actions.Lookup(a)
	if err != nil {
		log.Error("dispatch failed", "error", err)
		m.setError(err.Error())
		return m, nil
	}

	log.Debug("dispatching action", "action", a, "target", t)
	return h(m, t)
}

// actionFailed wraps an action error, turning a rejected session into
// authErrorMsg.
func actionFailed(a dashboard.Action, err error) tea.Msg {
	return guard(err, func(err error) tea.Msg { return actionErrMsg{action: a, err: err} })
}

func createTransactionAction(m *model, _ dashboard.Target) (tea.Model, tea.Cmd) {
	if m.draft == nil {
		m.setError("no transaction to save")
		return m, nil
	}

	draft := *m.draft
	p := m.vm.Period()

	// rejected drafts go back to the form
	if _, err := draft.Validate(p); err != nil {
		cmd := m.openTransactionForm()
		m.setError(err.Error())
		return m, cmd
	}

	backend := m.backend
	return m, func() tea.Msg {
		ctx := context.Background()
		t, err := dashboard.CreateTransaction(ctx, backend, p, draft)
		if err != nil {
			return actionFailed(dashboard.ActionCreateTransaction, err)
		}
		return transactionCreatedMsg{t: t}
	}
}

func deleteTransactionAction(m *model, t dashboard.Target) (tea.Model, tea.Cmd) {
	backend := m.backend
	id := t.TransactionID

	return m, func() tea.Msg {
		ctx := context.Background()
		if err := dashboard.DeleteTransaction(ctx, backend, id); err != nil {
			return actionFailed(dashboard.ActionDeleteTransaction, err)
		}
		return transactionDeletedMsg{id: id}
	}
}

func editTransactionAction(m *model, t dashboard.Target) (tea.Model, tea.Cmd) {
	log.Warn("edit requested", "id", t.TransactionID, "error", dashboard.ErrEditUnsupported)
	m.setError(dashboard.ErrEditUnsupported.Error())
	return m, nil
}

func saveBudgetAction(m *model, t dashboard.Target) (tea.Model, tea.Cmd) {
	m.budgetInput = t.Value
	if _, err := dashboard.ParseBudgetAmount(t.Value); err != nil {
		cmd := m.openBudgetForm(t.Value)
		m.setError(err.Error())
		m.budget.SetStatus(err.Error())
		return m, cmd
	}

	backend := m.backend
	p := m.vm.Period()
	input := t.Value

	return m, func() tea.Msg {
		ctx := context.Background()
		b, err := dashboard.SaveBudget(ctx, backend, p, input)
		if err != nil {
			return actionFailed(dashboard.ActionSaveBudget, err)
		}
		return budgetSavedMsg{budget: b, period: p}
	}
}

func showProfileAction(m *model, _ dashboard.Target) (tea.Model, tea.Cmd) {
	if m.sessionState == profileState {
		m.showSection()
		return m, nil
	}

	m.history.SetFocus(false)
	m.sessionState = profileState

	if m.user == nil {
		return m, m.fetchProfile
	}
	return m, nil
}

func logoutAction(m *model, _ dashboard.Target) (tea.Model, tea.Cmd) {
	m.endSession()
	return m, m.showLogin("Logged out.")
}
