package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Rshep3087/fintui/dashboard"
)

func (m *model) showDeleteConfirm(row dashboard.LedgerRow) tea.Cmd {
	m.pendingDelete = row

	m.deleteForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Delete this transaction?").
				Description(fmt.Sprintf("%s  %s  %s", row.Date, row.Description, row.Amount)).
				Affirmative("Delete").
				Negative("Cancel"),
		),
	)

	m.history.SetFocus(false)
	m.sessionState = confirmDelete
	return m.deleteForm.Init()
}

func updateDeleteConfirm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.deleteForm = f
	}

	switch m.deleteForm.State {
	case huh.StateCompleted:
		confirmed := m.deleteForm.GetBool("confirm")
		m.deleteForm = nil
		m.showSection()
		if !confirmed {
			return m, nil
		}
		return m.dispatch(dashboard.ActionDeleteTransaction, dashboard.Target{TransactionID: m.pendingDelete.ID})

	case huh.StateAborted:
		m.deleteForm = nil
		m.showSection()
		return m, nil
	}

	return m, cmd
}

// openBudgetForm shows the budget input prefilled with value.
func (m *model) openBudgetForm(value string) tea.Cmd {
	m.budgetForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Budget for %s", m.vm.Period())).
				Placeholder("0.00").
				Value(ptr(value)).
				Validate(func(s string) error {
					_, err := dashboard.ParseBudgetAmount(s)
					return err
				}),
		),
	)

	m.sessionState = editBudget
	return m.budgetForm.Init()
}

func updateBudgetForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.budgetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.budgetForm = f
	}

	switch m.budgetForm.State {
	case huh.StateCompleted:
		amount := m.budgetForm.GetString("amount")
		m.budgetForm = nil
		m.showSection()
		return m.dispatch(dashboard.ActionSaveBudget, dashboard.Target{Value: amount})

	case huh.StateAborted:
		m.budgetForm = nil
		m.showSection()
		return m, nil
	}

	return m, cmd
}

func ptr[T any](v T) *T { return &v }
