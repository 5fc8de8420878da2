package main

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
)

// newTransactionForm builds the new transaction form. Every field is bound to
// draft, and dates outside p are rejected while typing.
func newTransactionForm(draft *dashboard.Draft, p dashboard.Period) *huh.Form {
	categoryOpts := make([]huh.Option[string], len(dashboard.ExpenseCategories))
	for i, c := range dashboard.ExpenseCategories {
		categoryOpts[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[dashboard.Kind]().
				Title("Type").
				Description("Is this money coming in or going out?").
				Options(
					huh.NewOption("Expense", dashboard.Expense),
					huh.NewOption("Income", dashboard.Income),
				).
				Value(&draft.Kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("Transaction date (YYYY-MM-DD)").
				Placeholder("YYYY-MM-DD").
				Value(&draft.Date).
				Validate(func(s string) error {
					d, err := api.ParseDate(s)
					if err != nil {
						return err
					}
					if !p.Contains(d.Time) {
						return &dashboard.PeriodMismatchError{Period: p}
					}
					return nil
				}),

			huh.NewInput().
				Title("Description").
				Placeholder("What was it for?").
				Value(&draft.Description).
				Validate(func(s string) error {
					if draft.Kind == dashboard.Expense && strings.TrimSpace(s) == "" {
						return errors.New("description is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&draft.Amount).
				Validate(func(s string) error {
					_, err := dashboard.ParseAmount(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&draft.Category),
		).WithHideFunc(func() bool {
			return draft.Kind == dashboard.Income
		}),
	)
}

func (m *model) showTransactionForm() tea.Cmd {
	m.draft = &dashboard.Draft{
		Kind:     dashboard.Expense,
		Date:     m.vm.Period().DefaultDate(m.now()).Format(api.DateLayout),
		Category: dashboard.ExpenseCategories[0],
	}
	return m.openTransactionForm()
}

// openTransactionForm shows the form over the current draft.
func (m *model) openTransactionForm() tea.Cmd {
	m.transactionForm = newTransactionForm(m.draft, m.vm.Period())

	m.history.SetFocus(false)
	m.sessionState = insertTransaction
	return tea.Batch(m.transactionForm.Init(), tea.WindowSize())
}

func updateInsertTransaction(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.transactionForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.transactionForm = f
	} else {
		log.Debug("transaction form did not return a form")
		return m, nil
	}

	switch m.transactionForm.State {
	case huh.StateCompleted:
		m.transactionForm = nil
		m.showSection()
		return m.dispatch(dashboard.ActionCreateTransaction, dashboard.Target{})

	case huh.StateAborted:
		m.transactionForm = nil
		m.draft = nil
		m.showSection()
		return m, nil
	}

	return m, cmd
}
