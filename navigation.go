package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/fintui/dashboard"
)

// periodSelection is bound to the fields of the period form.
type periodSelection struct {
	Month int
	Year  string
}

// navigateTo makes s the visible section and refreshes it.
func navigateTo(m *model, s dashboard.Section) (tea.Model, tea.Cmd) {
	log.Debug("navigating", "section", s)

	r := m.vm.Navigate(s)
	m.showSection()
	return m, m.refresh(r)
}

// shiftPeriod moves the selected period by months and refreshes the visible
// section.
func shiftPeriod(m *model, months int) (tea.Model, tea.Cmd) {
	r, err := m.vm.Shift(months)
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}

	log.Debug("period changed", "period", m.vm.Period())
	return m, m.refresh(r)
}

// retry reloads Home after it failed before ever showing data.
func retry(m *model) (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	m.vm.Navigate(dashboard.Home)
	m.loadingState.unset(homeKey)
	m.sessionState = loading

	return m, tea.Batch(m.fetchHome(m.vm.Period()), m.loadingSpinner.Tick)
}

// showSection returns to the state of the visible section.
func (m *model) showSection() {
	m.sessionState = sectionState(m.vm.Section())
	m.history.SetFocus(m.sessionState == historyState)
	m.configView.SetFocus(false)
}

// closeForms drops every overlay form and the unsaved draft.
func (m *model) closeForms() {
	m.draft = nil
	m.transactionForm = nil
	m.deleteForm = nil
	m.budgetForm = nil
	m.periodForm = nil
}

func validateYear(s string) error {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("year must be a number")
	}
	if year < 1 {
		return errors.New("year must be positive")
	}
	return nil
}

func (m *model) showPeriodForm() tea.Cmd {
	p := m.vm.Period()
	m.period = &periodSelection{Month: p.MonthNumber(), Year: strconv.Itoa(p.Year)}

	months := make([]huh.Option[int], 0, 12)
	for i := 1; i <= 12; i++ {
		months = append(months, huh.NewOption(time.Month(i).String(), i))
	}

	m.periodForm = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Month").
				Options(months...).
				Value(&m.period.Month),

			huh.NewInput().
				Title("Year").
				Value(&m.period.Year).
				Validate(validateYear),
		),
	)

	m.history.SetFocus(false)
	m.sessionState = selectPeriod
	return m.periodForm.Init()
}

func updatePeriodForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.periodForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.periodForm = f
	}

	switch m.periodForm.State {
	case huh.StateCompleted:
		year, _ := strconv.Atoi(strings.TrimSpace(m.period.Year))
		r, err := m.vm.SetPeriod(m.period.Month, year)
		m.periodForm = nil
		m.showSection()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		return m, m.refresh(r)

	case huh.StateAborted:
		m.periodForm = nil
		m.showSection()
		return m, nil
	}

	return m, cmd
}
