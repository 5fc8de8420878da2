package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if _, cmd, handled := handleKeyPress(msg, &m); handled {
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case homeMsg:
		return m.handleHome(msg)

	case homeErrMsg:
		return m.handleHomeErr(msg)

	case historyMsg:
		return m.handleHistory(msg)

	case budgetMsg:
		return m.handleBudget(msg)

	case profileMsg:
		return m.handleProfile(msg)

	case fetchErrMsg:
		return m.handleFetchErr(msg)

	case authErrorMsg:
		return m.handleAuthError(msg)

	case loginMsg:
		return m.handleLogin(msg)

	case loginErrMsg:
		return m.handleLoginErr(msg)

	case transactionCreatedMsg:
		return m.handleTransactionCreated(msg)

	case transactionDeletedMsg:
		return m.handleTransactionDeleted(msg)

	case budgetSavedMsg:
		return m.handleBudgetSaved(msg)

	case actionErrMsg:
		return m.handleActionErr(msg)

	case AIRecommendationMsg:
		return m.handleAIRecommendation(msg)
	}

	return m.updateState(msg)
}

// updateState hands msg to the component of the current state.
func (m model) updateState(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.sessionState {
	case loginState:
		_, cmd = updateLoginForm(msg, &m)

	case insertTransaction:
		_, cmd = updateInsertTransaction(msg, &m)

	case confirmDelete:
		_, cmd = updateDeleteConfirm(msg, &m)

	case editBudget:
		_, cmd = updateBudgetForm(msg, &m)

	case selectPeriod:
		_, cmd = updatePeriodForm(msg, &m)

	case homeState:
		m.home, cmd = m.home.Update(msg)

	case historyState:
		m.history, cmd = m.history.Update(msg)

	case budgetState:
		m.budget, cmd = m.budget.Update(msg)

	case configView:
		m.configView, cmd = m.configView.Update(msg)

	default:
		log.Debug("message ignored", "state", m.sessionState)
	}

	return m, cmd
}
