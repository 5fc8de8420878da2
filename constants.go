package main

import "time"

// Layout constants
const (
	standardMargin = 2
	takenHeight    = 6
)

// AI recommendation constants
const (
	aiRecommendationTimeout = 30 * time.Second
	anthropicMaxTokens      = 256
	maxConfidenceScore      = 100
)

// Session states
type sessionState int

const (
	homeState sessionState = iota
	historyState
	budgetState
	loading
	loginState
	insertTransaction
	confirmDelete
	editBudget
	selectPeriod
	profileState
	configView
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case homeState:
		return "home"
	case historyState:
		return "history"
	case budgetState:
		return "budget"
	case loading:
		return "loading"
	case loginState:
		return "login"
	case insertTransaction:
		return "new transaction"
	case confirmDelete:
		return "delete transaction"
	case editBudget:
		return "set budget"
	case selectPeriod:
		return "select period"
	case profileState:
		return "profile"
	case configView:
		return "configuration"
	case errorState:
		return "error"
	}

	return "unknown"
}

// overlay reports whether the state is a form or panel shown on top of a
// section, which esc closes.
func (ss sessionState) overlay() bool {
	switch ss {
	case insertTransaction, confirmDelete, editBudget, selectPeriod, profileState, configView:
		return true
	}
	return false
}
