package main

import (
	"maps"
	"slices"
)

// fetchKey names one of the fetches a screen waits for.
type fetchKey string

const (
	homeKey    fetchKey = "home"
	historyKey fetchKey = "history"
	budgetKey  fetchKey = "budget"
	profileKey fetchKey = "profile"
)

// loadingState tracks which fetches have completed since the last (re)load.
type loadingState map[fetchKey]bool

func newLoadingState(keys ...fetchKey) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

func (l loadingState) set(key fetchKey) {
	l[key] = true
}

// unset marks key as pending again, tracking it if it was not yet.
func (l loadingState) unset(key fetchKey) {
	l[key] = false
}

// allLoaded reports whether nothing is pending, otherwise the first pending
// key in name order.
func (l loadingState) allLoaded() (bool, fetchKey) {
	for _, k := range slices.Sorted(maps.Keys(l)) {
		if !l[k] {
			return false, k
		}
	}
	return true, ""
}
