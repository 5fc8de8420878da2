package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewLoadingState(t *testing.T) {
	tests := []struct {
		name string
		keys []fetchKey
	}{
		{name: "no keys", keys: []fetchKey{}},
		{name: "startup", keys: []fetchKey{homeKey, profileKey}},
		{name: "every section", keys: []fetchKey{homeKey, historyKey, budgetKey, profileKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)

			for _, key := range tt.keys {
				value, exists := ls[key]
				be.True(t, exists)
				be.False(t, value)
			}
			be.Equal(t, len(tt.keys), len(ls))
		})
	}
}

func TestLoadingStateSetUnset(t *testing.T) {
	ls := newLoadingState(homeKey, budgetKey)

	ls.set(homeKey)
	be.True(t, ls[homeKey])
	be.False(t, ls[budgetKey])

	ls.set(budgetKey)
	ls.unset(homeKey)
	be.False(t, ls[homeKey])
	be.True(t, ls[budgetKey])

	// unset adds keys that were never tracked
	ls.unset(historyKey)
	_, exists := ls[historyKey]
	be.True(t, exists)
}

func TestLoadingStateAllLoaded(t *testing.T) {
	tests := []struct {
		name         string
		keys         []fetchKey
		setKeys      []fetchKey
		expectLoaded bool
		pending      fetchKey
	}{
		{
			name:         "nothing tracked",
			expectLoaded: true,
		},
		{
			name:    "one pending",
			keys:    []fetchKey{homeKey, profileKey},
			setKeys: []fetchKey{profileKey},
			pending: homeKey,
		},
		{
			name:    "several pending",
			keys:    []fetchKey{profileKey, historyKey, budgetKey},
			pending: budgetKey,
		},
		{
			name:         "all loaded",
			keys:         []fetchKey{homeKey, historyKey, budgetKey},
			setKeys:      []fetchKey{homeKey, historyKey, budgetKey},
			expectLoaded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newLoadingState(tt.keys...)
			for _, key := range tt.setKeys {
				ls.set(key)
			}

			loaded, pending := ls.allLoaded()
			be.Equal(t, tt.expectLoaded, loaded)
			be.Equal(t, tt.pending, pending)
		})
	}
}
