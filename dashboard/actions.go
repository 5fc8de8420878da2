package dashboard

import (
	"errors"
	"fmt"
)

// Action names a user command the dashboard can dispatch.
type Action string

const (
	ActionCreateTransaction Action = "create-transaction"
	ActionDeleteTransaction Action = "delete-transaction"
	ActionEditTransaction   Action = "edit-transaction"
	ActionSaveBudget        Action = "save-budget"
	ActionShowProfile       Action = "show-profile"
	ActionLogout            Action = "logout"
)

// ErrEditUnsupported is returned by the edit action, which the backend
// supports but the dashboard does not implement yet.
var ErrEditUnsupported = errors.New("editing transactions is not supported")

// Target is the data an action is keyed by: the selected row or the input
// that triggered it.
type Target struct {
	TransactionID int64
	Value         string
}

// Dispatcher maps action names to handlers.
type Dispatcher[H any] struct {
	handlers map[Action]H
}

// NewDispatcher returns an empty dispatch table.
func NewDispatcher[H any]() *Dispatcher[H] {
	return &Dispatcher[H]{handlers: make(map[Action]H)}
}

// Register binds h to a, replacing any previous handler.
func (d *Dispatcher[H]) Register(a Action, h H) *Dispatcher[H] {
	d.handlers[a] = h
	return d
}

// Lookup returns the handler for a.
func (d *Dispatcher[H]) Lookup(a Action) (H, error) {
	h, ok := d.handlers[a]
	if !ok {
		var zero H
		return zero, fmt.Errorf("unknown action %q", a)
	}
	return h, nil
}
