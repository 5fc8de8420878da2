package dashboard

import (
	"errors"

	"github.com/Rshep3087/fintui/api"
)

// Result is the outcome of one best-effort fetch.
type Result[T any] struct {
	Value T
	Err   error
}

// Capture wraps the return values of a fetch.
func Capture[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// unauthorized reports whether any of errs is a rejected session, which must
// win over the best-effort policy.
func unauthorized(errs ...error) bool {
	for _, err := range errs {
		if errors.Is(err, api.ErrUnauthorized) {
			return true
		}
	}
	return false
}
