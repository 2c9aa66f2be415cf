// Package result provides the two-variant outcome returned by every prompting
// operation: either the user cancelled, or the prompt completed with a value.
//
// Cancellation is a normal termination, not an error. Callers must branch on
// IsCancelled (or the ok flag from Value) before using the payload.
package result

import "fmt"

// Result is either Cancelled (no payload) or Completed(value).
// The zero value is a cancelled result.
type Result[V any] struct {
	value     V
	completed bool
}

// Cancelled returns a result recording that the user abandoned the prompt.
func Cancelled[V any]() Result[V] {
	return Result[V]{}
}

// Completed returns a result carrying the value the prompt produced.
func Completed[V any](value V) Result[V] {
	return Result[V]{value: value, completed: true}
}

// IsCancelled reports whether the prompt was cancelled.
func (r Result[V]) IsCancelled() bool {
	return !r.completed
}

// Value returns the payload and true for a completed result, or the zero
// value and false for a cancelled one.
func (r Result[V]) Value() (V, bool) {
	return r.value, r.completed
}

// String implements fmt.Stringer.
func (r Result[V]) String() string {
	if !r.completed {
		return "Cancelled"
	}
	return fmt.Sprintf("Completed(%v)", r.value)
}

// Map transforms the payload of a completed result. A cancelled result stays
// cancelled and fn is not called.
func Map[V, W any](r Result[V], fn func(V) W) Result[W] {
	if !r.completed {
		return Cancelled[W]()
	}
	return Completed(fn(r.value))
}
