// Package fresh keeps asynchronous work honest when the state it was
// started for has since changed. It provides three small pieces: a
// latest-callback cell (stable trigger, always-fresh callback), debounce and
// throttle schedulers built on that cell, and a keyed request coordinator
// that never commits a result for a superseded key.
package fresh

import "github.com/freshfn/fresh/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// OnCleanup registers a function to be called when the current owner is disposed.
func OnCleanup(fn func()) {
	internal.GetRuntime().OnCleanup(fn)
}
