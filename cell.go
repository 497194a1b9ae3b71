package fresh

import "github.com/freshfn/fresh/internal"

type Cell[A, R any] struct {
	cell *internal.Cell
}

// NewCell creates a latest-callback cell: one stable handle whose Trigger
// always invokes the most recently registered callback. Hand the *Cell (or a
// method value taken from it) to memoized consumers and timers; swap the
// callback with Register as often as the owning scope updates.
//
// Created under the current owner, if any, and goes dead when that owner is
// disposed.
func NewCell[A, R any](fn func(A) R) *Cell[A, R] {
	c := &Cell[A, R]{internal.GetRuntime().NewCell()}
	c.Register(fn)
	return c
}

// Register replaces the held callback. Call it on every update cycle of the
// owning scope, even if the callback looks identical, so captured variables
// stay fresh. Forgetting to is a contract violation that produces stale
// calls, not an error.
func (c *Cell[A, R]) Register(fn func(A) R) {
	c.cell.Register(func(arg any) any {
		return fn(as[A](arg))
	})
}

// Trigger invokes the callback registered most recently and returns its
// result. After the owning scope is torn down it is a no-op returning the
// zero value.
func (c *Cell[A, R]) Trigger(arg A) R {
	return as[R](c.cell.Invoke(arg))
}

func (c *Cell[A, R]) Live() bool {
	return c.cell.Live()
}

func (c *Cell[A, R]) Dispose() {
	c.cell.Dispose()
}
