package fresh

import (
	"time"

	"github.com/freshfn/fresh/internal"
)

type Throttled[A any] struct {
	throttler *internal.Throttler
}

// NewThrottle returns a trigger that fires at most once per interval. The
// leading edge fires immediately; by default the trailing edge fires once
// more with the latest argument if calls arrived inside the window
// (WithTrailing(false) disables that).
//
// Same lifecycle rules as NewDebounce: one instance per logical operation.
func NewThrottle[A any](interval time.Duration, fn func(A), opts ...Option) *Throttled[A] {
	cfg := newConfig(opts)

	t := &Throttled[A]{internal.GetRuntime().NewThrottler(interval, cfg.trailing, cfg.clock)}
	t.Register(fn)
	return t
}

// Register replaces the callback without touching an armed trailing timer.
func (t *Throttled[A]) Register(fn func(A)) {
	t.throttler.Register(func(arg any) any {
		fn(as[A](arg))
		return nil
	})
}

func (t *Throttled[A]) Trigger(arg A) {
	t.throttler.Trigger(arg)
}

// Cancel drops the pending trailing invocation, if any.
func (t *Throttled[A]) Cancel() {
	t.throttler.Cancel()
}

func (t *Throttled[A]) Dispose() {
	t.throttler.Dispose()
}
