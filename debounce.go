package fresh

import (
	"time"

	"github.com/freshfn/fresh/internal"
)

type Debounced[A any] struct {
	debouncer *internal.Debouncer
}

// NewDebounce returns a trigger that collapses bursts of calls: each Trigger
// restarts the delay window, and only the last call within delay of silence
// invokes the callback, with that call's argument. The callback read happens
// at fire time, so Register keeps even an armed invocation fresh.
//
// Create exactly one Debounced per logical operation, not one per update
// cycle. Changing the delay means Dispose and recreate.
func NewDebounce[A any](delay time.Duration, fn func(A), opts ...Option) *Debounced[A] {
	cfg := newConfig(opts)

	d := &Debounced[A]{internal.GetRuntime().NewDebouncer(delay, cfg.clock)}
	d.Register(fn)
	return d
}

// Register replaces the callback without touching an armed timer.
func (d *Debounced[A]) Register(fn func(A)) {
	d.debouncer.Register(func(arg any) any {
		fn(as[A](arg))
		return nil
	})
}

func (d *Debounced[A]) Trigger(arg A) {
	d.debouncer.Trigger(arg)
}

// Cancel drops the pending invocation, if any. Required on scope teardown
// when the Debounced was created outside an owner.
func (d *Debounced[A]) Cancel() {
	d.debouncer.Cancel()
}

// Flush fires the pending invocation immediately instead of waiting out the
// remaining delay.
func (d *Debounced[A]) Flush() {
	d.debouncer.Flush()
}

func (d *Debounced[A]) Dispose() {
	d.debouncer.Dispose()
}
