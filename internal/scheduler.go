package internal

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer collapses bursts of Trigger calls into one invocation of the
// freshest registered callback, fired after delay of silence with the
// arguments of the last call.
type Debouncer struct {
	mu sync.Mutex

	cell  *Cell
	clock clock.Clock
	delay time.Duration

	timer   *clock.Timer
	pending any
	armed   bool

	// bumped on every arming so a timer that was already due while Trigger
	// re-armed wakes up stale and backs off
	gen uint64
}

func (r *Runtime) NewDebouncer(delay time.Duration, clk clock.Clock) *Debouncer {
	if clk == nil {
		clk = r.Clock()
	}

	d := &Debouncer{
		cell:  r.NewCell(),
		clock: clk,
		delay: delay,
	}
	r.OnCleanup(d.Dispose)

	return d
}

// Register replaces the callback without touching an armed timer.
func (d *Debouncer) Register(fn func(any) any) {
	d.cell.Register(fn)
}

// Trigger restarts the delay window, replacing any pending invocation and
// its arguments.
func (d *Debouncer) Trigger(arg any) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.cell.Live() {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.pending = arg
	d.armed = true
	d.gen++

	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}

	arg := d.pending
	d.disarm()
	d.mu.Unlock()

	d.cell.Invoke(arg)
}

// Cancel drops the pending invocation, if any. It never fires afterwards.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarm()
}

// Flush fires the pending invocation immediately instead of waiting out the
// remaining delay. No-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}

	arg := d.pending
	d.disarm()
	d.mu.Unlock()

	d.cell.Invoke(arg)
}

func (d *Debouncer) disarm() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.armed = false
	d.pending = nil
}

func (d *Debouncer) Dispose() {
	d.Cancel()
	d.cell.Dispose()
}

// Throttler bounds invocation frequency to at most once per interval. The
// leading edge fires immediately; when trailing is enabled, calls landing
// inside a window arm one trailing fire carrying the latest arguments, so
// the final update is never lost.
type Throttler struct {
	mu sync.Mutex

	cell     *Cell
	clock    clock.Clock
	interval time.Duration
	trailing bool

	lastFire time.Time
	timer    *clock.Timer
	pending  any
	armed    bool

	// bumped on every arming so a trailing timer that lost the race to a
	// leading fire at the window boundary backs off
	gen uint64
}

func (r *Runtime) NewThrottler(interval time.Duration, trailing bool, clk clock.Clock) *Throttler {
	if clk == nil {
		clk = r.Clock()
	}

	t := &Throttler{
		cell:     r.NewCell(),
		clock:    clk,
		interval: interval,
		trailing: trailing,
	}
	r.OnCleanup(t.Dispose)

	return t
}

func (t *Throttler) Register(fn func(any) any) {
	t.cell.Register(fn)
}

func (t *Throttler) Trigger(arg any) {
	t.mu.Lock()

	if !t.cell.Live() {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	if t.lastFire.IsZero() || now.Sub(t.lastFire) >= t.interval {
		t.lastFire = now
		// this call wins the new window: absorb any armed trailing fire so
		// it cannot replay an older argument afterwards
		t.disarmLocked()
		t.mu.Unlock()

		t.cell.Invoke(arg)
		return
	}

	if !t.trailing {
		t.mu.Unlock()
		return
	}

	t.pending = arg
	if !t.armed {
		t.armed = true
		t.gen++

		gen := t.gen
		t.timer = t.clock.AfterFunc(t.lastFire.Add(t.interval).Sub(now), func() { t.fire(gen) })
	}
	t.mu.Unlock()
}

func (t *Throttler) fire(gen uint64) {
	t.mu.Lock()
	if !t.armed || gen != t.gen {
		t.mu.Unlock()
		return
	}

	arg := t.pending
	t.armed = false
	t.timer = nil
	t.pending = nil
	t.lastFire = t.clock.Now()
	t.mu.Unlock()

	t.cell.Invoke(arg)
}

func (t *Throttler) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disarmLocked()
}

func (t *Throttler) disarmLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	t.armed = false
	t.pending = nil
}

func (t *Throttler) Dispose() {
	t.Cancel()
	t.cell.Dispose()
}
