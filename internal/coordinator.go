package internal

import (
	"context"
	"errors"
	"sync"
)

// FetchFunc loads the value for a key. ctx is cancelled when the request is
// superseded or the coordinator disposed; honoring it saves wasted work but
// is optional.
type FetchFunc func(ctx context.Context, key any) (any, error)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseSettled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseSettled:
		return "settled"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is the visible state of a coordinator at one instant. While
// fetching, Value and Err still hold the last committed outcome.
type Snapshot struct {
	Phase Phase
	Key   any
	Value any
	Err   error
}

// Coordinator issues one fetch per key change and commits only results whose
// request is still the newest one. A request's sequence number is captured
// at issue time and compared against the coordinator's counter at resolve
// time; a mismatch means the request was superseded and its result is
// dropped unconditionally, success or not. Arrival order never matters.
type Coordinator struct {
	mu sync.Mutex

	fetch FetchFunc

	seq    uint64
	key    any
	hasKey bool

	phase Phase
	value any
	err   error

	cancel   context.CancelFunc
	subs     []func(Snapshot)
	disposed bool
}

func (r *Runtime) NewCoordinator(fetch FetchFunc) *Coordinator {
	c := &Coordinator{fetch: fetch}
	r.OnCleanup(c.Dispose)
	return c
}

// SetKey makes key the active key. Repeating the current key is a no-op (no
// duplicate fetch); a new key supersedes any in-flight request and issues
// exactly one fetch.
func (c *Coordinator) SetKey(key any) {
	c.mu.Lock()
	if c.disposed || (c.hasKey && c.key == key) {
		c.mu.Unlock()
		return
	}

	c.key = key
	c.hasKey = true
	c.issueLocked()
}

// Refetch re-issues the fetch for the active key, superseding any in-flight
// request. No-op while idle.
func (c *Coordinator) Refetch() {
	c.mu.Lock()
	if c.disposed || !c.hasKey {
		c.mu.Unlock()
		return
	}

	c.issueLocked()
}

// issueLocked starts a fetch for the active key. Takes c.mu held and
// releases it before notifying subscribers.
func (c *Coordinator) issueLocked() {
	c.seq++
	seq := c.seq
	key := c.key

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.phase = PhaseFetching

	fetch := c.fetch
	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()

	notify(subs, snap)

	go c.resolve(ctx, cancel, seq, key, fetch)
}

func (c *Coordinator) resolve(ctx context.Context, cancel context.CancelFunc, seq uint64, key any, fetch FetchFunc) {
	// release this request's context; superseded requests were cancelled
	// already and cancelling twice is harmless
	defer cancel()

	value, err := fetch(ctx, key)

	c.mu.Lock()
	if c.disposed || seq != c.seq {
		// superseded: drop the result, even a successful one
		c.mu.Unlock()
		return
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// cooperative cancellation is not a failure
		c.mu.Unlock()
		return
	}

	c.cancel = nil
	if err != nil {
		c.phase = PhaseFailed
		c.err = err
	} else {
		c.phase = PhaseSettled
		c.value = value
		c.err = nil
	}

	snap := c.snapshotLocked()
	subs := c.subsLocked()
	c.mu.Unlock()

	notify(subs, snap)
}

// Snapshot returns the current visible state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Coordinator) snapshotLocked() Snapshot {
	return Snapshot{
		Phase: c.phase,
		Key:   c.key,
		Value: c.value,
		Err:   c.err,
	}
}

func (c *Coordinator) subsLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), len(c.subs))
	copy(subs, c.subs)
	return subs
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

// OnChange subscribes to phase transitions. fn runs outside the coordinator
// lock, on whichever goroutine drove the transition.
func (c *Coordinator) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}

	c.subs = append(c.subs, fn)
}

// Dispose cancels any in-flight request and guarantees no commit or
// notification happens afterwards.
func (c *Coordinator) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}

	c.disposed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.subs = nil
	c.mu.Unlock()
}
