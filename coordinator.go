package fresh

import (
	"context"

	"github.com/freshfn/fresh/internal"
)

// Phase is a coordinator's place in its state machine.
type Phase int

const (
	Idle Phase = iota
	Fetching
	Settled
	Failed
)

func (p Phase) String() string {
	return internal.Phase(p).String()
}

// FetchFunc loads the value for a key. ctx is cancelled when the request is
// superseded or the coordinator disposed; honoring it saves wasted work but
// is not required for correctness.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Snapshot is the visible state of a coordinator at one instant. While
// fetching, Value and Err still hold the last committed outcome.
type Snapshot[K comparable, V any] struct {
	Phase Phase
	Key   K
	Value V
	Err   error
}

type Coordinator[K comparable, V any] struct {
	coordinator *internal.Coordinator
}

// NewCoordinator creates a keyed request coordinator: one fetch per key
// change, and only the result matching the key active at resolve time is
// ever committed, whatever order results arrive in. Superseded results are
// dropped silently, success or not, and a cancelled fetch never surfaces as
// a failure.
//
// Created under the current owner, if any; disposing the owner prevents any
// late result from committing.
func NewCoordinator[K comparable, V any](fetch FetchFunc[K, V]) *Coordinator[K, V] {
	return &Coordinator[K, V]{
		internal.GetRuntime().NewCoordinator(func(ctx context.Context, key any) (any, error) {
			return fetch(ctx, as[K](key))
		}),
	}
}

// SetKey makes key the active key. Repeating the current key issues no new
// fetch; a new key supersedes any in-flight request and issues exactly one.
func (c *Coordinator[K, V]) SetKey(key K) {
	c.coordinator.SetKey(key)
}

// Refetch re-issues the fetch for the active key, superseding any in-flight
// request. No-op while idle.
func (c *Coordinator[K, V]) Refetch() {
	c.coordinator.Refetch()
}

// Snapshot returns the current visible state.
func (c *Coordinator[K, V]) Snapshot() Snapshot[K, V] {
	return snapshotAs[K, V](c.coordinator.Snapshot())
}

// OnChange subscribes to phase transitions. fn runs outside the coordinator
// lock, on whichever goroutine drove the transition.
func (c *Coordinator[K, V]) OnChange(fn func(Snapshot[K, V])) {
	c.coordinator.OnChange(func(s internal.Snapshot) {
		fn(snapshotAs[K, V](s))
	})
}

// Dispose cancels any in-flight request; no commit or notification happens
// afterwards.
func (c *Coordinator[K, V]) Dispose() {
	c.coordinator.Dispose()
}

func snapshotAs[K comparable, V any](s internal.Snapshot) Snapshot[K, V] {
	return Snapshot[K, V]{
		Phase: Phase(s.Phase),
		Key:   as[K](s.Key),
		Value: as[V](s.Value),
		Err:   s.Err,
	}
}
