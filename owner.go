package fresh

import "github.com/freshfn/fresh/internal"

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates a new owner. An owner manages the lifecycle of cells,
// schedulers, and coordinators created within its context.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner. Each cell, scheduler, or
// coordinator created within the function becomes a child of this owner and
// is disposed when owner.Dispose() is called.
func (o *Owner) Run(fn func() error) error {
	var err error
	o.owner.Run(func() { err = fn() })
	return err
}

// Dispose this owner and all its children. Pending timers are cancelled and
// in-flight fetches can no longer commit.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Live reports whether the owner has not been disposed yet.
func (o *Owner) Live() bool { return o.owner.Live() }

// Add a cleanup function to be called ONCE when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }

// Add a function to be called when a panic occurs within this owner.
// If no error listener is registered, the panic will propagate as usual.
func (o *Owner) OnError(fn func(any)) { o.owner.OnError(fn) }
