package internal

import (
	"github.com/benbjohnson/clock"
)

type Runtime struct {
	tracker *Tracker
	clock   clock.Clock
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		clock:   clock.New(),
	}
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

// Clock is the default timer facility for schedulers created on this runtime.
func (r *Runtime) Clock() clock.Clock {
	return r.clock
}

func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnCleanup(fn)
	}
}
