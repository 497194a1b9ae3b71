package internal

type Tracker struct {
	// for lifecycle/cleanup tracking
	currentOwner *Owner
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) CurrentOwner() *Owner {
	return t.currentOwner
}

func (t *Tracker) RunWithOwner(owner *Owner, fn func()) {
	defer owner.recover()

	prev := t.currentOwner
	t.currentOwner = owner
	defer func() { t.currentOwner = prev }()

	fn()
}
