package internal

type Owner struct {
	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	// panic error handlers
	catchers []func(any)

	disposed bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

func (r *Runtime) NewOwner() *Owner {
	o := &Owner{
		cleanups: make([]func(), 0),
	}

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

func (o *Owner) Run(fn func()) {
	r := GetRuntime()
	r.tracker.RunWithOwner(o, fn)
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

// Dispose tears the owner down: children first (newest first), then this
// owner's cleanups. Disposing twice is a no-op.
func (n *Owner) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true

	n.DisposeChildren()

	for i := 0; i < len(n.cleanups); i++ {
		n.cleanups[i]()
	}
	n.cleanups = nil

	n.detach()
}

func (n *Owner) DisposeChildren() {
	child := n.childrenHead
	for child != nil {
		// Dispose detaches the child from this list, grab the sibling first
		next := child.nextSibling
		child.Dispose()
		child = next
	}
	n.childrenHead = nil
}

// detach unlinks the owner from its parent's children list so the parent's
// later dispose skips it.
func (n *Owner) detach() {
	if n.parent == nil {
		return
	}

	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else if n.parent.childrenHead == n {
		n.parent.childrenHead = n.nextSibling
	}

	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	}

	n.parent = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

func (n *Owner) Live() bool {
	return !n.disposed
}

func (n *Owner) OnCleanup(fn func()) {
	n.cleanups = append(n.cleanups, fn)
}

func (n *Owner) OnError(fn func(any)) {
	n.catchers = append(n.catchers, fn)
}

func (n *Owner) recover() {
	if r := recover(); r != nil {
		if len(n.catchers) == 0 {
			panic(r)
		}

		for _, catcher := range n.catchers {
			catcher(r)
		}
	}
}
