package internal

import "sync"

// Cell is a single mutable slot holding the most recently registered
// callback. Invoking the cell reads the slot at call time, never at
// registration time, so consumers holding the cell long-term always run the
// freshest callback.
type Cell struct {
	mu sync.Mutex

	fn   func(any) any
	live bool
}

func (r *Runtime) NewCell() *Cell {
	c := &Cell{live: true}
	r.OnCleanup(c.Dispose)
	return c
}

// Register replaces the held callback. Meant to be called on every update
// cycle of the owning scope, even with a semantically identical callback,
// so captured variables stay fresh. No side effect beyond the slot write.
func (c *Cell) Register(fn func(any) any) {
	c.mu.Lock()
	c.fn = fn
	c.mu.Unlock()
}

// Invoke calls whatever callback currently occupies the slot and returns its
// result. After Dispose it does nothing and returns nil.
func (c *Cell) Invoke(arg any) any {
	c.mu.Lock()
	fn := c.fn
	live := c.live
	c.mu.Unlock()

	if !live || fn == nil {
		return nil
	}

	return fn(arg)
}

func (c *Cell) Live() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

func (c *Cell) Dispose() {
	c.mu.Lock()
	c.live = false
	c.fn = nil
	c.mu.Unlock()
}
