package fresh

import "github.com/benbjohnson/clock"

type config struct {
	clock    clock.Clock
	trailing bool
}

func newConfig(opts []Option) config {
	cfg := config{trailing: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a debounce or throttle scheduler at construction time.
// Changing a scheduler's timing afterwards is not supported: dispose it
// (flushing first if needed) and create a new one.
type Option func(*config)

// WithClock substitutes the timer facility, typically with clock.NewMock in
// tests. Defaults to the wall clock.
func WithClock(clk clock.Clock) Option {
	return func(c *config) { c.clock = clk }
}

// WithTrailing controls whether a throttled trigger fires once more after
// the interval when calls arrived inside the window. Defaults to true so the
// final update is never lost.
func WithTrailing(trailing bool) Option {
	return func(c *config) { c.trailing = trailing }
}
