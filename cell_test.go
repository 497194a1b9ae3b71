package fresh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	t.Run("invokes the registered callback", func(t *testing.T) {
		c := NewCell(func(n int) string {
			return fmt.Sprintf("got %d", n)
		})

		assert.Equal(t, "got 42", c.Trigger(42))
	})

	t.Run("always runs the freshest callback", func(t *testing.T) {
		log := []string{}

		c := NewCell(func(s string) string {
			log = append(log, "first "+s)
			return "first"
		})

		c.Register(func(s string) string {
			log = append(log, "second "+s)
			return "second"
		})

		assert.Equal(t, "second", c.Trigger("x"))
		assert.Equal(t, []string{"second x"}, log)
	})

	t.Run("one handle survives many registrations", func(t *testing.T) {
		latest := 0

		c := NewCell(func(struct{}) int { return 0 })
		trigger := c.Trigger // handed out once, like to a memoized consumer

		for i := 1; i <= 100; i++ {
			n := i
			c.Register(func(struct{}) int { return n })
			latest = n
		}

		assert.Equal(t, latest, trigger(struct{}{}))
	})

	t.Run("no-op after dispose", func(t *testing.T) {
		calls := 0

		c := NewCell(func(struct{}) int {
			calls++
			return calls
		})

		assert.Equal(t, 1, c.Trigger(struct{}{}))
		assert.True(t, c.Live())

		c.Dispose()

		assert.False(t, c.Live())
		assert.Equal(t, 0, c.Trigger(struct{}{}))
		assert.Equal(t, 1, calls)
	})

	t.Run("dies with its owner", func(t *testing.T) {
		var c *Cell[struct{}, int]

		o := NewOwner()
		o.Run(func() error {
			c = NewCell(func(struct{}) int { return 1 })
			return nil
		})

		assert.Equal(t, 1, c.Trigger(struct{}{}))

		o.Dispose()

		assert.False(t, c.Live())
		assert.Equal(t, 0, c.Trigger(struct{}{}))
	})
}
