package fresh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			OnCleanup(func() { log = append(log, "cleanup") })
			return nil
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("returns the function's error", func(t *testing.T) {
		o := NewOwner()

		err := o.Run(func() error {
			return errors.New("oops")
		})

		assert.EqualError(t, err, "oops")
	})

	t.Run("nested owners dispose children first", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnCleanup(func() {
			log = append(log, "parent cleanup")
		})

		o.Run(func() error {
			NewOwner().OnCleanup(func() {
				log = append(log, "child cleanup")
			})

			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{
			"child cleanup",
			"parent cleanup",
		}, log)
	})

	t.Run("disposes all sibling scopes, newest first", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() error {
			NewOwner().OnCleanup(func() { log = append(log, "first cleanup") })
			NewOwner().OnCleanup(func() { log = append(log, "second cleanup") })
			NewOwner().OnCleanup(func() { log = append(log, "third cleanup") })
			return nil
		})

		o.Dispose()

		assert.Equal(t, []string{
			"third cleanup",
			"second cleanup",
			"first cleanup",
		}, log)
	})

	t.Run("dispose is idempotent", func(t *testing.T) {
		calls := 0

		o := NewOwner()
		o.OnCleanup(func() { calls++ })

		assert.True(t, o.Live())

		o.Dispose()
		o.Dispose()

		assert.False(t, o.Live())
		assert.Equal(t, 1, calls)
	})

	t.Run("disposed child is skipped by the parent", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		var child *Owner
		o.Run(func() error {
			child = NewOwner()
			child.OnCleanup(func() { log = append(log, "child cleanup") })
			return nil
		})

		child.Dispose()
		o.Dispose()

		assert.Equal(t, []string{"child cleanup"}, log)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		var caught any

		o := NewOwner()
		o.OnError(func(v any) { caught = v })

		o.Run(func() error {
			panic("boom")
		})

		assert.Equal(t, "boom", caught)
	})

	t.Run("tears down everything created inside", func(t *testing.T) {
		var c *Cell[struct{}, int]

		o := NewOwner()
		o.Run(func() error {
			c = NewCell(func(struct{}) int { return 7 })
			return nil
		})

		assert.Equal(t, 7, c.Trigger(struct{}{}))

		o.Dispose()
		assert.Equal(t, 0, c.Trigger(struct{}{}))
	})
}
