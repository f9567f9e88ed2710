package guard_test

import (
	"errors"
	"testing"

	"workorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for a constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the supplied error for a zero value", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("should fall back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("should survive copies by value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("Command must be created via newCommand")

	type command struct {
		id    int64
		guard guard.ConstructorGuard
	}
	newCommand := func(id int64) (command, error) {
		if id <= 0 {
			return command{}, errors.New("id must be positive")
		}
		return command{id: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("should accept constructor output", func(t *testing.T) {
		c, err := newCommand(5)
		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errNotConstructed))
	})

	t.Run("should reject literal construction", func(t *testing.T) {
		c := command{id: 5}
		assert.Equal(t, errNotConstructed, c.guard.Validate(errNotConstructed))
	})
}
