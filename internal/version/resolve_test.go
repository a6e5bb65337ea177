package version_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/sysupdate/internal/version"
)

func TestFirstOf(t *testing.T) {
	calls := 0
	counted := func(v string, err error) version.Resolver {
		return func() (string, error) {
			calls++
			return v, err
		}
	}

	t.Run("first success wins", func(t *testing.T) {
		calls = 0
		v, ok := version.FirstOf(counted("a", nil), counted("b", nil))
		assert.True(t, ok)
		assert.Equal(t, "a", v)
		assert.Equal(t, 1, calls)
	})

	t.Run("skips errors and empty results", func(t *testing.T) {
		calls = 0
		v, ok := version.FirstOf(
			counted("ignored", errors.New("boom")),
			counted("", nil),
			nil,
			counted("c", nil),
		)
		assert.True(t, ok)
		assert.Equal(t, "c", v)
		assert.Equal(t, 3, calls)
	})

	t.Run("nothing available", func(t *testing.T) {
		v, ok := version.FirstOf(counted("", errors.New("x")))
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("no resolvers", func(t *testing.T) {
		_, ok := version.FirstOf()
		assert.False(t, ok)
	})
}
