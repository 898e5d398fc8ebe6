package rps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame(t *testing.T) {
	t.Run("payoffs are zero-sum", func(t *testing.T) {
		g := New()
		g.Apply(Rock)
		g.Apply(Scissors)

		require.True(t, g.IsTerminal())
		require.Equal(t, 1.0, g.Payoff(0))
		require.Equal(t, -1.0, g.Payoff(1))
	})

	t.Run("equal throws draw", func(t *testing.T) {
		g := New()
		g.Apply(Paper)
		g.Apply(Paper)

		require.Zero(t, g.Payoff(0))
	})

	t.Run("second player sees the throw only when sequential", func(t *testing.T) {
		g := New()
		g.Apply(Paper)
		h := NewSimultaneous()
		h.Apply(Paper)

		require.Equal(t, "p", g.InfoSet())
		require.Equal(t, "?", h.InfoSet())
		require.Equal(t, 1, g.Player())
	})

	t.Run("reset and undo return to the start", func(t *testing.T) {
		g := New()
		g.Apply(Rock)
		g.Undo(Rock)
		require.Equal(t, 0, g.Player())

		g.Apply(Rock)
		g.Apply(Paper)
		g.Reset()
		require.False(t, g.IsTerminal())
		require.Len(t, g.Actions(), 3)
		require.Panics(t, func() { g.Undo(Rock) })
	})
}
