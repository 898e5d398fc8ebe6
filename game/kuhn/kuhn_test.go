package kuhn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGame(t *testing.T) {
	t.Run("dealing resolves chance", func(t *testing.T) {
		g := New()
		require.True(t, g.IsChance())

		g.ResolveChance(rand.New(rand.NewSource(3)))

		require.False(t, g.IsChance())
		require.NotEqual(t, g.cards[0], g.cards[1])
	})

	t.Run("information sets show the own card and the betting", func(t *testing.T) {
		g := New()
		g.Deal(2, 0)

		require.Equal(t, "2|", g.InfoSet())
		g.Apply(Check)
		require.Equal(t, "0|x", g.InfoSet())
		require.Equal(t, []Action{Check, Bet}, g.Actions())
		g.Apply(Bet)
		require.Equal(t, "2|xb", g.InfoSet())
		require.Equal(t, []Action{Fold, Call}, g.Actions())
	})

	t.Run("payoffs", func(t *testing.T) {
		cases := []struct {
			first, second int
			history       []Action
			payoff        float64
		}{
			{2, 0, []Action{Check, Check}, 1},
			{0, 2, []Action{Check, Check}, -1},
			{0, 2, []Action{Bet, Fold}, 1},
			{0, 2, []Action{Bet, Call}, -2},
			{2, 1, []Action{Check, Bet, Call}, 2},
			{2, 1, []Action{Check, Bet, Fold}, -1},
		}
		for _, c := range cases {
			g := New()
			g.Deal(c.first, c.second)
			for _, a := range c.history {
				g.Apply(a)
			}

			require.True(t, g.IsTerminal())
			require.Equal(t, c.payoff, g.Payoff(0), "%d vs %d after %v", c.first, c.second, c.history)
			require.Equal(t, -c.payoff, g.Payoff(1))
		}
	})

	t.Run("illegal actions panic", func(t *testing.T) {
		g := New()
		require.Panics(t, func() { g.Apply(Check) }, "Acting before the deal should panic")

		g.Deal(0, 1)
		require.Panics(t, func() { g.Apply(Call) })
		require.Panics(t, func() { g.Deal(1, 1) })
	})
}
