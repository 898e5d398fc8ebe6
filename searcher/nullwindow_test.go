package searcher

import (
	"golv/game/connectfour"
	"golv/game/tictactoe"
	"golv/game/tricks"
	"golv/memo"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullWindow(t *testing.T) {
	t.Run("probes just below and at the value disagree", func(t *testing.T) {
		for _, d := range deals {
			g := d.game(t)
			table := memo.NewFrontierTable[tricks.Key, int]()
			s := NewNullWindow(g, table, nil)

			require.True(t, s.Solve(d.value-1), "%s: value should exceed %d", d.name, d.value-1)
			require.False(t, s.Solve(d.value), "%s: value should not exceed %d", d.name, d.value)
			require.Positive(t, table.Len())
		}
	})

	t.Run("memoization does not change answers", func(t *testing.T) {
		for name, g := range seededDeals(t) {
			lo, hi := g.ValueRange()
			shared := NewNullWindow(g, memo.NewFrontierTable[tricks.Key, int](), g.Order)
			bare := NewNullWindow(g, nil, nil)

			step := max(1, (hi-lo)/16)
			for bound := lo - 1; bound <= hi; bound += step {
				require.Equal(t, bare.Solve(bound), shared.Solve(bound), "%s at %d", name, bound)
			}
		}
	})

	t.Run("deciding move achieves more than the bound", func(t *testing.T) {
		d := deals[2]
		g := d.game(t)

		greater, move := SolveNullWindow(g, d.value-1, memo.NewFrontierTable[tricks.Key, int](), nil)

		require.True(t, greater)
		require.Contains(t, d.optimalMoves(t), move)
	})

	t.Run("root without a deciding move reports it", func(t *testing.T) {
		d := deals[0]
		g := d.game(t)
		s := NewNullWindow(g, nil, nil)

		require.False(t, s.Solve(d.value), "No move should exceed the value at a maximizing root")
		_, decided := s.BestMove()
		require.False(t, decided)
	})

	t.Run("games without running scores are searched to the end", func(t *testing.T) {
		b := tictactoe.New().Play(4, 1)
		s := NewNullWindow(b, memo.NewFrontierTable[string, int](memo.WithPolicy(memo.Everything)), tictactoe.Order)

		require.True(t, s.Solve(0))
		require.False(t, s.Solve(1))

		c := connectfour.New().Play(0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 6, 6, 6, 6, 6, 6)
		require.True(t, NewNullWindow(c, memo.NewFrontierTable[string, int](memo.WithPolicy(memo.Everything)), connectfour.Order).Solve(0))
	})
}
