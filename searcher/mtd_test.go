package searcher

import (
	"bytes"
	"golv/game/tictactoe"
	"golv/game/tricks"
	"golv/memo"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRefine(t *testing.T) {
	t.Run("converges from any guess", func(t *testing.T) {
		for _, d := range deals {
			g := d.game(t)
			lo, hi := g.ValueRange()

			for _, guess := range []int{lo, d.value, hi, (lo + hi) / 2} {
				got := Refine(g, guess, lo, hi, nil, nil)
				require.Equal(t, d.value, got, "%s from %d", d.name, guess)
			}
		}
	})

	t.Run("shared table across refinements", func(t *testing.T) {
		d := deals[6]
		g := d.game(t)
		lo, hi := g.ValueRange()
		table := memo.NewTable[tricks.Key, int](memo.WithPolicy(memo.Checkpoints))

		require.Equal(t, d.value, Refine(g, lo, lo, hi, g.Order, table))
		require.Equal(t, d.value, Refine(g, hi, lo, hi, g.Order, table))
	})

	t.Run("seeded deals agree with alpha-beta", func(t *testing.T) {
		for name, g := range seededDeals(t) {
			want, _ := SolveFullWindow(g, nil, nil)
			lo, hi := g.ValueRange()

			require.Equal(t, want, Refine(g, 0, lo, hi, nil, nil), name)
		}
	})

	t.Run("tic-tac-toe", func(t *testing.T) {
		require.Equal(t, 0, Refine(tictactoe.New(), 1, -1, 1, tictactoe.Order, nil))
		require.Equal(t, -1, Refine(tictactoe.New().Play(1, 4, 7), 0, -1, 1, nil, nil))
	})

	t.Run("collapsed range is the value", func(t *testing.T) {
		require.Equal(t, 3, Refine(deals[0].game(t), 0, 3, 3, nil, nil))
	})

	t.Run("brackets are logged at debug level", func(t *testing.T) {
		var debug, info bytes.Buffer

		Refine(tictactoe.New(), 1, -1, 1, tictactoe.Order, nil, WithLogger(zerolog.New(&debug).Level(zerolog.DebugLevel)))
		Refine(tictactoe.New(), 1, -1, 1, tictactoe.Order, nil, WithLogger(zerolog.New(&info).Level(zerolog.InfoLevel)))

		require.Positive(t, strings.Count(debug.String(), `"message":"refined"`))
		require.NotContains(t, info.String(), "refined")
	})
}
