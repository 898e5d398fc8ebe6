package connectfour

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("discs stack in a column", func(t *testing.T) {
		b := New().Play(3, 3, 3, 3, 3, 3)

		require.Equal(t, []int{0, 1, 2, 4, 5, 6}, b.LegalMoves())
		require.Panics(t, func() { b.Apply(3) })
	})

	t.Run("vertical four wins", func(t *testing.T) {
		b := New().Play(0, 1, 0, 1, 0, 1, 0)

		require.True(t, b.IsTerminal())
		require.Equal(t, 1, b.Value())
	})

	t.Run("horizontal four wins for red", func(t *testing.T) {
		b := New().Play(0, 1, 0, 2, 0, 3, 6, 4)

		require.True(t, b.IsTerminal())
		require.Equal(t, -1, b.Value())
	})

	t.Run("diagonal four wins", func(t *testing.T) {
		b := New().Play(0, 1, 1, 2, 2, 3, 2, 3, 3, 6, 3)

		require.True(t, b.IsTerminal())
		require.Equal(t, 1, b.Value())
	})

	t.Run("undo restores the position", func(t *testing.T) {
		b := New().Play(3, 2, 4)
		key := b.Key()

		b.Apply(5)
		b.Undo(5)

		require.Equal(t, key, b.Key())
		require.False(t, b.IsMax())
		require.Panics(t, func() { b.Undo(3) })
	})

	t.Run("ordering prefers the centre", func(t *testing.T) {
		require.Negative(t, Order(3, 2))
		require.Zero(t, Order(2, 4))
		require.Positive(t, Order(0, 5))
	})
}
