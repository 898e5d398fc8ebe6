// Package tictactoe is noughts and crosses on a 3x3 board. Cells are numbered
// 0-8 row by row; X moves first and maximizes.
package tictactoe

import (
	"fmt"
	"golv/game"
	"strings"
)

type Cell byte

const (
	Empty  Cell = '.'
	Cross  Cell = 'X'
	Nought Cell = 'O'
)

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

type Board struct {
	cells   [9]Cell
	history []int
	winner  Cell
}

func New() *Board {
	b := &Board{winner: Empty}
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// Play applies a sequence of moves from the current position.
func (b *Board) Play(moves ...int) *Board {
	for _, m := range moves {
		b.Apply(m)
	}
	return b
}

func (b *Board) toMove() Cell {
	if len(b.history)%2 == 0 {
		return Cross
	}
	return Nought
}

func (b *Board) LegalMoves() []int {
	if b.IsTerminal() {
		return nil
	}
	moves := make([]int, 0, 9-len(b.history))
	for i, c := range b.cells {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (b *Board) Apply(move int) {
	if move < 0 || move >= len(b.cells) || b.cells[move] != Empty || b.IsTerminal() {
		panic(fmt.Errorf("%w: cell %d", game.ErrIllegalMove, move))
	}
	player := b.toMove()
	b.cells[move] = player
	b.history = append(b.history, move)
	if b.completes(move) {
		b.winner = player
	}
}

func (b *Board) Undo(move int) {
	if len(b.history) == 0 || b.history[len(b.history)-1] != move {
		panic(fmt.Errorf("%w: cell %d", game.ErrUndoMismatch, move))
	}
	b.history = b.history[:len(b.history)-1]
	b.cells[move] = Empty
	b.winner = Empty
}

func (b *Board) completes(move int) bool {
	player := b.cells[move]
	for _, line := range lines {
		if line[0] != move && line[1] != move && line[2] != move {
			continue
		}
		if b.cells[line[0]] == player && b.cells[line[1]] == player && b.cells[line[2]] == player {
			return true
		}
	}
	return false
}

func (b *Board) IsTerminal() bool {
	return b.winner != Empty || len(b.history) == len(b.cells)
}

func (b *Board) IsMax() bool {
	return b.toMove() == Cross
}

// Value is +1 for a win by X, -1 for a win by O and 0 otherwise.
func (b *Board) Value() int {
	switch b.winner {
	case Cross:
		return 1
	case Nought:
		return -1
	}
	return 0
}

func (b *Board) ValueRange() (int, int) {
	return -1, 1
}

func (b *Board) Key() string {
	return string(b.cells[:])
}

func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]int(nil), b.history...)
	return &c
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		sb.WriteString(string(b.cells[row*3 : row*3+3]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Order searches the centre first, then the edges, then the corners.
func Order(a, b int) int {
	return rank[a] - rank[b]
}

var rank = [9]int{2, 1, 2, 1, 0, 1, 2, 1, 2}

var _ game.Game[int, string, int] = (*Board)(nil)
