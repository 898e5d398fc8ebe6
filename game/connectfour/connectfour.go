// Package connectfour is the 7x6 drop game. Yellow moves first and maximizes;
// a move is the column a disc is dropped into.
package connectfour

import (
	"fmt"
	"golv/game"
	"strings"
)

const (
	Width  = 7
	Height = 6
)

type Disc byte

const (
	None   Disc = '.'
	Yellow Disc = 'Y'
	Red    Disc = 'R'
)

type Board struct {
	cells   [Width * Height]Disc // column-major, bottom up
	heights [Width]int
	history []int
	winner  Disc
}

func New() *Board {
	b := &Board{winner: None}
	for i := range b.cells {
		b.cells[i] = None
	}
	return b
}

func (b *Board) Play(columns ...int) *Board {
	for _, c := range columns {
		b.Apply(c)
	}
	return b
}

func (b *Board) toMove() Disc {
	if len(b.history)%2 == 0 {
		return Yellow
	}
	return Red
}

func (b *Board) at(col, row int) Disc {
	if col < 0 || col >= Width || row < 0 || row >= b.heights[col] {
		return None
	}
	return b.cells[col*Height+row]
}

func (b *Board) LegalMoves() []int {
	if b.IsTerminal() {
		return nil
	}
	moves := make([]int, 0, Width)
	for col := 0; col < Width; col++ {
		if b.heights[col] < Height {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) Apply(col int) {
	if col < 0 || col >= Width || b.heights[col] == Height || b.IsTerminal() {
		panic(fmt.Errorf("%w: column %d", game.ErrIllegalMove, col))
	}
	disc := b.toMove()
	row := b.heights[col]
	b.cells[col*Height+row] = disc
	b.heights[col]++
	b.history = append(b.history, col)
	if b.connects(col, row) {
		b.winner = disc
	}
}

func (b *Board) Undo(col int) {
	if len(b.history) == 0 || b.history[len(b.history)-1] != col {
		panic(fmt.Errorf("%w: column %d", game.ErrUndoMismatch, col))
	}
	b.history = b.history[:len(b.history)-1]
	b.heights[col]--
	b.cells[col*Height+b.heights[col]] = None
	b.winner = None
}

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func (b *Board) connects(col, row int) bool {
	disc := b.at(col, row)
	for _, d := range directions {
		n := 1
		for _, sign := range [2]int{1, -1} {
			for k := 1; b.at(col+sign*k*d[0], row+sign*k*d[1]) == disc; k++ {
				n++
			}
		}
		if n >= 4 {
			return true
		}
	}
	return false
}

func (b *Board) IsTerminal() bool {
	return b.winner != None || len(b.history) == Width*Height
}

func (b *Board) IsMax() bool {
	return b.toMove() == Yellow
}

func (b *Board) Value() int {
	switch b.winner {
	case Yellow:
		return 1
	case Red:
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
	for row := Height - 1; row >= 0; row-- {
		for col := 0; col < Width; col++ {
			sb.WriteByte(byte(b.cells[col*Height+row]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Order searches central columns first.
func Order(a, b int) int {
	return distance(a) - distance(b)
}

func distance(col int) int {
	if col < Width/2 {
		return Width/2 - col
	}
	return col - Width/2
}

var _ game.Game[int, string, int] = (*Board)(nil)
