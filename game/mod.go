package game

import (
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// Value is the numeric score type of a game. Searches bias their sentinels
// inward so that any signed width works.
type Value interface {
	constraints.Signed
}

// Game is a deterministic two-player zero-sum game mutated in place.
//
// Moves are applied and undone in strict LIFO order. Value reports the score
// accumulated so far by the maximizing side; the contribution of a move is the
// difference of Value across Apply. Key identifies positions that are
// strategically identical from here on.
type Game[M comparable, K comparable, V Value] interface {
	LegalMoves() []M
	Apply(move M)
	Undo(move M)
	IsTerminal() bool
	IsMax() bool
	Value() V
	Key() K
}

// Checkpointer marks the positions worth memoizing (e.g. the start of a trick).
type Checkpointer interface {
	IsCheckpoint() bool
}

// Ranged exposes the global range of final values.
type Ranged[V Value] interface {
	ValueRange() (lo, hi V)
}

// OpponentScorer is implemented by games whose scores only accumulate: Value
// never decreases along a line of play and OpponentValue is the running score
// of the minimizing side.
type OpponentScorer[V Value] interface {
	OpponentValue() V
}

// Ordering compares two moves the way cmp.Compare does; smaller moves are
// searched first.
type Ordering[M any] func(a, b M) int

// Extensive is a two-player zero-sum game with hidden information and chance,
// solved by regret matching.
//
// Chance is resolved only before the first player action: ResolveChance has no
// undo, so a chance node below an action would leak into sibling branches.
type Extensive[A comparable] interface {
	// Reset returns the game to its initial (pre-chance) position
	Reset()
	IsTerminal() bool
	IsChance() bool
	ResolveChance(r *rand.Rand)
	// Player to act, 0 or 1
	Player() int
	Actions() []A
	Apply(action A)
	Undo(action A)
	// InfoSet is the acting player's view of the position
	InfoSet() string
	// Payoff of a terminal position to the given player
	Payoff(player int) float64
}

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrUndoMismatch = errors.New("undo does not match last applied move")
	ErrNoMoves      = errors.New("no legal moves")
	ErrNotTerminal  = errors.New("position is not terminal")
)
