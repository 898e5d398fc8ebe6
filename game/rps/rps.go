// Package rps is rock-paper-scissors for the equilibrium solver. Player 0
// throws first; in the sequential form player 1 sees the throw, in the
// simultaneous form it does not.
package rps

import (
	"fmt"
	"golv/game"

	"golang.org/x/exp/rand"
)

type Action uint8

const (
	Rock Action = iota
	Paper
	Scissors
)

func (a Action) String() string {
	return string("rps"[a])
}

func (a Action) beats(b Action) bool {
	return (a+3-b)%3 == 1
}

type Game struct {
	hidden  bool
	history []Action
}

// New is the sequential form: player 1 answers a visible throw.
func New() *Game {
	return &Game{}
}

// NewSimultaneous hides player 0's throw from player 1.
func NewSimultaneous() *Game {
	return &Game{hidden: true}
}

func (g *Game) Reset() {
	g.history = g.history[:0]
}

func (g *Game) IsTerminal() bool         { return len(g.history) == 2 }
func (g *Game) IsChance() bool           { return false }
func (g *Game) ResolveChance(*rand.Rand) {}
func (g *Game) Player() int              { return len(g.history) }

func (g *Game) Actions() []Action {
	if g.IsTerminal() {
		return nil
	}
	return []Action{Rock, Paper, Scissors}
}

func (g *Game) Apply(a Action) {
	if g.IsTerminal() || a > Scissors {
		panic(fmt.Errorf("%w: %d", game.ErrIllegalMove, a))
	}
	g.history = append(g.history, a)
}

func (g *Game) Undo(a Action) {
	n := len(g.history)
	if n == 0 || g.history[n-1] != a {
		panic(fmt.Errorf("%w: %s", game.ErrUndoMismatch, a))
	}
	g.history = g.history[:n-1]
}

// InfoSet is empty for player 0; player 1 sees the throw, or "?" when hidden.
func (g *Game) InfoSet() string {
	if g.Player() == 0 {
		return ""
	}
	if g.hidden {
		return "?"
	}
	return g.history[0].String()
}

func (g *Game) Payoff(player int) float64 {
	if !g.IsTerminal() {
		panic(game.ErrNotTerminal)
	}
	a, b := g.history[0], g.history[1]
	u := 0.0
	switch {
	case a.beats(b):
		u = 1
	case b.beats(a):
		u = -1
	}
	if player == 1 {
		return -u
	}
	return u
}

var _ game.Extensive[Action] = (*Game)(nil)
