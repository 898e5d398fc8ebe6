// Package kuhn is Kuhn poker: three cards, one dealt to each player, one
// betting round with a single bet size. Both players ante one chip.
package kuhn

import (
	"fmt"
	"golv/game"

	"golang.org/x/exp/rand"
)

type Action byte

const (
	Check Action = 'x'
	Bet   Action = 'b'
	Fold  Action = 'f'
	Call  Action = 'c'
)

func (a Action) String() string {
	return string(rune(a))
}

type Game struct {
	cards   [2]int
	dealt   bool
	history []byte
}

func New() *Game {
	return &Game{}
}

func (g *Game) Reset() {
	g.dealt = false
	g.history = g.history[:0]
}

// Deal fixes the cards instead of resolving chance.
func (g *Game) Deal(first, second int) {
	if first == second || first < 0 || first > 2 || second < 0 || second > 2 {
		panic(fmt.Errorf("%w: deal %d %d", game.ErrIllegalMove, first, second))
	}
	g.cards = [2]int{first, second}
	g.dealt = true
}

func (g *Game) IsChance() bool {
	return !g.dealt
}

func (g *Game) ResolveChance(r *rand.Rand) {
	deck := [3]int{0, 1, 2}
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	g.Deal(deck[0], deck[1])
}

func (g *Game) IsTerminal() bool {
	if !g.dealt {
		return false
	}
	switch string(g.history) {
	case "xx", "bf", "bc", "xbf", "xbc":
		return true
	}
	return false
}

func (g *Game) Player() int {
	return len(g.history) % 2
}

func (g *Game) Actions() []Action {
	switch string(g.history) {
	case "", "x":
		return []Action{Check, Bet}
	case "b", "xb":
		return []Action{Fold, Call}
	}
	return nil
}

func (g *Game) Apply(a Action) {
	legal := false
	for _, b := range g.Actions() {
		legal = legal || a == b
	}
	if !g.dealt || !legal {
		panic(fmt.Errorf("%w: %s after %q", game.ErrIllegalMove, a, g.history))
	}
	g.history = append(g.history, byte(a))
}

func (g *Game) Undo(a Action) {
	n := len(g.history)
	if n == 0 || g.history[n-1] != byte(a) {
		panic(fmt.Errorf("%w: %s", game.ErrUndoMismatch, a))
	}
	g.history = g.history[:n-1]
}

// InfoSet is the acting player's card and the betting so far, e.g. "2|xb".
func (g *Game) InfoSet() string {
	return fmt.Sprintf("%d|%s", g.cards[g.Player()], g.history)
}

func (g *Game) Payoff(player int) float64 {
	if !g.IsTerminal() {
		panic(game.ErrNotTerminal)
	}
	showdown := 1.0
	if g.cards[0] < g.cards[1] {
		showdown = -1
	}
	var u float64
	switch string(g.history) {
	case "xx":
		u = showdown
	case "bf":
		u = 1
	case "xbf":
		u = -1
	default: // called bet
		u = 2 * showdown
	}
	if player == 1 {
		return -u
	}
	return u
}

var _ game.Extensive[Action] = (*Game)(nil)
