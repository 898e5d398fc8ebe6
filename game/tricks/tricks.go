// Package tricks is a perfect-information trick-taking engine: every hand is
// visible and players must follow the suit led when they can. The soloist's
// side maximizes.
package tricks

import (
	"errors"
	"fmt"
	"golv/game"
	"golv/game/cards"
	"strings"
)

const maxPlayers = 4

// Key identifies a position. The deal fixes who holds which remaining card,
// so the remaining cards, the cards on the table and the player to move
// determine the rest of the game.
type Key struct {
	Remaining cards.Set
	Table     cards.Set
	Player    uint8
}

type step struct {
	card   cards.Card
	player uint8
	leader uint8
	scores [2]int
}

type Game struct {
	variant Variant
	players int
	hands   [maxPlayers]cards.Set
	skat    cards.Set
	soloist int
	player  int
	leader  int
	trick   [maxPlayers]cards.Card
	played  int
	scores  [2]int // soloist's side, defenders
	history []step
	hi      int
}

type Option func(*Game)

// WithSoloist seats the maximizing player, 0 by default.
func WithSoloist(player int) Option {
	return func(g *Game) {
		g.soloist = player
	}
}

// WithLeader seats the player leading the first trick, 0 by default.
func WithLeader(player int) Option {
	return func(g *Game) {
		g.leader = player
	}
}

// WithSkat sets aside cards counted for the soloist.
func WithSkat(skat cards.Set) Option {
	return func(g *Game) {
		g.skat = skat
	}
}

var ErrInvalidDeal = errors.New("invalid deal")

// New prepares a position from the hands of every player.
func New(variant Variant, hands []cards.Set, options ...Option) (*Game, error) {
	g := &Game{variant: variant, players: variant.Players()}
	for _, option := range options {
		option(g)
	}
	if len(hands) != g.players {
		return nil, fmt.Errorf("%w: %s needs %d hands, got %d", ErrInvalidDeal, variant, g.players, len(hands))
	}
	if g.soloist < 0 || g.soloist >= g.players || g.leader < 0 || g.leader >= g.players {
		return nil, fmt.Errorf("%w: seat out of range", ErrInvalidDeal)
	}
	if g.skat.Len() != variant.SkatSize() {
		return nil, fmt.Errorf("%w: %s sets aside %d cards, got %d", ErrInvalidDeal, variant, variant.SkatSize(), g.skat.Len())
	}

	seen := g.skat
	for i, hand := range hands {
		if hand.Len() != hands[0].Len() {
			return nil, fmt.Errorf("%w: hand %d holds %d cards, hand 0 holds %d", ErrInvalidDeal, i, hand.Len(), hands[0].Len())
		}
		if seen&hand != 0 {
			return nil, fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, seen&hand)
		}
		seen |= hand
		g.hands[i] = hand
	}

	g.player = g.leader
	g.scores[0] = variant.cardPoints(g.skat)
	if variant == Bridge {
		g.hi = hands[0].Len()
	} else {
		g.hi = variant.cardPoints(seen)
	}
	return g, nil
}

// Parse reads hands written like "AsKs Qh".
func Parse(variant Variant, hands []string, options ...Option) (*Game, error) {
	sets := make([]cards.Set, len(hands))
	for i, h := range hands {
		set, err := cards.ParseSet(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDeal, err)
		}
		sets[i] = set
	}
	return New(variant, sets, options...)
}

// Deal shuffles a deck of perSuit kinds deterministically and deals it out.
// Skat deals leave two cards for the skat, so perSuit must be 2, 5 or 8.
func Deal(variant Variant, perSuit int, seed uint64, options ...Option) (*Game, error) {
	limit := cards.NumKinds
	if variant == Skat {
		limit = 8
	}
	size := perSuit*cards.NumSuits - variant.SkatSize()
	if perSuit < 1 || perSuit > limit || size%variant.Players() != 0 {
		return nil, fmt.Errorf("%w: %d cards per suit for %s", ErrInvalidDeal, perSuit, variant)
	}

	deck := cards.Deck(perSuit)
	cards.Shuffle(deck, seed)
	handSize := size / variant.Players()
	hands := make([]cards.Set, variant.Players())
	for i := range hands {
		hands[i] = cards.SetOf(deck[i*handSize : (i+1)*handSize]...)
	}
	if variant.SkatSize() > 0 {
		options = append([]Option{WithSkat(cards.SetOf(deck[size:]...))}, options...)
	}
	return New(variant, hands, options...)
}

func (g *Game) Variant() Variant          { return g.variant }
func (g *Game) Player() int               { return g.player }
func (g *Game) Soloist() int              { return g.soloist }
func (g *Game) Hand(player int) cards.Set { return g.hands[player] }
func (g *Game) Skat() cards.Set           { return g.skat }

// Trick lists the cards on the table in play order.
func (g *Game) Trick() []cards.Card {
	return append([]cards.Card(nil), g.trick[:g.played]...)
}

func (g *Game) side(player int) int {
	if g.variant == Bridge {
		if player%2 == g.soloist%2 {
			return 0
		}
		return 1
	}
	if player == g.soloist {
		return 0
	}
	return 1
}

func (g *Game) legal() cards.Set {
	hand := g.hands[g.player]
	if g.played == 0 {
		return hand
	}
	if follow := g.variant.members(hand, g.variant.suitOf(g.trick[0])); !follow.IsEmpty() {
		return follow
	}
	return hand
}

func (g *Game) LegalMoves() []cards.Card {
	return g.legal().Cards()
}

func (g *Game) Apply(card cards.Card) {
	if g.IsTerminal() || !g.legal().Has(card) {
		panic(fmt.Errorf("%w: %s by player %d", game.ErrIllegalMove, card, g.player))
	}
	g.history = append(g.history, step{
		card:   card,
		player: uint8(g.player),
		leader: uint8(g.leader),
		scores: g.scores,
	})
	g.hands[g.player] = g.hands[g.player].Remove(card)
	g.trick[g.played] = card
	g.played++

	if g.played < g.players {
		g.player = (g.player + 1) % g.players
		return
	}
	winner := g.winner()
	g.scores[g.side(winner)] += g.variant.points(g.trick[:g.players])
	g.leader = winner
	g.player = winner
	g.played = 0
}

func (g *Game) winner() int {
	lead := g.variant.suitOf(g.trick[0])
	best := 0
	for i := 1; i < g.players; i++ {
		if g.variant.strength(g.trick[i], lead) > g.variant.strength(g.trick[best], lead) {
			best = i
		}
	}
	return (g.leader + best) % g.players
}

func (g *Game) Undo(card cards.Card) {
	n := len(g.history)
	if n == 0 || g.history[n-1].card != card {
		panic(fmt.Errorf("%w: %s", game.ErrUndoMismatch, card))
	}
	last := g.history[n-1]
	g.history = g.history[:n-1]

	if g.played == 0 { // The card completed a trick
		for i, s := range g.history[len(g.history)-(g.players-1):] {
			g.trick[i] = s.card
		}
		g.played = g.players - 1
	} else {
		g.played--
	}
	g.player = int(last.player)
	g.leader = int(last.leader)
	g.scores = last.scores
	g.hands[g.player] = g.hands[g.player].Add(card)
}

func (g *Game) IsTerminal() bool {
	return g.hands[g.player].IsEmpty()
}

func (g *Game) IsMax() bool {
	return g.side(g.player) == 0
}

// Value is the score of the soloist's side so far.
func (g *Game) Value() int {
	return g.scores[0]
}

// OpponentValue is the score of the defenders so far.
func (g *Game) OpponentValue() int {
	return g.scores[1]
}

func (g *Game) ValueRange() (int, int) {
	return 0, g.hi
}

// IsCheckpoint marks the start of a trick.
func (g *Game) IsCheckpoint() bool {
	return g.played == 0
}

func (g *Game) Key() Key {
	var remaining cards.Set
	for _, h := range g.hands[:g.players] {
		remaining |= h
	}
	return Key{
		Remaining: remaining,
		Table:     cards.SetOf(g.trick[:g.played]...),
		Player:    uint8(g.player),
	}
}

// Order searches stronger cards first.
func (g *Game) Order(a, b cards.Card) int {
	return g.variant.rank(b) - g.variant.rank(a)
}

func (g *Game) Clone() *Game {
	c := *g
	c.history = append([]step(nil), g.history...)
	return &c
}

func (g *Game) String() string {
	var sb strings.Builder
	for p := 0; p < g.players; p++ {
		marker := ' '
		if p == g.player {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%c%d: %s\n", marker, p, g.hands[p])
	}
	fmt.Fprintf(&sb, " table: %s score: %d-%d", cards.SetOf(g.trick[:g.played]...), g.scores[0], g.scores[1])
	return sb.String()
}

var (
	_ game.Game[cards.Card, Key, int] = (*Game)(nil)
	_ game.Ranged[int]                = (*Game)(nil)
	_ game.OpponentScorer[int]        = (*Game)(nil)
	_ game.Checkpointer               = (*Game)(nil)
)
