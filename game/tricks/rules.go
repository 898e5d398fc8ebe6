package tricks

import (
	"fmt"
	"golv/game/cards"
	"strings"
)

type Variant uint8

const (
	// Bridge is played by four seats in two partnerships without trumps; each
	// trick counts one point.
	Bridge Variant = iota
	// Skat is a grand: three players, the four jacks are the only trumps and
	// the soloist plays alone, counting card points.
	Skat
)

func (v Variant) String() string {
	switch v {
	case Bridge:
		return "bridge"
	case Skat:
		return "skat"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "bridge":
		return Bridge, nil
	case "skat":
		return Skat, nil
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

func (v Variant) Players() int {
	if v == Skat {
		return 3
	}
	return 4
}

// SkatSize is the number of cards set aside before play.
func (v Variant) SkatSize() int {
	if v == Skat {
		return 2
	}
	return 0
}

// trump is the effective suit of skat jacks.
const trump = cards.Suit(cards.NumSuits)

var eyes = [cards.NumKinds]int{
	cards.Ace:   11,
	cards.Ten:   10,
	cards.King:  4,
	cards.Queen: 3,
	cards.Jack:  2,
}

// skatOrder ranks the plain cards of a suit in skat, lowest first.
var skatOrder = [...]cards.Kind{
	cards.Deuce, cards.Three, cards.Four, cards.Five, cards.Six, cards.Seven,
	cards.Eight, cards.Nine, cards.Queen, cards.King, cards.Ten, cards.Ace,
}

var skatRank = func() [cards.NumKinds]int {
	var rank [cards.NumKinds]int
	for i, k := range skatOrder {
		rank[k] = i + 1
	}
	return rank
}()

// jackRank orders the trumps: clubs, spades, hearts, diamonds.
var jackRank = [cards.NumSuits]int{
	cards.Clubs:    4,
	cards.Spades:   3,
	cards.Hearts:   2,
	cards.Diamonds: 1,
}

func (v Variant) suitOf(c cards.Card) cards.Suit {
	if v == Skat && c.Kind() == cards.Jack {
		return trump
	}
	return c.Suit()
}

// members keeps the cards of hand whose effective suit is suit.
func (v Variant) members(hand cards.Set, suit cards.Suit) cards.Set {
	if v != Skat {
		return hand.OfSuit(suit)
	}
	var jacks cards.Set
	for s := cards.Suit(0); s < cards.NumSuits; s++ {
		jacks = jacks.Add(cards.New(s, cards.Jack))
	}
	if suit == trump {
		return hand & jacks
	}
	return hand.OfSuit(suit) &^ jacks
}

// strength of c in a trick led with suit lead; cards that cannot win score 0.
func (v Variant) strength(c cards.Card, lead cards.Suit) int {
	if v == Skat {
		if c.Kind() == cards.Jack {
			return 100 + jackRank[c.Suit()]
		}
		if c.Suit() != lead {
			return 0
		}
		return skatRank[c.Kind()]
	}
	if c.Suit() != lead {
		return 0
	}
	return cards.NumKinds - int(c.Kind())
}

// points a completed trick is worth.
func (v Variant) points(trick []cards.Card) int {
	if v == Bridge {
		return 1
	}
	total := 0
	for _, c := range trick {
		total += eyes[c.Kind()]
	}
	return total
}

func (v Variant) cardPoints(set cards.Set) int {
	if v == Bridge {
		return 0
	}
	return v.points(set.Cards())
}

// rank is a static strength used to order moves, strongest first.
func (v Variant) rank(c cards.Card) int {
	return v.strength(c, c.Suit())
}
