// Package cards models a French-suited deck trimmed to any number of kinds
// per suit, counted from the ace downward.
package cards

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/rand"
)

type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const NumSuits = 4

type Kind uint8

const (
	Ace Kind = iota
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Deuce
)

const NumKinds = 13

const (
	suitLetters = "shdc"
	kindLetters = "AKQJT98765432"
)

// Card packs a suit and a kind into one index below 64.
type Card uint8

func New(s Suit, k Kind) Card {
	return Card(uint8(s)*NumKinds + uint8(k))
}

func (c Card) Suit() Suit { return Suit(uint8(c) / NumKinds) }
func (c Card) Kind() Kind { return Kind(uint8(c) % NumKinds) }

func (c Card) String() string {
	return string([]byte{kindLetters[c.Kind()], suitLetters[c.Suit()]})
}

func (s Suit) String() string {
	return string(suitLetters[s])
}

// Parse reads a card such as "As" or "Td".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	k := strings.IndexByte(kindLetters, s[0])
	su := strings.IndexByte(suitLetters, s[1])
	if k < 0 || su < 0 {
		return 0, fmt.Errorf("invalid card %q", s)
	}
	return New(Suit(su), Kind(k)), nil
}

// Set is a set of cards.
type Set uint64

func SetOf(cards ...Card) Set {
	var s Set
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// ParseSet reads cards written back to back or separated by spaces, such as
// "AsKh Td".
func ParseSet(s string) (Set, error) {
	compact := strings.Join(strings.Fields(s), "")
	if len(compact)%2 != 0 {
		return 0, fmt.Errorf("invalid hand %q", s)
	}
	var set Set
	for i := 0; i < len(compact); i += 2 {
		c, err := Parse(compact[i : i+2])
		if err != nil {
			return 0, fmt.Errorf("invalid hand %q: %w", s, err)
		}
		if set.Has(c) {
			return 0, fmt.Errorf("invalid hand %q: duplicate %s", s, c)
		}
		set = set.Add(c)
	}
	return set, nil
}

func (s Set) Has(c Card) bool   { return s&(1<<c) != 0 }
func (s Set) Add(c Card) Set    { return s | 1<<c }
func (s Set) Remove(c Card) Set { return s &^ (1 << c) }
func (s Set) Len() int          { return bits.OnesCount64(uint64(s)) }
func (s Set) IsEmpty() bool     { return s == 0 }

// OfSuit keeps the cards of one suit.
func (s Set) OfSuit(suit Suit) Set {
	return s & (Set(1<<NumKinds-1) << (uint(suit) * NumKinds))
}

// Cards lists the set by suit, highest kind first.
func (s Set) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(rest)))
	}
	return cards
}

func (s Set) String() string {
	var sb strings.Builder
	for i, c := range s.Cards() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Deck holds the top perSuit kinds of every suit.
func Deck(perSuit int) []Card {
	if perSuit < 1 || perSuit > NumKinds {
		panic(fmt.Sprintf("invalid number of cards per suit: %d", perSuit))
	}
	deck := make([]Card, 0, perSuit*NumSuits)
	for s := Suit(0); s < NumSuits; s++ {
		for k := Kind(0); k < Kind(perSuit); k++ {
			deck = append(deck, New(s, k))
		}
	}
	return deck
}

// Shuffle permutes cards deterministically for a seed.
func Shuffle(cards []Card, seed uint64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
