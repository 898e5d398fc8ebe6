package tricks

import (
	"fmt"
	"golv/game/cards"
)

// Push is one way for the skat soloist to set cards aside after picking up
// the skat, with the position it leads to.
type Push struct {
	Discard cards.Set
	Game    *Game
}

// Pushes lists every choice of discard for the soloist holding their hand
// plus skat, in card order.
func Pushes(hands []cards.Set, skat cards.Set, options ...Option) ([]Push, error) {
	seats := &Game{}
	for _, option := range options {
		option(seats)
	}
	if seats.soloist < 0 || seats.soloist >= len(hands) {
		return nil, fmt.Errorf("%w: soloist %d out of range", ErrInvalidDeal, seats.soloist)
	}
	if skat.Len() != Skat.SkatSize() {
		return nil, fmt.Errorf("%w: skat holds %d cards", ErrInvalidDeal, skat.Len())
	}
	if hands[seats.soloist]&skat != 0 {
		return nil, fmt.Errorf("%w: %s both in hand and skat", ErrInvalidDeal, hands[seats.soloist]&skat)
	}

	full := hands[seats.soloist] | skat
	held := full.Cards()
	var pushes []Push
	for i := range held {
		for j := i + 1; j < len(held); j++ {
			discard := cards.SetOf(held[i], held[j])
			dealt := append([]cards.Set(nil), hands...)
			dealt[seats.soloist] = full &^ discard
			g, err := New(Skat, dealt, append(options[:len(options):len(options)], WithSkat(discard))...)
			if err != nil {
				return nil, err
			}
			pushes = append(pushes, Push{Discard: discard, Game: g})
		}
	}
	return pushes, nil
}
