package searcher

import (
	"fmt"
	"golv/game"
	"golv/game/cards"
	"golv/game/tricks"
	"golv/memo"
	"testing"

	"github.com/stretchr/testify/require"
)

// deal is a trick-taking position with its known value and the opening moves
// that achieve it.
type deal struct {
	name    string
	variant tricks.Variant
	hands   []string
	skat    string
	soloist int
	value   int
	optimal []string
}

var deals = []deal{
	{
		name:    "three-card bridge",
		variant: tricks.Bridge,
		hands:   []string{"Ah Ac Qc", "Kh Ad Kd", "Qs Qh Qd", "As Ks Kc"},
		value:   3,
		optimal: []string{"Ah", "Ac"},
	},
	{
		name:    "three-card bridge defended from the lead",
		variant: tricks.Bridge,
		hands:   []string{"Ks Qd Ac", "Qs Qh Kc", "Ah Kh Kd", "As Ad Qc"},
		soloist: 1,
		value:   2,
		optimal: []string{"Ks", "Qd", "Ac"},
	},
	{
		name:    "five-card bridge",
		variant: tricks.Bridge,
		hands:   []string{"Ah Th Kd Qc Tc", "As Ks Kh Ac Kc", "Qh Ad Qd Jd Td", "Qs Js Ts Jh Jc"},
		value:   5,
		optimal: []string{"Ah", "Kd"},
	},
	{
		name:    "five-card bridge defended from the lead",
		variant: tricks.Bridge,
		hands:   []string{"As Ad Td Kc Jc", "Qs Js Th Kd Qc", "Ts Ah Kh Qh Tc", "Ks Jh Qd Jd Ac"},
		soloist: 1,
		value:   2,
		optimal: []string{"As", "Ad", "Td", "Kc", "Jc"},
	},
	{
		name:    "two-card skat",
		variant: tricks.Skat,
		hands:   []string{"Ks Ad", "Ah Kd", "As Kh"},
		skat:    "Kc Ac",
		value:   34,
		optimal: []string{"Ad"},
	},
	{
		name:    "five-card skat",
		variant: tricks.Skat,
		hands:   []string{"As Ad Td Kc Qc Jc", "Qs Js Ah Qh Th Kd", "Ks Ts Kh Jh Ac Tc"},
		skat:    "Jd Qd",
		value:   71,
		optimal: []string{"As", "Jc"},
	},
	{
		name:    "five-card skat with the soloist in third seat",
		variant: tricks.Skat,
		hands:   []string{"As Ah Th Kd Qc Tc", "Ks Kh Ad Jd Ac Kc", "Qs Js Qh Jh Qd Td"},
		skat:    "Jc Ts",
		soloist: 2,
		value:   44,
		optimal: []string{"As", "Ah", "Th", "Qc", "Tc"},
	},
}

func (d deal) game(t *testing.T) *tricks.Game {
	t.Helper()
	options := []tricks.Option{tricks.WithSoloist(d.soloist)}
	if d.skat != "" {
		skat, err := cards.ParseSet(d.skat)
		require.NoError(t, err)
		options = append(options, tricks.WithSkat(skat))
	}
	g, err := tricks.Parse(d.variant, d.hands, options...)
	require.NoError(t, err)
	return g
}

func (d deal) optimalMoves(t *testing.T) []cards.Card {
	t.Helper()
	moves := make([]cards.Card, len(d.optimal))
	for i, s := range d.optimal {
		c, err := cards.Parse(s)
		require.NoError(t, err)
		moves[i] = c
	}
	return moves
}

// seededDeals are random positions on which the drivers must agree.
func seededDeals(t *testing.T) map[string]*tricks.Game {
	t.Helper()
	games := map[string]*tricks.Game{}
	for seed := uint64(0); seed < 6; seed++ {
		for _, soloist := range []int{0, 1} {
			b, err := tricks.Deal(tricks.Bridge, 4, seed, tricks.WithSoloist(soloist))
			require.NoError(t, err)
			games[fmt.Sprintf("bridge/%d/%d", seed, soloist)] = b

			s, err := tricks.Deal(tricks.Skat, 5, seed, tricks.WithSoloist(soloist))
			require.NoError(t, err)
			games[fmt.Sprintf("skat/%d/%d", seed, soloist)] = s
		}
	}
	return games
}

// valueAfter is the exact value once move is played.
func valueAfter[M comparable, K comparable, V game.Value](g game.Game[M, K, V], move M) V {
	g.Apply(move)
	defer g.Undo(move)
	return NewAlphaBeta(g, nil, memo.NewTable[K, V](memo.WithPolicy(memo.Everything))).Solve()
}
