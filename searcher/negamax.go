package searcher

import (
	"golv/game"
	"golv/memo"
)

// Negamax is a fail-soft search over values signed for the side to move. The
// side to move need not alternate: a child of the same side keeps its sign.
//
// Its table records side-relative values and must not be shared with an
// AlphaBeta search.
type Negamax[M comparable, K comparable, V game.Value] struct {
	settings
	game  game.Game[M, K, V]
	order game.Ordering[M]
	table memo.Table[K, V]
	best  M
}

func NewNegamax[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M], table memo.Table[K, V], options ...Option) *Negamax[M, K, V] {
	if table == nil {
		table = memo.Null[K, V]{}
	}
	return &Negamax[M, K, V]{
		settings: newSettings(options),
		game:     g,
		order:    order,
		table:    table,
	}
}

// Solve returns the same absolute value as AlphaBeta.Solve.
func (s *Negamax[M, K, V]) Solve() V {
	s.metrics.Start("negamax")
	base := s.game.Value()
	v := s.search(memo.MinValue[V](), memo.MaxValue[V](), 0)
	s.complete()
	if s.game.IsMax() {
		return base + v
	}
	return base - v
}

func (s *Negamax[M, K, V]) BestMove() M {
	return s.best
}

func (s *Negamax[M, K, V]) search(alpha, beta V, depth int) V {
	s.metrics.AddNode()
	g := s.game
	if g.IsTerminal() {
		return 0
	}

	oldAlpha := alpha
	memorable := depth > 0 && s.table.Memorable(g)
	var key K
	if memorable {
		key = g.Key()
		record := s.table.Get(key)
		switch {
		case record.Kind == memo.Exact,
			record.Kind == memo.Lower && record.Value >= beta,
			record.Kind == memo.Upper && record.Value <= alpha:
			s.metrics.AddTableHit()
			return record.Value
		}
	}

	base := g.Value()
	isMax := g.IsMax()
	sign := V(1)
	if !isMax {
		sign = -1
	}

	best := memo.MinValue[V]()
	for _, move := range legalMoves(g, s.order) {
		g.Apply(move)
		delta := sign * (g.Value() - base)
		var v V
		if g.IsMax() == isMax {
			v = delta + s.search(alpha-delta, beta-delta, depth+1)
		} else {
			v = delta - s.search(delta-beta, delta-alpha, depth+1)
		}
		g.Undo(move)

		if v > best {
			best = v
			if depth == 0 {
				s.best = move
			}
		}
		alpha = max(alpha, v)
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}

	if memorable {
		kind := memo.Exact
		switch {
		case best <= oldAlpha:
			kind = memo.Upper
		case best >= beta:
			kind = memo.Lower
		}
		s.table.Set(key, memo.Bound[V]{Kind: kind, Value: best})
	}
	return best
}

// SolveSymmetric is the one-shot form of Negamax.
func SolveSymmetric[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M], table memo.Table[K, V], options ...Option) V {
	return NewNegamax(g, order, table, options...).Solve()
}
