package searcher

import (
	"golv/game"
	"golv/memo"
)

// AlphaBeta is a fail-hard full-window search over the maximizer's score.
type AlphaBeta[M comparable, K comparable, V game.Value] struct {
	settings
	game  game.Game[M, K, V]
	order game.Ordering[M]
	table memo.Table[K, V]
	best  M
}

// NewAlphaBeta prepares a search of g. A nil order keeps the game's move
// order; a nil table memoizes nothing.
func NewAlphaBeta[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M], table memo.Table[K, V], options ...Option) *AlphaBeta[M, K, V] {
	if table == nil {
		table = memo.Null[K, V]{}
	}
	return &AlphaBeta[M, K, V]{
		settings: newSettings(options),
		game:     g,
		order:    order,
		table:    table,
	}
}

// Solve returns the exact value of the position: the score accumulated so
// far plus the best achievable remainder.
func (s *AlphaBeta[M, K, V]) Solve() V {
	s.metrics.Start("alphabeta")
	base := s.game.Value()
	v := base + s.search(memo.MinValue[V](), memo.MaxValue[V](), 0)
	s.complete()
	return v
}

// Probe searches the window (beta-1, beta) around the absolute value. The
// result is below beta exactly when the value is.
func (s *AlphaBeta[M, K, V]) Probe(beta V) V {
	s.metrics.AddProbe()
	base := s.game.Value()
	return base + s.search(beta-1-base, beta-base, 0)
}

// BestMove is the root move of the last search that achieved its result.
func (s *AlphaBeta[M, K, V]) BestMove() M {
	return s.best
}

func (s *AlphaBeta[M, K, V]) search(alpha, beta V, depth int) V {
	s.metrics.AddNode()
	g := s.game
	if g.IsTerminal() {
		return 0
	}

	oldAlpha, oldBeta := alpha, beta
	memorable := depth > 0 && s.table.Memorable(g)
	var key K
	if memorable {
		key = g.Key()
		record := s.table.Get(key)
		switch record.Kind {
		case memo.Exact:
			s.metrics.AddTableHit()
			return record.Value
		case memo.Lower:
			alpha = max(alpha, record.Value)
		case memo.Upper:
			beta = min(beta, record.Value)
		}
		if alpha >= beta {
			s.metrics.AddTableHit()
			if g.IsMax() {
				return alpha
			}
			return beta
		}
	}

	base := g.Value()
	isMax := g.IsMax()
	optimum := memo.MaxValue[V]()
	if isMax {
		optimum = memo.MinValue[V]()
	}

	for _, move := range legalMoves(g, s.order) {
		g.Apply(move)
		delta := g.Value() - base
		v := delta + s.search(alpha-delta, beta-delta, depth+1)
		g.Undo(move)

		if isMax {
			if v > optimum {
				optimum = v
				if depth == 0 {
					s.best = move
				}
			}
			alpha = max(alpha, v)
			if alpha >= beta {
				s.metrics.AddCutoff()
				if memorable {
					s.table.Set(key, memo.Bound[V]{Kind: memo.Lower, Value: v})
				}
				return alpha
			}
		} else {
			if v < optimum {
				optimum = v
				if depth == 0 {
					s.best = move
				}
			}
			beta = min(beta, v)
			if alpha >= beta {
				s.metrics.AddCutoff()
				if memorable {
					s.table.Set(key, memo.Bound[V]{Kind: memo.Upper, Value: v})
				}
				return beta
			}
		}
	}

	if memorable && oldAlpha < optimum && optimum < oldBeta {
		s.table.Set(key, memo.Bound[V]{Kind: memo.Exact, Value: optimum})
	}
	return optimum
}

// SolveFullWindow is the one-shot form of AlphaBeta.
func SolveFullWindow[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M], table memo.Table[K, V], options ...Option) (V, M) {
	s := NewAlphaBeta(g, order, table, options...)
	v := s.Solve()
	return v, s.BestMove()
}
