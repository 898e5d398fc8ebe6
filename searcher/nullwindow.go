package searcher

import (
	"golv/game"
	"golv/memo"
)

// NullWindow answers whether the final value of a position exceeds a bound.
//
// Its table records "bound minus value" frontiers, so one table serves probes
// at any bound. Games with accumulating scores (game.OpponentScorer) are
// decided as soon as either side's running score settles the question.
type NullWindow[M comparable, K comparable, V game.Value] struct {
	settings
	game    game.Game[M, K, V]
	table   memo.FrontierTable[K, V]
	order   game.Ordering[M]
	scorer  game.OpponentScorer[V]
	hi      V
	ranged  bool
	best    M
	decided bool
}

func NewNullWindow[M comparable, K comparable, V game.Value](g game.Game[M, K, V], table memo.FrontierTable[K, V], order game.Ordering[M], options ...Option) *NullWindow[M, K, V] {
	if table == nil {
		table = memo.NullFrontier[K, V]{}
	}
	s := &NullWindow[M, K, V]{
		settings: newSettings(options),
		game:     g,
		table:    table,
		order:    order,
	}
	if scorer, ok := g.(game.OpponentScorer[V]); ok {
		s.scorer = scorer
	}
	if r, ok := g.(game.Ranged[V]); ok {
		_, s.hi = r.ValueRange()
		s.ranged = true
	}
	return s
}

// Solve reports whether the value of the position is greater than bound.
func (s *NullWindow[M, K, V]) Solve(bound V) bool {
	s.metrics.AddProbe()
	s.decided = false
	return s.search(bound, 0)
}

// BestMove is the root move that decided the last probe. The second result is
// false when the root was decided without a move (every move agrees).
func (s *NullWindow[M, K, V]) BestMove() (M, bool) {
	return s.best, s.decided
}

func (s *NullWindow[M, K, V]) search(bound V, depth int) bool {
	s.metrics.AddNode()
	g := s.game
	if s.scorer != nil {
		if g.Value() > bound {
			return true
		}
		if s.ranged && s.scorer.OpponentValue() >= s.hi-bound {
			return false
		}
	}
	if g.IsTerminal() {
		return g.Value() > bound
	}

	memorable := depth > 0 && s.table.Memorable(g)
	var key K
	if memorable {
		key = g.Key()
		frontier := s.table.Get(key)
		remaining := bound - g.Value()
		if remaining <= frontier.Lower {
			s.metrics.AddTableHit()
			return true
		}
		if remaining >= frontier.Upper {
			s.metrics.AddTableHit()
			return false
		}
	}

	isMax := g.IsMax()
	for _, move := range legalMoves(g, s.order) {
		g.Apply(move)
		greater := s.search(bound, depth+1)
		g.Undo(move)

		if greater == isMax {
			s.metrics.AddCutoff()
			if memorable {
				s.tighten(key, bound-g.Value(), isMax)
			}
			if depth == 0 {
				s.best = move
				s.decided = true
			}
			return greater
		}
	}

	if memorable {
		s.tighten(key, bound-g.Value(), !isMax)
	}
	return !isMax
}

// tighten records that the remaining value is greater than remaining (greater)
// or at most remaining (!greater).
func (s *NullWindow[M, K, V]) tighten(key K, remaining V, greater bool) {
	if greater {
		s.table.UpdateLower(key, remaining)
	} else {
		s.table.UpdateUpper(key, remaining)
	}
}

// SolveNullWindow is the one-shot form of NullWindow.
func SolveNullWindow[M comparable, K comparable, V game.Value](g game.Game[M, K, V], bound V, table memo.FrontierTable[K, V], order game.Ordering[M], options ...Option) (bool, M) {
	s := NewNullWindow(g, table, order, options...)
	s.metrics.Start("nullwindow")
	greater := s.Solve(bound)
	s.complete()
	move, _ := s.BestMove()
	return greater, move
}
