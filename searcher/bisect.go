package searcher

import (
	"fmt"
	"golv/game"
	"golv/memo"
)

// Bisect finds the value and an optimal move of a ranged game by bisecting
// its value range with null-window probes over one shared frontier table.
func Bisect[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M], options ...Option) (V, M) {
	return BisectWithTable(g, memo.NewFrontierTable[K, V](), order, options...)
}

// BisectWithTable is Bisect over a caller's table.
//
// The value is kept in (start, end], starting from (lo-1, hi]. A probe at mid
// that answers "greater" moves start up to mid, otherwise end comes down to
// mid. The move kept is the one that decided the root in the latest probe
// going the root player's way; when no probe did, every move achieves the
// value and the first one in search order is returned.
func BisectWithTable[M comparable, K comparable, V game.Value](g game.Game[M, K, V], table memo.FrontierTable[K, V], order game.Ordering[M], options ...Option) (V, M) {
	r, ok := g.(game.Ranged[V])
	if !ok {
		panic(fmt.Errorf("%w: %T", ErrUnranged, g))
	}
	lo, hi := r.ValueRange()

	s := NewNullWindow(g, table, order, options...)
	s.metrics.Start("bisect")
	defer s.complete()

	isMax := g.IsMax()
	start, end := lo-1, hi
	var best M
	found := false
	for end-start > 1 {
		mid := start + (end-start)/2
		greater := s.Solve(mid)
		if greater == isMax {
			if move, decided := s.BestMove(); decided {
				best = move
				found = true
			}
		}
		if greater {
			start = mid
		} else {
			end = mid
		}
		s.logger.Debug().
			Int64("bound", int64(mid)).
			Bool("greater", greater).
			Int64("start", int64(start)).
			Int64("end", int64(end)).
			Msg("probed")
	}

	if !found && !g.IsTerminal() {
		best = legalMoves(g, order)[0]
	}
	return end, best
}
