package searcher

import (
	"golv/game"
	"golv/memo"
)

// Refine converges on the value of g with narrow-window probes around a
// guess, given that the value lies in [lower, upper]. All probes share one
// table; a nil table gets a fresh one.
func Refine[M comparable, K comparable, V game.Value](g game.Game[M, K, V], guess, lower, upper V, order game.Ordering[M], table memo.Table[K, V], options ...Option) V {
	if table == nil {
		table = memo.NewTable[K, V]()
	}
	s := NewAlphaBeta(g, order, table, options...)
	s.metrics.Start("mtd")
	defer s.complete()

	if lower >= upper {
		return lower
	}
	v := guess
	for lower < upper {
		beta := max(v, lower+1)
		v = s.Probe(beta)
		if v < beta {
			upper = v
		} else {
			lower = v
		}
		s.logger.Debug().
			Int64("beta", int64(beta)).
			Int64("lower", int64(lower)).
			Int64("upper", int64(upper)).
			Msg("refined")
	}
	return v
}
