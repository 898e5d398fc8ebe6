// Package searcher solves perfect-information games exactly.
//
// All searches mutate the game in place through Apply and Undo and leave it
// in its starting position when they return. None of them is safe for
// concurrent use; run independent searches on independent games.
package searcher

import (
	"errors"
	"fmt"
	"golv/experiments/metrics"
	"golv/game"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

var ErrUnranged = errors.New("game does not report a value range")

type Option func(*settings)

type settings struct {
	logger  zerolog.Logger
	metrics metrics.Collector
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		logger:  zerolog.Nop(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) complete() metrics.SearchMetric {
	metric := s.metrics.Complete()
	s.logger.Debug().
		Str("driver", metric.Driver).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("table_hits", metric.TableHits).
		Int("probes", metric.Probes).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return metric
}

// legalMoves returns the moves of a non-terminal position in search order.
func legalMoves[M comparable, K comparable, V game.Value](g game.Game[M, K, V], order game.Ordering[M]) []M {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic(fmt.Errorf("%w: non-terminal position", game.ErrNoMoves))
	}
	if order != nil {
		slices.SortStableFunc(moves, order)
	}
	return moves
}
