package engine

import (
	"cmp"
	"context"
	"fmt"
	"golv/game"
	"golv/searcher"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type MoveValue[M comparable, V game.Value] struct {
	Move  M
	Value V
}

// Analyze values every legal move of g by bisection, each on its own clone.
// The result is ordered best first for the side to move, ties in search
// order. g itself is only read.
func Analyze[M comparable, K comparable, V game.Value](ctx context.Context, g game.Game[M, K, V], clone func() game.Game[M, K, V], order game.Ordering[M], options ...Option) ([]MoveValue[M, V], error) {
	if _, ok := g.(game.Ranged[V]); !ok {
		return nil, fmt.Errorf("%w: %T", searcher.ErrUnranged, g)
	}
	if g.IsTerminal() {
		return nil, nil
	}
	s := newSettings(options)

	moves := g.LegalMoves()
	if order != nil {
		slices.SortStableFunc(moves, order)
	}
	values := make([]MoveValue[M, V], len(moves))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, move := range moves {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			c := clone()
			c.Apply(move)
			v, _ := searcher.Bisect(c, order, searcher.WithLogger(s.logger))
			values[i] = MoveValue[M, V]{Move: move, Value: v}
			s.logger.Debug().Any("move", move).Int64("value", int64(v)).Msg("analyzed")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	isMax := g.IsMax()
	slices.SortStableFunc(values, func(a, b MoveValue[M, V]) int {
		if isMax {
			return cmp.Compare(b.Value, a.Value)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return values, nil
}

type Ranked[T any, V game.Value] struct {
	Candidate T
	Value     V
}

// RankOptions solves independent candidates concurrently and orders them by
// value, highest first, ties in candidate order.
func RankOptions[T any, V game.Value](ctx context.Context, candidates []T, solve func(context.Context, T) (V, error), options ...Option) ([]Ranked[T, V], error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	s := newSettings(options)

	ranked := make([]Ranked[T, V], len(candidates))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, candidate := range candidates {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := solve(egCtx, candidate)
			if err != nil {
				return fmt.Errorf("failed to solve candidate %d: %w", i, err)
			}
			ranked[i] = Ranked[T, V]{Candidate: candidate, Value: v}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(ranked, func(a, b Ranked[T, V]) int { return cmp.Compare(b.Value, a.Value) })
	s.logger.Info().Int("candidates", len(ranked)).Int64("best", int64(ranked[0].Value)).Msg("ranked options")
	return ranked, nil
}
