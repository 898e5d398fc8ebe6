// Package experiments solves batches of seeded trick-taking deals with every
// driver and records how much work each one did.
package experiments

import (
	"context"
	"errors"
	"fmt"
	"golv/config"
	"golv/experiments/metrics"
	"golv/game/cards"
	"golv/game/tricks"
	"golv/memo"
	"golv/searcher"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrDisagreement = errors.New("drivers disagree")

type Report struct {
	Deals    []metrics.DealRecord
	Searches []metrics.SearchRecord
}

type Option func(*settings)

type settings struct {
	logger   zerolog.Logger
	counters *metrics.Counters
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithCounters publishes every search to prometheus counters.
func WithCounters(counters *metrics.Counters) Option {
	return func(s *settings) {
		s.counters = counters
	}
}

func (s *settings) collector() metrics.Collector {
	if s.counters != nil {
		return metrics.NewPrometheusCollector(s.counters)
	}
	return metrics.NewCollector()
}

// Run solves cfg.Experiment.Deals deals, seeded consecutively from
// cfg.Experiment.Seed, with every driver on its own copy of the deal. Deals
// are solved concurrently; a deal on which two drivers disagree fails the run.
func Run(ctx context.Context, cfg *config.Config, options ...Option) (*Report, error) {
	s := settings{logger: zerolog.Nop()}
	for _, option := range options {
		option(&s)
	}

	variant, err := tricks.ParseVariant(cfg.Experiment.Variant)
	if err != nil {
		return nil, err
	}

	n := cfg.Experiment.Deals
	deals := make([]metrics.DealRecord, n)
	searches := make([][]metrics.SearchRecord, n)

	s.logger.Info().
		Str("variant", variant.String()).
		Int("cards_per_suit", cfg.Experiment.CardsPerSuit).
		Int("deals", n).
		Msg("starting experiment")

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Experiment.Concurrency)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			seed := cfg.Experiment.Seed + uint64(i)
			soloist := i % variant.Players()
			g, err := tricks.Deal(variant, cfg.Experiment.CardsPerSuit, seed, tricks.WithSoloist(soloist))
			if err != nil {
				return fmt.Errorf("failed to deal %d: %w", i, err)
			}

			record, runs, err := solve(g, cfg.Search, &s)
			if err != nil {
				return fmt.Errorf("deal %d (seed %d): %w", i, seed, err)
			}
			record.ID = i + 1
			record.Variant = variant.String()
			record.CardsPerSuit = cfg.Experiment.CardsPerSuit
			record.Seed = seed
			record.Soloist = soloist
			for j := range runs {
				runs[j].Deal = record.ID
			}
			deals[i] = record
			searches[i] = runs

			s.logger.Info().
				Int("deal", record.ID).
				Uint64("seed", seed).
				Int("value", record.Value).
				Str("move", record.Move).
				Msg("solved deal")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Deals: deals}
	for _, runs := range searches {
		report.Searches = append(report.Searches, runs...)
	}
	s.logger.Info().Int("deals", n).Msg("completed experiment")
	return report, nil
}

// solve runs every driver over its own clone of g.
func solve(g *tricks.Game, cfg config.SearchConfig, s *settings) (metrics.DealRecord, []metrics.SearchRecord, error) {
	var order func(a, b cards.Card) int
	if cfg.Ordering {
		order = g.Order
	}
	lo, hi := g.ValueRange()

	type run struct {
		driver string
		solve  func(g *tricks.Game, m metrics.Collector) int
	}
	drivers := []run{
		{"alphabeta", func(c *tricks.Game, m metrics.Collector) int {
			v, _ := searcher.SolveFullWindow(c, order, newTable(cfg.TableSize), searcher.WithMetrics(m), searcher.WithLogger(s.logger))
			return v
		}},
		{"negamax", func(c *tricks.Game, m metrics.Collector) int {
			return searcher.SolveSymmetric(c, order, newTable(cfg.TableSize), searcher.WithMetrics(m), searcher.WithLogger(s.logger))
		}},
		{"mtd", func(c *tricks.Game, m metrics.Collector) int {
			return searcher.Refine(c, lo+(hi-lo)/2, lo, hi, order, newTable(cfg.TableSize), searcher.WithMetrics(m), searcher.WithLogger(s.logger))
		}},
	}

	var records []metrics.SearchRecord
	values := map[string]int{}
	for _, d := range drivers {
		m := s.collector()
		values[d.driver] = d.solve(g.Clone(), m)
		records = append(records, metrics.SearchRecord{SearchMetric: m.Complete()})
	}

	m := s.collector()
	table := newFrontierTable(cfg.TableSize)
	v, move := searcher.BisectWithTable(g.Clone(), table, order, searcher.WithMetrics(m), searcher.WithLogger(s.logger))
	memo.Report(s.logger, "bisect", table)
	values["bisect"] = v
	records = append(records, metrics.SearchRecord{SearchMetric: m.Complete()})

	for driver, got := range values {
		if got != v {
			return metrics.DealRecord{}, nil, fmt.Errorf("%w: %s found %d, bisect found %d", ErrDisagreement, driver, got, v)
		}
	}
	return metrics.DealRecord{Value: v, Move: move.String()}, records, nil
}

func newTable(size int) memo.Table[tricks.Key, int] {
	if size > 0 {
		return memo.NewBoundedTable[tricks.Key, int](size, memo.WithPolicy(memo.Checkpoints))
	}
	return memo.NewTable[tricks.Key, int](memo.WithPolicy(memo.Checkpoints))
}

func newFrontierTable(size int) memo.FrontierTable[tricks.Key, int] {
	if size > 0 {
		return memo.NewBoundedFrontierTable[tricks.Key, int](size)
	}
	return memo.NewFrontierTable[tricks.Key, int]()
}

// Save writes the report into a fresh run directory under baseDir and
// returns that directory.
func Save(baseDir string, report *Report) (string, error) {
	w, err := metrics.NewWriter(baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := w.WriteDeals(report.Deals); err != nil {
		return "", fmt.Errorf("failed to store deals: %w", err)
	}
	if err := w.WriteSearches(report.Searches); err != nil {
		return "", fmt.Errorf("failed to store searches: %w", err)
	}
	return w.Dir(), nil
}
