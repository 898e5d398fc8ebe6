package experiments

import (
	"context"
	"golv/config"
	"golv/experiments/metrics"
	"golv/game/tricks"
	"golv/memo"
	"golv/searcher"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func experimentConfig(variant string, cardsPerSuit, deals int) *config.Config {
	cfg := config.Default()
	cfg.Experiment.Variant = variant
	cfg.Experiment.CardsPerSuit = cardsPerSuit
	cfg.Experiment.Deals = deals
	cfg.Experiment.Seed = 3
	cfg.Experiment.Concurrency = 2
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("every driver solves every deal", func(t *testing.T) {
		cfg := experimentConfig("bridge", 4, 6)

		report, err := Run(context.Background(), cfg)

		require.NoError(t, err)
		require.Len(t, report.Deals, 6)
		require.Len(t, report.Searches, 24)
		for i, d := range report.Deals {
			require.Equal(t, i+1, d.ID)
			require.Equal(t, uint64(3+i), d.Seed)
			require.Equal(t, i%4, d.Soloist)

			g, err := tricks.Deal(tricks.Bridge, 4, d.Seed, tricks.WithSoloist(d.Soloist))
			require.NoError(t, err)
			want, _ := searcher.SolveFullWindow(g, nil, memo.NewTable[tricks.Key, int]())
			require.Equal(t, want, d.Value)
		}

		drivers := map[string]int{}
		for _, s := range report.Searches {
			drivers[s.Driver]++
			require.Positive(t, s.Nodes)
		}
		require.Equal(t, map[string]int{"alphabeta": 6, "negamax": 6, "mtd": 6, "bisect": 6}, drivers)
	})

	t.Run("skat deals with bounded tables and no ordering", func(t *testing.T) {
		cfg := experimentConfig("skat", 5, 3)
		cfg.Search.TableSize = 64
		cfg.Search.Ordering = false

		report, err := Run(context.Background(), cfg)

		require.NoError(t, err)
		require.Len(t, report.Deals, 3)
		for _, d := range report.Deals {
			require.Equal(t, "skat", d.Variant)
			require.GreaterOrEqual(t, d.Value, 0)
			require.LessOrEqual(t, d.Value, 120)
		}
	})

	t.Run("searches are published to prometheus", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		cfg := experimentConfig("bridge", 3, 2)

		report, err := Run(context.Background(), cfg, WithCounters(metrics.NewCounters(reg)))
		require.NoError(t, err)

		families, err := reg.Gather()
		require.NoError(t, err)
		want := 0
		for _, s := range report.Searches {
			want += s.Nodes
		}
		var got float64
		for _, mf := range families {
			if mf.GetName() == "golv_search_nodes_total" {
				for _, m := range mf.GetMetric() {
					got += m.GetCounter().GetValue()
				}
			}
		}
		require.Equal(t, float64(want), got)
	})

	t.Run("unknown variant is an error", func(t *testing.T) {
		_, err := Run(context.Background(), experimentConfig("hearts", 4, 1))

		require.Error(t, err)
	})

	t.Run("impossible deal is an error", func(t *testing.T) {
		_, err := Run(context.Background(), experimentConfig("skat", 4, 1))

		require.ErrorIs(t, err, tricks.ErrInvalidDeal)
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, experimentConfig("bridge", 4, 4))

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSave(t *testing.T) {
	report, err := Run(context.Background(), experimentConfig("bridge", 3, 2))
	require.NoError(t, err)

	dir, err := Save(t.TempDir(), report)

	require.NoError(t, err)
	for _, name := range []string{"deals.csv", "searches.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
