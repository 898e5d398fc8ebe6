package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent events", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
				}
				c.AddCutoff()
				c.AddTableHit()
				c.AddProbe()
			}()
		}
		wg.Wait()
		metric := c.Complete()

		require.Equal(t, "alphabeta", metric.Driver)
		require.Equal(t, 800, metric.Nodes)
		require.Equal(t, 8, metric.Cutoffs)
		require.Equal(t, 8, metric.TableHits)
		require.Equal(t, 8, metric.Probes)
	})

	t.Run("start resets the counts", func(t *testing.T) {
		c := NewCollector()
		c.Start("mtd")
		c.AddNode()

		c.Start("bisect")
		metric := c.Complete()

		require.Equal(t, "bisect", metric.Driver)
		require.Zero(t, metric.Nodes)
	})

	t.Run("complete freezes the metric until the next start", func(t *testing.T) {
		c := NewCollector()
		c.Start("negamax")
		c.AddNode()
		first := c.Complete()

		c.AddNode()

		require.Equal(t, first, c.Complete())
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("alphabeta")
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters := NewCounters(reg)

	for i := 0; i < 2; i++ {
		c := NewPrometheusCollector(counters)
		c.Start("bisect")
		c.AddNode()
		c.AddNode()
		c.AddProbe()
		metric := c.Complete()
		c.Complete()
		require.Equal(t, 2, metric.Nodes, "Local counts are per search")
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	totals := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				totals[mf.GetName()] += m.GetCounter().GetValue()
			}
			if m.GetHistogram() != nil {
				totals[mf.GetName()] += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	require.Equal(t, 4.0, totals["golv_search_nodes_total"])
	require.Equal(t, 2.0, totals["golv_search_probes_total"])
	require.Equal(t, 2.0, totals["golv_search_duration_seconds"])
}

func TestWriter(t *testing.T) {
	base := t.TempDir()

	w, err := NewWriter(base)
	require.NoError(t, err)
	_, err = uuid.Parse(filepath.Base(w.Dir()))
	require.NoError(t, err, "Run directories are named by UUID")

	require.NoError(t, w.WriteDeals([]DealRecord{
		{ID: 1, Variant: "bridge", CardsPerSuit: 4, Seed: 7, Soloist: 1, Value: 2, Move: "As"},
	}))
	require.NoError(t, w.WriteSearches([]SearchRecord{
		{Deal: 1, SearchMetric: SearchMetric{Driver: "mtd", Duration: time.Second, Nodes: 10, Probes: 3}},
	}))

	deals := readCSV(t, filepath.Join(w.Dir(), "deals.csv"))
	require.Equal(t, [][]string{
		{"id", "variant", "cards_per_suit", "seed", "soloist", "value", "move"},
		{"1", "bridge", "4", "7", "1", "2", "As"},
	}, deals)

	searches := readCSV(t, filepath.Join(w.Dir(), "searches.csv"))
	require.Len(t, searches, 2)
	require.Equal(t, []string{"1", "mtd", "1s", "10", "0", "0", "3"}, searches[1])

	other, err := NewWriter(base)
	require.NoError(t, err)
	require.NotEqual(t, w.Dir(), other.Dir())
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
