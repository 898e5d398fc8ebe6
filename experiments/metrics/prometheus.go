package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters shared by every prometheus-backed collector of one registry.
type Counters struct {
	nodes     *prometheus.CounterVec
	cutoffs   *prometheus.CounterVec
	tableHits *prometheus.CounterVec
	probes    *prometheus.CounterVec
	searches  *prometheus.HistogramVec
}

// NewCounters registers the search counters on reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	factory := promauto.With(reg)
	counter := func(name, help string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golv",
			Subsystem: "search",
			Name:      name,
			Help:      help,
		}, []string{"driver"})
	}
	return &Counters{
		nodes:     counter("nodes_total", "Positions visited by driver"),
		cutoffs:   counter("cutoffs_total", "Window cutoffs by driver"),
		tableHits: counter("table_hits_total", "Memo lookups that decided a position by driver"),
		probes:    counter("probes_total", "Null-window or narrow-window probes by driver"),
		searches: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golv",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time of a completed search by driver",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"driver"}),
	}
}

// prometheusCollector counts locally like collector and publishes the
// totals to the registry once per search, when it completes.
type prometheusCollector struct {
	collector
	counters *Counters
}

func NewPrometheusCollector(counters *Counters) Collector {
	return &prometheusCollector{counters: counters}
}

func (m *prometheusCollector) Complete() SearchMetric {
	if m.result != nil {
		return *m.result
	}
	metric := m.collector.Complete()
	driver := metric.Driver
	m.counters.nodes.WithLabelValues(driver).Add(float64(metric.Nodes))
	m.counters.cutoffs.WithLabelValues(driver).Add(float64(metric.Cutoffs))
	m.counters.tableHits.WithLabelValues(driver).Add(float64(metric.TableHits))
	m.counters.probes.WithLabelValues(driver).Add(float64(metric.Probes))
	m.counters.searches.WithLabelValues(driver).Observe(metric.Duration.Seconds())
	return metric
}
