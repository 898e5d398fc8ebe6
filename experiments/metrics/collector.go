package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Driver    string
	Duration  time.Duration
	Nodes     int
	Cutoffs   int
	TableHits int
	Probes    int
}

type Collector interface {
	Start(driver string)
	AddNode()
	AddCutoff()
	AddTableHit()
	AddProbe()
	Complete() SearchMetric
}

type collector struct {
	driver    string
	startTime time.Time
	result    *SearchMetric
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	tableHits atomic.Int64
	probes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(driver string) {
	m.driver = driver
	m.startTime = time.Now()
	m.result = nil
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.tableHits.Store(0)
	m.probes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) AddProbe() {
	m.probes.Add(1)
}

// Complete ends the search started last; later calls return the same metric
// until the next Start.
func (m *collector) Complete() SearchMetric {
	if m.result == nil {
		m.result = &SearchMetric{
			Driver:    m.driver,
			Duration:  time.Since(m.startTime),
			Nodes:     int(m.nodes.Load()),
			Cutoffs:   int(m.cutoffs.Load()),
			TableHits: int(m.tableHits.Load()),
			Probes:    int(m.probes.Load()),
		}
	}
	return *m.result
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(driver string)    {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) AddTableHit()           {}
func (m *dummyCollector) AddProbe()              {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
