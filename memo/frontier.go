package memo

import "golv/game"

// FrontierTable records Frontier records for the null-window search. Updates
// only ever tighten a record; a miss answers (MinValue, MaxValue).
type FrontierTable[K comparable, V game.Value] interface {
	Memorable(p Position) bool
	Get(key K) Frontier[V]
	UpdateLower(key K, v V)
	UpdateUpper(key K, v V)
	Len() int
}

type frontierTable[K comparable, V game.Value] struct {
	store  store[K, Frontier[V]]
	policy Policy
	stats  Stats
}

// NewFrontierTable returns an unbounded table admitting Checkpoints by default.
func NewFrontierTable[K comparable, V game.Value](options ...Option) FrontierTable[K, V] {
	s := configure(Checkpoints, options)
	return &frontierTable[K, V]{store: mapStore[K, Frontier[V]]{}, policy: s.policy}
}

func NewBoundedFrontierTable[K comparable, V game.Value](size int, options ...Option) FrontierTable[K, V] {
	s := configure(Checkpoints, options)
	return &frontierTable[K, V]{store: newLRUStore[K, Frontier[V]](size), policy: s.policy}
}

func (t *frontierTable[K, V]) Memorable(p Position) bool {
	return t.policy(p)
}

func (t *frontierTable[K, V]) Get(key K) Frontier[V] {
	if f, ok := t.store.get(key); ok {
		t.stats.Hits++
		return f
	}
	t.stats.Misses++
	return unknownFrontier[V]()
}

func (t *frontierTable[K, V]) lookup(key K) Frontier[V] {
	if f, ok := t.store.get(key); ok {
		return f
	}
	return unknownFrontier[V]()
}

func (t *frontierTable[K, V]) UpdateLower(key K, v V) {
	f := t.lookup(key)
	if v > f.Lower {
		f.Lower = v
		t.stats.Writes++
		t.store.set(key, f)
	}
}

func (t *frontierTable[K, V]) UpdateUpper(key K, v V) {
	f := t.lookup(key)
	if v < f.Upper {
		f.Upper = v
		t.stats.Writes++
		t.store.set(key, f)
	}
}

func (t *frontierTable[K, V]) Len() int {
	return t.store.len()
}

func (t *frontierTable[K, V]) Stats() Stats {
	s := t.stats
	s.Entries = t.store.len()
	return s
}
