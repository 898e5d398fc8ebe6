package memo

import "golv/game"

// Table records Bound records for full-window searches. A miss answers the
// uninformative lower bound at MinValue.
type Table[K comparable, V game.Value] interface {
	Memorable(p Position) bool
	Get(key K) Bound[V]
	Set(key K, b Bound[V])
	Len() int
}

type Option func(*settings)

type settings struct {
	policy Policy
}

// WithPolicy replaces the table's default admission policy.
func WithPolicy(policy Policy) Option {
	return func(s *settings) {
		if policy != nil {
			s.policy = policy
		}
	}
}

func configure(policy Policy, options []Option) settings {
	s := settings{policy: policy}
	for _, option := range options {
		option(&s)
	}
	return s
}

type table[K comparable, V game.Value] struct {
	store  store[K, Bound[V]]
	policy Policy
	stats  Stats
}

// NewTable returns an unbounded table admitting MaxToMove positions by default.
func NewTable[K comparable, V game.Value](options ...Option) Table[K, V] {
	s := configure(MaxToMove, options)
	return &table[K, V]{store: mapStore[K, Bound[V]]{}, policy: s.policy}
}

// NewBoundedTable returns a table holding at most size records.
func NewBoundedTable[K comparable, V game.Value](size int, options ...Option) Table[K, V] {
	s := configure(MaxToMove, options)
	return &table[K, V]{store: newLRUStore[K, Bound[V]](size), policy: s.policy}
}

func (t *table[K, V]) Memorable(p Position) bool {
	return t.policy(p)
}

func (t *table[K, V]) Get(key K) Bound[V] {
	if b, ok := t.store.get(key); ok {
		t.stats.Hits++
		return b
	}
	t.stats.Misses++
	return unknownBound[V]()
}

func (t *table[K, V]) Set(key K, b Bound[V]) {
	t.stats.Writes++
	t.store.set(key, b)
}

func (t *table[K, V]) Len() int {
	return t.store.len()
}

func (t *table[K, V]) Stats() Stats {
	s := t.stats
	s.Entries = t.store.len()
	return s
}
