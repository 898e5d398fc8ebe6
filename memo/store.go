package memo

import (
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"
)

type store[K comparable, R any] interface {
	get(key K) (R, bool)
	set(key K, record R)
	len() int
}

type mapStore[K comparable, R any] map[K]R

func (s mapStore[K, R]) get(key K) (R, bool) {
	r, ok := s[key]
	return r, ok
}

func (s mapStore[K, R]) set(key K, record R) {
	s[key] = record
}

func (s mapStore[K, R]) len() int {
	return len(s)
}

// lruStore evicts the least recently used record once full. Losing a record
// only costs search effort.
type lruStore[K comparable, R any] struct {
	lru *simplelru.LRU
}

func newLRUStore[K comparable, R any](size int) *lruStore[K, R] {
	lru, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(fmt.Sprintf("invalid table size %d: %v", size, err))
	}
	return &lruStore[K, R]{lru: lru}
}

func (s *lruStore[K, R]) get(key K) (R, bool) {
	if r, ok := s.lru.Get(key); ok {
		return r.(R), true
	}
	var zero R
	return zero, false
}

func (s *lruStore[K, R]) set(key K, record R) {
	s.lru.Add(key, record)
}

func (s *lruStore[K, R]) len() int {
	return s.lru.Len()
}
