package memo

import "golv/game"

// Null is a Table that remembers nothing.
type Null[K comparable, V game.Value] struct{}

func (Null[K, V]) Memorable(Position) bool { return false }
func (Null[K, V]) Get(K) Bound[V]          { return unknownBound[V]() }
func (Null[K, V]) Set(K, Bound[V])         {}
func (Null[K, V]) Len() int                { return 0 }

// NullFrontier is a FrontierTable that remembers nothing.
type NullFrontier[K comparable, V game.Value] struct{}

func (NullFrontier[K, V]) Memorable(Position) bool { return false }
func (NullFrontier[K, V]) Get(K) Frontier[V]       { return unknownFrontier[V]() }
func (NullFrontier[K, V]) UpdateLower(K, V)        {}
func (NullFrontier[K, V]) UpdateUpper(K, V)        {}
func (NullFrontier[K, V]) Len() int                { return 0 }
