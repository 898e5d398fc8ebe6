// Package memo holds the memoization tables shared by the searches.
//
// Full-window searches record a typed Bound per position; the null-window
// search records a Frontier of "bound minus value" quantities.
package memo

import (
	"fmt"
	"golv/game"
	"unsafe"
)

type Kind uint8

const (
	Exact Kind = iota
	Lower
	Upper
)

func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Bound is what a full-window search knows about the remaining value of a position.
type Bound[V game.Value] struct {
	Kind  Kind
	Value V
}

// Frontier brackets the "bound minus value" quantities a null-window search
// has resolved at a position: answers are "greater" up to Lower and "not
// greater" from Upper on.
type Frontier[V game.Value] struct {
	Lower V
	Upper V
}

// MaxValue is the largest sentinel of V, half the representable range so
// that a bounded move contribution can be added without overflow.
func MaxValue[V game.Value]() V {
	var v V
	bits := unsafe.Sizeof(v) * 8
	return V(uint64(1)<<(bits-2) - 1)
}

// MinValue mirrors MaxValue.
func MinValue[V game.Value]() V {
	return -MaxValue[V]()
}

func unknownBound[V game.Value]() Bound[V] {
	return Bound[V]{Kind: Lower, Value: MinValue[V]()}
}

func unknownFrontier[V game.Value]() Frontier[V] {
	return Frontier[V]{Lower: MinValue[V](), Upper: MaxValue[V]()}
}
