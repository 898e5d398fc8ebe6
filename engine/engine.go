// Package engine runs solvers over whole positions: it values every option
// of a position concurrently and plays principal lines out.
package engine

import (
	"errors"
	"golv/game"

	"github.com/rs/zerolog"
)

const MaxMoves = 10000

var ErrNoCandidates = errors.New("no candidates to rank")

// Solver returns the value of a position and a move achieving it.
type Solver[M comparable, K comparable, V game.Value] func(g game.Game[M, K, V]) (V, M)

type Option func(*settings)

type settings struct {
	logger      zerolog.Logger
	concurrency int
	maxMoves    int
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithConcurrency bounds the number of positions solved at once.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithMaxMoves(n int) Option {
	return func(s *settings) {
		s.maxMoves = n
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		logger:      zerolog.Nop(),
		concurrency: 4,
		maxMoves:    MaxMoves,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}
