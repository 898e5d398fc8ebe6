// Package cfr approximates equilibria of two-player zero-sum games with
// hidden information by counterfactual regret minimization with external
// sampling: the traversing player explores every action, chance and the
// opponent are sampled.
package cfr

import (
	"errors"
	"fmt"
	"golv/experiments/metrics"
	"golv/game"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

var (
	ErrTraverserSampling = errors.New("sampled an action of the traversing player")
	ErrNestedChance      = errors.New("chance node below a player action")
)

type Option func(*settings)

type settings struct {
	seed    uint64
	logger  zerolog.Logger
	metrics metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type Solver[A comparable] struct {
	settings
	game       game.Extensive[A]
	rng        *rand.Rand
	nodes      map[string]*Node[A]
	iterations int
	depth      int     // player actions applied on the current path
	total      float64 // payoff to player 0 summed over traversals
}

func New[A comparable](g game.Extensive[A], options ...Option) *Solver[A] {
	s := settings{ // Default values
		seed:    1,
		logger:  zerolog.Nop(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return &Solver[A]{
		settings: s,
		game:     g,
		rng:      rand.New(rand.NewSource(s.seed)),
		nodes:    map[string]*Node[A]{},
	}
}

// Solve runs more iterations, each one traversal per player, and returns the
// average payoff to player 0 over every traversal so far.
func (s *Solver[A]) Solve(iterations int) float64 {
	s.metrics.Start("cfr")
	for i := 0; i < iterations; i++ {
		for traverser := 0; traverser < 2; traverser++ {
			s.game.Reset()
			u := s.traverse(traverser)
			if traverser == 1 {
				u = -u
			}
			s.total += u
		}
		s.iterations++
	}
	metric := s.metrics.Complete()

	value := s.Value()
	s.logger.Debug().
		Int("iterations", s.iterations).
		Int("infosets", len(s.nodes)).
		Int("nodes", metric.Nodes).
		Float64("value", value).
		Msg("regret minimization")
	return value
}

// Value is the average payoff to player 0 over every traversal so far.
func (s *Solver[A]) Value() float64 {
	if s.iterations == 0 {
		return 0
	}
	return s.total / float64(2*s.iterations)
}

func (s *Solver[A]) traverse(traverser int) float64 {
	s.metrics.AddNode()
	g := s.game
	if g.IsTerminal() {
		return g.Payoff(traverser)
	}
	if g.IsChance() {
		if s.depth > 0 {
			panic(fmt.Errorf("%w: %d actions deep", ErrNestedChance, s.depth))
		}
		g.ResolveChance(s.rng)
		return s.traverse(traverser)
	}

	node := s.node(g.InfoSet(), g.Actions())
	strategy := node.CurrentStrategy()
	player := g.Player()

	if player != traverser {
		node.accumulate(strategy)
		action := node.Actions[s.sample(strategy, player, traverser)]
		s.apply(action)
		u := s.traverse(traverser)
		s.undo(action)
		return u
	}

	values := make([]float64, len(node.Actions))
	expected := 0.0
	for i, action := range node.Actions {
		s.apply(action)
		values[i] = s.traverse(traverser)
		s.undo(action)
		expected += strategy[i] * values[i]
	}
	for i, v := range values {
		node.Regret[i] += v - expected
	}
	return expected
}

func (s *Solver[A]) apply(action A) {
	s.game.Apply(action)
	s.depth++
}

func (s *Solver[A]) undo(action A) {
	s.depth--
	s.game.Undo(action)
}

// sample draws an action index for the opponent of the traverser.
func (s *Solver[A]) sample(strategy []float64, player, traverser int) int {
	if player == traverser {
		panic(fmt.Errorf("%w: player %d", ErrTraverserSampling, player))
	}
	x := s.rng.Float64()
	cumulative := 0.0
	for i, p := range strategy {
		cumulative += p
		if x < cumulative {
			return i
		}
	}
	return len(strategy) - 1
}

func (s *Solver[A]) node(infoSet string, actions []A) *Node[A] {
	n, ok := s.nodes[infoSet]
	if !ok {
		if len(actions) == 0 {
			panic(fmt.Errorf("%w: information set %q", game.ErrNoMoves, infoSet))
		}
		n = newNode(actions)
		s.nodes[infoSet] = n
	}
	return n
}

// Nodes exposes the information sets visited so far.
func (s *Solver[A]) Nodes() map[string]*Node[A] {
	return s.nodes
}

// Strategy is the average strategy of every information set visited so far.
func (s *Solver[A]) Strategy() map[string][]float64 {
	strategy := make(map[string][]float64, len(s.nodes))
	for infoSet, n := range s.nodes {
		strategy[infoSet] = n.AverageStrategy()
	}
	return strategy
}

// EquilibriumSolve is the one-shot form of Solver.
func EquilibriumSolve[A comparable](g game.Extensive[A], iterations int, options ...Option) (float64, map[string][]float64) {
	s := New(g, options...)
	value := s.Solve(iterations)
	return value, s.Strategy()
}
