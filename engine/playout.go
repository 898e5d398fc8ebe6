package engine

import (
	"golv/game"
)

type Step[M comparable, V game.Value] struct {
	Ply   int
	IsMax bool
	Move  M
	// Value of the position before the move
	Value V
}

// Playout plays the principal line of g with one solve per move, leaving g
// at the end of the line. It stops at a terminal position or after the
// configured number of moves.
func Playout[M comparable, K comparable, V game.Value](g game.Game[M, K, V], solve Solver[M, K, V], options ...Option) []Step[M, V] {
	s := newSettings(options)

	var steps []Step[M, V]
	for ply := 1; !g.IsTerminal() && ply <= s.maxMoves; ply++ {
		v, move := solve(g)
		step := Step[M, V]{Ply: ply, IsMax: g.IsMax(), Move: move, Value: v}
		steps = append(steps, step)
		s.logger.Info().
			Int("ply", ply).
			Bool("max", step.IsMax).
			Any("move", move).
			Int64("value", int64(v)).
			Msg("played")
		g.Apply(move)
	}

	if !g.IsTerminal() {
		s.logger.Warn().Int("moves", len(steps)).Msg("stopped before the end of the game")
	}
	return steps
}
