package memo

import "golv/game"

// Position is what an admission policy can see of a game.
type Position interface {
	IsMax() bool
}

// Policy decides whether a position is recorded and consulted.
type Policy func(p Position) bool

// MaxToMove admits positions with the maximizing side to move.
func MaxToMove(p Position) bool {
	return p.IsMax()
}

// Checkpoints admits the game's checkpoints, or every position when the game
// does not mark any.
func Checkpoints(p Position) bool {
	if c, ok := p.(game.Checkpointer); ok {
		return c.IsCheckpoint()
	}
	return true
}

func Everything(Position) bool {
	return true
}
