package i

import (
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// MazeManager generates mazes and keeps them available for later solves.
type MazeManager interface {
	// Create generates a maze from the given configuration and registers it
	// under a fresh ID.
	Create(cfg maze.Config) (uuid.UUID, *maze.Grid, error)

	// ByID returns the maze registered under id.
	ByID(id uuid.UUID) (*maze.Grid, error)
}
