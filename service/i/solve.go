package i

import (
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// SolveManager runs searches over registered mazes, eagerly or as stepwise
// sessions that an animation client advances one step at a time.
type SolveManager interface {
	// Solve runs the algorithm to completion on the identified maze.
	Solve(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (*solver.Result, error)

	// NewStepper returns a fresh step sequence for the identified maze, for
	// consumers that drain it themselves (e.g. a streaming endpoint).
	NewStepper(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (solver.Stepper, error)

	// StartSession registers a stepwise solve and returns its session ID.
	StartSession(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (uuid.UUID, error)

	// NextStep advances the session exactly one step. The step is nil and
	// done is true once the sequence is exhausted.
	NextStep(sessionID uuid.UUID) (step *solver.Step, done bool, err error)

	// EndSession discards the session. Abandoning a session without calling
	// EndSession leaks only its registry slot; the solve itself holds no
	// external resources.
	EndSession(sessionID uuid.UUID) error
}
