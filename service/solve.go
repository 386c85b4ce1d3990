package service

import (
	"sync"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// SolveService runs searches over registered mazes. Each stepwise session
// owns its solver state exclusively; the registry lock only guards the
// session map, and a per-session lock serializes step advances so two
// requests never drive the same state machine concurrently.
type SolveService struct {
	mazes    i.MazeManager
	mu       sync.Mutex
	sessions map[uuid.UUID]*solveSession
}

type solveSession struct {
	mu      sync.Mutex
	stepper solver.Stepper
}

// NewSolveService creates a solve service backed by the given maze registry.
func NewSolveService(mazes i.MazeManager) *SolveService {
	return &SolveService{
		mazes:    mazes,
		sessions: make(map[uuid.UUID]*solveSession),
	}
}

// Solve runs the algorithm to completion on the identified maze.
func (s *SolveService) Solve(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (*solver.Result, error) {
	grid, err := s.mazes.ByID(mazeID)
	if err != nil {
		return nil, err
	}
	return solver.Solve(grid, start, goal, algo)
}

// NewStepper returns a fresh step sequence for the identified maze.
func (s *SolveService) NewStepper(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (solver.Stepper, error) {
	grid, err := s.mazes.ByID(mazeID)
	if err != nil {
		return nil, err
	}
	return solver.NewStepper(grid, start, goal, algo)
}

// StartSession registers a stepwise solve and returns its session ID.
func (s *SolveService) StartSession(mazeID uuid.UUID, algo solver.Algorithm, start, goal maze.Position) (uuid.UUID, error) {
	stepper, err := s.NewStepper(mazeID, algo, start, goal)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = &solveSession{stepper: stepper}
	s.mu.Unlock()
	return id, nil
}

// NextStep advances the session exactly one step.
func (s *SolveService) NextStep(sessionID uuid.UUID) (*solver.Step, bool, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, false, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	step, more := session.stepper.Next()
	return step, !more, nil
}

// EndSession discards the session.
func (s *SolveService) EndSession(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
