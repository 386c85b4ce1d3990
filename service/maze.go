// Package service coordinates maze generation and solving for API
// consumers. Mazes and solve sessions live in in-memory registries keyed by
// UUID; nothing is persisted.
package service

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

var (
	// ErrMazeNotFound is returned when no maze is registered under an ID.
	ErrMazeNotFound = errors.New("service: maze not found")
	// ErrSessionNotFound is returned when no solve session is registered under an ID.
	ErrSessionNotFound = errors.New("service: solve session not found")
)

// MazeService generates mazes and holds them in memory for later solves.
// Registered grids are read-only, so they may be served to concurrent
// requests without copying.
type MazeService struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*maze.Grid
}

// NewMazeService creates an empty maze registry.
func NewMazeService() *MazeService {
	return &MazeService{mazes: make(map[uuid.UUID]*maze.Grid)}
}

// Create generates a maze and registers it under a fresh ID.
func (s *MazeService) Create(cfg maze.Config) (uuid.UUID, *maze.Grid, error) {
	grid, err := maze.Generate(cfg)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	s.mu.Lock()
	s.mazes[id] = grid
	s.mu.Unlock()
	return id, grid, nil
}

// ByID returns the maze registered under id.
func (s *MazeService) ByID(id uuid.UUID) (*maze.Grid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid, ok := s.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return grid, nil
}
