// Package mazeapi provides structures and utilities for maze generation and
// solve requests and responses.
package mazeapi

import (
	"strings"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`

	// ExtraPassages requests the multiple-paths variant: that many extra
	// passages are carved after generation, introducing cycles.
	ExtraPassages int `json:"extra_passages"`
}

// MazeResponse represents a registered maze. Cells holds one string per row,
// '#' for walls and '.' for open cells.
type MazeResponse struct {
	ID     uuid.UUID     `json:"id"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Start  maze.Position `json:"start"`
	Goal   maze.Position `json:"goal"`
	Cells  []string      `json:"cells"`
}

// SolveRequest represents a request to solve a registered maze. Start and
// Goal default to the maze's own endpoints when omitted.
type SolveRequest struct {
	Algorithm string         `json:"algorithm" binding:"required"`
	Start     *maze.Position `json:"start"`
	Goal      *maze.Position `json:"goal"`
}

// SessionResponse represents a newly started stepwise solve session.
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

// StepResponse represents one advance of a stepwise solve session. Step is
// nil once the session is exhausted.
type StepResponse struct {
	Step *solver.Step `json:"step,omitempty"`
	Done bool         `json:"done"`
}

// newMazeResponse builds the response DTO for a registered maze.
func newMazeResponse(id uuid.UUID, grid *maze.Grid) *MazeResponse {
	cells := make([]string, grid.Height)
	for row := 0; row < grid.Height; row++ {
		var b strings.Builder
		for col := 0; col < grid.Width; col++ {
			if grid.Cells[row][col] == maze.Open {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		cells[row] = b.String()
	}

	return &MazeResponse{
		ID:     id,
		Width:  grid.Width,
		Height: grid.Height,
		Start:  grid.Start,
		Goal:   grid.Goal,
		Cells:  cells,
	}
}
