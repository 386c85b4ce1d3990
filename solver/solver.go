/*
Package solver implements three maze-search strategies over a maze.Grid:
depth-first, breadth-first, and Dijkstra (uniform cost, every edge costs 1).

Each strategy can run eagerly to completion with Solve, or as a pull-based
Stepper that advances one observable state transition per call, for animated
replay. Both modes run the same state machine, so a fully drained Stepper and
Solve always agree on the final path and visited set.

An unreachable goal is not an error: Solve returns an empty path with the
visited set equal to the start's connected component, and a Stepper ends with
an exhausted step.
*/
package solver

import (
	"errors"
	"strings"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// Algorithm selects a search strategy.
type Algorithm string

const (
	// DFS is depth-first search. Not guaranteed shortest.
	DFS Algorithm = "dfs"
	// BFS is breadth-first search. Shortest in edge count.
	BFS Algorithm = "bfs"
	// Dijkstra is uniform-cost search. Shortest in edge count, since every
	// edge costs 1.
	Dijkstra Algorithm = "dijkstra"
)

var (
	// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("solver: endpoint outside grid bounds")
	// ErrWallEndpoint is returned when start or goal is a wall cell.
	ErrWallEndpoint = errors.New("solver: endpoint is a wall cell")
)

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(name)) {
	case DFS:
		return DFS, nil
	case BFS:
		return BFS, nil
	case Dijkstra:
		return Dijkstra, nil
	}
	return "", ErrUnknownAlgorithm
}

// Result is the final outcome of a solve. Path is ordered from start to goal
// inclusive and empty when the goal is unreachable. Visited holds every
// explored cell in first-visit order, whether or not it lies on the path.
type Result struct {
	Path    []maze.Position `json:"path"`
	Visited []maze.Position `json:"visited"`
}

// Stepper produces the step sequence of one solve. Next returns the next
// step, or false once the sequence is exhausted. A Stepper is not
// restartable; run a fresh one to re-solve. Stopping early is the only
// cancellation needed, since a Stepper holds no external resources.
type Stepper interface {
	Next() (*Step, bool)
}

// NewStepper validates the endpoints and returns a Stepper for the chosen
// algorithm. The grid is read-only for the lifetime of the Stepper.
func NewStepper(g *maze.Grid, start, goal maze.Position, algo Algorithm) (Stepper, error) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, ErrOutOfBounds
	}
	if !g.IsOpen(start) || !g.IsOpen(goal) {
		return nil, ErrWallEndpoint
	}

	switch algo {
	case DFS:
		return newDFSStepper(g, start, goal), nil
	case BFS:
		return newBFSStepper(g, start, goal), nil
	case Dijkstra:
		return newDijkstraStepper(g, start, goal), nil
	}
	return nil, ErrUnknownAlgorithm
}

// Solve runs the chosen algorithm to completion by draining its step
// sequence, accumulating the visited set from step deltas and capturing the
// path from the found step.
func Solve(g *maze.Grid, start, goal maze.Position, algo Algorithm) (*Result, error) {
	stepper, err := NewStepper(g, start, goal, algo)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: []maze.Position{}, Visited: []maze.Position{}}
	for {
		step, ok := stepper.Next()
		if !ok {
			return result, nil
		}
		result.Visited = append(result.Visited, step.Discovered...)
		if step.Action == ActionFound {
			result.Path = step.Path
		}
	}
}

// walk holds the state shared by every stepper: the read-only grid, the
// endpoints, and a buffer of produced steps. advance runs the strategy
// forward one frontier operation, appending the steps it observes; between
// calls the strategy is fully suspended.
type walk struct {
	grid        *maze.Grid
	start, goal maze.Position
	buf         []Step
	done        bool
	advance     func()
}

func (w *walk) emit(s Step) {
	w.buf = append(w.buf, s)
}

// Next implements Stepper.
func (w *walk) Next() (*Step, bool) {
	for len(w.buf) == 0 {
		if w.done {
			return nil, false
		}
		w.advance()
	}
	step := w.buf[0]
	w.buf = w.buf[1:]
	return &step, true
}

// reconstructPath walks parent links from goal back to start and reverses.
func reconstructPath(parent map[maze.Position]maze.Position, start, goal maze.Position) []maze.Position {
	path := []maze.Position{goal}
	for current := goal; current != start; {
		current = parent[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
