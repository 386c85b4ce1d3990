package solver

import "github.com/beka-birhanu/maze-solver-api/maze"

// dfsStepper drives depth-first search with an explicit backtracking stack.
// The stack doubles as the live path from start to the current cell, so a
// found step reports it directly with no parent map. An explicit stack also
// avoids call-stack depth limits on large mazes.
type dfsStepper struct {
	walk
	stack   []maze.Position
	visited map[maze.Position]bool
}

func newDFSStepper(g *maze.Grid, start, goal maze.Position) *dfsStepper {
	s := &dfsStepper{
		walk:    walk{grid: g, start: start, goal: goal},
		stack:   []maze.Position{start},
		visited: make(map[maze.Position]bool),
	}
	s.advance = s.step
	return s
}

// step examines the cell on top of the stack. An unvisited cell is finalized
// first; reaching the goal ends the search; otherwise the first unvisited
// open neighbor (fixed order) is pushed, or the cell is popped as a dead end.
func (s *dfsStepper) step() {
	if len(s.stack) == 0 {
		s.emit(Step{Action: ActionExhausted})
		s.done = true
		return
	}

	current := s.stack[len(s.stack)-1]
	s.emit(Step{Current: &current, Action: ActionExploring})

	if !s.visited[current] {
		s.visited[current] = true
		s.emit(Step{Current: &current, Action: ActionVisited, Discovered: []maze.Position{current}})
	}

	if current == s.goal {
		path := make([]maze.Position, len(s.stack))
		copy(path, s.stack)
		s.emit(Step{Current: &current, Action: ActionFound, Path: path})
		s.done = true
		return
	}

	for _, n := range s.grid.OpenNeighbors(current) {
		if !s.visited[n] {
			s.stack = append(s.stack, n)
			return
		}
	}

	// Dead end: abandon the cell.
	s.stack = s.stack[:len(s.stack)-1]
	s.emit(Step{Current: &current, Action: ActionBacktrack})
}
