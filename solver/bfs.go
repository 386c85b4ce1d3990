package solver

import "github.com/beka-birhanu/maze-solver-api/maze"

// bfsStepper drives breadth-first search with a FIFO queue. A cell joins the
// visited set when it is enqueued, never on dequeue, so no cell is queued
// twice. Because every edge costs 1 and cells dequeue in non-decreasing
// depth order, the reconstructed path is shortest in edge count.
type bfsStepper struct {
	walk
	queue   []maze.Position
	visited map[maze.Position]bool
	parent  map[maze.Position]maze.Position
}

func newBFSStepper(g *maze.Grid, start, goal maze.Position) *bfsStepper {
	s := &bfsStepper{
		walk:    walk{grid: g, start: start, goal: goal},
		queue:   []maze.Position{start},
		visited: map[maze.Position]bool{start: true},
		parent:  make(map[maze.Position]maze.Position),
	}
	s.advance = s.step
	// The seed enqueue is the start cell's entry into the visited set.
	s.emit(Step{Current: &start, Action: ActionVisited, Discovered: []maze.Position{start}})
	return s
}

// step dequeues one cell, ends the search if it is the goal, and otherwise
// enqueues each not-yet-visited open neighbor in fixed order.
func (s *bfsStepper) step() {
	if len(s.queue) == 0 {
		s.emit(Step{Action: ActionExhausted})
		s.done = true
		return
	}

	current := s.queue[0]
	s.queue = s.queue[1:]
	s.emit(Step{Current: &current, Action: ActionExploring})

	if current == s.goal {
		s.emit(Step{
			Current: &current,
			Action:  ActionFound,
			Path:    reconstructPath(s.parent, s.start, s.goal),
		})
		s.done = true
		return
	}

	for _, n := range s.grid.OpenNeighbors(current) {
		if s.visited[n] {
			continue
		}
		s.visited[n] = true
		s.parent[n] = current
		s.queue = append(s.queue, n)
		neighbor := n
		s.emit(Step{
			Current:    &current,
			Action:     ActionNeighborDiscovered,
			Neighbor:   &neighbor,
			Discovered: []maze.Position{n},
		})
	}
}
