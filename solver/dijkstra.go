package solver

import (
	"container/heap"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// dijkstraStepper drives uniform-cost search with a min-priority queue keyed
// by cumulative distance. Stale queue entries are skipped on pop (lazy
// deletion): only the first pop of a cell, at its minimum recorded distance,
// finalizes it. With unit edge costs the result matches BFS in path length,
// but the step sequence differs in bookkeeping.
type dijkstraStepper struct {
	walk
	frontier  priorityQueue
	distance  map[maze.Position]int
	parent    map[maze.Position]maze.Position
	finalized map[maze.Position]bool
	seq       int
}

func newDijkstraStepper(g *maze.Grid, start, goal maze.Position) *dijkstraStepper {
	s := &dijkstraStepper{
		walk:      walk{grid: g, start: start, goal: goal},
		distance:  map[maze.Position]int{start: 0},
		parent:    make(map[maze.Position]maze.Position),
		finalized: make(map[maze.Position]bool),
	}
	s.advance = s.step
	heap.Push(&s.frontier, &pqItem{pos: start, dist: 0, seq: s.nextSeq()})
	return s
}

func (s *dijkstraStepper) nextSeq() int {
	s.seq++
	return s.seq
}

// step pops the closest frontier cell, finalizes it unless stale, ends the
// search on the goal, and relaxes each unfinalized open neighbor.
func (s *dijkstraStepper) step() {
	if s.frontier.Len() == 0 {
		s.emit(Step{Action: ActionExhausted})
		s.done = true
		return
	}

	item := heap.Pop(&s.frontier).(*pqItem)
	current := item.pos
	s.emit(Step{Current: &current, Action: ActionExploring, Distance: item.dist})

	if s.finalized[current] {
		// Stale entry; its distance was improved before this pop.
		return
	}
	s.finalized[current] = true
	s.emit(Step{Current: &current, Action: ActionVisited, Discovered: []maze.Position{current}, Distance: item.dist})

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
		if s.finalized[n] {
			continue
		}
		candidate := item.dist + 1
		if known, ok := s.distance[n]; ok && candidate >= known {
			continue
		}
		s.distance[n] = candidate
		s.parent[n] = current
		heap.Push(&s.frontier, &pqItem{pos: n, dist: candidate, seq: s.nextSeq()})
		neighbor := n
		s.emit(Step{
			Current:  &current,
			Action:   ActionDistanceUpdated,
			Neighbor: &neighbor,
			Distance: candidate,
		})
	}
}

// pqItem is a frontier entry. seq breaks distance ties by insertion order so
// runs are deterministic.
type pqItem struct {
	pos  maze.Position
	dist int
	seq  int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
