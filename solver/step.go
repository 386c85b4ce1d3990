package solver

import "github.com/beka-birhanu/maze-solver-api/maze"

// Action tags the kind of state transition a Step reports.
type Action string

const (
	// ActionExploring reports the cell currently at the head of the frontier.
	ActionExploring Action = "exploring"
	// ActionVisited reports a cell being finalized into the visited set.
	ActionVisited Action = "visited"
	// ActionBacktrack reports depth-first search abandoning a dead-end cell.
	ActionBacktrack Action = "backtrack"
	// ActionNeighborDiscovered reports breadth-first search enqueueing a new cell.
	ActionNeighborDiscovered Action = "neighbor_discovered"
	// ActionDistanceUpdated reports Dijkstra improving a cell's known distance.
	ActionDistanceUpdated Action = "distance_updated"
	// ActionFound reports the goal being reached; the step carries the path.
	ActionFound Action = "found"
	// ActionExhausted reports the frontier emptying with the goal unreached.
	ActionExhausted Action = "exhausted"
)

// Step is one externally observable state transition of a stepwise solve.
// Discovered carries the cells added to the visited set by this transition,
// so a consumer can rebuild the full visited set by accumulating deltas.
// Path is present only on ActionFound. Current is nil on ActionExhausted.
type Step struct {
	Current    *maze.Position  `json:"current,omitempty"`
	Action     Action          `json:"action"`
	Discovered []maze.Position `json:"discovered,omitempty"`
	Neighbor   *maze.Position  `json:"neighbor,omitempty"`
	Distance   int             `json:"distance,omitempty"`
	Path       []maze.Position `json:"path,omitempty"`
}
