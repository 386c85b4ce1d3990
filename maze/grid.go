/*
Package maze provides the grid model and random generation for rectangular
cell mazes.

A maze is a grid of Wall and Open cells with a bordered edge and designated
start and goal cells. Generation carves a spanning tree over the
odd-coordinate cell lattice with randomized backtracking, so exactly one
simple path connects any two open cells; an optional mode carves extra
passages to introduce cycles. Grids are built once and treated as read-only
by every consumer, so a grid may be shared safely between a solver and a
renderer.
*/
package maze

import "strings"

// Grid is a rectangular maze of Wall and Open cells. The border is always
// Wall; Start and Goal are always Open and distinct. A Grid is never mutated
// after generation.
type Grid struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Cells  [][]Kind // Cell kinds indexed [row][col]
	Start  Position // Start cell, open by construction
	Goal   Position // Goal cell, open by construction
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// IsOpen reports whether p is an in-bounds open cell.
func (g *Grid) IsOpen(p Position) bool {
	return g.InBounds(p) && g.Cells[p.Row][p.Col] == Open
}

// OpenNeighbors returns the open cells reachable from p by a single
// orthogonal step, in the fixed north, south, east, west order. Out-of-bounds
// neighbors are simply excluded.
func (g *Grid) OpenNeighbors(p Position) []Position {
	result := make([]Position, 0, 4)
	for _, d := range directions {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.IsOpen(n) {
			result = append(result, n)
		}
	}
	return result
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Position {
	var result []Position
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Cells[row][col] == Open {
				result = append(result, Position{Row: row, Col: col})
			}
		}
	}
	return result
}

// String provides a textual representation of the maze: '#' for walls, '.'
// for open cells, with the start and goal marked 'S' and 'G'.
func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			pos := Position{Row: row, Col: col}
			switch {
			case pos == g.Start:
				b.WriteByte('S')
			case pos == g.Goal:
				b.WriteByte('G')
			case g.Cells[row][col] == Open:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
