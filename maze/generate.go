package maze

import (
	"errors"
	"math/rand"
)

const (
	minDimension = 5
	maxDimension = 99
)

var (
	// ErrDimensionTooSmall is returned when width or height is below the minimum.
	ErrDimensionTooSmall = errors.New("maze: width and height must be at least 5")
	// ErrEvenDimension is returned when width or height is even.
	ErrEvenDimension = errors.New("maze: width and height must be odd")
	// ErrDimensionTooLarge is returned when width or height exceeds the maximum.
	ErrDimensionTooLarge = errors.New("maze: width and height must be at most 99")
)

// Config holds the parameters for maze generation.
type Config struct {
	Width  int   // Width of the maze, odd, between 5 and 99
	Height int   // Height of the maze, odd, between 5 and 99
	Seed   int64 // Seed for the random source; equal seeds produce equal mazes

	// ExtraPassages, when positive, carves up to that many additional
	// passages between already-open cells after the spanning tree is built,
	// introducing cycles so more than one path may exist between start and
	// goal. It forfeits the single-path guarantee.
	ExtraPassages int
}

// Generate builds a random maze of the configured dimensions.
//
// Cells at odd coordinates form the cell lattice; carving starts at (1,1)
// and opens the wall between a lattice cell and a randomly chosen unvisited
// lattice neighbor, backtracking with an explicit stack until every lattice
// cell has been visited. The result is a spanning tree over the lattice:
// fully connected and free of cycles, so the maze is always solvable. The
// start is (1,1) and the goal is (Height-2, Width-2).
func Generate(cfg Config) (*Grid, error) {
	if err := validateDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	cells := make([][]Kind, cfg.Height)
	for row := range cells {
		cells[row] = make([]Kind, cfg.Width)
	}

	g := &Grid{
		Width:  cfg.Width,
		Height: cfg.Height,
		Cells:  cells,
		Start:  Position{Row: 1, Col: 1},
		Goal:   Position{Row: cfg.Height - 2, Col: cfg.Width - 2},
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.carve(rng)
	if cfg.ExtraPassages > 0 {
		g.carveExtraPassages(rng, cfg.ExtraPassages)
	}

	return g, nil
}

func validateDimensions(width, height int) error {
	if min(width, height) < minDimension {
		return ErrDimensionTooSmall
	}
	if width%2 == 0 || height%2 == 0 {
		return ErrEvenDimension
	}
	if max(width, height) > maxDimension {
		return ErrDimensionTooLarge
	}
	return nil
}

// carve opens a spanning tree over the odd-coordinate lattice using
// randomized backtracking. A lattice cell is unvisited while it is still
// Wall.
func (g *Grid) carve(rng *rand.Rand) {
	g.Cells[g.Start.Row][g.Start.Col] = Open
	stack := []Position{g.Start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []Position
		for _, d := range directions {
			n := Position{Row: current.Row + 2*d.Row, Col: current.Col + 2*d.Col}
			if g.interior(n) && g.Cells[n.Row][n.Col] == Wall {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		between := Position{Row: (current.Row + next.Row) / 2, Col: (current.Col + next.Col) / 2}
		g.Cells[between.Row][between.Col] = Open
		g.Cells[next.Row][next.Col] = Open
		stack = append(stack, next)
	}
}

// carveExtraPassages opens up to n interior walls that separate two open
// cells. Each carve joins cells that are already connected through the
// spanning tree, so it adds a cycle and can never disconnect anything.
func (g *Grid) carveExtraPassages(rng *rand.Rand, n int) {
	var candidates []Position
	for row := 1; row < g.Height-1; row++ {
		for col := 1; col < g.Width-1; col++ {
			if g.Cells[row][col] != Wall {
				continue
			}
			vertical := g.Cells[row-1][col] == Open && g.Cells[row+1][col] == Open
			horizontal := g.Cells[row][col-1] == Open && g.Cells[row][col+1] == Open
			if vertical || horizontal {
				candidates = append(candidates, Position{Row: row, Col: col})
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for i := 0; i < len(candidates) && i < n; i++ {
		g.Cells[candidates[i].Row][candidates[i].Col] = Open
	}
}

// interior reports whether p lies strictly inside the border.
func (g *Grid) interior(p Position) bool {
	return p.Row > 0 && p.Row < g.Height-1 && p.Col > 0 && p.Col < g.Width-1
}
