package render

import (
	"image"
	"testing"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.Generate(maze.Config{Width: 5, Height: 5, Seed: 42})
	require.NoError(t, err)
	return g
}

func TestImage(t *testing.T) {
	g := testGrid(t)
	visited := []maze.Position{{Row: 1, Col: 2}}
	path := []maze.Position{g.Start, {Row: 1, Col: 2}, g.Goal}
	img := New(g, visited, path)

	t.Run("bounds map one pixel per cell", func(t *testing.T) {
		assert.Equal(t, image.Rect(0, 0, 5, 5), img.Bounds())
	})

	t.Run("cell colors", func(t *testing.T) {
		assert.Equal(t, startColor, img.At(g.Start.Col, g.Start.Row))
		assert.Equal(t, goalColor, img.At(g.Goal.Col, g.Goal.Row))
		assert.Equal(t, wallColor, img.At(0, 0))
		// Path takes precedence over plain visited.
		assert.Equal(t, pathColor, img.At(2, 1))
	})

	t.Run("scaling multiplies the bounds", func(t *testing.T) {
		scaled := New(g, nil, nil).Scaled(4)
		assert.Equal(t, 20, scaled.Bounds().Dx())
		assert.Equal(t, 20, scaled.Bounds().Dy())
	})
}
