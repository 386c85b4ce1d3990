// Package render draws mazes and solver results as images for external
// viewers. The base image maps one pixel per cell and is scaled up for
// export.
package render

import (
	"image"
	"image/color"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/yalue/image_utils"
)

var (
	wallColor    = color.RGBA{A: 255}
	openColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	visitedColor = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	pathColor    = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	startColor   = color.RGBA{G: 200, A: 255}
	goalColor    = color.RGBA{R: 255, G: 215, A: 255}
)

// Image renders a grid with an optional visited-set and path overlay,
// one pixel per cell. It implements image.Image.
type Image struct {
	grid    *maze.Grid
	visited map[maze.Position]bool
	path    map[maze.Position]bool
}

// New creates a renderable image of the grid. visited and path may be nil
// for a plain maze.
func New(grid *maze.Grid, visited, path []maze.Position) *Image {
	img := &Image{
		grid:    grid,
		visited: make(map[maze.Position]bool, len(visited)),
		path:    make(map[maze.Position]bool, len(path)),
	}
	for _, p := range visited {
		img.visited[p] = true
	}
	for _, p := range path {
		img.path[p] = true
	}
	return img
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.grid.Width, i.grid.Height)
}

// At implements image.Image. Start and goal markers take precedence over the
// path, the path over plain visited cells.
func (i *Image) At(x, y int) color.Color {
	pos := maze.Position{Row: y, Col: x}
	switch {
	case pos == i.grid.Start:
		return startColor
	case pos == i.grid.Goal:
		return goalColor
	case i.path[pos]:
		return pathColor
	case i.visited[pos]:
		return visitedColor
	case i.grid.IsOpen(pos):
		return openColor
	default:
		return wallColor
	}
}

// Scaled returns the image enlarged to cellPixels pixels per maze cell.
func (i *Image) Scaled(cellPixels int) image.Image {
	return image_utils.ResizeImage(i, i.grid.Width*cellPixels, i.grid.Height*cellPixels)
}
