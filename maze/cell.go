package maze

// Kind classifies a single cell in the grid.
type Kind uint8

const (
	// Wall cells are impassable.
	Wall Kind = iota
	// Open cells are passable.
	Open
)

// String returns a human-readable name for the cell kind.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	}
	return "unknown"
}

// Position identifies a cell in the maze grid.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Col index of the cell
}

// directions is the fixed neighbor enumeration order: north, south, east,
// west. The generator and every solver share this order, so differences in
// exploration seen between algorithms come purely from frontier discipline.
var directions = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}
