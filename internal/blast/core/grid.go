package core

// Grid represents the board as a rectangular grid of items.
// Cells are stored in row-major order: index = y*W + x. Row 0 is the top.
type Grid struct {
	W     int    // Width of the grid (items per row)
	H     int    // Height of the grid (number of rows)
	Cells []Item // Flat array of cells, length W*H
}

// NewGrid builds a grid from rows of items.
// The rows must be non-empty and all of the same length.
func NewGrid(rows [][]Item) (*Grid, error) {
	if len(rows) == 0 {
		return nil, newError(CodeEmptyGrid, "grid has no rows")
	}

	w := len(rows[0])
	g := &Grid{
		W:     w,
		H:     len(rows),
		Cells: make([]Item, 0, w*len(rows)),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, newError(CodeRaggedGrid,
				"row %d has %d cells, expected %d", y+1, len(row), w)
		}
		g.Cells = append(g.Cells, row...)
	}
	if w == 0 {
		return nil, newError(CodeEmptyGrid, "grid has no cells")
	}
	return g, nil
}

// NewEmptyGrid creates a new grid with all cells empty.
func NewEmptyGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Cells: make([]Item, w*h)}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// Dimensions returns the width and height of the grid.
func (g *Grid) Dimensions() (w, h int) {
	return g.W, g.H
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the item at the given coordinate.
// The coordinate must be in bounds.
func (g *Grid) At(c Coord) Item {
	return g.Cells[g.index(c)]
}

// Set replaces the item at the given coordinate.
// The coordinate must be in bounds.
func (g *Grid) Set(c Coord, it Item) {
	g.Cells[g.index(c)] = it
}

// Row returns a copy of row y.
func (g *Grid) Row(y int) []Item {
	row := make([]Item, g.W)
	copy(row, g.Cells[y*g.W:(y+1)*g.W])
	return row
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Item, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given kind.
func (g *Grid) Count(k Kind) int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Kind == k {
			count++
		}
	}
	return count
}

// EnemyHealth returns the summed health of all enemies on the grid.
func (g *Grid) EnemyHealth() int {
	total := 0
	for _, cell := range g.Cells {
		if cell.Kind == KindEnemy {
			total += cell.Value
		}
	}
	return total
}

// AllCoords returns all coordinates in the grid, ordered by row then column.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Bombs returns the coordinates of every bomb, ordered by row then column.
func (g *Grid) Bombs() []Coord {
	coords := make([]Coord, 0)
	for _, c := range g.AllCoords() {
		if g.At(c).IsBomb() {
			coords = append(coords, c)
		}
	}
	return coords
}
