package core

import "fmt"

// Coord represents a 2D coordinate on the grid.
// X is the column and increases to the right, Y is the row and increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir represents a blast direction. Detours reuse it as their payload.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// BlastOrder is the fixed order in which a detonation sweeps.
var BlastOrder = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Letter returns the single-letter code used by detour tokens.
func (d Dir) Letter() byte {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	default:
		return 'R'
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ParseDir maps a detour letter (U, D, L, R) to a direction.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "U":
		return DirUp, true
	case "D":
		return DirDown, true
	case "L":
		return DirLeft, true
	case "R":
		return DirRight, true
	}
	return DirUp, false
}
