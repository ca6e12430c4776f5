package bomberman

import "fmt"

// Cell classifies a single maze square.
type Cell uint8

const (
	Empty         Cell = iota // Walkable floor
	SolidWall                 // Indestructible, blocks explosions
	BreakableWall             // Destroyed by the first explosion ray that reaches it
)

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case SolidWall:
		return "solid"
	case BreakableWall:
		return "breakable"
	default:
		return "unknown"
	}
}

// minGridSize is the smallest maze that fits a border plus the cleared start area.
const minGridSize = 5

// startClearCorner bounds the top-left block where no breakable walls are rolled.
const startClearCorner = 2

// Grid is the static-per-level maze. Its shape never changes; cells only go
// from BreakableWall to Empty.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell // indexed [y][x]
}

// NewGrid generates a maze:
//   - border cells and interior cells with even row and even column are SolidWall
//   - other interior cells are BreakableWall with probability breakableChance,
//     except where x <= 2 && y <= 2
//   - (1,1), (2,1) and (1,2) are always Empty
//
// Panics if either dimension is below 5.
func NewGrid(rows, cols int, breakableChance float64, rnd Random) *Grid {
	if rows < minGridSize || cols < minGridSize {
		panic(fmt.Sprintf("bomberman: grid must be at least %dx%d, got %dx%d", minGridSize, minGridSize, cols, rows))
	}

	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for y := range rows {
		g.cells[y] = make([]Cell, cols)
		for x := range cols {
			switch {
			case y == 0 || y == rows-1 || x == 0 || x == cols-1:
				g.cells[y][x] = SolidWall
			case y%2 == 0 && x%2 == 0:
				g.cells[y][x] = SolidWall
			case rnd.Float64() < breakableChance && !(y <= startClearCorner && x <= startClearCorner):
				g.cells[y][x] = BreakableWall
			default:
				g.cells[y][x] = Empty
			}
		}
	}

	g.cells[1][1] = Empty
	g.cells[1][2] = Empty
	g.cells[2][1] = Empty

	return g
}

// Rows returns the maze height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the maze width in cells.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x, y) lies inside the maze.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y). Out-of-bounds reads report SolidWall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return SolidWall
	}
	return g.cells[y][x]
}

// DestroyBreakableWall turns a BreakableWall into Empty and reports whether it did.
// Any other cell is left untouched.
func (g *Grid) DestroyBreakableWall(x, y int) bool {
	if g.At(x, y) != BreakableWall {
		return false
	}
	g.cells[y][x] = Empty
	return true
}

// Count returns how many cells hold the given classification.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the maze rows.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for y, row := range g.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}
