// Package grid provides the rectangular maze grid and its position vocabulary.
//
// A Grid is a value. Link never changes the receiver; it returns a new Grid
// with the passage carved, so earlier values stay valid and can be read from
// any number of goroutines.
package grid

import (
	"fmt"
	"iter"
)

// Grid is a rectangle of cells stored row-major in a flat slice. The cell at
// (row, col) lives at index row*columns + col, and neighbors are found by
// index arithmetic.
type Grid struct {
	rows    int
	columns int
	cells   []Cell
}

// New creates a grid with every cell walled on all four sides.
// Both dimensions must be at least 1; New panics otherwise.
func New(columns, rows int) Grid {
	if columns < 1 || rows < 1 {
		panic(fmt.Sprintf("grid: dimensions must be at least 1x1, got %d columns x %d rows", columns, rows))
	}

	cells := make([]Cell, 0, columns*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			cells = append(cells, NewCell(Pos(row, col)))
		}
	}

	return Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g Grid) Columns() int {
	return g.columns
}

// Size returns the number of cells.
func (g Grid) Size() int {
	return len(g.cells)
}

// Contains returns true if pos lies inside the grid's rectangle.
func (g Grid) Contains(pos GridPos) bool {
	return pos.Row >= 0 && int(pos.Row) < g.rows && pos.Col >= 0 && int(pos.Col) < g.columns
}

// AtNorthernBoundary returns true if pos is in the top row.
func (g Grid) AtNorthernBoundary(pos GridPos) bool {
	return int(pos.Row) == g.rows-1
}

// AtEasternBoundary returns true if pos is in the rightmost column.
func (g Grid) AtEasternBoundary(pos GridPos) bool {
	return int(pos.Col) == g.columns-1
}

// AtSouthernBoundary returns true if pos is in row 0.
func (g Grid) AtSouthernBoundary(pos GridPos) bool {
	return pos.Row == 0
}

// AtWesternBoundary returns true if pos is in column 0.
func (g Grid) AtWesternBoundary(pos GridPos) bool {
	return pos.Col == 0
}

// AtBoundary returns true if pos sits on the grid's edge in direction dir.
func (g Grid) AtBoundary(pos GridPos, dir Direction) bool {
	switch dir {
	case North:
		return g.AtNorthernBoundary(pos)
	case East:
		return g.AtEasternBoundary(pos)
	case South:
		return g.AtSouthernBoundary(pos)
	case West:
		return g.AtWesternBoundary(pos)
	default:
		return true
	}
}

// RelativePosition returns the neighbor of pos in direction dir. The second
// result is false when pos is on the boundary in that direction.
func (g Grid) RelativePosition(pos GridPos, dir Direction) (GridPos, bool) {
	// Boundary first: South and West would otherwise step below zero.
	if g.AtBoundary(pos, dir) {
		return GridPos{}, false
	}

	switch dir {
	case North:
		return GridPos{Row: pos.Row + 1, Col: pos.Col}, true
	case East:
		return GridPos{Row: pos.Row, Col: pos.Col + 1}, true
	case South:
		return GridPos{Row: pos.Row - 1, Col: pos.Col}, true
	default:
		return GridPos{Row: pos.Row, Col: pos.Col - 1}, true
	}
}

// Cell returns the cell at pos. Asking for a position outside the grid is a
// programming error and panics; use Lookup when pos is untrusted.
func (g Grid) Cell(pos GridPos) Cell {
	return g.cells[g.mustIndex(pos)]
}

// Lookup returns the cell at pos, or false if pos is outside the grid.
func (g Grid) Lookup(pos GridPos) (Cell, bool) {
	if !g.Contains(pos) {
		return Cell{}, false
	}
	return g.cells[g.index(pos)], true
}

// Link returns a new grid with a passage opened from pos in direction dir.
// The neighbor's opposite side is opened too, so walls stay symmetric.
// Linking toward the boundary opens only the local side; generators never
// do that. Linking an already open side is a no-op on the result.
func (g Grid) Link(pos GridPos, dir Direction) Grid {
	i := g.mustIndex(pos)

	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	cells[i] = cells[i].Open(dir)

	if other, ok := g.RelativePosition(pos, dir); ok {
		j := g.index(other)
		cells[j] = cells[j].Open(dir.Reverse())
	}

	return Grid{
		rows:    g.rows,
		columns: g.columns,
		cells:   cells,
	}
}

// Cells returns every cell exactly once, in row-major order. The sequence is
// lazy and can be ranged over any number of times.
func (g Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Positions returns every position in the grid, sorted by row then column.
func (g Grid) Positions() []GridPos {
	positions := make([]GridPos, 0, len(g.cells))
	for _, c := range g.cells {
		positions = append(positions, c.Pos)
	}
	return positions
}

// RowPositions returns the positions grouped by row, starting at the
// southern row, columns ascending within each row.
func (g Grid) RowPositions() [][]GridPos {
	rows := make([][]GridPos, g.rows)
	for row := range rows {
		rows[row] = make([]GridPos, g.columns)
		for col := range rows[row] {
			rows[row][col] = Pos(row, col)
		}
	}
	return rows
}

// Neighbors returns the positions reachable from pos through open passages.
func (g Grid) Neighbors(pos GridPos) []GridPos {
	cell := g.Cell(pos)
	neighbors := make([]GridPos, 0, 4)
	for _, dir := range Directions() {
		if !cell.IsOpenTo(dir) {
			continue
		}
		if other, ok := g.RelativePosition(pos, dir); ok {
			neighbors = append(neighbors, other)
		}
	}
	return neighbors
}

func (g Grid) index(pos GridPos) int {
	return int(pos.Row)*g.columns + int(pos.Col)
}

func (g Grid) mustIndex(pos GridPos) int {
	if !g.Contains(pos) {
		panic(fmt.Sprintf("grid: position %s outside %d columns x %d rows", pos, g.columns, g.rows))
	}
	return g.index(pos)
}
