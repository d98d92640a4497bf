package grid

import (
	"cmp"
	"fmt"
	"slices"
)

// Row is a row index. Row 0 is the southern edge of a grid.
type Row int

// Col is a column index. Col 0 is the western edge of a grid.
type Col int

// GridPos identifies a single cell. Positions order by row, then column.
type GridPos struct {
	Row Row
	Col Col
}

// Pos builds a GridPos from plain ints.
func Pos(row, col int) GridPos {
	return GridPos{Row: Row(row), Col: Col(col)}
}

// Compare returns -1, 0 or +1 ordering p before, equal to, or after other.
func (p GridPos) Compare(other GridPos) int {
	if c := cmp.Compare(p.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, other.Col)
}

// Less reports whether p sorts before other.
func (p GridPos) Less(other GridPos) bool {
	return p.Compare(other) < 0
}

// String returns the position as "(row,col)".
func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// SortPositions sorts positions in place by row, then column.
func SortPositions(positions []GridPos) {
	slices.SortFunc(positions, GridPos.Compare)
}
