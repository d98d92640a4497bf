package grid

import (
	"fmt"
	"strings"
)

// String draws the grid as ASCII art, northern row at the top.
func (g Grid) String() string {
	return g.Format(nil)
}

// Format draws the grid as ASCII art and writes label(pos) inside each cell,
// right-aligned and cut to three characters. A nil label leaves cells blank.
func (g Grid) Format(label func(GridPos) string) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.columns) + "\n")

	for row := g.rows - 1; row >= 0; row-- {
		// Cell row
		b.WriteString("|")
		for col := 0; col < g.columns; col++ {
			cell := g.Cell(Pos(row, col))
			text := "   "
			if label != nil {
				text = fmt.Sprintf("%3.3s", label(cell.Pos))
			}
			b.WriteString(text)
			if cell.EastOpen {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall row below this one
		b.WriteString("+")
		for col := 0; col < g.columns; col++ {
			if g.Cell(Pos(row, col)).SouthOpen {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
