package generate

import "github.com/samdwyer/mazeflood/internal/grid"

// Sidewinder carves a perfect maze one row at a time, starting from the
// southern row.
//
// Within a row it collects a run of cells. After each cell it either closes
// the run, carving north from one randomly chosen member, or extends the run
// by carving east. The eastern column always closes. The northern row never
// closes early and never carves north, so it becomes a single corridor.
func Sidewinder(g grid.Grid, src Source) grid.Grid {
	for _, row := range g.RowPositions() {
		run := make([]grid.GridPos, 0, len(row))

		for _, pos := range row {
			run = append(run, pos)

			closeOut := g.AtEasternBoundary(pos) ||
				(!g.AtNorthernBoundary(pos) && src.Intn(2) == 0)

			if !closeOut {
				g = g.Link(pos, grid.East)
				continue
			}

			chosen := run[src.Intn(len(run))]
			run = run[:0]
			if !g.AtNorthernBoundary(pos) {
				g = g.Link(chosen, grid.North)
			}
		}
	}
	return g
}
