package generate

import "github.com/samdwyer/mazeflood/internal/grid"

// BinaryTree carves a perfect maze by linking every cell either east or
// north, picked at random among the directions that are not blocked by the
// boundary. The north-east corner has neither and is left alone.
func BinaryTree(g grid.Grid, src Source) grid.Grid {
	for _, pos := range g.Positions() {
		candidates := make([]grid.Direction, 0, 2)
		if !g.AtEasternBoundary(pos) {
			candidates = append(candidates, grid.East)
		}
		if !g.AtNorthernBoundary(pos) {
			candidates = append(candidates, grid.North)
		}
		if len(candidates) == 0 {
			continue
		}
		g = g.Link(pos, candidates[src.Intn(len(candidates))])
	}
	return g
}
