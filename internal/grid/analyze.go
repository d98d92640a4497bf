package grid

import "github.com/zyedidia/generic/mapset"

// passage is an undirected edge between two adjacent cells, stored with the
// smaller position first.
type passage struct {
	a, b GridPos
}

func newPassage(p, q GridPos) passage {
	if q.Less(p) {
		p, q = q, p
	}
	return passage{a: p, b: q}
}

// Analysis summarizes the passage graph of a grid.
type Analysis struct {
	Cells      int // Number of cells
	Passages   int // Open passages between two cells, counted once per pair
	Components int // Connected regions of the passage graph
	Asymmetric int // Sides open on one cell but closed on its neighbor
	Boundary   int // Sides opened toward the outer edge of the grid
}

// Connected returns true if every cell can reach every other cell.
func (a Analysis) Connected() bool {
	return a.Components == 1
}

// Acyclic returns true if the passage graph contains no loops.
func (a Analysis) Acyclic() bool {
	return a.Passages == a.Cells-a.Components
}

// Perfect returns true if the passages form a spanning tree: one path
// between any two cells.
func (a Analysis) Perfect() bool {
	return a.Connected() && a.Acyclic() && a.Asymmetric == 0
}

// Analyze inspects g's passages and reports how they are connected.
//
// Time: O(R*C). Memory: O(R*C).
func Analyze(g Grid) Analysis {
	res := Analysis{Cells: g.Size()}
	passages := mapset.New[passage]()

	for cell := range g.Cells() {
		for _, dir := range Directions() {
			if !cell.IsOpenTo(dir) {
				continue
			}
			other, ok := g.RelativePosition(cell.Pos, dir)
			if !ok {
				res.Boundary++
				continue
			}
			if !g.Cell(other).IsOpenTo(dir.Reverse()) {
				res.Asymmetric++
				continue
			}
			passages.Put(newPassage(cell.Pos, other))
		}
	}
	res.Passages = passages.Size()

	// Count components with a BFS from every unvisited cell.
	visited := mapset.New[GridPos]()
	for _, start := range g.Positions() {
		if visited.Has(start) {
			continue
		}
		res.Components++
		visited.Put(start)
		queue := []GridPos{start}
		for len(queue) > 0 {
			pos := queue[0]
			queue = queue[1:]
			for _, next := range g.Neighbors(pos) {
				if visited.Has(next) || !passages.Has(newPassage(pos, next)) {
					continue
				}
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return res
}
