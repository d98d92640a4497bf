// Package distance computes breadth-first distance fields over a maze grid.
//
// A Field is one snapshot of a flood fill from a root position. Step expands
// the oldest position on the frontier and returns the next snapshot, leaving
// the receiver untouched, so a whole run can be kept as a History and played
// back one step at a time.
//
// The grid is passed to every call rather than stored in the Field. The same
// grid can drive any number of independent runs.
//
// Complexity:
//
//   - RunToCompletion: O(V+E) time, O(V) memory.
//   - Step:            O(V) time, because each snapshot owns a copy of its state.
//   - RunToCompletionAll: O(V²) time and memory for V+1 snapshots.
package distance

import (
	"maps"
	"slices"

	"github.com/samdwyer/mazeflood/internal/grid"
)

// Field is an immutable snapshot of a flood fill.
type Field struct {
	root        grid.GridPos
	distances   map[grid.GridPos]int
	frontier    []grid.GridPos // FIFO, never holds duplicates
	maxDistance int
}

// New starts a flood fill at root: root is at distance 0 and is the only
// position on the frontier. root must lie inside every grid later passed to
// Step.
func New(root grid.GridPos) Field {
	return Field{
		root:      root,
		distances: map[grid.GridPos]int{root: 0},
		frontier:  []grid.GridPos{root},
	}
}

// Root returns the position the fill started from.
func (f Field) Root() grid.GridPos {
	return f.root
}

// Distance returns the distance from the root to pos. The second result is
// false if the fill has not reached pos yet; that is a normal state while a
// run is in progress.
func (f Field) Distance(pos grid.GridPos) (int, bool) {
	d, ok := f.distances[pos]
	return d, ok
}

// MaxDistance returns the largest distance assigned so far.
func (f Field) MaxDistance() int {
	return f.maxDistance
}

// Visited returns how many positions have a distance.
func (f Field) Visited() int {
	return len(f.distances)
}

// Frontier returns a copy of the positions waiting to be expanded, oldest first.
func (f Field) Frontier() []grid.GridPos {
	return slices.Clone(f.frontier)
}

// Done returns true once the frontier is empty and Step has nothing left to do.
func (f Field) Done() bool {
	return len(f.frontier) == 0
}

// Positions returns every reached position, sorted by row then column.
func (f Field) Positions() []grid.GridPos {
	positions := slices.Collect(maps.Keys(f.distances))
	grid.SortPositions(positions)
	return positions
}

// Distances returns a copy of the distance map.
func (f Field) Distances() map[grid.GridPos]int {
	return maps.Clone(f.distances)
}

// Step expands the head of the frontier against g and returns the resulting
// snapshot. For each open side of that cell whose neighbor has no distance
// yet, the neighbor gets the cell's distance plus one and joins the back of
// the frontier. The second result is false when the frontier is already
// empty; the returned Field is then the receiver itself.
func (f Field) Step(g grid.Grid) (Field, bool) {
	if f.Done() {
		return f, false
	}
	next := f.clone()
	next.advance(g)
	return next, true
}

// RunToCompletion steps until the frontier is empty and returns the final
// snapshot. On a grid that is not fully connected the result covers only the
// root's region; that is a valid terminal state.
func (f Field) RunToCompletion(g grid.Grid) Field {
	final := f.clone()
	for !final.Done() {
		final.advance(g)
	}
	return final
}

// RunToCompletionAll steps until the frontier is empty and returns every
// snapshot in order, starting with the receiver.
func (f Field) RunToCompletionAll(g grid.Grid) History {
	history := History{f}
	for {
		next, ok := history[len(history)-1].Step(g)
		if !ok {
			return history
		}
		history = append(history, next)
	}
}

func (f Field) clone() Field {
	return Field{
		root:        f.root,
		distances:   maps.Clone(f.distances),
		frontier:    slices.Clone(f.frontier),
		maxDistance: f.maxDistance,
	}
}

// advance expands the head of the frontier in place. Only call it on a Field
// no other caller can see.
func (f *Field) advance(g grid.Grid) {
	pos := f.frontier[0]
	f.frontier = f.frontier[1:]

	cell := g.Cell(pos)
	d := f.distances[pos]

	for _, dir := range grid.Directions() {
		if !cell.IsOpenTo(dir) {
			continue
		}
		next, ok := g.RelativePosition(pos, dir)
		if !ok {
			continue
		}
		if _, seen := f.distances[next]; seen {
			continue
		}
		f.distances[next] = d + 1
		f.frontier = append(f.frontier, next)
		if d+1 > f.maxDistance {
			f.maxDistance = d + 1
		}
	}
}
