package distance

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mazeflood/internal/grid"
)

var (
	// ErrUnreached is returned by PathTo when the target has no distance yet.
	ErrUnreached = errors.New("distance: position not reached")
	// ErrInconsistent is returned by PathTo when the grid does not match the
	// one the field was filled against.
	ErrInconsistent = errors.New("distance: field does not match grid")
)

// PathTo reconstructs a shortest path from the root to target by walking
// down the distance gradient through open passages of g. The returned path
// starts at the root and ends at target.
func (f Field) PathTo(g grid.Grid, target grid.GridPos) ([]grid.GridPos, error) {
	d, ok := f.Distance(target)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnreached, target)
	}

	path := make([]grid.GridPos, d+1)
	path[d] = target
	cur := target
	for want := d - 1; want >= 0; want-- {
		found := false
		for _, next := range g.Neighbors(cur) {
			if nd, ok := f.Distance(next); ok && nd == want {
				cur = next
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no neighbor of %s at distance %d", ErrInconsistent, cur, want)
		}
		path[want] = cur
	}
	return path, nil
}
