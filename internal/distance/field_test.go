package distance

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeflood/internal/generate"
	"github.com/samdwyer/mazeflood/internal/grid"
)

func sidewinderMaze(cols, rows int, seed int64) grid.Grid {
	return generate.Sidewinder(grid.New(cols, rows), generate.NewSource(seed))
}

// sPath is a 2x2 maze shaped like an S: (0,0)-(0,1)-(1,1)-(1,0).
func sPath() grid.Grid {
	return grid.New(2, 2).
		Link(grid.Pos(0, 0), grid.East).
		Link(grid.Pos(0, 1), grid.North).
		Link(grid.Pos(1, 1), grid.West)
}

func TestNewField(t *testing.T) {
	root := grid.Pos(1, 2)
	f := New(root)

	assert.Equal(t, root, f.Root())
	d, ok := f.Distance(root)
	assert.True(t, ok)
	assert.Zero(t, d)
	assert.Equal(t, []grid.GridPos{root}, f.Frontier())
	assert.Zero(t, f.MaxDistance())
	assert.Equal(t, 1, f.Visited())
	assert.False(t, f.Done())
}

func TestSixteenStepsIn4x4Maze(t *testing.T) {
	g := sidewinderMaze(4, 4, 1)
	f := New(grid.Pos(0, 0))

	steps := 0
	for {
		next, ok := f.Step(g)
		if !ok {
			break
		}
		steps++
		f = next
	}

	assert.Equal(t, 16, steps)
	assert.True(t, f.Done())
}

func TestVisitsEveryPosition(t *testing.T) {
	for _, size := range []struct{ cols, rows int }{{2, 2}, {4, 4}, {4, 8}, {8, 30}} {
		t.Run(fmt.Sprintf("%dx%d", size.cols, size.rows), func(t *testing.T) {
			g := sidewinderMaze(size.cols, size.rows, 42)
			f := New(grid.Pos(0, 0)).RunToCompletion(g)

			assert.Equal(t, size.cols*size.rows, f.Visited())
			assert.Equal(t, g.Positions(), f.Positions())
		})
	}
}

func TestAllDistancesUpToSixIn4x4(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := sidewinderMaze(4, 4, seed)
		f := New(grid.Pos(0, 0)).RunToCompletion(g)

		seen := make(map[int]bool)
		for _, d := range f.Distances() {
			seen[d] = true
		}
		for want := 0; want <= 6; want++ {
			assert.True(t, seen[want], "seed %d: distance %d missing", seed, want)
		}
		assert.GreaterOrEqual(t, f.MaxDistance(), 6)
	}
}

func TestStepDoesNotMutate(t *testing.T) {
	g := sPath()
	first := New(grid.Pos(0, 0))

	second, ok := first.Step(g)
	require.True(t, ok)

	assert.Equal(t, 1, first.Visited())
	assert.Equal(t, []grid.GridPos{grid.Pos(0, 0)}, first.Frontier())
	assert.Zero(t, first.MaxDistance())

	assert.Equal(t, 2, second.Visited())
	assert.Equal(t, []grid.GridPos{grid.Pos(0, 1)}, second.Frontier())
	assert.Equal(t, 1, second.MaxDistance())

	// Stepping the same snapshot again gives the same result.
	again, ok := first.Step(g)
	require.True(t, ok)
	assert.Equal(t, second.Distances(), again.Distances())
}

func TestExactDistancesOnKnownMaze(t *testing.T) {
	f := New(grid.Pos(0, 0)).RunToCompletion(sPath())

	want := map[grid.GridPos]int{
		grid.Pos(0, 0): 0,
		grid.Pos(0, 1): 1,
		grid.Pos(1, 1): 2,
		grid.Pos(1, 0): 3,
	}
	assert.Equal(t, want, f.Distances())
	assert.Equal(t, 3, f.MaxDistance())
}

func TestTerminalFieldStaysTerminal(t *testing.T) {
	f := New(grid.Pos(0, 0)).RunToCompletion(sPath())
	require.True(t, f.Done())

	next, ok := f.Step(sPath())
	assert.False(t, ok)
	assert.Equal(t, f.Distances(), next.Distances())
}

func TestDisconnectedGridStopsEarly(t *testing.T) {
	g := grid.New(3, 3)
	f := New(grid.Pos(1, 1)).RunToCompletion(g)

	assert.True(t, f.Done())
	assert.Equal(t, 1, f.Visited())
	_, ok := f.Distance(grid.Pos(0, 0))
	assert.False(t, ok, "unreached positions report absence, not zero")
}

func TestDistancesAreBreadthFirst(t *testing.T) {
	g := sidewinderMaze(12, 9, 7)
	f := New(grid.Pos(4, 5)).RunToCompletion(g)

	for pos, d := range f.Distances() {
		if pos == f.Root() {
			assert.Zero(t, d)
			continue
		}
		// Every non-root position has a linked neighbor one step closer, and
		// no linked neighbor more than one step away.
		closer := false
		for _, next := range g.Neighbors(pos) {
			nd, ok := f.Distance(next)
			require.True(t, ok)
			assert.LessOrEqual(t, abs(nd-d), 1, "%s and %s", pos, next)
			if nd == d-1 {
				closer = true
			}
		}
		assert.True(t, closer, "%s at %d has no neighbor at %d", pos, d, d-1)
	}
}

func TestFrontierNeverHoldsDuplicates(t *testing.T) {
	g := generate.BinaryTree(grid.New(10, 10), generate.NewSource(5))
	for _, f := range New(grid.Pos(9, 9)).RunToCompletionAll(g) {
		seen := make(map[grid.GridPos]bool)
		for _, pos := range f.Frontier() {
			assert.False(t, seen[pos], "duplicate %s on frontier", pos)
			seen[pos] = true
		}
	}
}

func TestRunToCompletionAll(t *testing.T) {
	g := sidewinderMaze(5, 6, 11)
	root := grid.Pos(2, 2)

	history := New(root).RunToCompletionAll(g)

	require.Equal(t, 31, history.Len(), "initial snapshot plus one per cell")
	assert.Equal(t, 30, history.Steps())
	assert.Equal(t, New(root), history[0])
	assert.True(t, history.Final().Done())
	final := New(root).RunToCompletion(g)
	assert.Equal(t, final.Distances(), history.Final().Distances())
	assert.Equal(t, final.MaxDistance(), history.Final().MaxDistance())

	for i := 1; i < history.Len(); i++ {
		assert.GreaterOrEqual(t, history[i].Visited(), history[i-1].Visited())
		assert.GreaterOrEqual(t, history[i].MaxDistance(), history[i-1].MaxDistance())
	}
}

func TestHistoryAtClamps(t *testing.T) {
	history := New(grid.Pos(0, 0)).RunToCompletionAll(sPath())

	assert.Equal(t, history[0], history.At(-3))
	assert.Equal(t, history[2], history.At(2))
	assert.Equal(t, history.Final(), history.At(1000))
}

func TestHistoryConcurrentReads(t *testing.T) {
	g := sidewinderMaze(8, 8, 3)
	history := New(grid.Pos(0, 0)).RunToCompletionAll(g)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < history.Len(); i++ {
				f := history.At(i)
				for _, pos := range g.Positions() {
					f.Distance(pos)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 64, history.Final().Visited())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
