// Package generate carves mazes into a grid.
//
// Every algorithm is a pure function from one grid to a new, fully carved
// grid. Randomness comes from an explicit Source so a seed reproduces the
// same maze.
package generate

import (
	"math/rand"
	"time"
)

// Source supplies random choices. Intn returns a value in [0, n).
// *rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded Source. A seed of 0 picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
