package distance

// History is the ordered list of snapshots from one run, starting with the
// initial Field. Index i holds the state after i steps.
type History []Field

// Len returns the number of snapshots.
func (h History) Len() int {
	return len(h)
}

// At returns the snapshot after step steps, clamped to the recorded range so
// a player can index with any externally computed step count.
// At panics on an empty History.
func (h History) At(step int) Field {
	switch {
	case step < 0:
		return h[0]
	case step >= len(h):
		return h[len(h)-1]
	default:
		return h[step]
	}
}

// Final returns the last snapshot.
func (h History) Final() Field {
	return h[len(h)-1]
}

// Steps returns how many steps the run took: Len minus the initial snapshot.
func (h History) Steps() int {
	return len(h) - 1
}
