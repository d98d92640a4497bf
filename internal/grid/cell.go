package grid

// Cell is a single maze cell. Each flag reports whether a passage crosses
// that side of the cell.
type Cell struct {
	Pos       GridPos
	NorthOpen bool
	EastOpen  bool
	SouthOpen bool
	WestOpen  bool
}

// NewCell returns a cell at pos with every side walled.
func NewCell(pos GridPos) Cell {
	return Cell{Pos: pos}
}

// IsOpenTo returns true if a passage crosses the cell's side in direction dir.
func (c Cell) IsOpenTo(dir Direction) bool {
	switch dir {
	case North:
		return c.NorthOpen
	case East:
		return c.EastOpen
	case South:
		return c.SouthOpen
	case West:
		return c.WestOpen
	default:
		return false
	}
}

// Open returns a copy of the cell with the side in direction dir opened.
func (c Cell) Open(dir Direction) Cell {
	switch dir {
	case North:
		c.NorthOpen = true
	case East:
		c.EastOpen = true
	case South:
		c.SouthOpen = true
	case West:
		c.WestOpen = true
	}
	return c
}

// OpenSides returns how many of the cell's sides are open.
func (c Cell) OpenSides() int {
	n := 0
	for _, dir := range Directions() {
		if c.IsOpenTo(dir) {
			n++
		}
	}
	return n
}
