package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Coord identifies a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Class is the per-cell visual classification driving render color. It is
// distinct from raw aliveness: a dead-marked cell is no longer alive but is
// rendered once more before fading to background.
type Class uint8

const (
	// ClassBackground marks a cell with no visual state.
	ClassBackground Class = iota
	// ClassNew marks a cell that became alive this step or by direct mutation.
	ClassNew
	// ClassSurvivor marks a cell that stayed alive through the last step.
	ClassSurvivor
	// ClassDead marks a cell that died this step and is rendered once more.
	ClassDead
)

// String returns the lowercase class name.
func (c Class) String() string {
	switch c {
	case ClassNew:
		return "new"
	case ClassSurvivor:
		return "survivor"
	case ClassDead:
		return "dead"
	default:
		return "background"
	}
}

// Change reports that the cell at (Row, Col) now renders as Class. Mutating
// operations emit a slice of these so renderers can repaint incrementally.
type Change struct {
	Row   int
	Col   int
	Class Class
}
