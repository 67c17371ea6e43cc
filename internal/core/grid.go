package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Values() []uint8 { return g.data }

// Index returns the linear slice index for the cell at (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// At returns the value stored at (row, col).
func (g *ByteGrid) At(row, col int) uint8 { return g.data[row*g.Cols+col] }

// Set stores v at (row, col).
func (g *ByteGrid) Set(row, col int, v uint8) { g.data[row*g.Cols+col] = v }

// InBounds reports whether (row, col) lies inside the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	c := &ByteGrid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// BoolGrid stores a 2D grid of boolean cell states in row-major order.
type BoolGrid struct {
	Rows, Cols int
	data       []bool
}

// NewBoolGrid allocates a boolean grid with the given dimensions.
func NewBoolGrid(rows, cols int) *BoolGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &BoolGrid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// Values exposes the backing slice so callers can read/write states directly.
func (g *BoolGrid) Values() []bool { return g.data }

// At returns the state stored at (row, col).
func (g *BoolGrid) At(row, col int) bool { return g.data[row*g.Cols+col] }

// Set stores v at (row, col).
func (g *BoolGrid) Set(row, col int, v bool) { g.data[row*g.Cols+col] = v }

// InBounds reports whether (row, col) lies inside the grid.
func (g *BoolGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Clear fills the grid with false.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *BoolGrid) Clone() *BoolGrid {
	c := &BoolGrid{Rows: g.Rows, Cols: g.Cols, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}
