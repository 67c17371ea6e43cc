package life

// Naive is a full-scan Life stepper over the same bounded grid topology as
// the engine. It exists as a correctness baseline for the test suite and as
// the comparison case for the benchmark command; it tracks no classification
// and no history.
type Naive struct {
	rows, cols int
	cur        []bool
	nxt        []bool
}

// NewNaive returns a naive stepper with the provided dimensions.
func NewNaive(rows, cols int) *Naive {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	cells := make([]bool, rows*cols)
	return &Naive{rows: rows, cols: cols, cur: cells, nxt: make([]bool, len(cells))}
}

// Values exposes the current board in row-major order for seeding and
// inspection.
func (n *Naive) Values() []bool { return n.cur }

// Alive reports the state of the cell at (row, col).
func (n *Naive) Alive(row, col int) bool { return n.cur[row*n.cols+col] }

// Step advances one generation by rescanning the entire board.
func (n *Naive) Step() {
	for row := 0; row < n.rows; row++ {
		for col := 0; col < n.cols; col++ {
			neighbours := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					r, c := row+dr, col+dc
					if r < 0 || r >= n.rows || c < 0 || c >= n.cols {
						continue
					}
					if n.cur[r*n.cols+c] {
						neighbours++
					}
				}
			}
			idx := row*n.cols + col
			alive := n.cur[idx]
			n.nxt[idx] = (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3)
		}
	}
	n.cur, n.nxt = n.nxt, n.cur
}
