// Package life implements an incremental Conway's Game of Life engine with an
// extended per-cell classification. Instead of a binary alive/dead model every
// cell renders as one of four classes: newly born, survivor, dead-marked (died
// this step, drawn once more) or background. The engine keeps a dense alive
// grid, a dense neighbour-count cache and sparse classification sets so that a
// step only evaluates cells near activity instead of rescanning the board, and
// a bounded snapshot ledger so every mutation can be undone.
//
// The engine is a single synchronous state machine: no internal locking, no
// goroutines. Drivers that call it from more than one goroutine must serialize
// access themselves.
package life

import "neon-life/internal/core"

// Grid is the simulation engine. All state is exclusively owned; mutating
// operations snapshot into the undo ledger before touching anything and
// return the list of cells whose classification changed.
type Grid struct {
	rows, cols int

	cells   *core.BoolGrid
	counts  *core.ByteGrid
	display *core.ByteGrid

	newCells  map[core.Coord]struct{}
	survivors map[core.Coord]struct{}
	dead      map[core.Coord]struct{}
	ages      map[core.Coord]int

	iteration int
	backups   *ledger
}

// New returns an engine with the provided dimensions and the default undo
// history depth.
func New(rows, cols int) *Grid {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options.
// Degenerate dimensions are clamped to 1.
func NewWithConfig(cfg Config) *Grid {
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 1
	}
	if cfg.MaxBackups < 0 {
		cfg.MaxBackups = 0
	}
	g := &Grid{backups: newLedger(cfg.MaxBackups)}
	g.init(cfg.Rows, cfg.Cols)
	return g
}

// init reallocates every container at the given dimensions.
func (g *Grid) init(rows, cols int) {
	g.rows = rows
	g.cols = cols
	g.cells = core.NewBoolGrid(rows, cols)
	g.counts = core.NewByteGrid(rows, cols)
	g.display = core.NewByteGrid(rows, cols)
	g.newCells = make(map[core.Coord]struct{})
	g.survivors = make(map[core.Coord]struct{})
	g.dead = make(map[core.Coord]struct{})
	g.ages = make(map[core.Coord]int)
	g.iteration = 0
}

// Shape returns the grid dimensions as (rows, cols).
func (g *Grid) Shape() (int, int) { return g.rows, g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{Rows: g.rows, Cols: g.cols} }

// Iteration returns the number of steps taken since the last full reset.
func (g *Grid) Iteration() int { return g.iteration }

// Alive reports whether the cell at (row, col) is alive. Out-of-bounds
// coordinates report false.
func (g *Grid) Alive(row, col int) bool {
	return g.inBounds(row, col) && g.cells.At(row, col)
}

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, v := range g.cells.Values() {
		if v {
			n++
		}
	}
	return n
}

// AlivePercentage returns the alive cell share of the grid in percent.
func (g *Grid) AlivePercentage() float64 {
	total := g.rows * g.cols
	if total == 0 {
		return 0
	}
	return float64(g.AliveCount()) / float64(total) * 100
}

// Cells exposes the dense classification buffer, one core.Class value per
// cell in row-major order. Renderers may blit it directly; callers must not
// mutate it.
func (g *Grid) Cells() []uint8 { return g.display.Values() }

// NeighbourCounts exposes the dense neighbour-count cache in row-major order.
// Callers must not mutate it.
func (g *Grid) NeighbourCounts() []uint8 { return g.counts.Values() }

// SurvivorAges returns a copy of the survivor duration map: consecutive steps
// each survivor has been stable, starting at zero.
func (g *Grid) SurvivorAges() map[core.Coord]int {
	ages := make(map[core.Coord]int, len(g.ages))
	for c, a := range g.ages {
		ages[c] = a
	}
	return ages
}

// BackupDepth returns the number of snapshots currently held by the ledger.
func (g *Grid) BackupDepth() int { return g.backups.depth() }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// bumpNeighbours applies delta to the neighbour count of every in-bounds
// Moore neighbour of (row, col).
func (g *Grid) bumpNeighbours(row, col, delta int) {
	for r := max(0, row-1); r <= min(g.rows-1, row+1); r++ {
		for c := max(0, col-1); c <= min(g.cols-1, col+1); c++ {
			if r == row && c == col {
				continue
			}
			g.counts.Set(r, c, uint8(int(g.counts.At(r, c))+delta))
		}
	}
}

// rebuildCounts recomputes the neighbour-count cache from scratch in
// O(rows*cols). Only layout replacement, overlay and resize pay this cost;
// everything else maintains the cache incrementally.
func (g *Grid) rebuildCounts() {
	g.counts.Clear()
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells.At(row, col) {
				g.bumpNeighbours(row, col, 1)
			}
		}
	}
}

// rebuildDisplay re-derives the classification buffer from the sets.
func (g *Grid) rebuildDisplay() {
	g.display.Clear()
	for c := range g.newCells {
		g.display.Set(c.Row, c.Col, uint8(core.ClassNew))
	}
	for c := range g.survivors {
		g.display.Set(c.Row, c.Col, uint8(core.ClassSurvivor))
	}
	for c := range g.dead {
		g.display.Set(c.Row, c.Col, uint8(core.ClassDead))
	}
}

// captureDisplay copies the current classification buffer.
func (g *Grid) captureDisplay() []uint8 {
	return append([]uint8(nil), g.display.Values()...)
}

// displayDiff lists every cell whose classification differs from the captured
// buffer. The capture must stem from the same dimensions.
func (g *Grid) displayDiff(old []uint8) []core.Change {
	cur := g.display.Values()
	var changes []core.Change
	for i, v := range cur {
		if v != old[i] {
			changes = append(changes, core.Change{
				Row:   i / g.cols,
				Col:   i % g.cols,
				Class: core.Class(v),
			})
		}
	}
	return changes
}

// reclass moves the cell's classification in the display buffer, appending a
// change entry only when the visual state actually differs.
func (g *Grid) reclass(changes []core.Change, c core.Coord, class core.Class) []core.Change {
	if core.Class(g.display.At(c.Row, c.Col)) == class {
		return changes
	}
	g.display.Set(c.Row, c.Col, uint8(class))
	return append(changes, core.Change{Row: c.Row, Col: c.Col, Class: class})
}
