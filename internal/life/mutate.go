package life

import "neon-life/internal/core"

// Mutation operations. Each one snapshots the current state into the undo
// ledger before mutating and returns the cells whose classification changed.
// Anomalies (out-of-bounds coordinates, operand shape mismatches) never
// panic: the operation is silently declined and returns no changes.

// Resurrect brings the cell at (row, col) to life and classifies it as new.
// Declined if the coordinate is out of bounds or the cell is already alive.
func (g *Grid) Resurrect(row, col int) []core.Change {
	if !g.inBounds(row, col) || g.cells.At(row, col) {
		return nil
	}
	g.backups.push(g.snapshot())
	c := core.Coord{Row: row, Col: col}
	g.cells.Set(row, col, true)
	g.bumpNeighbours(row, col, 1)
	g.newCells[c] = struct{}{}
	delete(g.dead, c)
	return g.reclass(nil, c, core.ClassNew)
}

// Clear removes the cell at (row, col) from the board entirely: it is killed
// if alive and dropped from every classification set. Declined if out of
// bounds.
func (g *Grid) Clear(row, col int) []core.Change {
	if !g.inBounds(row, col) {
		return nil
	}
	g.backups.push(g.snapshot())
	c := core.Coord{Row: row, Col: col}
	if g.cells.At(row, col) {
		g.cells.Set(row, col, false)
		g.bumpNeighbours(row, col, -1)
	}
	delete(g.newCells, c)
	delete(g.survivors, c)
	delete(g.dead, c)
	delete(g.ages, c)
	return g.reclass(nil, c, core.ClassBackground)
}

// ReplaceLayout replaces the whole board with the provided layout, rebuilds
// the neighbour-count cache, classifies every alive cell as new and resets
// the iteration counter. Declined if the layout shape does not match.
func (g *Grid) ReplaceLayout(layout [][]bool) []core.Change {
	if !g.matchesShape(layout) {
		return nil
	}
	g.backups.push(g.snapshot())
	old := g.captureDisplay()

	g.newCells = make(map[core.Coord]struct{})
	for row := range layout {
		for col, alive := range layout[row] {
			g.cells.Set(row, col, alive)
			if alive {
				g.newCells[core.Coord{Row: row, Col: col}] = struct{}{}
			}
		}
	}
	g.rebuildCounts()
	g.survivors = make(map[core.Coord]struct{})
	g.dead = make(map[core.Coord]struct{})
	g.ages = make(map[core.Coord]int)
	g.iteration = 0
	g.rebuildDisplay()
	return g.displayDiff(old)
}

// Overlay merges another layout into the board with a logical OR. Cells the
// merge brings to life are classified as new; cells already alive keep their
// classification. Duration entries are purged for every coordinate alive in
// the post-overlay grid, so survivor age clocks restart after a merge. The
// neighbour-count cache is rebuilt from scratch. When redrawNow is false no
// diff is emitted; callers stamping several patterns redraw once at the end.
// Declined on shape mismatch.
func (g *Grid) Overlay(layout [][]bool, redrawNow bool) []core.Change {
	if !g.matchesShape(layout) {
		return nil
	}
	g.backups.push(g.snapshot())
	old := g.captureDisplay()

	for row := range layout {
		for col, alive := range layout[row] {
			if !alive || g.cells.At(row, col) {
				continue
			}
			c := core.Coord{Row: row, Col: col}
			g.cells.Set(row, col, true)
			g.newCells[c] = struct{}{}
			delete(g.dead, c)
		}
	}
	for c := range g.ages {
		if g.cells.At(c.Row, c.Col) {
			delete(g.ages, c)
		}
	}
	g.rebuildCounts()
	g.rebuildDisplay()

	if !redrawNow {
		return nil
	}
	return g.displayDiff(old)
}

// Invert swaps the roles of the new and dead-marked sets: every new cell is
// killed and every dead-marked cell resurrected. Survivors are untouched.
func (g *Grid) Invert() []core.Change {
	g.backups.push(g.snapshot())
	old := g.captureDisplay()

	g.newCells, g.dead = g.dead, g.newCells
	for c := range g.newCells {
		if !g.cells.At(c.Row, c.Col) {
			g.cells.Set(c.Row, c.Col, true)
			g.bumpNeighbours(c.Row, c.Col, 1)
		}
	}
	for c := range g.dead {
		if g.cells.At(c.Row, c.Col) {
			g.cells.Set(c.Row, c.Col, false)
			g.bumpNeighbours(c.Row, c.Col, -1)
		}
	}
	g.rebuildDisplay()
	return g.displayDiff(old)
}

// WipeSurvivors kills every survivor cell and clears the duration map.
func (g *Grid) WipeSurvivors() []core.Change {
	g.backups.push(g.snapshot())
	old := g.captureDisplay()

	for c := range g.survivors {
		g.cells.Set(c.Row, c.Col, false)
		g.bumpNeighbours(c.Row, c.Col, -1)
	}
	g.survivors = make(map[core.Coord]struct{})
	g.ages = make(map[core.Coord]int)
	g.rebuildDisplay()
	return g.displayDiff(old)
}

// PurgeStale kills every survivor whose duration has reached ageThreshold,
// removing it from the survivor set and the duration map.
func (g *Grid) PurgeStale(ageThreshold int) []core.Change {
	g.backups.push(g.snapshot())
	old := g.captureDisplay()

	for c, age := range g.ages {
		if age >= ageThreshold {
			delete(g.ages, c)
			delete(g.survivors, c)
			g.cells.Set(c.Row, c.Col, false)
			g.bumpNeighbours(c.Row, c.Col, -1)
		}
	}
	g.rebuildDisplay()
	return g.displayDiff(old)
}

// Reset wipes the board back to an empty state at the current dimensions.
// The undo history is dropped as well; a reset is not reversible.
func (g *Grid) Reset() {
	g.init(g.rows, g.cols)
	g.backups.clear()
}

// Resize reinitializes the engine at new dimensions. Like Reset it clears
// every container, the iteration counter and the undo history. Degenerate
// dimensions are clamped to 1.
func (g *Grid) Resize(rows, cols int) {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	g.init(rows, cols)
	g.backups.clear()
}

// Undo pops the most recent snapshot and restores it wholesale. Declined if
// the history is empty. Undo does not push a snapshot of the state it
// replaces; there is no redo.
func (g *Grid) Undo() []core.Change {
	snap, ok := g.backups.pop()
	if !ok {
		return nil
	}
	old := g.captureDisplay()
	g.restore(snap)
	return g.displayDiff(old)
}

// matchesShape reports whether the layout is rectangular and matches the
// engine dimensions exactly.
func (g *Grid) matchesShape(layout [][]bool) bool {
	if len(layout) != g.rows {
		return false
	}
	for _, row := range layout {
		if len(row) != g.cols {
			return false
		}
	}
	return true
}
