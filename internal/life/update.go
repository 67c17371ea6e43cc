package life

import "neon-life/internal/core"

// flip records an aliveness change decided during the evaluation pass whose
// neighbour-count delta must not be applied until the pass is complete.
type flip struct {
	at    core.Coord
	delta int
}

// Step advances the simulation by one generation of Conway's rule: a live
// cell survives with 2 or 3 live neighbours, a dead cell is born with exactly
// 3. It returns the cells whose classification changed.
//
// Only the evaluation frontier is visited: the classification sets expanded
// by one Moore ring. Cells outside the frontier cannot change and are never
// touched, which is what makes a sparse board cheap to step regardless of
// grid size.
//
// The pass is split in two so that every cell is classified against the same
// pre-step neighbour counts: count deltas for flipped cells are recorded
// during evaluation and applied afterwards, giving synchronous-update
// semantics independent of visit order.
func (g *Grid) Step() []core.Change {
	g.backups.push(g.snapshot())

	frontier := make(map[core.Coord]struct{})
	grow := func(c core.Coord) {
		for r := max(0, c.Row-1); r <= min(g.rows-1, c.Row+1); r++ {
			for col := max(0, c.Col-1); col <= min(g.cols-1, c.Col+1); col++ {
				frontier[core.Coord{Row: r, Col: col}] = struct{}{}
			}
		}
	}
	for c := range g.newCells {
		grow(c)
	}
	for c := range g.survivors {
		grow(c)
	}
	for c := range g.dead {
		grow(c)
	}

	var changes []core.Change
	var flips []flip
	for c := range frontier {
		alive := g.cells.At(c.Row, c.Col)
		count := g.counts.At(c.Row, c.Col)
		switch {
		case alive && (count == 2 || count == 3):
			delete(g.newCells, c)
			g.survivors[c] = struct{}{}
			changes = g.reclass(changes, c, core.ClassSurvivor)
		case alive:
			g.cells.Set(c.Row, c.Col, false)
			flips = append(flips, flip{at: c, delta: -1})
			delete(g.newCells, c)
			delete(g.survivors, c)
			g.dead[c] = struct{}{}
			changes = g.reclass(changes, c, core.ClassDead)
		case count == 3:
			g.cells.Set(c.Row, c.Col, true)
			flips = append(flips, flip{at: c, delta: 1})
			delete(g.dead, c)
			g.newCells[c] = struct{}{}
			changes = g.reclass(changes, c, core.ClassNew)
		default:
			if _, marked := g.dead[c]; marked {
				delete(g.dead, c)
				changes = g.reclass(changes, c, core.ClassBackground)
			}
		}
	}

	for _, f := range flips {
		g.bumpNeighbours(f.at.Row, f.at.Col, f.delta)
	}

	// The survivor set is the source of truth for durations: entries that
	// changed status this step are dropped, the rest age by one.
	for c := range g.ages {
		if _, ok := g.survivors[c]; !ok {
			delete(g.ages, c)
		}
	}
	for c := range g.survivors {
		if _, ok := g.ages[c]; ok {
			g.ages[c]++
		} else {
			g.ages[c] = 0
		}
	}

	g.iteration++
	return changes
}
