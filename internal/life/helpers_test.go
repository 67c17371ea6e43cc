package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neon-life/internal/core"
)

// emptyLayout builds a rows x cols layout with every cell dead.
func emptyLayout(rows, cols int) [][]bool {
	layout := make([][]bool, rows)
	for r := range layout {
		layout[r] = make([]bool, cols)
	}
	return layout
}

// layoutWith builds a layout with exactly the given cells alive.
func layoutWith(rows, cols int, coords ...core.Coord) [][]bool {
	layout := emptyLayout(rows, cols)
	for _, c := range coords {
		layout[c.Row][c.Col] = true
	}
	return layout
}

func classAt(g *Grid, row, col int) core.Class {
	_, cols := g.Shape()
	return core.Class(g.Cells()[row*cols+col])
}

// requireInvariants checks every structural invariant the engine promises to
// hold between operations: exact neighbour counts, pairwise disjoint
// classification sets whose union covers exactly the non-background cells,
// and a duration map that only references survivors.
func requireInvariants(t *testing.T, g *Grid) {
	t.Helper()
	rows, cols := g.Shape()

	counts := g.NeighbourCounts()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if g.Alive(row+dr, col+dc) {
						want++
					}
				}
			}
			require.Equal(t, want, int(counts[row*cols+col]),
				"neighbour count mismatch at (%d,%d)", row, col)
		}
	}

	for c := range g.newCells {
		require.NotContains(t, g.survivors, c, "cell %v in both new and survivor sets", c)
		require.NotContains(t, g.dead, c, "cell %v in both new and dead sets", c)
	}
	for c := range g.survivors {
		require.NotContains(t, g.dead, c, "cell %v in both survivor and dead sets", c)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := core.Coord{Row: row, Col: col}
			_, isNew := g.newCells[c]
			_, isSurvivor := g.survivors[c]
			_, isDead := g.dead[c]
			alive := g.Alive(row, col)
			require.Equal(t, alive, isNew || isSurvivor,
				"aliveness of %v must match new/survivor membership", c)

			want := core.ClassBackground
			switch {
			case isNew:
				want = core.ClassNew
			case isSurvivor:
				want = core.ClassSurvivor
			case isDead:
				want = core.ClassDead
			}
			require.Equal(t, want, classAt(g, row, col), "display mismatch at %v", c)
		}
	}

	for c := range g.ages {
		require.Contains(t, g.survivors, c, "duration entry %v without survivor", c)
	}
}
