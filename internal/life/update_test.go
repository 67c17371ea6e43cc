package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neon-life/internal/core"
)

func TestStepLoneCellDies(t *testing.T) {
	g := New(5, 5)
	g.Resurrect(2, 2)

	changes := g.Step()
	require.Equal(t, []core.Change{{Row: 2, Col: 2, Class: core.ClassDead}}, changes)
	require.False(t, g.Alive(2, 2))
	require.Empty(t, g.ages)
	requireInvariants(t, g)

	changes = g.Step()
	require.Equal(t, []core.Change{{Row: 2, Col: 2, Class: core.ClassBackground}}, changes)
	require.Equal(t, core.ClassBackground, classAt(g, 2, 2))
	require.Equal(t, 2, g.Iteration())
	requireInvariants(t, g)
}

func TestStepBlinkerOscillates(t *testing.T) {
	g := New(5, 5)
	g.ReplaceLayout(layoutWith(5, 5,
		core.Coord{Row: 2, Col: 1},
		core.Coord{Row: 2, Col: 2},
		core.Coord{Row: 2, Col: 3},
	))

	g.Step()
	require.True(t, g.Alive(1, 2))
	require.True(t, g.Alive(2, 2))
	require.True(t, g.Alive(3, 2))
	require.Equal(t, 3, g.AliveCount())
	require.Equal(t, core.ClassNew, classAt(g, 1, 2))
	require.Equal(t, core.ClassSurvivor, classAt(g, 2, 2))
	require.Equal(t, core.ClassNew, classAt(g, 3, 2))
	require.Equal(t, core.ClassDead, classAt(g, 2, 1))
	require.Equal(t, core.ClassDead, classAt(g, 2, 3))
	requireInvariants(t, g)

	g.Step()
	for _, c := range []core.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}} {
		require.True(t, g.Alive(c.Row, c.Col), "blinker must return to %v after two steps", c)
	}
	require.Equal(t, 3, g.AliveCount())
	require.Equal(t, 2, g.Iteration())
	requireInvariants(t, g)
}

func TestStepBirthRule(t *testing.T) {
	g := New(4, 4)
	g.Resurrect(0, 0)
	g.Resurrect(0, 1)
	g.Resurrect(1, 0)

	g.Step()
	require.True(t, g.Alive(1, 1), "dead cell with exactly 3 neighbours must be born")
	require.Equal(t, core.ClassNew, classAt(g, 1, 1))
	require.Equal(t, 4, g.AliveCount())
	requireInvariants(t, g)
}

func TestStepStillLifeEmitsNoChanges(t *testing.T) {
	g := New(5, 5)
	block := []core.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	g.ReplaceLayout(layoutWith(5, 5, block...))

	changes := g.Step()
	require.Len(t, changes, 4, "all four block cells reclassify from new to survivor")
	for _, ch := range changes {
		require.Equal(t, core.ClassSurvivor, ch.Class)
	}
	for _, c := range block {
		require.Equal(t, 0, g.ages[c])
	}

	changes = g.Step()
	require.Empty(t, changes, "a settled still life produces no visual changes")
	for _, c := range block {
		require.Equal(t, 1, g.ages[c])
	}
	requireInvariants(t, g)
}

func TestStepEmptyBoard(t *testing.T) {
	g := New(8, 8)
	changes := g.Step()
	require.Empty(t, changes)
	require.Equal(t, 1, g.Iteration())
	requireInvariants(t, g)
}

func TestStepQuietRegionsUntouched(t *testing.T) {
	g := New(40, 40)
	g.ReplaceLayout(layoutWith(40, 40,
		core.Coord{Row: 1, Col: 0},
		core.Coord{Row: 1, Col: 1},
		core.Coord{Row: 1, Col: 2},
	))

	changes := g.Step()
	for _, ch := range changes {
		require.LessOrEqual(t, ch.Row, 3, "activity must stay near the blinker")
		require.LessOrEqual(t, ch.Col, 3, "activity must stay near the blinker")
	}
	require.Equal(t, core.ClassBackground, classAt(g, 20, 20))
	require.Zero(t, g.NeighbourCounts()[20*40+20])
	requireInvariants(t, g)
}

func TestStepMatchesNaiveStepper(t *testing.T) {
	const rows, cols = 48, 64

	rng := core.NewRNG(7).Source()
	layout := emptyLayout(rows, cols)
	for r := range layout {
		core.FillSoup(rng, layout[r], 0.3)
	}

	g := NewWithConfig(Config{Rows: rows, Cols: cols, MaxBackups: 0})
	g.ReplaceLayout(layout)

	naive := NewNaive(rows, cols)
	for r := range layout {
		copy(naive.Values()[r*cols:(r+1)*cols], layout[r])
	}

	for step := 1; step <= 30; step++ {
		g.Step()
		naive.Step()
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				require.Equal(t, naive.Alive(row, col), g.Alive(row, col),
					"divergence from naive stepper at (%d,%d) after %d steps", row, col, step)
			}
		}
	}
	requireInvariants(t, g)
}
