package patterns

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neon-life/internal/core"
	"neon-life/internal/life"
)

func TestExtent(t *testing.T) {
	rows, cols := Blinker.Extent()
	require.Equal(t, 1, rows)
	require.Equal(t, 3, cols)

	rows, cols = GosperGun.Extent()
	require.Equal(t, 9, rows)
	require.Equal(t, 36, cols)
}

func TestLayoutClipsAtEdges(t *testing.T) {
	layout := Glider.Layout(4, 4, core.Coord{Row: 2, Col: 2})
	alive := 0
	for _, row := range layout {
		for _, a := range row {
			if a {
				alive++
			}
		}
	}
	require.Less(t, alive, len(Glider.Cells), "cells past the edge are dropped")
	require.Positive(t, alive)
}

func TestByName(t *testing.T) {
	p, ok := ByName("gosper-gun")
	require.True(t, ok)
	require.Equal(t, GosperGun.Name, p.Name)

	_, ok = ByName("no-such-figure")
	require.False(t, ok)
}

func TestOscillatorsKeepTheirPopulation(t *testing.T) {
	for _, p := range []Pattern{Block, Blinker, Beacon} {
		g := life.NewWithConfig(life.Config{Rows: 12, Cols: 12, MaxBackups: 0})
		g.ReplaceLayout(p.Layout(12, 12, core.Coord{Row: 4, Col: 4}))
		want := g.AliveCount()
		g.Step()
		g.Step()
		require.Equal(t, want, g.AliveCount(), "%s must repeat with period <= 2", p.Name)
	}
}

func TestGliderTravelsDiagonally(t *testing.T) {
	g := life.NewWithConfig(life.Config{Rows: 16, Cols: 16, MaxBackups: 0})
	g.ReplaceLayout(Glider.Layout(16, 16, core.Coord{Row: 1, Col: 1}))

	for i := 0; i < 4; i++ {
		g.Step()
	}
	require.Equal(t, len(Glider.Cells), g.AliveCount())

	// after a full period the glider has moved one cell down-right
	want := Glider.Layout(16, 16, core.Coord{Row: 2, Col: 2})
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			require.Equal(t, want[row][col], g.Alive(row, col), "cell (%d,%d)", row, col)
		}
	}
}

func TestSoupDensity(t *testing.T) {
	r := core.NewRNG(11).Source()
	layout := Soup(r, 100, 100, 0.07)
	alive := 0
	for _, row := range layout {
		for _, a := range row {
			if a {
				alive++
			}
		}
	}
	require.InDelta(t, 700, alive, 150, "7%% soup should settle near 700 of 10000 cells")
}
