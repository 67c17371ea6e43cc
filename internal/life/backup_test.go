package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neon-life/internal/core"
)

// captureState copies every externally observable piece of engine state.
func captureState(g *Grid) snapshot {
	return g.snapshot()
}

func requireStateEqual(t *testing.T, want snapshot, g *Grid) {
	t.Helper()
	require.Equal(t, want.cells.Values(), g.cells.Values())
	require.Equal(t, want.counts.Values(), g.counts.Values())
	require.Equal(t, want.display.Values(), g.display.Values())
	require.Equal(t, want.newCells, g.newCells)
	require.Equal(t, want.survivors, g.survivors)
	require.Equal(t, want.dead, g.dead)
	require.Equal(t, want.ages, g.ages)
	require.Equal(t, want.iteration, g.iteration)
}

func TestUndoRestoresFullState(t *testing.T) {
	g := New(6, 6)
	g.ReplaceLayout(layoutWith(6, 6,
		core.Coord{Row: 2, Col: 1}, core.Coord{Row: 2, Col: 2}, core.Coord{Row: 2, Col: 3},
	))
	g.Step()
	g.Step()
	before := captureState(g)

	g.Step()
	require.NotEqual(t, before.iteration, g.iteration)

	changes := g.Undo()
	require.NotEmpty(t, changes)
	requireStateEqual(t, before, g)
	requireInvariants(t, g)
}

func TestUndoEmptyHistoryIsNoop(t *testing.T) {
	g := New(4, 4)
	require.Nil(t, g.Undo())

	g.Resurrect(1, 1)
	require.NotNil(t, g.Undo())
	require.Nil(t, g.Undo(), "a second undo has no snapshot left to pop")
	require.False(t, g.Alive(1, 1))
}

func TestUndoDoesNotFeedTheHistory(t *testing.T) {
	g := New(4, 4)
	g.Resurrect(0, 0)
	g.Resurrect(1, 1)
	require.Equal(t, 2, g.BackupDepth())

	g.Undo()
	require.Equal(t, 1, g.BackupDepth(), "undo pops without pushing, there is no redo")
}

func TestUndoHistoryEvictsOldest(t *testing.T) {
	g := NewWithConfig(Config{Rows: 4, Cols: 4, MaxBackups: 2})

	g.Resurrect(0, 0)
	afterFirst := captureState(g)
	g.Resurrect(1, 1)
	g.Resurrect(2, 2)
	require.Equal(t, 2, g.BackupDepth())

	require.NotNil(t, g.Undo())
	require.NotNil(t, g.Undo())
	require.Nil(t, g.Undo(), "the oldest snapshot was evicted at capacity")

	// the deepest reachable state is the one after the first mutation
	requireStateEqual(t, afterFirst, g)
	requireInvariants(t, g)
}

func TestZeroCapacityDisablesUndo(t *testing.T) {
	g := NewWithConfig(Config{Rows: 4, Cols: 4, MaxBackups: 0})
	g.Resurrect(1, 1)
	g.Step()
	require.Zero(t, g.BackupDepth())
	require.Nil(t, g.Undo())
}

func TestSnapshotsDoNotAliasLiveState(t *testing.T) {
	g := New(5, 5)
	g.ReplaceLayout(layoutWith(5, 5,
		core.Coord{Row: 1, Col: 1}, core.Coord{Row: 1, Col: 2},
		core.Coord{Row: 2, Col: 1}, core.Coord{Row: 2, Col: 2},
	))
	before := captureState(g)

	// grind the live state through several mutations
	g.Step()
	g.Step()
	g.WipeSurvivors()
	g.Resurrect(4, 4)

	// unwind back to the layout, leaving only the pre-layout snapshot behind
	for g.BackupDepth() > 1 {
		g.Undo()
	}
	requireStateEqual(t, before, g)
	requireInvariants(t, g)
}

func TestResetDropsHistory(t *testing.T) {
	g := New(4, 4)
	g.Resurrect(1, 1)
	g.Step()
	require.Positive(t, g.BackupDepth())

	g.Reset()
	require.Zero(t, g.BackupDepth())
	require.Zero(t, g.Iteration())
	require.Zero(t, g.AliveCount())
	require.Nil(t, g.Undo(), "reset is not reversible")
}
