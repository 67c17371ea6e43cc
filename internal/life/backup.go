package life

import "neon-life/internal/core"

// snapshot is a full copy of the engine state. Containers are deep-copied at
// push time so later mutation of live state can never alias a stored entry.
type snapshot struct {
	cells   *core.BoolGrid
	counts  *core.ByteGrid
	display *core.ByteGrid

	newCells  map[core.Coord]struct{}
	survivors map[core.Coord]struct{}
	dead      map[core.Coord]struct{}
	ages      map[core.Coord]int

	iteration int
}

// snapshot captures the current engine state with value semantics.
func (g *Grid) snapshot() snapshot {
	return snapshot{
		cells:     g.cells.Clone(),
		counts:    g.counts.Clone(),
		display:   g.display.Clone(),
		newCells:  cloneSet(g.newCells),
		survivors: cloneSet(g.survivors),
		dead:      cloneSet(g.dead),
		ages:      cloneAges(g.ages),
		iteration: g.iteration,
	}
}

// restore adopts a popped snapshot as the live state. The ledger hands over
// ownership, so the snapshot's containers need no further copying.
func (g *Grid) restore(s snapshot) {
	g.rows = s.cells.Rows
	g.cols = s.cells.Cols
	g.cells = s.cells
	g.counts = s.counts
	g.display = s.display
	g.newCells = s.newCells
	g.survivors = s.survivors
	g.dead = s.dead
	g.ages = s.ages
	g.iteration = s.iteration
}

func cloneSet(set map[core.Coord]struct{}) map[core.Coord]struct{} {
	c := make(map[core.Coord]struct{}, len(set))
	for k := range set {
		c[k] = struct{}{}
	}
	return c
}

func cloneAges(ages map[core.Coord]int) map[core.Coord]int {
	c := make(map[core.Coord]int, len(ages))
	for k, v := range ages {
		c[k] = v
	}
	return c
}

// ledger is a bounded FIFO history of snapshots. Pushing at capacity evicts
// the oldest entry; popping returns the newest.
type ledger struct {
	entries  []snapshot
	capacity int
}

func newLedger(capacity int) *ledger {
	if capacity < 0 {
		capacity = 0
	}
	return &ledger{capacity: capacity}
}

func (l *ledger) push(s snapshot) {
	if l.capacity == 0 {
		return
	}
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = s
		return
	}
	l.entries = append(l.entries, s)
}

func (l *ledger) pop() (snapshot, bool) {
	if len(l.entries) == 0 {
		return snapshot{}, false
	}
	s := l.entries[len(l.entries)-1]
	l.entries[len(l.entries)-1] = snapshot{}
	l.entries = l.entries[:len(l.entries)-1]
	return s, true
}

func (l *ledger) depth() int { return len(l.entries) }

func (l *ledger) clear() { l.entries = nil }
