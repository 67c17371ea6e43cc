// Package patterns holds a small library of well known Life figures plus
// helpers for stamping them into board-shaped layouts.
package patterns

import (
	"math/rand/v2"

	"neon-life/internal/core"
)

// Pattern is a named figure expressed as coordinates relative to its own
// top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       []core.Coord
}

// Extent returns the number of rows and columns the figure spans.
func (p Pattern) Extent() (rows, cols int) {
	for _, c := range p.Cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// Layout renders the figure into a rows x cols layout with its top-left
// corner at `at`. Cells falling outside the board are dropped, so stamping
// near an edge clips instead of failing.
func (p Pattern) Layout(rows, cols int, at core.Coord) [][]bool {
	layout := make([][]bool, rows)
	for r := range layout {
		layout[r] = make([]bool, cols)
	}
	for _, c := range p.Cells {
		r, cl := at.Row+c.Row, at.Col+c.Col
		if r < 0 || r >= rows || cl < 0 || cl >= cols {
			continue
		}
		layout[r][cl] = true
	}
	return layout
}

var (
	Block = Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Cells: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 1, Col: 0}, {Row: 1, Col: 1},
		},
	}

	Blinker = Pattern{
		Name:        "blinker",
		Description: "period-2 oscillator",
		Cells: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		},
	}

	Beacon = Pattern{
		Name:        "beacon",
		Description: "period-2 oscillator of two blocks",
		Cells: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1},
			{Row: 1, Col: 0}, {Row: 1, Col: 1},
			{Row: 2, Col: 2}, {Row: 2, Col: 3},
			{Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
	}

	Glider = Pattern{
		Name:        "glider",
		Description: "smallest diagonal spaceship",
		Cells: []core.Coord{
			{Row: 0, Col: 1},
			{Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		},
	}

	Lwss = Pattern{
		Name:        "lwss",
		Description: "lightweight spaceship, moves horizontally",
		Cells: []core.Coord{
			{Row: 0, Col: 1}, {Row: 0, Col: 4},
			{Row: 1, Col: 0},
			{Row: 2, Col: 0}, {Row: 2, Col: 4},
			{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
	}

	GosperGun = Pattern{
		Name:        "gosper-gun",
		Description: "glider gun, emits a glider every 30 generations",
		Cells: []core.Coord{
			{Row: 0, Col: 24},
			{Row: 1, Col: 22}, {Row: 1, Col: 24},
			{Row: 2, Col: 12}, {Row: 2, Col: 13}, {Row: 2, Col: 20}, {Row: 2, Col: 21}, {Row: 2, Col: 34}, {Row: 2, Col: 35},
			{Row: 3, Col: 11}, {Row: 3, Col: 15}, {Row: 3, Col: 20}, {Row: 3, Col: 21}, {Row: 3, Col: 34}, {Row: 3, Col: 35},
			{Row: 4, Col: 0}, {Row: 4, Col: 1}, {Row: 4, Col: 10}, {Row: 4, Col: 16}, {Row: 4, Col: 20}, {Row: 4, Col: 21},
			{Row: 5, Col: 0}, {Row: 5, Col: 1}, {Row: 5, Col: 10}, {Row: 5, Col: 14}, {Row: 5, Col: 16}, {Row: 5, Col: 17}, {Row: 5, Col: 22}, {Row: 5, Col: 24},
			{Row: 6, Col: 10}, {Row: 6, Col: 16}, {Row: 6, Col: 24},
			{Row: 7, Col: 11}, {Row: 7, Col: 15},
			{Row: 8, Col: 12}, {Row: 8, Col: 13},
		},
	}
)

// All lists the library in the order the UI cycles through it.
var All = []Pattern{Blinker, Block, Beacon, Glider, Lwss, GosperGun}

// ByName returns the named pattern, or false when the library has no entry.
func ByName(name string) (Pattern, bool) {
	for _, p := range All {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Soup renders a rows x cols layout where each cell is alive with probability
// density.
func Soup(r *rand.Rand, rows, cols int, density float64) [][]bool {
	layout := make([][]bool, rows)
	for i := range layout {
		layout[i] = make([]bool, cols)
		core.FillSoup(r, layout[i], density)
	}
	return layout
}
