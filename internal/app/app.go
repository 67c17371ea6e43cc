//go:build ebiten

package app

import (
	"image/color"
	"math/rand/v2"
	"strconv"

	"neon-life/internal/core"
	"neon-life/internal/life"
	"neon-life/internal/patterns"
	"neon-life/internal/render"
	"neon-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 180

var cellSizes = [...]int{3, 6, 10, 20, 40}

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	grid    *life.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette []color.RGBA
	rng     *rand.Rand

	cellSize int
	figure   int

	density  float64
	purgeAge int

	paused   bool
	tickOnce bool
	showGrid bool
	bloom    bool
	showHUD  bool
}

// New constructs a Game for the provided configuration and seeds the board
// with a random soup.
func New(cfg *Config) *Game {
	g := &Game{
		cfg:      cfg,
		palette:  render.DefaultPalette(),
		rng:      core.NewRNG(cfg.Seed).Source(),
		cellSize: cfg.CellSize,
		density:  cfg.Density,
		purgeAge: cfg.PurgeAge,
		showHUD:  true,
	}
	rows, cols := g.boardDims(g.cellSize)
	g.grid = life.NewWithConfig(life.Config{Rows: rows, Cols: cols, MaxBackups: cfg.MaxBackups})
	g.painter = render.NewGridPainter(cols, rows)
	g.hud = ui.NewHUD(g, panelWidth)
	g.overlay = ui.NewOverlay(g, g.cellSize)
	g.seedSoup()
	return g
}

func (g *Game) boardDims(cellSize int) (rows, cols int) {
	return g.cfg.Height / cellSize, g.cfg.Width / cellSize
}

func (g *Game) seedSoup() {
	rows, cols := g.grid.Shape()
	g.grid.ReplaceLayout(patterns.Soup(g.rng, rows, cols, g.density))
}

func (g *Game) resize(cellSize int) {
	if cellSize == g.cellSize {
		return
	}
	g.cellSize = cellSize
	rows, cols := g.boardDims(cellSize)
	g.grid.Resize(rows, cols)
	g.painter = render.NewGridPainter(cols, rows)
	g.overlay.SetScale(cellSize)
}

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.grid.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.grid.Invert()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.grid.WipeSurvivors()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.grid.PurgeStale(g.purgeAge)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seedSoup()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.figure = (g.figure + 1) % len(patterns.All)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.stampFigure()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.bloom = !g.bloom
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	for i, size := range cellSizes {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.resize(size)
		}
	}

	g.handleMouse()
	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.cfg.Width, g.paused)
	}

	if !g.paused || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// handleMouse paints cells under the cursor: left button resurrects, right
// button clears. Held buttons keep painting, which the engine tolerates by
// declining repeated resurrections.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	row, col := my/g.cellSize, mx/g.cellSize
	if mx < 0 || mx >= g.cfg.Width {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.grid.Resurrect(row, col)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.grid.Clear(row, col)
	}
}

// stampFigure merges the selected figure into the board at the cursor.
func (g *Game) stampFigure() {
	mx, my := ebiten.CursorPosition()
	rows, cols := g.grid.Shape()
	at := core.Coord{Row: my / g.cellSize, Col: mx / g.cellSize}
	if at.Row < 0 || at.Row >= rows || at.Col < 0 || at.Col >= cols {
		at = core.Coord{Row: rows / 2, Col: cols / 2}
	}
	g.grid.Overlay(patterns.All[g.figure].Layout(rows, cols, at), true)
}

// Draw renders the board, optional gridlines and heatmaps, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), g.palette, g.cellSize, g.bloom)
	if g.showGrid {
		g.painter.DrawGridlines(screen, g.cellSize, color.RGBA{R: 20, G: 20, B: 20, A: 255})
	}
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.cfg.Width, g.cellSize)
	}
}

// Layout returns the logical screen size: the board plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width + panelWidth, g.cfg.Height
}

// Shape implements ui.Board.
func (g *Game) Shape() (rows, cols int) { return g.grid.Shape() }

// Iteration implements ui.Board.
func (g *Game) Iteration() int { return g.grid.Iteration() }

// AliveCount implements ui.Board.
func (g *Game) AliveCount() int { return g.grid.AliveCount() }

// AlivePercentage implements ui.Board.
func (g *Game) AlivePercentage() float64 { return g.grid.AlivePercentage() }

// BackupDepth implements ui.Board.
func (g *Game) BackupDepth() int { return g.grid.BackupDepth() }

// NeighbourCounts feeds the count heatmap overlay.
func (g *Game) NeighbourCounts() []uint8 { return g.grid.NeighbourCounts() }

// SurvivorAges feeds the age heatmap overlay.
func (g *Game) SurvivorAges() map[core.Coord]int { return g.grid.SurvivorAges() }

// ParameterControls exposes the HUD-adjustable tunables.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "purge-age", Label: "Purge age", Type: core.ParamTypeInt, Step: 5, Min: 5, HasMin: true, Max: 500, HasMax: true},
		{Key: "soup-density", Label: "Soup density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, HasMin: true, Max: 0.6, HasMax: true},
	}
}

// Parameters reports the current tunable values.
func (g *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "purge-age", Label: "Purge age", Type: core.ParamTypeInt, Value: strconv.Itoa(g.purgeAge)},
		{Key: "soup-density", Label: "Soup density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.density, 'f', 2, 64)},
	}}
}

// SetIntParameter implements core.IntParameterSetter.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != "purge-age" || value <= 0 {
		return false
	}
	g.purgeAge = value
	return true
}

// SetFloatParameter implements core.FloatParameterSetter.
func (g *Game) SetFloatParameter(key string, value float64) bool {
	if key != "soup-density" || value <= 0 || value > 1 {
		return false
	}
	g.density = value
	return true
}
