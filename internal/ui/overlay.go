//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"neon-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type countProvider interface {
	NeighbourCounts() []uint8
}

type ageProvider interface {
	SurvivorAges() map[core.Coord]int
}

// Overlay draws optional debugging heatmaps on top of the board.
type Overlay struct {
	board Board
	scale int

	showCounts bool
	showAges   bool

	heatImg *ebiten.Image
	heatBuf []byte
}

// NewOverlay constructs an overlay bound to the board.
func NewOverlay(board Board, scale int) *Overlay {
	return &Overlay{board: board, scale: scale}
}

// SetScale updates the pixel scale after a cell-size change.
func (o *Overlay) SetScale(scale int) {
	if o == nil {
		return
	}
	o.scale = scale
}

// Update toggles the heatmaps from the keyboard.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		o.showCounts = !o.showCounts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		o.showAges = !o.showAges
	}
}

// Draw renders the enabled heatmaps onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil {
		return
	}
	rows, cols := o.board.Shape()
	if rows <= 0 || cols <= 0 {
		return
	}
	if o.showCounts {
		if provider, ok := o.board.(countProvider); ok {
			o.drawCounts(screen, provider.NeighbourCounts(), rows, cols)
		}
	}
	if o.showAges {
		if provider, ok := o.board.(ageProvider); ok {
			o.drawAges(screen, provider.SurvivorAges(), rows, cols)
		}
	}
}

func (o *Overlay) drawCounts(screen *ebiten.Image, counts []uint8, rows, cols int) {
	total := rows * cols
	if len(counts) != total {
		return
	}
	o.ensureHeatImage(rows, cols)
	for i, c := range counts {
		base := i * 4
		if c == 0 {
			o.heatBuf[base+0] = 0
			o.heatBuf[base+1] = 0
			o.heatBuf[base+2] = 0
			o.heatBuf[base+3] = 0
			continue
		}
		col := heatColor(float64(c) / 8)
		o.heatBuf[base+0] = col.R
		o.heatBuf[base+1] = col.G
		o.heatBuf[base+2] = col.B
		o.heatBuf[base+3] = col.A
	}
	o.blitHeat(screen, cols)
}

func (o *Overlay) drawAges(screen *ebiten.Image, ages map[core.Coord]int, rows, cols int) {
	o.ensureHeatImage(rows, cols)
	for i := range o.heatBuf {
		o.heatBuf[i] = 0
	}
	maxAge := 1
	for _, age := range ages {
		if age > maxAge {
			maxAge = age
		}
	}
	for c, age := range ages {
		base := (c.Row*cols + c.Col) * 4
		col := heatColor(float64(age) / float64(maxAge))
		o.heatBuf[base+0] = col.R
		o.heatBuf[base+1] = col.G
		o.heatBuf[base+2] = col.B
		o.heatBuf[base+3] = col.A
	}
	o.blitHeat(screen, cols)
}

func (o *Overlay) ensureHeatImage(rows, cols int) {
	total := rows * cols
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != cols || o.heatImg.Bounds().Dy() != rows {
		o.heatImg = ebiten.NewImage(cols, rows)
		o.heatBuf = make([]byte, 4*total)
	} else if len(o.heatBuf) != 4*total {
		o.heatBuf = make([]byte, 4*total)
	}
}

func (o *Overlay) blitHeat(screen *ebiten.Image, cols int) {
	o.heatImg.ReplacePixels(o.heatBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.heatImg, op)
}

// heatColor maps a normalized intensity onto a cold-to-hot gradient.
func heatColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 30, G: 50, B: 110, A: 130}},
		{0.35, color.RGBA{R: 50, G: 130, B: 160, A: 150}},
		{0.65, color.RGBA{R: 200, G: 170, B: 60, A: 180}},
		{1.0, color.RGBA{R: 240, G: 80, B: 40, A: 210}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
