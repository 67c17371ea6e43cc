//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from classified cell data and
// draws it scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	bloomBuf []byte
	pixel    *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it. When
// bloom is set a box-blur glow pass runs over the buffer first.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int, bloom bool) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	out := gp.buf
	if bloom {
		if len(gp.bloomBuf) != len(gp.buf) {
			gp.bloomBuf = make([]byte, len(gp.buf))
		}
		bloomRGBA(gp.bloomBuf, gp.buf, gp.w, gp.h, 1, 0.8)
		out = gp.bloomBuf
	}
	gp.img.ReplacePixels(out)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridlines paints one-pixel cell separators over the scaled board.
func (gp *GridPainter) DrawGridlines(dst *ebiten.Image, scale int, col color.RGBA) {
	if scale < 3 {
		return
	}
	width := float64(gp.w * scale)
	height := float64(gp.h * scale)
	for x := 1; x < gp.w; x++ {
		gp.drawBar(dst, float64(x*scale), 0, 1, height, col)
	}
	for y := 1; y < gp.h; y++ {
		gp.drawBar(dst, 0, float64(y*scale), width, 1, col)
	}
}

func (gp *GridPainter) drawBar(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(gp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
