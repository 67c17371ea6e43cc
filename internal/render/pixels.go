package render

import "image/color"

// Palette colors indexed by cell classification.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		{R: 5, G: 5, B: 5, A: 255},     // background
		{R: 50, G: 250, B: 5, A: 255},  // new
		{R: 40, G: 100, B: 40, A: 255}, // survivor
		{R: 60, G: 0, B: 0, A: 255},    // dead, recently vacated
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// bloomRGBA spreads the bright channel of src into dst with a single box-blur
// pass, producing a cheap glow around lit cells. src and dst are w*h RGBA
// buffers; radius is in cells.
func bloomRGBA(dst, src []byte, w, h, radius int, strength float64) {
	if radius <= 0 || strength <= 0 || len(dst) != len(src) || len(src) != 4*w*h {
		return
	}
	if strength > 1 {
		strength = 1
	}
	span := float64((2*radius + 1) * (2*radius + 1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb float64
			for dy := -radius; dy <= radius; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					base := (yy*w + xx) * 4
					sr += float64(src[base+0])
					sg += float64(src[base+1])
					sb += float64(src[base+2])
				}
			}
			base := (y*w + x) * 4
			dst[base+0] = addComponent(src[base+0], sr/span*strength)
			dst[base+1] = addComponent(src[base+1], sg/span*strength)
			dst[base+2] = addComponent(src[base+2], sb/span*strength)
			dst[base+3] = src[base+3]
		}
	}
}

func addComponent(base uint8, glow float64) uint8 {
	v := float64(base) + glow
	if v > 255 {
		return 255
	}
	return uint8(v)
}
