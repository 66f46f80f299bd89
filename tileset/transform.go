package tileset

import (
	"image"
	"math"

	"github.com/kovidgoyal/imaging"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/modifier"
)

// TextureTransformer changes a tile texture according to the tile
// Implementations may modify tex in place and return it, or return a new image
type TextureTransformer interface {
	Transform(tex *image.NRGBA, tile data.Tile) *image.NRGBA
}

// TransformerFunc adapts a function to TextureTransformer
type TransformerFunc func(tex *image.NRGBA, tile data.Tile) *image.NRGBA

func (f TransformerFunc) Transform(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	return f(tex, tile)
}

// NoOp returns the texture unchanged
var NoOp = TransformerFunc(func(tex *image.NRGBA, _ data.Tile) *image.NRGBA { return tex })

// glyphAlphaThreshold separates glyph pixels from background pixels
const glyphAlphaThreshold = 50

// Colorizer tints glyph pixels with the foreground color and paints the rest with the background
var Colorizer = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	fg, bg := tile.ForegroundColor(), tile.BackgroundColor()
	for i := 0; i < len(tex.Pix); i += 4 {
		if tex.Pix[i+3] < glyphAlphaThreshold {
			tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
			continue
		}
		a := float64(tex.Pix[i+3]) / 255.0
		r := uint8(float64(tex.Pix[i]) * float64(fg.R) / 255.0)
		g := uint8(float64(tex.Pix[i+1]) * float64(fg.G) / 255.0)
		b := uint8(float64(tex.Pix[i+2]) * float64(fg.B) / 255.0)
		// Antialiased edges fade into the background
		out := color.Blend(bg, color.Create(r, g, b), a)
		tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2] = out.R, out.G, out.B
		tex.Pix[i+3] = max(bg.A, uint8(a*float64(fg.A)))
	}
	return tex
})

// HorizontalFlipper mirrors the texture left to right
var HorizontalFlipper = TransformerFunc(func(tex *image.NRGBA, _ data.Tile) *image.NRGBA {
	return toNRGBA(imaging.FlipH(tex))
})

// VerticalFlipper mirrors the texture top to bottom
var VerticalFlipper = TransformerFunc(func(tex *image.NRGBA, _ data.Tile) *image.NRGBA {
	return toNRGBA(imaging.FlipV(tex))
})

// lineThickness scales decoration lines with the texture height
func lineThickness(h int) int {
	return max(1, h/8)
}

func fillRect(tex *image.NRGBA, r image.Rectangle, c color.TileColor) {
	r = r.Intersect(tex.Rect)
	nc := c.NRGBA()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			tex.SetNRGBA(x, y, nc)
		}
	}
}

// CrossedOutTransformer draws a horizontal line through the middle
var CrossedOutTransformer = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	t := lineThickness(h)
	fillRect(tex, image.Rect(0, h/2, w, h/2+t), tile.ForegroundColor())
	return tex
})

// UnderlineTransformer draws a line along the bottom edge
var UnderlineTransformer = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	t := lineThickness(h)
	fillRect(tex, image.Rect(0, h-t, w, h), tile.ForegroundColor())
	return tex
})

// BorderTransformer draws the border modifiers of the tile
var BorderTransformer = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	for _, m := range tile.Modifiers().List() {
		if b, ok := m.(*modifier.Border); ok {
			drawBorder(tex, b, tile.ForegroundColor())
		}
	}
	return tex
})

// borderPattern reports whether step i along a side is drawn
func borderPattern(t modifier.BorderType, i int) bool {
	switch t {
	case modifier.BorderDotted:
		return i%2 == 0
	case modifier.BorderDashed:
		return i%5 < 3
	default:
		return true
	}
}

func drawBorder(tex *image.NRGBA, b *modifier.Border, c color.TileColor) {
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	nc := c.NRGBA()
	lines := []int{0}
	if b.Type == modifier.BorderDouble {
		lines = append(lines, 2)
	}

	for _, side := range b.Positions() {
		for _, inset := range lines {
			switch side {
			case modifier.Top, modifier.Bottom:
				y := inset
				if side == modifier.Bottom {
					y = h - 1 - inset
				}
				for x := 0; x < w; x++ {
					if borderPattern(b.Type, x) {
						tex.SetNRGBA(x, y, nc)
					}
				}
			case modifier.Left, modifier.Right:
				x := inset
				if side == modifier.Right {
					x = w - 1 - inset
				}
				for y := 0; y < h; y++ {
					if borderPattern(b.Type, y) {
						tex.SetNRGBA(x, y, nc)
					}
				}
			}
		}
	}
}

func luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}

// RayShader casts light rays away from the texture center out of pixels brighter than the threshold
var RayShader = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	m, ok := tile.Modifiers().Find(func(m modifier.Modifier) bool {
		_, is := m.(*modifier.RayShade)
		return is
	})
	if !ok {
		return tex
	}
	rs := m.(*modifier.RayShade)
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	cx, cy := float64(w)/2, float64(h)/2

	// Bright source mask
	mask := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := tex.PixOffset(x, y)
			l := luminance(tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2]) * float64(tex.Pix[i+3]) / 255.0
			if l > rs.Threshold {
				mask[y*w+x] = l
			}
		}
	}

	// Zoom blur towards the center accumulates rays
	const samples = 8
	out := image.NewNRGBA(tex.Rect)
	copy(out.Pix, tex.Pix)
	if rs.RaysOnly {
		clear(out.Pix)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for s := 0; s < samples; s++ {
				f := 1.0 - rs.Strength*float64(s)/samples
				sx := int(math.Round(cx + (float64(x)-cx)*f))
				sy := int(math.Round(cy + (float64(y)-cy)*f))
				if sx >= 0 && sx < w && sy >= 0 && sy < h {
					sum += mask[sy*w+sx]
				}
			}
			ray := min(1.0, sum/samples) * rs.Opacity
			if ray <= 0 {
				continue
			}
			i := out.PixOffset(x, y)
			o := color.Add(
				color.CreateWithAlpha(out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]),
				color.Create(uint8(255*ray), uint8(255*ray), uint8(255*ray)),
			)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = o.R, o.G, o.B
			out.Pix[i+3] = max(o.A, uint8(255*ray))
		}
	}
	return out
})

// Glower adds a soft halo of the foreground color around the glyph
var Glower = TransformerFunc(func(tex *image.NRGBA, tile data.Tile) *image.NRGBA {
	fg, bg := tile.ForegroundColor(), tile.BackgroundColor()
	w, h := tex.Rect.Dx(), tex.Rect.Dy()
	radius := max(1, h/8)

	// Glyph coverage: pixels that differ from the background
	cov := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := tex.PixOffset(x, y)
			if tex.Pix[i] != bg.R || tex.Pix[i+1] != bg.G || tex.Pix[i+2] != bg.B {
				cov[y*w+x] = 1
			}
		}
	}

	halo := boxBlur(cov, w, h, radius)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cov[y*w+x] > 0 {
				continue
			}
			a := halo[y*w+x]
			if a <= 0 {
				continue
			}
			i := tex.PixOffset(x, y)
			cur := color.CreateWithAlpha(tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2], tex.Pix[i+3])
			o := color.Blend(cur, fg, min(1.0, a*0.8))
			tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2] = o.R, o.G, o.B
			tex.Pix[i+3] = max(cur.A, uint8(255*min(1.0, a)))
		}
	}
	return tex
})

// boxBlur is a separable mean filter over a w x h coverage map
func boxBlur(src []float64, w, h, r int) []float64 {
	tmp := make([]float64, len(src))
	out := make([]float64, len(src))
	n := float64(2*r + 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -r; k <= r; k++ {
				if xx := x + k; xx >= 0 && xx < w {
					sum += src[y*w+xx]
				}
			}
			tmp[y*w+x] = sum / n
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0.0
			for k := -r; k <= r; k++ {
				if yy := y + k; yy >= 0 && yy < h {
					sum += tmp[yy*w+x]
				}
			}
			out[y*w+x] = sum / n
		}
	}
	return out
}
