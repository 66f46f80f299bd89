// Package color defines tile colors, the ANSI palette, blending helpers and
// terminal color mode detection.
package color

import (
	"fmt"
	stdcolor "image/color"
)

// TileColor is an 8-bit RGBA color used for tile foregrounds and backgrounds
type TileColor struct {
	R, G, B, A uint8
}

// Create returns an opaque color
func Create(r, g, b uint8) TileColor {
	return TileColor{R: r, G: g, B: b, A: 255}
}

// CreateWithAlpha returns a color with explicit alpha
func CreateWithAlpha(r, g, b, a uint8) TileColor {
	return TileColor{R: r, G: g, B: b, A: a}
}

// Transparent returns the fully transparent color
func Transparent() TileColor {
	return TileColor{}
}

// Default tile colors
var (
	DefaultForeground = Create(255, 255, 255)
	DefaultBackground = Create(0, 0, 0)
)

// IsTransparent reports whether the color has zero alpha
func (c TileColor) IsTransparent() bool {
	return c.A == 0
}

// Equal returns true if all channels match
func (c TileColor) Equal(other TileColor) bool {
	return c == other
}

// WithAlpha returns a copy with alpha replaced
func (c TileColor) WithAlpha(a uint8) TileColor {
	c.A = a
	return c
}

// Darken scales the RGB channels towards black by factor in [0,1]
func (c TileColor) Darken(factor float64) TileColor {
	return Blend(c, TileColor{A: c.A}, factor)
}

// Lighten scales the RGB channels towards white by factor in [0,1]
func (c TileColor) Lighten(factor float64) TileColor {
	return Blend(c, TileColor{R: 255, G: 255, B: 255, A: c.A}, factor)
}

// Invert returns the RGB complement, alpha preserved
func (c TileColor) Invert() TileColor {
	return TileColor{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// NRGBA converts to the image/color representation
func (c TileColor) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts from the image/color representation
func FromNRGBA(n stdcolor.NRGBA) TileColor {
	return TileColor{R: n.R, G: n.G, B: n.B, A: n.A}
}

// CacheKey is a compact stable representation used in tile cache keys
func (c TileColor) CacheKey() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c TileColor) String() string {
	return fmt.Sprintf("TileColor(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
// Alpha channel of dst is preserved
func Blend(dst, src TileColor, alpha float64) TileColor {
	if alpha >= 1.0 {
		src.A = dst.A
		return src
	}
	if alpha <= 0.0 {
		return dst
	}

	inv := 1.0 - alpha
	return TileColor{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: dst.A,
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping (light accumulation)
func Add(dst, src TileColor) TileColor {
	return TileColor{
		R: add(dst.R, src.R),
		G: add(dst.G, src.G),
		B: add(dst.B, src.B),
		A: dst.A,
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func Max(dst, src TileColor) TileColor {
	return TileColor{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
		A: max(dst.A, src.A),
	}
}

// Over composites src over dst using src alpha
func Over(dst, src TileColor) TileColor {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	out := Blend(dst, src, float64(src.A)/255.0)
	out.A = max(dst.A, src.A)
	return out
}
