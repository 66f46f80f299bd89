package renderer

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/tileset"
)

// Image renders snapshots into pixels with a tileset
type Image struct {
	tileset    *tileset.Tileset
	background color.TileColor
}

// NewImage creates an image renderer, cells with a transparent background show the default background
func NewImage(ts *tileset.Tileset) *Image {
	return &Image{tileset: ts, background: color.DefaultBackground}
}

// WithBackground returns a renderer using c behind transparent cells
func (r *Image) WithBackground(c color.TileColor) *Image {
	return &Image{tileset: r.tileset, background: c}
}

// Render composites every tile texture of the snapshot at its cell
func (r *Image) Render(s grid.Snapshot) *image.NRGBA {
	tw, th := r.tileset.Width(), r.tileset.Height()
	out := image.NewNRGBA(image.Rect(0, 0, s.Size.Width*tw, s.Size.Height*th))
	draw.Draw(out, out.Bounds(), image.NewUniform(r.background.NRGBA()), image.Point{}, draw.Src)

	for i, t := range s.Tiles {
		x, y := i%s.Size.Width, i/s.Size.Width
		tex := r.tileset.Texture(t)
		dst := image.Rect(x*tw, y*th, (x+1)*tw, (y+1)*th)
		draw.Draw(out, dst, tex, image.Point{}, draw.Over)
	}
	return out
}

// WritePNG renders the snapshot and encodes it as PNG
func (r *Image) WritePNG(w io.Writer, s grid.Snapshot) error {
	if err := png.Encode(w, r.Render(s)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
