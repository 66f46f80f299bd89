package graphics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/tilegrid/data"
)

// ErrOutOfBounds is returned when a requested region overflows an image
var ErrOutOfBounds = errors.New("region out of bounds")

// TileImage is an in-memory grid of tiles with a style
// Not visible by itself, it is drawn onto other surfaces
// Not safe for concurrent mutation
type TileImage struct {
	size   data.Size
	tiles  []data.Tile // row-major: tiles[y*width + x]
	filler data.Tile
	style  StyleSet
}

// NewTileImage creates an image filled with filler
func NewTileImage(size data.Size, filler data.Tile) *TileImage {
	tiles := make([]data.Tile, size.Area())
	for i := range tiles {
		tiles[i] = filler
	}
	return &TileImage{
		size:   size,
		tiles:  tiles,
		filler: filler,
		style:  DefaultStyle(),
	}
}

func (img *TileImage) Size() data.Size { return img.size }

// Style returns the style last applied with ApplyStyle
func (img *TileImage) Style() StyleSet { return img.style }

func (img *TileImage) index(p data.Position) int {
	return p.Y*img.size.Width + p.X
}

// TileAt returns the tile at p, false when out of bounds
func (img *TileImage) TileAt(p data.Position) (data.Tile, bool) {
	if !img.size.Contains(p) {
		return data.Tile{}, false
	}
	return img.tiles[img.index(p)], true
}

// SetTileAt writes t at p, out of bounds writes are ignored
func (img *TileImage) SetTileAt(p data.Position, t data.Tile) {
	if !img.size.Contains(p) {
		return
	}
	img.tiles[img.index(p)] = t
}

// FilledPositions returns positions holding non-empty tiles in row-major order
func (img *TileImage) FilledPositions() []data.Position {
	var out []data.Position
	for i, t := range img.tiles {
		if !t.IsEmpty() {
			out = append(out, data.Position{X: i % img.size.Width, Y: i / img.size.Width})
		}
	}
	return out
}

// Copy returns an independent image with the same content
func (img *TileImage) Copy() *TileImage {
	cp, _ := img.SubImage(data.DefaultPosition(), img.size)
	return cp
}

// SubImage copies the region at offset with size into a new image
func (img *TileImage) SubImage(offset data.Position, size data.Size) (*TileImage, error) {
	if !img.size.ContainsArea(offset, size) {
		return nil, fmt.Errorf("%w: %v at %v in %v", ErrOutOfBounds, size, offset, img.size)
	}
	out := NewTileImage(size, img.filler)
	out.style = img.style
	for y := 0; y < size.Height; y++ {
		src := img.index(offset.WithRelativeY(y))
		copy(out.tiles[y*size.Width:(y+1)*size.Width], img.tiles[src:src+size.Width])
	}
	return out, nil
}

// Resize returns an independent copy with a new size, new area is filled with filler
func (img *TileImage) Resize(size data.Size, filler data.Tile) *TileImage {
	out := NewTileImage(size, filler)
	out.style = img.style
	w := min(size.Width, img.size.Width)
	h := min(size.Height, img.size.Height)
	for y := 0; y < h; y++ {
		copy(out.tiles[y*size.Width:y*size.Width+w], img.tiles[y*img.size.Width:y*img.size.Width+w])
	}
	return out
}

// Cells returns every tile with its position in row-major order
func (img *TileImage) Cells() []data.Cell {
	out := make([]data.Cell, len(img.tiles))
	for i, t := range img.tiles {
		out[i] = data.Cell{
			Position: data.Position{X: i % img.size.Width, Y: i / img.size.Width},
			Tile:     t,
		}
	}
	return out
}

// CellsBy returns the cells within the region at offset with size
func (img *TileImage) CellsBy(offset data.Position, size data.Size) ([]data.Cell, error) {
	if !img.size.ContainsArea(offset, size) {
		return nil, fmt.Errorf("%w: %v at %v in %v", ErrOutOfBounds, size, offset, img.size)
	}
	out := make([]data.Cell, 0, size.Area())
	for y := offset.Y; y < offset.Y+size.Height; y++ {
		for x := offset.X; x < offset.X+size.Width; x++ {
			p := data.Position{X: x, Y: y}
			out = append(out, data.Cell{Position: p, Tile: img.tiles[img.index(p)]})
		}
	}
	return out, nil
}

// CombineWith creates a new image with other drawn on top at offset
// Non-empty tiles of other win, the result grows when other overflows
// Both originals are left untouched
func (img *TileImage) CombineWith(other *TileImage, offset data.Position) *TileImage {
	needed := data.Size{
		Width:  max(0, offset.X+other.size.Width),
		Height: max(0, offset.Y+other.size.Height),
	}
	out := img.Resize(img.size.Max(needed), img.filler)
	for i, t := range other.tiles {
		if t.IsEmpty() {
			continue
		}
		p := data.Position{X: i % other.size.Width, Y: i / other.size.Width}.Plus(offset)
		out.SetTileAt(p, t)
	}
	return out
}

// Transform returns a new image with fn applied to every tile
func (img *TileImage) Transform(fn func(data.Tile) data.Tile) *TileImage {
	out := NewTileImage(img.size, img.filler)
	out.style = img.style
	for i, t := range img.tiles {
		out.tiles[i] = fn(t)
	}
	return out
}

// PutText writes text starting at p using the image style, clipped at the image edge
// A newline continues at the next row below p
func (img *TileImage) PutText(text string, p data.Position) {
	cur := p
	for _, r := range text {
		if r == '\n' {
			cur = data.Position{X: p.X, Y: cur.Y + 1}
			continue
		}
		img.SetTileAt(cur, img.style.Tile(r))
		cur = cur.WithRelativeX(1)
	}
}

// ApplyStyle sets the image style and restyles the tiles in the region
// The region is clipped to the image
func (img *TileImage) ApplyStyle(style StyleSet, offset data.Position, size data.Size) {
	img.style = style
	for y := max(0, offset.Y); y < min(img.size.Height, offset.Y+size.Height); y++ {
		for x := max(0, offset.X); x < min(img.size.Width, offset.X+size.Width); x++ {
			i := y*img.size.Width + x
			img.tiles[i] = style.ApplyTo(img.tiles[i])
		}
	}
}

// Fill replaces every empty tile with filler
func (img *TileImage) Fill(filler data.Tile) {
	for i, t := range img.tiles {
		if t.IsEmpty() {
			img.tiles[i] = filler
		}
	}
}

// DrawOnto copies non-empty tiles onto surface at offset, clipped to the surface
func (img *TileImage) DrawOnto(surface DrawSurface, offset data.Position) {
	bounds := surface.Size()
	for i, t := range img.tiles {
		if t.IsEmpty() {
			continue
		}
		p := data.Position{X: i % img.size.Width, Y: i / img.size.Width}.Plus(offset)
		if bounds.Contains(p) {
			surface.SetTileAt(p, t)
		}
	}
}
