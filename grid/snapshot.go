package grid

import (
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
)

// Snapshot is an immutable composited view of the grid
type Snapshot struct {
	Size          data.Size
	Tiles         []data.Tile // row-major: Tiles[y*Size.Width + x]
	Cursor        data.Position
	CursorVisible bool
	Version       uint64
}

// TileAt returns the composited tile at p
func (s Snapshot) TileAt(p data.Position) (data.Tile, bool) {
	if !s.Size.Contains(p) {
		return data.Tile{}, false
	}
	return s.Tiles[p.Y*s.Size.Width+p.X], true
}

// Image converts the snapshot into a tile image
func (s Snapshot) Image() *graphics.TileImage {
	img := graphics.NewTileImage(s.Size, data.EmptyTile())
	for i, t := range s.Tiles {
		img.SetTileAt(data.Position{X: i % s.Size.Width, Y: i / s.Size.Width}, t)
	}
	return img
}

// Snapshot composites the base image and overlays
func (g *TileGrid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	tiles := make([]data.Tile, g.size.Area())
	for _, c := range g.base.Cells() {
		tiles[c.Position.Y*g.size.Width+c.Position.X] = c.Tile
	}
	for _, l := range g.layers {
		for _, c := range l.image.Cells() {
			if c.Tile.IsEmpty() {
				continue
			}
			p := c.Position.Plus(l.offset)
			if g.size.Contains(p) {
				tiles[p.Y*g.size.Width+p.X] = c.Tile
			}
		}
	}

	return Snapshot{
		Size:          g.size,
		Tiles:         tiles,
		Cursor:        g.cursor,
		CursorVisible: g.cursorVisible,
		Version:       g.version,
	}
}

// Diff returns the cells of next that differ from prev
// A size change reports every cell of next
func Diff(prev, next Snapshot) []data.Cell {
	var out []data.Cell
	sameSize := prev.Size == next.Size && len(prev.Tiles) == len(next.Tiles)
	for i, t := range next.Tiles {
		if sameSize && prev.Tiles[i].Equal(t) {
			continue
		}
		out = append(out, data.Cell{
			Position: data.Position{X: i % next.Size.Width, Y: i / next.Size.Width},
			Tile:     t,
		})
	}
	return out
}
