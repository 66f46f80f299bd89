package graphics

import (
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
)

// Symbols used by box and shadow drawing
const (
	BlockSparse = '░'
	BlockMedium = '▒'
	BlockDense  = '▓'
)

// Line returns the positions between from and to inclusive (Bresenham)
func Line(from, to data.Position) []data.Position {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	out := make([]data.Position, 0, max(dx, -dy)+1)
	x, y := from.X, from.Y
	e := dx + dy
	for {
		out = append(out, data.Position{X: x, Y: y})
		if x == to.X && y == to.Y {
			return out
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DrawLine draws tile at every position of the line, clipped to the surface
func DrawLine(surface DrawSurface, from, to data.Position, tile data.Tile) {
	bounds := surface.Size()
	for _, p := range Line(from, to) {
		if bounds.Contains(p) {
			surface.SetTileAt(p, tile)
		}
	}
}

// BoxType selects the box drawing characters
type BoxType struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	BoxSingle          = BoxType{'┌', '┐', '└', '┘', '─', '│'}
	BoxDouble          = BoxType{'╔', '╗', '╚', '╝', '═', '║'}
	BoxLeftRightDouble = BoxType{'╓', '╖', '╙', '╜', '─', '║'}
	BoxTopBottomDouble = BoxType{'╒', '╕', '╘', '╛', '═', '│'}
)

// DrawBox outlines the area at offset with size
// Areas narrower or shorter than two cells are not drawn
func DrawBox(surface DrawSurface, offset data.Position, size data.Size, box BoxType, style StyleSet) {
	if size.Width < 2 || size.Height < 2 {
		return
	}
	right := offset.X + size.Width - 1
	bottom := offset.Y + size.Height - 1

	DrawLine(surface, data.Position{X: offset.X + 1, Y: offset.Y}, data.Position{X: right - 1, Y: offset.Y}, style.Tile(box.Horizontal))
	DrawLine(surface, data.Position{X: offset.X + 1, Y: bottom}, data.Position{X: right - 1, Y: bottom}, style.Tile(box.Horizontal))
	DrawLine(surface, data.Position{X: offset.X, Y: offset.Y + 1}, data.Position{X: offset.X, Y: bottom - 1}, style.Tile(box.Vertical))
	DrawLine(surface, data.Position{X: right, Y: offset.Y + 1}, data.Position{X: right, Y: bottom - 1}, style.Tile(box.Vertical))

	bounds := surface.Size()
	corners := []data.Cell{
		{Position: offset, Tile: style.Tile(box.TopLeft)},
		{Position: data.Position{X: right, Y: offset.Y}, Tile: style.Tile(box.TopRight)},
		{Position: data.Position{X: offset.X, Y: bottom}, Tile: style.Tile(box.BottomLeft)},
		{Position: data.Position{X: right, Y: bottom}, Tile: style.Tile(box.BottomRight)},
	}
	for _, c := range corners {
		if bounds.Contains(c.Position) {
			surface.SetTileAt(c.Position, c.Tile)
		}
	}
}

// ShadowColor is the foreground of shadow tiles
var ShadowColor = color.Create(100, 100, 100)

// DrawShadow draws a shadow one cell below and one cell right of the area at offset with size
// The shadow occupies an extra row and column outside the area
func DrawShadow(surface DrawSurface, offset data.Position, size data.Size, ch rune) {
	if size.IsZero() {
		return
	}
	if ch == 0 {
		ch = BlockSparse
	}
	shadow := data.NewTile(ch, ShadowColor, color.Transparent())
	bottom := offset.Y + size.Height
	right := offset.X + size.Width

	DrawLine(surface, data.Position{X: offset.X + 1, Y: bottom}, data.Position{X: right, Y: bottom}, shadow)
	if size.Height > 1 {
		DrawLine(surface, data.Position{X: right, Y: offset.Y + 1}, data.Position{X: right, Y: bottom - 1}, shadow)
	}
}
