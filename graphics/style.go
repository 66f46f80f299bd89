// Package graphics provides in-memory tile images, styles and shape drawing
// on any DrawSurface.
package graphics

import (
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/modifier"
)

// StyleSet is the color and modifier part of a tile
type StyleSet struct {
	Foreground color.TileColor
	Background color.TileColor
	Modifiers  modifier.Set
}

// DefaultStyle is the default foreground on the default background
func DefaultStyle() StyleSet {
	return StyleSet{
		Foreground: color.DefaultForeground,
		Background: color.DefaultBackground,
	}
}

// StyleOf extracts the style of a tile
func StyleOf(t data.Tile) StyleSet {
	return StyleSet{
		Foreground: t.ForegroundColor(),
		Background: t.BackgroundColor(),
		Modifiers:  t.Modifiers(),
	}
}

func (s StyleSet) WithForeground(c color.TileColor) StyleSet {
	s.Foreground = c
	return s
}

func (s StyleSet) WithBackground(c color.TileColor) StyleSet {
	s.Background = c
	return s
}

// WithModifiers adds modifiers to the style
func (s StyleSet) WithModifiers(mods ...modifier.Modifier) StyleSet {
	s.Modifiers = s.Modifiers.With(mods...)
	return s
}

// ApplyTo restyles t keeping its character
func (s StyleSet) ApplyTo(t data.Tile) data.Tile {
	return t.WithForegroundColor(s.Foreground).
		WithBackgroundColor(s.Background).
		WithModifiers(s.Modifiers)
}

// Tile builds a tile with this style
func (s StyleSet) Tile(ch rune) data.Tile {
	return s.ApplyTo(data.EmptyTile().WithCharacter(ch))
}

// DrawSurface is anything tiles can be drawn on
type DrawSurface interface {
	Size() data.Size
	TileAt(p data.Position) (data.Tile, bool)
	SetTileAt(p data.Position, t data.Tile)
}
