package data

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/modifier"
)

// Tile is the visual content of one grid cell at one layer
// Tiles are values, the With* methods return modified copies
type Tile struct {
	character  rune
	foreground color.TileColor
	background color.TileColor
	modifiers  modifier.Set
}

// NewTile creates a tile
func NewTile(ch rune, fg, bg color.TileColor, mods ...modifier.Modifier) Tile {
	return Tile{
		character:  ch,
		foreground: fg,
		background: bg,
		modifiers:  modifier.NewSet(mods...),
	}
}

// EmptyTile is a transparent space, skipped when compositing
func EmptyTile() Tile {
	return Tile{character: ' '}
}

// DefaultTile is an opaque space in the default colors
func DefaultTile() Tile {
	return Tile{
		character:  ' ',
		foreground: color.DefaultForeground,
		background: color.DefaultBackground,
	}
}

func (t Tile) Character() rune                      { return t.character }
func (t Tile) ForegroundColor() color.TileColor     { return t.foreground }
func (t Tile) BackgroundColor() color.TileColor     { return t.background }
func (t Tile) Modifiers() modifier.Set              { return t.modifiers }
func (t Tile) HasModifier(m modifier.Modifier) bool { return t.modifiers.Contains(m) }

func (t Tile) WithCharacter(ch rune) Tile {
	t.character = ch
	return t
}

func (t Tile) WithForegroundColor(c color.TileColor) Tile {
	t.foreground = c
	return t
}

func (t Tile) WithBackgroundColor(c color.TileColor) Tile {
	t.background = c
	return t
}

// WithModifiers replaces the modifier set
func (t Tile) WithModifiers(s modifier.Set) Tile {
	t.modifiers = s
	return t
}

// WithAddedModifiers adds to the modifier set
func (t Tile) WithAddedModifiers(mods ...modifier.Modifier) Tile {
	t.modifiers = t.modifiers.With(mods...)
	return t
}

// WithoutModifiers removes from the modifier set, no arguments clears it
func (t Tile) WithoutModifiers(mods ...modifier.Modifier) Tile {
	if len(mods) == 0 {
		t.modifiers = modifier.Set{}
		return t
	}
	t.modifiers = t.modifiers.Without(mods...)
	return t
}

// IsEmpty reports whether the tile is the transparent space
func (t Tile) IsEmpty() bool {
	return t.character == ' ' &&
		t.foreground.IsTransparent() &&
		t.background.IsTransparent() &&
		t.modifiers.IsEmpty()
}

// Equal compares all tile fields
func (t Tile) Equal(o Tile) bool {
	return t.character == o.character &&
		t.foreground == o.foreground &&
		t.background == o.background &&
		t.modifiers.Equal(o.modifiers)
}

// CacheKey uniquely identifies the rendered appearance of the tile
func (t Tile) CacheKey() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(int64(t.character), 16))
	sb.WriteByte('/')
	sb.WriteString(t.foreground.CacheKey())
	sb.WriteByte('/')
	sb.WriteString(t.background.CacheKey())
	sb.WriteByte('/')
	sb.WriteString(t.modifiers.Key())
	return sb.String()
}

func (t Tile) String() string {
	return "Tile(" + strconv.QuoteRune(t.character) + " " + t.foreground.String() + " " + t.background.String() + " [" + t.modifiers.Key() + "])"
}

// Cell is a tile with its position
type Cell struct {
	Position Position
	Tile     Tile
}
