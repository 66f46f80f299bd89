package tileset

import "golang.org/x/text/encoding/charmap"

// Meta locates a glyph in a 16x16 sheet
type Meta struct {
	Char rune
	X, Y int // cell coordinates in the sheet
}

// cp437Graphics are the glyphs drawn for control codes 0x01-0x1F
var cp437Graphics = []rune("☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼")

// CP437Rune returns the displayed rune of a code page 437 byte
func CP437Rune(b byte) rune {
	switch {
	case b == 0:
		return ' '
	case b < 0x20:
		return cp437Graphics[b-1]
	case b == 0x7f:
		return '⌂'
	default:
		return charmap.CodePage437.DecodeByte(b)
	}
}

// MetadataLoader maps runes to sheet cells for a CP437 layout
type MetadataLoader struct {
	columns, rows int
}

// NewCP437MetadataLoader creates a loader for a sheet of columns x rows glyphs
func NewCP437MetadataLoader(columns, rows int) *MetadataLoader {
	return &MetadataLoader{columns: columns, rows: rows}
}

// FetchMetadata returns the sheet location of every code point that fits the sheet
// Code point 0 is skipped, it shares the blank glyph of the space
func (l *MetadataLoader) FetchMetadata() map[rune]Meta {
	out := make(map[rune]Meta, 256)
	n := min(256, l.columns*l.rows)
	for i := 1; i < n; i++ {
		r := CP437Rune(byte(i))
		out[r] = Meta{Char: r, X: i % l.columns, Y: i / l.columns}
	}
	return out
}
