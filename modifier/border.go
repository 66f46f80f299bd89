package modifier

import (
	"fmt"
	"slices"
	"strings"
)

// BorderType selects the line style of a border
type BorderType uint8

const (
	BorderSolid BorderType = iota
	BorderDotted
	BorderDashed
	BorderDouble
)

var borderTypeNames = [...]string{"solid", "dotted", "dashed", "double"}

func (t BorderType) String() string {
	if int(t) < len(borderTypeNames) {
		return borderTypeNames[t]
	}
	return fmt.Sprintf("border-type(%d)", uint8(t))
}

// ParseBorderType resolves a border type by name
func ParseBorderType(s string) (BorderType, bool) {
	for i, name := range borderTypeNames {
		if name == s {
			return BorderType(i), true
		}
	}
	return 0, false
}

// BorderPosition is a side of the tile
type BorderPosition uint8

const (
	Top BorderPosition = iota
	Right
	Bottom
	Left
)

// AllBorderPositions lists every side in drawing order
var AllBorderPositions = []BorderPosition{Top, Right, Bottom, Left}

var borderPositionNames = [...]string{"top", "right", "bottom", "left"}

func (p BorderPosition) String() string {
	if int(p) < len(borderPositionNames) {
		return borderPositionNames[p]
	}
	return fmt.Sprintf("border-position(%d)", uint8(p))
}

// ParseBorderPosition resolves a side by name
func ParseBorderPosition(s string) (BorderPosition, bool) {
	for i, name := range borderPositionNames {
		if name == s {
			return BorderPosition(i), true
		}
	}
	return 0, false
}

// Border draws lines along the chosen sides of a tile
type Border struct {
	Type      BorderType
	positions []BorderPosition
}

// NewBorder creates a border, positions are deduplicated and sorted
func NewBorder(borderType BorderType, positions ...BorderPosition) *Border {
	ps := slices.Clone(positions)
	slices.Sort(ps)
	ps = slices.Compact(ps)
	return &Border{Type: borderType, positions: ps}
}

// Positions returns a copy of the bordered sides
func (b *Border) Positions() []BorderPosition {
	return slices.Clone(b.positions)
}

// Has reports whether the side is bordered
func (b *Border) Has(p BorderPosition) bool {
	return slices.Contains(b.positions, p)
}

func (b *Border) Key() string {
	var sb strings.Builder
	sb.WriteString("border:")
	sb.WriteString(b.Type.String())
	for _, p := range b.positions {
		sb.WriteByte(':')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// BorderBuilder builds borders
// Defaults: solid, on all sides
type BorderBuilder struct {
	borderType BorderType
	positions  []BorderPosition
}

// NewBorderBuilder returns a builder with defaults
func NewBorderBuilder() *BorderBuilder {
	return &BorderBuilder{
		borderType: BorderSolid,
		positions:  slices.Clone(AllBorderPositions),
	}
}

// BorderType sets the line style
func (b *BorderBuilder) BorderType(t BorderType) *BorderBuilder {
	b.borderType = t
	return b
}

// BorderPositions replaces the sides
func (b *BorderBuilder) BorderPositions(positions ...BorderPosition) *BorderBuilder {
	b.positions = slices.Clone(positions)
	return b
}

// Copy returns an independent builder
func (b *BorderBuilder) Copy() *BorderBuilder {
	return &BorderBuilder{borderType: b.borderType, positions: slices.Clone(b.positions)}
}

func (b *BorderBuilder) Build() *Border {
	return NewBorder(b.borderType, b.positions...)
}
