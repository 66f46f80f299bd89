// Package data holds the immutable value types of the toolkit: positions,
// sizes, tiles, cells and blocks.
package data

import "fmt"

// Position is a 2D grid coordinate
type Position struct {
	X, Y int
}

// NewPosition creates a position
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// DefaultPosition is the top left corner
func DefaultPosition() Position {
	return Position{}
}

// Offset1x1 is the one cell diagonal offset
func Offset1x1() Position {
	return Position{X: 1, Y: 1}
}

func (p Position) Plus(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Minus(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Position) WithRelativeX(dx int) Position {
	return Position{X: p.X + dx, Y: p.Y}
}

func (p Position) WithRelativeY(dy int) Position {
	return Position{X: p.X, Y: p.Y + dy}
}

func (p Position) WithX(x int) Position {
	return Position{X: x, Y: p.Y}
}

func (p Position) WithY(y int) Position {
	return Position{X: p.X, Y: y}
}

// To3D lifts the position to the given z level
func (p Position) To3D(z int) Position3D {
	return Position3D{X: p.X, Y: p.Y, Z: z}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Position3D is an immutable three-axis lattice position
type Position3D struct {
	X, Y, Z int
}

// NewPosition3D creates a 3D position
func NewPosition3D(x, y, z int) Position3D {
	return Position3D{X: x, Y: y, Z: z}
}

// To2D drops the z axis
func (p Position3D) To2D() Position {
	return Position{X: p.X, Y: p.Y}
}

func (p Position3D) Plus(o Position3D) Position3D {
	return Position3D{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Position3D) WithRelativeZ(dz int) Position3D {
	return Position3D{X: p.X, Y: p.Y, Z: p.Z + dz}
}

func (p Position3D) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
