package data

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrNegativeSize is returned for sizes with a negative dimension
var ErrNegativeSize = errors.New("negative size")

// ErrSizeOverflow is returned when the number of cells does not fit in an int
var ErrSizeOverflow = errors.New("size area overflows")

// Size is a 2D extent in cells
type Size struct {
	Width, Height int
}

// sizeCache interns sizes by dimension so repeated lookups share one value
var sizeCache sync.Map // map[[2]int]Size

// NewSize returns the cached size for the dimensions
func NewSize(width, height int) (Size, error) {
	if width < 0 || height < 0 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	if width > 0 && height > math.MaxInt/width {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}
	key := [2]int{width, height}
	if s, ok := sizeCache.Load(key); ok {
		return s.(Size), nil
	}
	s, _ := sizeCache.LoadOrStore(key, Size{Width: width, Height: height})
	return s.(Size), nil
}

// MustSize is NewSize for constant dimensions, panics on invalid input
func MustSize(width, height int) Size {
	s, err := NewSize(width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// cachedSizes reports the number of interned sizes
func cachedSizes() int {
	n := 0
	sizeCache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// IsZero reports whether the size has no area
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Area returns the number of cells
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether p lies within the size anchored at the origin
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// ContainsArea reports whether an area of size at offset fits in s
func (s Size) ContainsArea(offset Position, size Size) bool {
	return offset.X >= 0 && offset.Y >= 0 &&
		offset.X+size.Width <= s.Width &&
		offset.Y+size.Height <= s.Height
}

func (s Size) Plus(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Max returns the per-dimension maximum
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Positions returns every position in row-major order
func (s Size) Positions() []Position {
	out := make([]Position, 0, s.Area())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
