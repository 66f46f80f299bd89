// Package area places Blocks in a bounded 3D space and projects the visible
// part of it onto a 2D draw surface.
package area

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
)

// ErrOutOfBounds is returned for block positions outside the area
var ErrOutOfBounds = errors.New("position outside game area")

// Size3D is the extent of a game area
type Size3D struct {
	Width, Height, Depth int
}

// Contains reports whether p lies within the size anchored at the origin
func (s Size3D) Contains(p data.Position3D) bool {
	return p.X >= 0 && p.X < s.Width &&
		p.Y >= 0 && p.Y < s.Height &&
		p.Z >= 0 && p.Z < s.Depth
}

// GameArea stores blocks by 3D position, safe for concurrent use
type GameArea struct {
	mu     sync.RWMutex
	size   Size3D
	blocks map[data.Position3D]data.Block
	level  int
}

// New creates an empty area showing its top level
func New(size Size3D) *GameArea {
	return &GameArea{
		size:   size,
		blocks: make(map[data.Position3D]data.Block),
		level:  max(0, size.Depth-1),
	}
}

func (a *GameArea) Size() Size3D { return a.size }

// SetBlock stores b at its own position, replacing any previous block
func (a *GameArea) SetBlock(b data.Block) error {
	p := b.Position()
	if !a.size.Contains(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	a.mu.Lock()
	a.blocks[p] = b
	a.mu.Unlock()
	return nil
}

// BlockAt returns the block at p
func (a *GameArea) BlockAt(p data.Position3D) (data.Block, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.blocks[p]
	return b, ok
}

// RemoveBlock deletes the block at p, returns false if there was none
func (a *GameArea) RemoveBlock(p data.Position3D) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.blocks[p]; !ok {
		return false
	}
	delete(a.blocks, p)
	return true
}

// Blocks returns all blocks ordered by z, then y, then x
func (a *GameArea) Blocks() []data.Block {
	a.mu.RLock()
	out := make([]data.Block, 0, len(a.blocks))
	for _, b := range a.blocks {
		out = append(out, b)
	}
	a.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Position(), out[j].Position()
		if pi.Z != pj.Z {
			return pi.Z < pj.Z
		}
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	return out
}

// VisibleLevel is the highest z drawn by Project
func (a *GameArea) VisibleLevel() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.level
}

// ScrollUp raises the visible level by one, bounded by the depth
func (a *GameArea) ScrollUp() {
	a.mu.Lock()
	a.level = min(a.level+1, max(0, a.size.Depth-1))
	a.mu.Unlock()
}

// ScrollDown lowers the visible level by one, bounded by zero
func (a *GameArea) ScrollDown() {
	a.mu.Lock()
	a.level = max(a.level-1, 0)
	a.mu.Unlock()
}

// Project draws, for each column, the highest block at or below the visible level
// Block layers are composited bottom to top, empty layers are skipped
func (a *GameArea) Project(surface graphics.DrawSurface, offset data.Position) {
	a.mu.RLock()
	level := a.level
	top := make(map[data.Position]data.Block)
	for p, b := range a.blocks {
		if p.Z > level {
			continue
		}
		xy := p.To2D()
		if cur, ok := top[xy]; ok && cur.Position().Z >= p.Z {
			continue
		}
		top[xy] = b
	}
	a.mu.RUnlock()

	bounds := surface.Size()
	for xy, b := range top {
		dst := xy.Plus(offset)
		if !bounds.Contains(dst) {
			continue
		}
		if tile, ok := Composite(b); ok {
			surface.SetTileAt(dst, tile)
		}
	}
}

// Composite flattens the layers of a block, false if every layer is empty
// Each non-empty layer replaces the character and modifiers of the layers below,
// a transparent background lets the lower background through
func Composite(b data.Block) (data.Tile, bool) {
	var out data.Tile
	found := false
	for _, l := range b.Layers() {
		if l.IsEmpty() {
			continue
		}
		if found && l.BackgroundColor().IsTransparent() {
			l = l.WithBackgroundColor(out.BackgroundColor())
		}
		out = l
		found = true
	}
	return out, found
}
