// Package grid implements TileGrid, the rendering surface applications write to.
//
// A TileGrid owns a base tile image, a cursor with a current drawing style and
// a stack of overlay layers. Renderers read composited Snapshots and use Diff
// to redraw only changed cells.
package grid

import (
	"sync"

	"github.com/google/uuid"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/modifier"
)

// LayerID identifies an overlay layer
type LayerID uint32

type layer struct {
	id     LayerID
	image  *graphics.TileImage
	offset data.Position
}

// TileGrid is a concurrency safe tile surface with a cursor
type TileGrid struct {
	mu sync.RWMutex

	id   uuid.UUID
	size data.Size
	base *graphics.TileImage

	defaultStyle graphics.StyleSet
	style        graphics.StyleSet

	cursor        data.Position
	cursorVisible bool

	layers    []layer
	nextLayer LayerID
	version   uint64

	listenerMu   sync.Mutex
	listeners    map[int]func()
	nextListener int
}

// Option configures a TileGrid
type Option func(*TileGrid)

// WithDefaultStyle sets the style restored by ResetColorsAndModifiers
func WithDefaultStyle(style graphics.StyleSet) Option {
	return func(g *TileGrid) {
		g.defaultStyle = style
		g.style = style
	}
}

// New creates an empty grid with a visible cursor at the origin
func New(size data.Size, opts ...Option) *TileGrid {
	g := &TileGrid{
		id:            uuid.New(),
		size:          size,
		base:          graphics.NewTileImage(size, data.EmptyTile()),
		defaultStyle:  graphics.DefaultStyle(),
		style:         graphics.DefaultStyle(),
		cursorVisible: true,
		nextLayer:     1,
		listeners:     make(map[int]func()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID is the unique identifier of the grid
func (g *TileGrid) ID() uuid.UUID { return g.id }

func (g *TileGrid) Size() data.Size {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.size
}

// ===== CHANGE NOTIFICATION =====

// OnChange registers fn to be called after each mutation, returns an unsubscribe func
// fn runs outside the grid lock and may read the grid
func (g *TileGrid) OnChange(fn func()) (cancel func()) {
	g.listenerMu.Lock()
	id := g.nextListener
	g.nextListener++
	g.listeners[id] = fn
	g.listenerMu.Unlock()

	return func() {
		g.listenerMu.Lock()
		delete(g.listeners, id)
		g.listenerMu.Unlock()
	}
}

// mutate runs fn under the write lock, bumps the version and notifies listeners
func (g *TileGrid) mutate(fn func()) {
	g.mu.Lock()
	fn()
	g.version++
	g.mu.Unlock()

	g.listenerMu.Lock()
	fns := make([]func(), 0, len(g.listeners))
	for _, l := range g.listeners {
		fns = append(fns, l)
	}
	g.listenerMu.Unlock()

	for _, l := range fns {
		l()
	}
}

// Version increases on every mutation
func (g *TileGrid) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.version
}

// ===== CURSOR =====

func (g *TileGrid) CursorPosition() data.Position {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursor
}

func (g *TileGrid) IsCursorVisible() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cursorVisible
}

func (g *TileGrid) SetCursorVisibility(visible bool) {
	g.mutate(func() { g.cursorVisible = visible })
}

// PutCursorAt moves the cursor, clamped to the grid
func (g *TileGrid) PutCursorAt(p data.Position) {
	g.mutate(func() { g.cursor = g.clamp(p) })
}

// MoveCursorForward advances one cell, wrapping to the next row
func (g *TileGrid) MoveCursorForward() {
	g.mutate(g.advance)
}

// MoveCursorBackward steps back one cell, wrapping to the end of the previous row
func (g *TileGrid) MoveCursorBackward() {
	g.mutate(func() {
		switch {
		case g.cursor.X > 0:
			g.cursor = g.cursor.WithRelativeX(-1)
		case g.cursor.Y > 0:
			g.cursor = data.Position{X: g.size.Width - 1, Y: g.cursor.Y - 1}
		}
	})
}

func (g *TileGrid) clamp(p data.Position) data.Position {
	return data.Position{
		X: max(0, min(p.X, g.size.Width-1)),
		Y: max(0, min(p.Y, g.size.Height-1)),
	}
}

// advance moves the cursor forward, the last cell of the grid stays put
// Caller holds the write lock
func (g *TileGrid) advance() {
	switch {
	case g.cursor.X < g.size.Width-1:
		g.cursor = g.cursor.WithRelativeX(1)
	case g.cursor.Y < g.size.Height-1:
		g.cursor = data.Position{X: 0, Y: g.cursor.Y + 1}
	}
}

// ===== STYLE =====

func (g *TileGrid) CurrentStyle() graphics.StyleSet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.style
}

func (g *TileGrid) SetForegroundColor(c color.TileColor) {
	g.mutate(func() { g.style.Foreground = c })
}

func (g *TileGrid) SetBackgroundColor(c color.TileColor) {
	g.mutate(func() { g.style.Background = c })
}

// EnableModifiers adds modifiers to the current style
func (g *TileGrid) EnableModifiers(mods ...modifier.Modifier) {
	g.mutate(func() { g.style.Modifiers = g.style.Modifiers.With(mods...) })
}

// EnableModifierSet adds every member of s to the current style
func (g *TileGrid) EnableModifierSet(s modifier.Set) {
	g.mutate(func() { g.style.Modifiers = g.style.Modifiers.Union(s) })
}

// DisableModifiers removes modifiers from the current style
func (g *TileGrid) DisableModifiers(mods ...modifier.Modifier) {
	g.mutate(func() { g.style.Modifiers = g.style.Modifiers.Without(mods...) })
}

// SetModifiers replaces the active modifiers
func (g *TileGrid) SetModifiers(s modifier.Set) {
	g.mutate(func() { g.style.Modifiers = s })
}

// ResetColorsAndModifiers restores the default style
func (g *TileGrid) ResetColorsAndModifiers() {
	g.mutate(func() { g.style = g.defaultStyle })
}

// ===== WRITING =====

// PutCharacter writes ch at the cursor with the current style and advances
// A newline moves the cursor to the start of the next row instead
func (g *TileGrid) PutCharacter(ch rune) {
	g.mutate(func() { g.putCharacter(ch) })
}

// PutText writes each rune as PutCharacter would, notifying once
func (g *TileGrid) PutText(text string) {
	g.mutate(func() {
		for _, r := range text {
			g.putCharacter(r)
		}
	})
}

func (g *TileGrid) putCharacter(ch rune) {
	if g.size.IsZero() {
		return
	}
	if ch == '\n' {
		if g.cursor.Y < g.size.Height-1 {
			g.cursor = data.Position{X: 0, Y: g.cursor.Y + 1}
		}
		return
	}
	g.base.SetTileAt(g.cursor, g.style.Tile(ch))
	g.advance()
}

// TileAt returns the base tile at p, overlays are not included
func (g *TileGrid) TileAt(p data.Position) (data.Tile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.base.TileAt(p)
}

// SetTileAt writes t to the base image, out of bounds writes are ignored
func (g *TileGrid) SetTileAt(p data.Position, t data.Tile) {
	g.mutate(func() { g.base.SetTileAt(p, t) })
}

// Draw copies the non-empty tiles of img onto the base at offset
func (g *TileGrid) Draw(img *graphics.TileImage, offset data.Position) {
	g.mutate(func() { img.DrawOnto(g.base, offset) })
}

// Clear empties the base image and homes the cursor
func (g *TileGrid) Clear() {
	g.mutate(func() {
		g.base = graphics.NewTileImage(g.size, data.EmptyTile())
		g.cursor = data.Position{}
	})
}

// Fill replaces empty base tiles with filler
func (g *TileGrid) Fill(filler data.Tile) {
	g.mutate(func() { g.base.Fill(filler) })
}

// Resize changes the grid size keeping overlapping content, the cursor is clamped
func (g *TileGrid) Resize(size data.Size) {
	g.mutate(func() {
		g.base = g.base.Resize(size, data.EmptyTile())
		g.size = size
		g.cursor = g.clamp(g.cursor)
	})
}

// ===== LAYERS =====

// PushLayer adds an overlay drawn above the base and earlier layers
// The image is copied, later changes to img do not affect the grid
func (g *TileGrid) PushLayer(img *graphics.TileImage, offset data.Position) LayerID {
	var id LayerID
	g.mutate(func() {
		id = g.nextLayer
		g.nextLayer++
		g.layers = append(g.layers, layer{id: id, image: img.Copy(), offset: offset})
	})
	return id
}

// RemoveLayer deletes an overlay, returns false if the id is unknown
func (g *TileGrid) RemoveLayer(id LayerID) bool {
	removed := false
	g.mutate(func() {
		for i, l := range g.layers {
			if l.id == id {
				g.layers = append(g.layers[:i], g.layers[i+1:]...)
				removed = true
				return
			}
		}
	})
	return removed
}

// LayerCount returns the number of overlays
func (g *TileGrid) LayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.layers)
}
