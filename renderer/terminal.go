// Package renderer draws grid snapshots, either into a terminal through tcell
// or into an image through a tileset.
package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/modifier"
)

// Terminal draws snapshots into a tcell screen, redrawing only changed cells
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	mode   color.ColorMode

	prev    grid.Snapshot
	hasPrev bool

	// blinkVisible is the software blink phase, blinking glyphs are drawn only while set
	blinkVisible bool
	blinkDirty   bool

	status      string
	statusDirty bool
	frames      uint64
}

// NewTerminal creates a renderer for screen using the given color mode
func NewTerminal(screen tcell.Screen, mode color.ColorMode) *Terminal {
	return &Terminal{
		screen:       screen,
		mode:         mode,
		blinkVisible: true,
	}
}

// ToggleBlink flips the blink phase, blinking cells are redrawn on the next frame
func (r *Terminal) ToggleBlink() {
	r.mu.Lock()
	r.blinkVisible = !r.blinkVisible
	r.blinkDirty = true
	r.mu.Unlock()
}

// BlinkVisible reports the current blink phase
func (r *Terminal) BlinkVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blinkVisible
}

// SetStatus sets a line drawn on the last screen row when the screen is taller than the grid
func (r *Terminal) SetStatus(text string) {
	r.mu.Lock()
	if text != r.status {
		r.status = text
		r.statusDirty = true
	}
	r.mu.Unlock()
}

// Frames returns the number of rendered frames
func (r *Terminal) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Invalidate forces a full redraw on the next frame, used after resize
func (r *Terminal) Invalidate() {
	r.mu.Lock()
	r.hasPrev = false
	r.mu.Unlock()
}

// Render draws the snapshot and shows the screen
func (r *Terminal) Render(s grid.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cells []data.Cell
	if !r.hasPrev || r.prev.Size != s.Size {
		r.screen.Clear()
		cells = s.Image().Cells()
		r.statusDirty = true
	} else {
		cells = grid.Diff(r.prev, s)
		if r.blinkDirty {
			cells = append(cells, blinking(s)...)
		}
	}
	r.blinkDirty = false

	for _, c := range cells {
		ch, style := r.cellStyle(c.Tile)
		r.screen.SetContent(c.Position.X, c.Position.Y, ch, nil, style)
	}

	if r.statusDirty {
		r.drawStatus(s.Size)
		r.statusDirty = false
	}

	if s.CursorVisible {
		r.screen.ShowCursor(s.Cursor.X, s.Cursor.Y)
	} else {
		r.screen.HideCursor()
	}

	r.screen.Show()
	r.prev = s
	r.hasPrev = true
	r.frames++
}

func blinking(s grid.Snapshot) []data.Cell {
	var out []data.Cell
	for i, t := range s.Tiles {
		if t.HasModifier(modifier.Blink) {
			out = append(out, data.Cell{
				Position: data.Position{X: i % s.Size.Width, Y: i / s.Size.Width},
				Tile:     t,
			})
		}
	}
	return out
}

func (r *Terminal) drawStatus(size data.Size) {
	w, h := r.screen.Size()
	if h <= size.Height {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Dim(true)
	x := 0
	for _, ch := range r.status {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (r *Terminal) cellStyle(t data.Tile) (rune, tcell.Style) {
	return Style(t, r.mode, r.blinkVisible)
}

// Style maps a tile to the rune and tcell style that best approximate it in a terminal
func Style(t data.Tile, mode color.ColorMode, blinkVisible bool) (rune, tcell.Style) {
	fg, bg := t.ForegroundColor(), t.BackgroundColor()
	style := tcell.StyleDefault.
		Foreground(fg.Tcell(mode)).
		Background(bg.Tcell(mode))

	ch := t.Character()
	if ch == 0 {
		ch = ' '
	}

	mods := t.Modifiers()
	if mods.Contains(modifier.Hidden) {
		return ' ', style
	}
	if mods.Contains(modifier.Blink) && !blinkVisible {
		ch = ' '
	}

	if mods.Contains(modifier.HorizontalFlip) {
		ch = mirror(ch, horizontalMirror)
	}
	if mods.Contains(modifier.VerticalFlip) {
		ch = mirror(ch, verticalMirror)
	}

	underline := mods.Contains(modifier.Underline)
	for _, m := range mods.List() {
		switch m := m.(type) {
		case *modifier.Border:
			if m.Has(modifier.Bottom) {
				underline = true
			}
		case *modifier.RayShade:
			style = style.Dim(true)
		}
	}
	if underline {
		style = style.Underline(true)
	}
	if mods.Contains(modifier.CrossedOut) {
		style = style.StrikeThrough(true)
	}
	if mods.Contains(modifier.Glow) {
		style = style.Bold(true)
	}
	return ch, style
}
