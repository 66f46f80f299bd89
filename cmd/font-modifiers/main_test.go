package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/tilegrid/application"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/modifier"
	"github.com/lixenwraith/tilegrid/tileset"
)

// cellOf returns the grid position of the i-th written rune
func cellOf(i int) data.Position {
	return data.Position{X: i % 16, Y: i / 16}
}

func TestDrawModifiers(t *testing.T) {
	g := grid.New(data.MustSize(16, 3))
	drawModifiers(g)

	if g.IsCursorVisible() {
		t.Error("Expected hidden cursor")
	}

	for i, s := range steps {
		tile, ok := g.TileAt(cellOf(2 * i))
		if !ok {
			t.Fatalf("Step %c outside grid", s.char)
		}
		if tile.Character() != s.char {
			t.Errorf("Expected %q, got %q", s.char, tile.Character())
		}
		if tile.ForegroundColor() != s.fg || tile.BackgroundColor() != s.bg {
			t.Errorf("%c: unexpected colors %v on %v", s.char, tile.ForegroundColor(), tile.BackgroundColor())
		}
		if want := modifier.NewSet(s.mods...); !tile.Modifiers().Equal(want) {
			t.Errorf("%c: expected modifiers %q, got %q", s.char, want.Key(), tile.Modifiers().Key())
		}
	}

	for i := 0; i < len(steps)-1; i++ {
		space, _ := g.TileAt(cellOf(2*i + 1))
		if space.Character() != ' ' || !space.Modifiers().IsEmpty() || space.ForegroundColor() != color.Black {
			t.Errorf("Expected plain separator after %c, got %v", steps[i].char, space)
		}
	}

	// No separator after the last letter
	if tile, _ := g.TileAt(cellOf(2*len(steps) - 1)); !tile.IsEmpty() {
		t.Errorf("Expected nothing after J, got %v", tile)
	}
}

func TestModifiersDoNotLeak(t *testing.T) {
	g := grid.New(data.MustSize(16, 3))
	drawModifiers(g)
	// G enables flips and blink; H must carry only its border
	h, _ := g.TileAt(cellOf(14))
	if h.HasModifier(modifier.Blink) || h.HasModifier(modifier.HorizontalFlip) {
		t.Errorf("Expected reset between steps, got %q", h.Modifiers().Key())
	}
}

func TestWritePNG(t *testing.T) {
	cfg, err := application.NewConfig().
		DefaultTileset(tileset.Aduddlink8x8).
		DefaultSize(data.MustSize(16, 3)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "mods.png")
	if err := writePNG(cfg, path); err != nil {
		t.Fatalf("writePNG failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 24 {
		t.Errorf("Unexpected bounds %v", b)
	}
}
