package main

import (
	"testing"

	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/grid"
)

func TestBuildHouseLevels(t *testing.T) {
	a, err := buildHouse()
	if err != nil {
		t.Fatalf("buildHouse failed: %v", err)
	}
	if got, want := len(a.Blocks()), areaWidth*areaHeight+6*4+15; got != want {
		t.Errorf("Expected %d blocks, got %d", want, got)
	}

	g := grid.New(data.MustSize(areaWidth, areaHeight+1))
	at := func(x, y int) rune {
		tile, _ := g.TileAt(data.Position{X: x, Y: y + 1})
		return tile.Character()
	}

	redraw(g, a)
	if at(4, 3) != '^' || at(0, 0) != '.' {
		t.Errorf("Expected roof over ground, got %q and %q", at(4, 3), at(0, 0))
	}

	a.ScrollDown()
	redraw(g, a)
	if at(3, 2) != '#' {
		t.Errorf("Expected wall, got %q", at(3, 2))
	}
	if at(5, 5) != '.' || at(4, 3) != '.' {
		t.Errorf("Expected door and floor to show ground, got %q and %q", at(5, 5), at(4, 3))
	}
	wall, _ := g.TileAt(data.Position{X: 3, Y: 3})
	if wall.BackgroundColor() != stone {
		t.Errorf("Expected stone background under the wall glyph, got %v", wall.BackgroundColor())
	}

	caption, _ := g.TileAt(data.Position{X: 6, Y: 0})
	if caption.Character() != '1' {
		t.Errorf("Expected caption to show level 1, got %q", caption.Character())
	}
}
