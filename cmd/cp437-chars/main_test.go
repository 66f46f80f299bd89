package main

import (
	"testing"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/grid"
)

func TestDrawPanel(t *testing.T) {
	theme, err := color.ThemeByName("entrapped_in_a_palette")
	if err != nil {
		t.Fatal(err)
	}
	g := grid.New(data.MustSize(21, 21))
	drawPanel(g, theme)

	tests := []struct {
		name string
		pos  data.Position
		ch   rune
	}{
		{"top left corner", data.Position{X: 1, Y: 1}, '┌'},
		{"bottom right corner", data.Position{X: 18, Y: 18}, '┘'},
		{"smiley", data.Position{X: 3, Y: 2}, '☺'},
		{"letter A", data.Position{X: 3, Y: 6}, 'A'},
		{"last glyph", data.Position{X: 16, Y: 17}, '■'},
		{"shadow bottom", data.Position{X: 10, Y: 19}, graphics.BlockSparse},
		{"shadow right", data.Position{X: 19, Y: 10}, graphics.BlockSparse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, ok := g.TileAt(tt.pos)
			if !ok {
				t.Fatalf("Position %v outside grid", tt.pos)
			}
			if tile.Character() != tt.ch {
				t.Errorf("Expected %q at %v, got %q", tt.ch, tt.pos, tile.Character())
			}
		})
	}

	a, _ := g.TileAt(data.Position{X: 3, Y: 6})
	if a.ForegroundColor() != theme.PrimaryFg || a.BackgroundColor() != theme.PrimaryBg {
		t.Errorf("Expected themed glyph, got %v", a)
	}
	if outside, _ := g.TileAt(data.Position{X: 0, Y: 0}); !outside.IsEmpty() {
		t.Errorf("Expected nothing outside the panel, got %v", outside)
	}
}
