package area

import (
	"errors"
	"testing"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
)

func block(x, y, z int, chars ...rune) data.Block {
	layers := make([]data.Tile, len(chars))
	for i, ch := range chars {
		layers[i] = data.NewTile(ch, color.White, color.Black)
	}
	return data.NewBlock(data.NewPosition3D(x, y, z), layers)
}

func TestSetBlockBounds(t *testing.T) {
	a := New(Size3D{Width: 2, Height: 2, Depth: 2})
	if err := a.SetBlock(block(1, 1, 1, '#')); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := a.SetBlock(block(2, 0, 0, '#')); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
	if _, ok := a.BlockAt(data.NewPosition3D(1, 1, 1)); !ok {
		t.Error("Expected stored block")
	}
	if !a.RemoveBlock(data.NewPosition3D(1, 1, 1)) || a.RemoveBlock(data.NewPosition3D(1, 1, 1)) {
		t.Error("Expected single successful removal")
	}
}

func TestBlocksOrdering(t *testing.T) {
	a := New(Size3D{Width: 3, Height: 3, Depth: 3})
	for _, b := range []data.Block{block(2, 0, 1, 'a'), block(0, 1, 0, 'b'), block(1, 0, 0, 'c'), block(0, 0, 1, 'd')} {
		if err := a.SetBlock(b); err != nil {
			t.Fatal(err)
		}
	}
	var got []data.Position3D
	for _, b := range a.Blocks() {
		got = append(got, b.Position())
	}
	want := []data.Position3D{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 2, Y: 0, Z: 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestProjectTopmostVisible(t *testing.T) {
	a := New(Size3D{Width: 2, Height: 1, Depth: 3})
	_ = a.SetBlock(block(0, 0, 0, 'g'))
	_ = a.SetBlock(block(0, 0, 2, 'r'))
	_ = a.SetBlock(block(1, 0, 1, 'w'))

	surface := graphics.NewTileImage(data.MustSize(2, 1), data.EmptyTile())
	a.Project(surface, data.Position{})
	if tile, _ := surface.TileAt(data.Position{}); tile.Character() != 'r' {
		t.Errorf("Expected roof 'r', got %q", tile.Character())
	}

	a.ScrollDown()
	a.ScrollDown()
	a.ScrollDown()
	if a.VisibleLevel() != 0 {
		t.Errorf("Expected level clamped at 0, got %d", a.VisibleLevel())
	}
	surface = graphics.NewTileImage(data.MustSize(2, 1), data.EmptyTile())
	a.Project(surface, data.Position{})
	if tile, _ := surface.TileAt(data.Position{}); tile.Character() != 'g' {
		t.Errorf("Expected ground 'g', got %q", tile.Character())
	}
	if tile, _ := surface.TileAt(data.Position{X: 1}); !tile.IsEmpty() {
		t.Error("Expected hidden upper block")
	}

	a.ScrollUp()
	a.ScrollUp()
	a.ScrollUp()
	if a.VisibleLevel() != 2 {
		t.Errorf("Expected level clamped at 2, got %d", a.VisibleLevel())
	}
}

func TestCompositeLayers(t *testing.T) {
	b := data.NewBlock(data.Position3D{}, []data.Tile{
		data.NewTile('.', color.Green, color.Blue),
		data.EmptyTile(),
		data.NewTile('@', color.Yellow, color.Transparent()),
	})
	tile, ok := Composite(b)
	if !ok {
		t.Fatal("Expected composited tile")
	}
	if tile.Character() != '@' || tile.BackgroundColor() != color.Blue || tile.ForegroundColor() != color.Yellow {
		t.Errorf("Unexpected composite %v", tile)
	}

	if _, ok := Composite(data.NewBlock(data.Position3D{}, nil)); ok {
		t.Error("Expected no tile for an empty block")
	}
}
