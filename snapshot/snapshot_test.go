package snapshot

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/modifier"
)

func sampleImage() *graphics.TileImage {
	img := graphics.NewTileImage(data.MustSize(4, 2), data.EmptyTile())
	img.SetTileAt(data.Position{X: 0, Y: 0}, data.NewTile('A', color.Yellow, color.Blue, modifier.VerticalFlip))
	img.SetTileAt(data.Position{X: 3, Y: 1}, data.NewTile('H', color.Blue, color.White,
		modifier.NewBorder(modifier.BorderSolid, modifier.Top, modifier.Right)))
	img.SetTileAt(data.Position{X: 1, Y: 1}, data.NewTile('I', color.Blue, color.White, modifier.NewRayShade(), modifier.Glow))
	return img
}

func TestRoundTrip(t *testing.T) {
	img := sampleImage()
	var buf bytes.Buffer
	if err := Write(&buf, img, "sample"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, header, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	want := Header{Version: FormatVersion, Width: 4, Height: 2, Tiles: 3, Title: "sample"}
	if diff := cmp.Diff(want, header); diff != "" {
		t.Errorf("Header mismatch (-want +got):\n%s", diff)
	}
	if got.Size() != img.Size() {
		t.Fatalf("Expected size %v, got %v", img.Size(), got.Size())
	}
	for _, c := range img.Cells() {
		tile, _ := got.TileAt(c.Position)
		if !tile.Equal(c.Tile) {
			t.Errorf("At %v: expected %v, got %v", c.Position, c.Tile, tile)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "grid.tgs")
	if err := WriteFile(path, sampleImage(), ""); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	img, header, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if header.Tiles != 3 || len(img.FilledPositions()) != 3 {
		t.Errorf("Expected 3 tiles, got header %d image %d", header.Tiles, len(img.FilledPositions()))
	}
}

func compress(t *testing.T, raw string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	enc.Write([]byte(raw))
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"future version", `{"version":2,"width":1,"height":1,"tiles":0}` + "\n" + `{"tiles":[]}`, ErrVersion},
		{"bad header", "not json\n", ErrCorrupt},
		{"missing newline", `{"version":1}`, ErrCorrupt},
		{"negative size", `{"version":1,"width":-1,"height":1,"tiles":0}` + "\n" + `{"tiles":[]}`, ErrCorrupt},
		{"area wraps to zero", `{"version":1,"width":1099511627776,"height":1099511627776,"tiles":1}` + "\n" + `{"tiles":[{"x":5,"y":5,"ch":65,"fg":[0,0,0,255],"bg":[0,0,0,255]}]}`, ErrCorrupt},
		{"area wraps negative", `{"version":1,"width":4294967296,"height":2147483648,"tiles":0}` + "\n" + `{"tiles":[]}`, ErrCorrupt},
		{"too many cells", `{"version":1,"width":65536,"height":65536,"tiles":0}` + "\n" + `{"tiles":[]}`, ErrCorrupt},
		{"tile count", `{"version":1,"width":1,"height":1,"tiles":2}` + "\n" + `{"tiles":[]}`, ErrCorrupt},
		{"outside", `{"version":1,"width":1,"height":1,"tiles":1}` + "\n" + `{"tiles":[{"x":5,"y":0,"ch":65,"fg":[0,0,0,255],"bg":[0,0,0,255]}]}`, ErrCorrupt},
		{"unknown modifier", `{"version":1,"width":1,"height":1,"tiles":1}` + "\n" + `{"tiles":[{"x":0,"y":0,"ch":65,"fg":[0,0,0,255],"bg":[0,0,0,255],"mods":["sparkle"]}]}`, modifier.ErrUnknownModifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(compress(t, tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestReadNotCompressed(t *testing.T) {
	if _, _, err := Read(bytes.NewBufferString("plain text")); err == nil {
		t.Error("Expected error for uncompressed input")
	}
}
