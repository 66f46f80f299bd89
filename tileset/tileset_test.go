package tileset

import (
	"errors"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/modifier"
)

func loadWanderlust(t *testing.T) *Tileset {
	t.Helper()
	ts, err := Load(Wanderlust16x16)
	if err != nil {
		t.Fatalf("Failed to load tileset: %v", err)
	}
	return ts
}

func pixel(tex *image.NRGBA, x, y int) color.TileColor {
	return color.FromNRGBA(tex.NRGBAAt(x, y))
}

func TestCP437Metadata(t *testing.T) {
	meta := NewCP437MetadataLoader(16, 16).FetchMetadata()
	if len(meta) != 255 {
		t.Errorf("Expected 255 glyphs, got %d", len(meta))
	}

	tests := []struct {
		ch   rune
		x, y int
	}{
		{'☺', 1, 0},
		{' ', 0, 2},
		{'A', 1, 4},
		{'⌂', 15, 7},
		{'░', 0, 11},
		{'■', 14, 15},
	}
	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			m, ok := meta[tt.ch]
			if !ok {
				t.Fatalf("Expected metadata for %q", tt.ch)
			}
			if m.X != tt.x || m.Y != tt.y {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.x, tt.y, m.X, m.Y)
			}
		})
	}
}

func TestCP437MetadataSmallSheet(t *testing.T) {
	meta := NewCP437MetadataLoader(4, 4).FetchMetadata()
	if len(meta) != 15 {
		t.Errorf("Expected 15 glyphs for a 4x4 sheet, got %d", len(meta))
	}
}

func TestBuiltInLookup(t *testing.T) {
	r, ok := ByID("wanderlust_16x16")
	if !ok || r != Wanderlust16x16 {
		t.Errorf("Expected wanderlust resource, got %v", r)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("Expected unknown id to fail")
	}
}

func TestFontResourceSizing(t *testing.T) {
	r := IBMBios.ToTilesetResource(13)
	if r.Width != 7 || r.Height != 13 || r.Kind != KindFont {
		t.Errorf("Unexpected resource %+v", r)
	}
	ts, err := Load(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tex := ts.Texture(data.DefaultTile()); tex.Rect.Dx() != 7 || tex.Rect.Dy() != 13 {
		t.Errorf("Unexpected texture bounds %v", tex.Rect)
	}

	scaled, err := Load(IBMBios.ToTilesetResource(20))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tex := scaled.Texture(data.DefaultTile()); tex.Rect.Dx() != 11 || tex.Rect.Dy() != 20 {
		t.Errorf("Unexpected scaled texture bounds %v", tex.Rect)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Resource{Width: 0, Height: 8}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize, got %v", err)
	}
	if _, err := Load(Resource{Width: 8, Height: 8, Kind: KindFont, Face: "comic"}); !errors.Is(err, ErrUnknownFace) {
		t.Errorf("Expected ErrUnknownFace, got %v", err)
	}
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSheetFromFile(t *testing.T) {
	sheet := image.NewNRGBA(image.Rect(0, 0, 16*4, 16*4))
	for i := 0; i < len(sheet.Pix); i += 4 {
		sheet.Pix[i], sheet.Pix[i+1], sheet.Pix[i+2], sheet.Pix[i+3] = 255, 0, 255, 255
	}
	// 'A' is at cell (1,4), mark one opaque white pixel in it
	sheet.SetNRGBA(1*4+1, 4*4+1, stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255})

	r := Resource{ID: "test_4x4", Width: 4, Height: 4, Kind: KindCP437}.WithPath(writePNG(t, sheet))
	ts, err := Load(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tex := ts.Texture(data.NewTile('A', color.Yellow, color.Blue))
	if got := pixel(tex, 1, 1); got != color.Yellow {
		t.Errorf("Expected glyph pixel tinted yellow, got %v", got)
	}
	if got := pixel(tex, 0, 0); got != color.Blue {
		t.Errorf("Expected magenta treated as transparent background, got %v", got)
	}
}

func TestLoadSheetWrongSize(t *testing.T) {
	path := writePNG(t, image.NewNRGBA(image.Rect(0, 0, 10, 10)))
	if _, err := Load(Resource{Width: 4, Height: 4, Kind: KindCP437, Path: path}); !errors.Is(err, ErrSheetSize) {
		t.Errorf("Expected ErrSheetSize, got %v", err)
	}
}

func TestColorizedSpaceIsBackground(t *testing.T) {
	ts := loadWanderlust(t)
	tex := ts.Texture(data.NewTile(' ', color.Yellow, color.Blue))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := pixel(tex, x, y); got != color.Blue {
				t.Fatalf("Expected blue at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestGlyphHasForegroundPixels(t *testing.T) {
	ts := loadWanderlust(t)
	tex := ts.Texture(data.NewTile('A', color.Yellow, color.Blue))
	found := false
	for y := 0; y < 16 && !found; y++ {
		for x := 0; x < 16; x++ {
			if pixel(tex, x, y) != color.Blue {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected glyph pixels in texture")
	}
}

func TestFlips(t *testing.T) {
	ts := loadWanderlust(t)
	base := data.NewTile('F', color.Yellow, color.Blue)
	plain := ts.Texture(base)
	hflip := ts.Texture(base.WithAddedModifiers(modifier.HorizontalFlip))
	vflip := ts.Texture(base.WithAddedModifiers(modifier.VerticalFlip))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if pixel(plain, x, y) != pixel(hflip, 15-x, y) {
				t.Fatalf("Horizontal flip mismatch at (%d,%d)", x, y)
			}
			if pixel(plain, x, y) != pixel(vflip, x, 15-y) {
				t.Fatalf("Vertical flip mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestLineDecorations(t *testing.T) {
	ts := loadWanderlust(t)
	base := data.NewTile(' ', color.Green, color.Red)

	crossed := ts.Texture(base.WithAddedModifiers(modifier.CrossedOut))
	underlined := ts.Texture(base.WithAddedModifiers(modifier.Underline))
	for x := 0; x < 16; x++ {
		if got := pixel(crossed, x, 8); got != color.Green {
			t.Errorf("Expected crossed out line at (%d,8), got %v", x, got)
		}
		if got := pixel(underlined, x, 15); got != color.Green {
			t.Errorf("Expected underline at (%d,15), got %v", x, got)
		}
	}
	if got := pixel(crossed, 0, 0); got != color.Red {
		t.Errorf("Expected background away from the line, got %v", got)
	}
}

func TestBorder(t *testing.T) {
	ts := loadWanderlust(t)
	tile := data.NewTile(' ', color.Blue, color.White, modifier.NewBorder(modifier.BorderSolid, modifier.Top, modifier.Right))
	tex := ts.Texture(tile)

	for i := 0; i < 16; i++ {
		if got := pixel(tex, i, 0); got != color.Blue {
			t.Errorf("Expected top border at (%d,0), got %v", i, got)
		}
		if got := pixel(tex, 15, i); got != color.Blue {
			t.Errorf("Expected right border at (15,%d), got %v", i, got)
		}
	}
	if got := pixel(tex, 0, 15); got != color.White {
		t.Errorf("Expected no bottom-left border, got %v", got)
	}

	dotted := ts.Texture(tile.WithModifiers(modifier.NewSet(modifier.NewBorder(modifier.BorderDotted, modifier.Bottom))))
	if pixel(dotted, 0, 15) != color.Blue || pixel(dotted, 1, 15) != color.White {
		t.Error("Expected dotted bottom border")
	}
}

func TestHiddenIsBackgroundOnly(t *testing.T) {
	ts := loadWanderlust(t)
	tex := ts.Texture(data.NewTile('#', color.White, color.Cyan, modifier.Hidden, modifier.Underline))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := pixel(tex, x, y); got != color.Cyan {
				t.Fatalf("Expected background at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func differs(a, b *image.NRGBA) bool {
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return true
		}
	}
	return false
}

func TestGlowAndRayShadeChangeTexture(t *testing.T) {
	ts := loadWanderlust(t)
	base := data.NewTile('I', color.Blue, color.White)
	plain := ts.Texture(base)

	if !differs(plain, ts.Texture(base.WithAddedModifiers(modifier.Glow))) {
		t.Error("Expected glow to change the texture")
	}
	if !differs(plain, ts.Texture(base.WithAddedModifiers(modifier.NewRayShade()))) {
		t.Error("Expected ray shade to change the texture")
	}
}

func TestTextureCache(t *testing.T) {
	ts := loadWanderlust(t)
	tile := data.NewTile('x', color.White, color.Black)

	first := ts.Texture(tile)
	second := ts.Texture(tile)
	if first != second {
		t.Error("Expected cached texture to be reused")
	}
	hits, misses, entries := ts.CacheStats()
	if hits != 1 || misses != 1 || entries != 1 {
		t.Errorf("Expected 1 hit, 1 miss, 1 entry, got %d %d %d", hits, misses, entries)
	}

	ts.Texture(tile.WithCharacter('y'))
	ts.SetCacheSize(1)
	if _, _, entries := ts.CacheStats(); entries != 1 {
		t.Errorf("Expected eviction down to 1 entry, got %d", entries)
	}
	if ts.Texture(tile) == first {
		t.Error("Expected evicted texture to be rendered again")
	}
}

func TestTextureCacheHashCollision(t *testing.T) {
	old := hashKey
	hashKey = func(string) uint64 { return 42 }
	t.Cleanup(func() { hashKey = old })

	ts := loadWanderlust(t)
	x := data.NewTile('x', color.White, color.Black)
	y := data.NewTile('y', color.White, color.Black)

	first := ts.Texture(x)
	if !differs(first, ts.Texture(y)) {
		t.Error("Expected colliding tiles to get their own textures")
	}
	if ts.Texture(x) != first {
		t.Error("Expected cached texture for the stored key")
	}
	hits, misses, _ := ts.CacheStats()
	if hits != 1 || misses != 2 {
		t.Errorf("Expected 1 hit, 2 misses, got %d %d", hits, misses)
	}
}

func TestNoOp(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if NoOp.Transform(tex, data.EmptyTile()) != tex {
		t.Error("Expected NoOp to return its input")
	}
}
