// Package tileset loads glyph sheets and turns tiles into colored, modified
// textures for image based rendering.
package tileset

import "fmt"

// Kind tells how a resource is turned into a glyph sheet
type Kind uint8

const (
	// KindCP437 is a 16x16 glyph sheet laid out in code page 437 order
	KindCP437 Kind = iota
	// KindFont is a monospace font rasterized into a CP437 sheet
	KindFont
)

// Font faces understood by KindFont resources
const (
	FaceGoMono  = "gomono"
	FaceIBMBios = "ibm-bios"
)

// Resource describes a tileset
// CP437 resources with an empty Path are synthesized from the Go Mono font
type Resource struct {
	ID     string
	Name   string
	Width  int
	Height int
	Kind   Kind
	Face   string // KindFont only
	Path   string // optional PNG sheet of 16x16 glyphs
}

func (r Resource) String() string {
	return fmt.Sprintf("%s (%dx%d)", r.Name, r.Width, r.Height)
}

// WithPath returns a copy reading its glyphs from a PNG sheet
func (r Resource) WithPath(path string) Resource {
	r.Path = path
	return r
}

// Built-in CP437 tilesets
var (
	Aduddlink8x8    = cp437("aduddlink", "Aduddlink", 8)
	Rex12x12        = cp437("rex_paint", "REXPaint", 12)
	Taffer16x16     = cp437("taffer", "Taffer", 16)
	Wanderlust16x16 = cp437("wanderlust", "Wanderlust", 16)
	Yobbo20x20      = cp437("yobbo", "Yobbo", 20)
)

func cp437(id, name string, size int) Resource {
	return Resource{
		ID:     fmt.Sprintf("%s_%dx%d", id, size, size),
		Name:   name,
		Width:  size,
		Height: size,
		Kind:   KindCP437,
	}
}

var builtIn = map[string]Resource{
	Aduddlink8x8.ID:    Aduddlink8x8,
	Rex12x12.ID:        Rex12x12,
	Taffer16x16.ID:     Taffer16x16,
	Wanderlust16x16.ID: Wanderlust16x16,
	Yobbo20x20.ID:      Yobbo20x20,
}

// ByID looks up a built-in CP437 tileset
func ByID(id string) (Resource, bool) {
	r, ok := builtIn[id]
	return r, ok
}

// FontResource is a monospace font that becomes a tileset at a chosen size
type FontResource struct {
	Name string
	Face string
	// Aspect is width divided by height of one glyph cell
	Aspect float64
}

// Built-in monospace fonts
var (
	IBMBios = FontResource{Name: "IBM BIOS", Face: FaceIBMBios, Aspect: 7.0 / 13.0}
	GoMono  = FontResource{Name: "Go Mono", Face: FaceGoMono, Aspect: 0.6}
)

// ToTilesetResource sizes the font, height is the glyph cell height in pixels
func (f FontResource) ToTilesetResource(height int) Resource {
	width := max(1, int(float64(height)*f.Aspect+0.5))
	return Resource{
		ID:     fmt.Sprintf("%s_%dx%d", f.Face, width, height),
		Name:   f.Name,
		Width:  width,
		Height: height,
		Kind:   KindFont,
		Face:   f.Face,
	}
}
