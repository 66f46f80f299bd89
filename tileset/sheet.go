package tileset

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"os"

	"github.com/kovidgoyal/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// SheetColumns and SheetRows are the glyph layout of every sheet
const (
	SheetColumns = 16
	SheetRows    = 16
)

var (
	ErrSheetSize   = errors.New("glyph sheet has unexpected dimensions")
	ErrUnknownFace = errors.New("unknown font face")
	ErrInvalidSize = errors.New("tile size must be positive")
)

// buildSheet produces a white-on-transparent glyph sheet for the resource
func buildSheet(r Resource) (*image.NRGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, r.Width, r.Height)
	}
	if r.Path != "" {
		return loadSheet(r)
	}

	switch {
	case r.Kind == KindFont && r.Face == FaceIBMBios:
		return rasterizeBasic(r.Width, r.Height)
	case r.Kind == KindCP437, r.Kind == KindFont && r.Face == FaceGoMono:
		return rasterizeGoMono(r.Width, r.Height)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFace, r.Face)
	}
}

// loadSheet decodes a PNG sheet, magenta pixels are treated as transparent
func loadSheet(r Resource) (*image.NRGBA, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", r.Path, err)
	}

	b := img.Bounds()
	if b.Dx() != SheetColumns*r.Width || b.Dy() != SheetRows*r.Height {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSheetSize,
			b.Dx(), b.Dy(), SheetColumns*r.Width, SheetRows*r.Height)
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(sheet, sheet.Bounds(), img, b.Min, draw.Src)
	for i := 0; i < len(sheet.Pix); i += 4 {
		if sheet.Pix[i] == 255 && sheet.Pix[i+1] == 0 && sheet.Pix[i+2] == 255 {
			sheet.Pix[i+3] = 0
		}
	}
	return sheet, nil
}

// rasterizeGoMono draws every CP437 glyph with Go Mono sized to the cell
func rasterizeGoMono(w, h int) (*image.NRGBA, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	// Go Mono advance is 0.6 em and its line height about 1.2 em
	size := min(float64(h)/1.2, float64(w)/0.6)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("gomono face: %w", err)
	}
	defer face.Close()

	return rasterize(face, w, h), nil
}

// rasterizeBasic draws the 7x13 bitmap face and scales the sheet to the cell size
func rasterizeBasic(w, h int) (*image.NRGBA, error) {
	const bw, bh = 7, 13
	sheet := rasterize(basicfont.Face7x13, bw, bh)
	if w == bw && h == bh {
		return sheet, nil
	}
	return toNRGBA(imaging.Resize(sheet, SheetColumns*w, SheetRows*h, imaging.Lanczos)), nil
}

// toNRGBA returns img as NRGBA with its origin at zero, converting when needed
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// rasterize renders the CP437 code page into a 16x16 sheet of w x h cells
// Each glyph is clipped to its cell and centered horizontally
func rasterize(face font.Face, w, h int) *image.NRGBA {
	sheet := image.NewNRGBA(image.Rect(0, 0, SheetColumns*w, SheetRows*h))
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := (h-(ascent+descent))/2 + ascent

	for i := 1; i < SheetColumns*SheetRows; i++ {
		r := CP437Rune(byte(i))
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		ox, oy := (i%SheetColumns)*w, (i/SheetColumns)*h
		cell := sheet.SubImage(image.Rect(ox, oy, ox+w, oy+h)).(*image.NRGBA)
		d := &font.Drawer{
			Dst:  cell,
			Src:  image.NewUniform(stdcolor.White),
			Face: face,
			Dot:  fixed.P(ox+(w-adv.Round())/2, oy+baseline),
		}
		d.DrawString(string(r))
	}
	return sheet
}
