// Package snapshot persists tile images as zstd compressed files.
//
// A file is a JSON header line followed by a JSON body that holds the
// non-empty tiles of the image.
package snapshot

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/modifier"
)

// FormatVersion is written into every header
const FormatVersion = 1

// MaxCells bounds the image area accepted by Read
const MaxCells = 1 << 22

var (
	ErrVersion = errors.New("unsupported snapshot version")
	ErrCorrupt = errors.New("corrupt snapshot")
)

// Header describes the stored image
type Header struct {
	Version int    `json:"version"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Tiles   int    `json:"tiles"`
	Title   string `json:"title,omitempty"`
}

type tileV1 struct {
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Char      rune     `json:"ch"`
	Fg        [4]uint8 `json:"fg"`
	Bg        [4]uint8 `json:"bg"`
	Modifiers []string `json:"mods,omitempty"`
}

type bodyV1 struct {
	Tiles []tileV1 `json:"tiles"`
}

func packColor(c color.TileColor) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func unpackColor(c [4]uint8) color.TileColor {
	return color.CreateWithAlpha(c[0], c[1], c[2], c[3])
}

// Write stores the non-empty tiles of img
func Write(w io.Writer, img *graphics.TileImage, title string) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}

	var body bodyV1
	for _, c := range img.Cells() {
		if c.Tile.IsEmpty() {
			continue
		}
		keys := make([]string, 0, c.Tile.Modifiers().Len())
		for _, m := range c.Tile.Modifiers().List() {
			keys = append(keys, m.Key())
		}
		body.Tiles = append(body.Tiles, tileV1{
			X:         c.Position.X,
			Y:         c.Position.Y,
			Char:      c.Tile.Character(),
			Fg:        packColor(c.Tile.ForegroundColor()),
			Bg:        packColor(c.Tile.BackgroundColor()),
			Modifiers: keys,
		})
	}

	header := Header{
		Version: FormatVersion,
		Width:   img.Size().Width,
		Height:  img.Size().Height,
		Tiles:   len(body.Tiles),
		Title:   title,
	}

	bw := bufio.NewWriter(enc)
	hb, err := json.Marshal(header)
	if err != nil {
		enc.Close()
		return fmt.Errorf("encode header: %w", err)
	}
	bw.Write(hb)
	bw.WriteByte('\n')
	if err := json.NewEncoder(bw).Encode(&body); err != nil {
		enc.Close()
		return fmt.Errorf("encode body: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read restores an image written by Write
func Read(r io.Reader) (*graphics.TileImage, Header, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, Header{}, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	br := bufio.NewReader(dec)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, Header{}, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	var header Header
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, Header{}, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if header.Version != FormatVersion {
		return nil, header, fmt.Errorf("%w: %d", ErrVersion, header.Version)
	}

	size, err := data.NewSize(header.Width, header.Height)
	if err != nil {
		return nil, header, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if size.Area() > MaxCells {
		return nil, header, fmt.Errorf("%w: size %v exceeds %d cells", ErrCorrupt, size, MaxCells)
	}

	var body bodyV1
	if err := json.NewDecoder(br).Decode(&body); err != nil {
		return nil, header, fmt.Errorf("%w: body: %v", ErrCorrupt, err)
	}
	if len(body.Tiles) != header.Tiles {
		return nil, header, fmt.Errorf("%w: header lists %d tiles, body has %d", ErrCorrupt, header.Tiles, len(body.Tiles))
	}

	img := graphics.NewTileImage(size, data.EmptyTile())
	for _, t := range body.Tiles {
		p := data.Position{X: t.X, Y: t.Y}
		if !size.Contains(p) {
			return nil, header, fmt.Errorf("%w: tile at %v outside %v", ErrCorrupt, p, size)
		}
		mods := make([]modifier.Modifier, 0, len(t.Modifiers))
		for _, key := range t.Modifiers {
			m, err := modifier.Parse(key)
			if err != nil {
				return nil, header, err
			}
			mods = append(mods, m)
		}
		img.SetTileAt(p, data.NewTile(t.Char, unpackColor(t.Fg), unpackColor(t.Bg), mods...))
	}
	return img, header, nil
}

// WriteFile stores img at path, creating parent directories
func WriteFile(path string, img *graphics.TileImage, title string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, img, title); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile restores an image stored by WriteFile
func ReadFile(path string) (*graphics.TileImage, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()
	return Read(f)
}
