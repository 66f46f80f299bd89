package tileset

import (
	"image"
	"sync"

	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/logging"
	"github.com/lixenwraith/tilegrid/modifier"
	"github.com/zeebo/xxh3"
)

// DefaultCacheSize bounds the number of cached textures per tileset
const DefaultCacheSize = 4096

// fallbackRune is drawn for runes missing from the sheet
const fallbackRune = '?'

// hashKey is replaced in tests
var hashKey = xxh3.HashString

// cacheEntry keeps the full key, a hash match with a different key is a miss
type cacheEntry struct {
	key string
	tex *image.NRGBA
}

// Tileset renders tiles into textures using a CP437 glyph sheet
// Safe for concurrent use
type Tileset struct {
	resource Resource
	sheet    *image.NRGBA
	meta     map[rune]Meta

	mu       sync.Mutex
	cache    map[uint64]cacheEntry
	order    []uint64 // insertion order for eviction
	capacity int
	hits     uint64
	misses   uint64
}

// Load builds the glyph sheet of a resource
func Load(r Resource) (*Tileset, error) {
	sheet, err := buildSheet(r)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("tileset loaded", "id", r.ID, "width", r.Width, "height", r.Height, "path", r.Path)
	return &Tileset{
		resource: r,
		sheet:    sheet,
		meta:     NewCP437MetadataLoader(SheetColumns, SheetRows).FetchMetadata(),
		cache:    make(map[uint64]cacheEntry),
		capacity: DefaultCacheSize,
	}, nil
}

func (ts *Tileset) Resource() Resource { return ts.resource }
func (ts *Tileset) Width() int         { return ts.resource.Width }
func (ts *Tileset) Height() int        { return ts.resource.Height }

// SetCacheSize changes the cache bound, entries beyond it are evicted
func (ts *Tileset) SetCacheSize(n int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.capacity = max(0, n)
	ts.evictLocked()
}

// CacheStats returns texture cache hits, misses and current entries
func (ts *Tileset) CacheStats() (hits, misses uint64, entries int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.hits, ts.misses, len(ts.cache)
}

func (ts *Tileset) evictLocked() {
	for len(ts.order) > ts.capacity {
		oldest := ts.order[0]
		ts.order = ts.order[1:]
		delete(ts.cache, oldest)
	}
}

// Glyph returns an uncolored copy of the glyph cell for ch
func (ts *Tileset) Glyph(ch rune) *image.NRGBA {
	m, ok := ts.meta[ch]
	if !ok {
		m = ts.meta[fallbackRune]
	}
	w, h := ts.resource.Width, ts.resource.Height
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := ts.sheet.PixOffset(m.X*w, m.Y*h+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], ts.sheet.Pix[src:src+w*4])
	}
	return out
}

// Texture returns the rendered texture of a tile
// The result is shared through the cache and must not be modified
func (ts *Tileset) Texture(tile data.Tile) *image.NRGBA {
	cacheKey := tile.CacheKey()
	key := hashKey(cacheKey)

	ts.mu.Lock()
	if e, ok := ts.cache[key]; ok && e.key == cacheKey {
		ts.hits++
		ts.mu.Unlock()
		return e.tex
	}
	ts.misses++
	ts.mu.Unlock()

	tex := ts.render(tile)

	ts.mu.Lock()
	if _, ok := ts.cache[key]; !ok && ts.capacity > 0 {
		ts.cache[key] = cacheEntry{key: cacheKey, tex: tex}
		ts.order = append(ts.order, key)
		ts.evictLocked()
	}
	ts.mu.Unlock()
	return tex
}

// render applies the transformer chain in a fixed order
func (ts *Tileset) render(tile data.Tile) *image.NRGBA {
	mods := tile.Modifiers()
	if mods.Contains(modifier.Hidden) {
		return Colorizer.Transform(ts.Glyph(' '), tile)
	}
	tex := Colorizer.Transform(ts.Glyph(tile.Character()), tile)
	for _, step := range pipeline {
		if step.applies(mods) {
			tex = step.transformer.Transform(tex, tile)
		}
	}
	return tex
}

type pipelineStep struct {
	applies     func(modifier.Set) bool
	transformer TextureTransformer
}

func has(m modifier.Modifier) func(modifier.Set) bool {
	return func(s modifier.Set) bool { return s.Contains(m) }
}

func hasType[T modifier.Modifier]() func(modifier.Set) bool {
	return func(s modifier.Set) bool {
		_, ok := s.Find(func(m modifier.Modifier) bool {
			_, is := m.(T)
			return is
		})
		return ok
	}
}

// pipeline runs after colorizing, blink is left to renderers
var pipeline = []pipelineStep{
	{has(modifier.HorizontalFlip), HorizontalFlipper},
	{has(modifier.VerticalFlip), VerticalFlipper},
	{has(modifier.CrossedOut), CrossedOutTransformer},
	{has(modifier.Underline), UnderlineTransformer},
	{hasType[*modifier.Border](), BorderTransformer},
	{hasType[*modifier.RayShade](), RayShader},
	{has(modifier.Glow), Glower},
}
