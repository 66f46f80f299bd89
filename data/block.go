package data

import "slices"

// Block is a stack of tile layers at a single 3D position
// Layers are ordered bottom to top
type Block interface {
	Position() Position3D
	Layers() []Tile
}

// Top returns the topmost layer
func Top(b Block) (Tile, bool) {
	layers := b.Layers()
	if len(layers) == 0 {
		return Tile{}, false
	}
	return layers[len(layers)-1], true
}

// IsEmptyBlock reports whether every layer is empty
func IsEmptyBlock(b Block) bool {
	for _, l := range b.Layers() {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

// defaultBlock is the immutable Block returned by NewBlock
type defaultBlock struct {
	position Position3D
	layers   []Tile
}

// NewBlock creates an immutable block, the layer slice is copied
func NewBlock(position Position3D, layers []Tile) Block {
	copied := make([]Tile, len(layers))
	copy(copied, layers)
	return &defaultBlock{position: position, layers: copied}
}

func (b *defaultBlock) Position() Position3D {
	return b.position
}

// Layers returns a fresh copy so callers cannot mutate the block
func (b *defaultBlock) Layers() []Tile {
	return slices.Clone(b.layers)
}
