// Package modifier defines the visual transformations that can be applied
// to a tile: flips, blinking, underline, crossed out, borders, ray shading and glow.
package modifier

// Modifier is a visual transformation applied when a tile is rendered
// Key identifies the modifier and its parameters, equal keys mean equal modifiers
type Modifier interface {
	Key() string
}

// Simple is a parameterless modifier
type Simple struct {
	name string
}

func (s *Simple) Key() string { return s.name }

func (s *Simple) String() string { return s.name }

// Parameterless modifiers, compared by identity or key
var (
	VerticalFlip   = &Simple{name: "vertical-flip"}
	HorizontalFlip = &Simple{name: "horizontal-flip"}
	CrossedOut     = &Simple{name: "crossed-out"}
	Blink          = &Simple{name: "blink"}
	Underline      = &Simple{name: "underline"}
	Glow           = &Simple{name: "glow"}
	Hidden         = &Simple{name: "hidden"}
)

var simpleByKey = map[string]*Simple{
	VerticalFlip.name:   VerticalFlip,
	HorizontalFlip.name: HorizontalFlip,
	CrossedOut.name:     CrossedOut,
	Blink.name:          Blink,
	Underline.name:      Underline,
	Glow.name:           Glow,
	Hidden.name:         Hidden,
}

// SimpleByKey resolves a parameterless modifier from its key
func SimpleByKey(key string) (*Simple, bool) {
	s, ok := simpleByKey[key]
	return s, ok
}
