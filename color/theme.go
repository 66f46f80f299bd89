package color

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTheme is returned when a theme name is not registered
var ErrUnknownTheme = errors.New("unknown color theme")

// Theme is a small palette applied to panels and text
type Theme struct {
	Name        string
	PrimaryFg   TileColor
	SecondaryFg TileColor
	PrimaryBg   TileColor
	SecondaryBg TileColor
	Accent      TileColor
}

var themes = map[string]Theme{
	"entrapped_in_a_palette": {
		Name:        "entrapped_in_a_palette",
		PrimaryFg:   Create(0xd1, 0xb7, 0x8f),
		SecondaryFg: Create(0x9d, 0x84, 0x6c),
		PrimaryBg:   Create(0x38, 0x2f, 0x3b),
		SecondaryBg: Create(0x5d, 0x4e, 0x60),
		Accent:      Create(0xe0, 0x6c, 0x75),
	},
	"solarized_dark": {
		Name:        "solarized_dark",
		PrimaryFg:   Create(0x93, 0xa1, 0xa1),
		SecondaryFg: Create(0x58, 0x6e, 0x75),
		PrimaryBg:   Create(0x00, 0x2b, 0x36),
		SecondaryBg: Create(0x07, 0x36, 0x42),
		Accent:      Create(0xb5, 0x89, 0x00),
	},
	"tokyo_night": {
		Name:        "tokyo_night",
		PrimaryFg:   Create(0xc0, 0xca, 0xf5),
		SecondaryFg: Create(0x56, 0x5f, 0x89),
		PrimaryBg:   Create(0x1a, 0x1b, 0x26),
		SecondaryBg: Create(0x24, 0x28, 0x3b),
		Accent:      Create(0x7a, 0xa2, 0xf7),
	},
}

// ThemeByName looks up a built-in theme
func ThemeByName(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// ThemeNames lists built-in themes in sorted order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
