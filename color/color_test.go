package color

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    TileColor
		want uint8
	}{
		{"Black", Create(0, 0, 0), 16},
		{"White", Create(255, 255, 255), 231},
		{"Red", Create(205, 0, 0), 160},
		{"Cube gray beats ramp", Create(95, 95, 95), 59},
		{"Pure blue", Create(0, 0, 255), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	dst := Create(0, 0, 0)
	src := Create(200, 100, 50)

	if got := Blend(dst, src, 0); got != dst {
		t.Errorf("Expected dst for alpha 0, got %v", got)
	}
	if got := Blend(dst, src, 1); got != src {
		t.Errorf("Expected src for alpha 1, got %v", got)
	}
	got := Blend(dst, src, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 25 || got.A != 255 {
		t.Errorf("Expected (100,50,25,255), got %v", got)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(Create(200, 10, 255), Create(100, 10, 1))
	if got.R != 255 || got.G != 20 || got.B != 255 {
		t.Errorf("Expected clamped (255,20,255), got %v", got)
	}
}

func TestOver(t *testing.T) {
	bg := Create(10, 20, 30)
	if got := Over(bg, Transparent()); got != bg {
		t.Errorf("Expected transparent src to keep dst, got %v", got)
	}
	if got := Over(bg, Red); got != Red {
		t.Errorf("Expected opaque src to replace dst, got %v", got)
	}
}

func TestDarkenLighten(t *testing.T) {
	c := Create(100, 100, 100)
	if got := c.Darken(1); got.R != 0 || got.A != 255 {
		t.Errorf("Expected full darken to black, got %v", got)
	}
	if got := c.Lighten(1); got.R != 255 || got.A != 255 {
		t.Errorf("Expected full lighten to white, got %v", got)
	}
	if got := c.Invert(); got.R != 155 {
		t.Errorf("Expected inverted channel 155, got %d", got.R)
	}
}

func TestTcellConversion(t *testing.T) {
	if got := Transparent().Tcell(ColorModeTrueColor); got != tcell.ColorDefault {
		t.Errorf("Expected default color for transparent, got %v", got)
	}
	if got := Create(1, 2, 3).Tcell(ColorModeTrueColor); got != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Expected RGB color, got %v", got)
	}
	if got := Create(0, 0, 0).Tcell(ColorMode256); got != tcell.PaletteColor(16) {
		t.Errorf("Expected palette 16, got %v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 mode")
	}
	if ParseColorMode("24bit") != ColorModeTrueColor {
		t.Error("Expected truecolor mode")
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(key, "")
	}
	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("Expected truecolor from COLORTERM")
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorMode256 {
		t.Error("Expected 256 fallback")
	}
}

func TestThemeByName(t *testing.T) {
	th, err := ThemeByName("entrapped_in_a_palette")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if th.PrimaryBg.IsTransparent() {
		t.Error("Expected opaque primary background")
	}

	if _, err := ThemeByName("nope"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Expected ErrUnknownTheme, got %v", err)
	}
	if len(ThemeNames()) != 3 {
		t.Errorf("Expected 3 themes, got %d", len(ThemeNames()))
	}
}

func TestANSIByName(t *testing.T) {
	c, ok := ANSIByName("yellow")
	if !ok || c != Yellow {
		t.Errorf("Expected yellow, got %v %v", c, ok)
	}
	if _, ok := ANSIByName("chartreuse"); ok {
		t.Error("Expected unknown name to fail")
	}
}
