package application

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/tileset"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Build and LoadConfig for unusable settings
var ErrInvalidConfig = errors.New("invalid application config")

// Defaults applied by NewConfig
const (
	DefaultTitle         = "tilegrid"
	DefaultFPS           = 60
	DefaultBlinkInterval = 500 * time.Millisecond
	DefaultLogDir        = "logs"
	DefaultBellVolume    = 0.5
)

// AppConfig holds everything StartApplication needs
type AppConfig struct {
	Tileset       tileset.Resource
	DefaultSize   data.Size
	DebugMode     bool
	Title         string
	FPS           int
	BlinkInterval time.Duration
	ColorMode     string // auto, 256 or truecolor
	Bell          bool
	BellVolume    float64
	Theme         string
	LogDir        string
}

// ResolvedColorMode parses ColorMode, auto detects from the environment
func (c AppConfig) ResolvedColorMode() color.ColorMode {
	return color.ParseColorMode(c.ColorMode)
}

// FrameInterval is the render tick derived from FPS
func (c AppConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Builder assembles an AppConfig, settings not touched keep the defaults
type Builder struct {
	cfg AppConfig
}

// NewConfig starts a builder with the default settings
func NewConfig() *Builder {
	return &Builder{cfg: defaultConfig()}
}

func defaultConfig() AppConfig {
	return AppConfig{
		Tileset:       tileset.Wanderlust16x16,
		DefaultSize:   data.MustSize(60, 30),
		Title:         DefaultTitle,
		FPS:           DefaultFPS,
		BlinkInterval: DefaultBlinkInterval,
		ColorMode:     "auto",
		BellVolume:    DefaultBellVolume,
		Theme:         "entrapped_in_a_palette",
		LogDir:        DefaultLogDir,
	}
}

func (b *Builder) DefaultTileset(r tileset.Resource) *Builder {
	b.cfg.Tileset = r
	return b
}

func (b *Builder) DefaultSize(s data.Size) *Builder {
	b.cfg.DefaultSize = s
	return b
}

// DebugMode enables file logging and the status line
func (b *Builder) DebugMode(on bool) *Builder {
	b.cfg.DebugMode = on
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.cfg.Title = title
	return b
}

func (b *Builder) FPS(fps int) *Builder {
	b.cfg.FPS = fps
	return b
}

// BlinkInterval sets the blink phase duration, zero disables blinking
func (b *Builder) BlinkInterval(d time.Duration) *Builder {
	b.cfg.BlinkInterval = d
	return b
}

func (b *Builder) ColorMode(mode string) *Builder {
	b.cfg.ColorMode = mode
	return b
}

func (b *Builder) Bell(on bool) *Builder {
	b.cfg.Bell = on
	return b
}

// BellVolume sets the bell loudness in [0,1]
func (b *Builder) BellVolume(v float64) *Builder {
	b.cfg.BellVolume = v
	return b
}

func (b *Builder) Theme(name string) *Builder {
	b.cfg.Theme = name
	return b
}

func (b *Builder) LogDir(dir string) *Builder {
	b.cfg.LogDir = dir
	return b
}

// Build validates and returns the config
func (b *Builder) Build() (AppConfig, error) {
	if err := b.cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return b.cfg, nil
}

// Validate reports the first unusable setting
func (c AppConfig) Validate() error {
	switch {
	case c.DefaultSize.IsZero():
		return fmt.Errorf("%w: size %v has no area", ErrInvalidConfig, c.DefaultSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.BlinkInterval < 0:
		return fmt.Errorf("%w: negative blink interval", ErrInvalidConfig)
	case c.Tileset.Width <= 0 || c.Tileset.Height <= 0:
		return fmt.Errorf("%w: tileset %q has no size", ErrInvalidConfig, c.Tileset.ID)
	case c.BellVolume < 0 || c.BellVolume > 1:
		return fmt.Errorf("%w: bell volume %v outside [0,1]", ErrInvalidConfig, c.BellVolume)
	}
	if c.Theme != "" {
		if _, err := color.ThemeByName(c.Theme); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// fileConfig is the YAML layout, unset keys keep the defaults
type fileConfig struct {
	Tileset       *string  `yaml:"tileset"`
	Width         *int     `yaml:"width"`
	Height        *int     `yaml:"height"`
	Debug         *bool    `yaml:"debug"`
	Title         *string  `yaml:"title"`
	FPS           *int     `yaml:"fps"`
	BlinkInterval *string  `yaml:"blink_interval"`
	ColorMode     *string  `yaml:"color_mode"`
	Bell          *bool    `yaml:"bell"`
	BellVolume    *float64 `yaml:"bell_volume"`
	Theme         *string  `yaml:"theme"`
	LogDir        *string  `yaml:"log_dir"`
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(path string) (AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes YAML over the defaults and validates the result
func ParseConfig(raw []byte) (AppConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := defaultConfig()
	if fc.Tileset != nil {
		r, ok := tileset.ByID(*fc.Tileset)
		if !ok {
			return AppConfig{}, fmt.Errorf("%w: unknown tileset %q", ErrInvalidConfig, *fc.Tileset)
		}
		cfg.Tileset = r
	}
	if fc.Width != nil || fc.Height != nil {
		w, h := cfg.DefaultSize.Width, cfg.DefaultSize.Height
		if fc.Width != nil {
			w = *fc.Width
		}
		if fc.Height != nil {
			h = *fc.Height
		}
		size, err := data.NewSize(w, h)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.DefaultSize = size
	}
	if fc.BlinkInterval != nil {
		d, err := time.ParseDuration(*fc.BlinkInterval)
		if err != nil {
			return AppConfig{}, fmt.Errorf("%w: blink_interval: %v", ErrInvalidConfig, err)
		}
		cfg.BlinkInterval = d
	}
	set(&cfg.DebugMode, fc.Debug)
	set(&cfg.Title, fc.Title)
	set(&cfg.FPS, fc.FPS)
	set(&cfg.ColorMode, fc.ColorMode)
	set(&cfg.Bell, fc.Bell)
	set(&cfg.BellVolume, fc.BellVolume)
	set(&cfg.Theme, fc.Theme)
	set(&cfg.LogDir, fc.LogDir)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
