// Package application boots a tile grid in the terminal.
//
// StartApplication owns the tcell screen, the render loop and the input loop.
// Programs draw into the returned TileGrid from any goroutine; frames are
// rendered on a fixed tick and only changed cells are sent to the terminal.
package application

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/audio"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/logging"
	"github.com/lixenwraith/tilegrid/renderer"
	"github.com/lixenwraith/tilegrid/snapshot"
	"github.com/lixenwraith/tilegrid/tileset"
)

// KeyHandler receives key events before the quit keys, returning true consumes the event
type KeyHandler func(app *Application, ev *tcell.EventKey) bool

type options struct {
	screen tcell.Screen
	onKey  KeyHandler
	stderr io.Writer
}

// Option customizes StartApplication
type Option func(*options)

// WithScreen uses an existing screen instead of opening the terminal, the application initializes it
func WithScreen(s tcell.Screen) Option {
	return func(o *options) { o.screen = s }
}

// WithKeyHandler installs a handler for key events
func WithKeyHandler(fn KeyHandler) Option {
	return func(o *options) { o.onKey = fn }
}

// WithStderr redirects crash reports
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// Application is a running grid bound to a terminal
type Application struct {
	cfg      AppConfig
	theme    color.Theme
	screen   tcell.Screen
	grid     *grid.TileGrid
	renderer *renderer.Terminal
	bell     *audio.Bell
	onKey    KeyHandler
	stderr   io.Writer
	logFile  *os.File

	loadTileset func() (*tileset.Tileset, error)

	ctx    context.Context
	cancel context.CancelFunc
	events chan tcell.Event
	resize chan struct{}
	wg     sync.WaitGroup
	polled chan struct{}
	done   chan struct{}
}

// StartApplication opens the screen and starts rendering cfg.DefaultSize cells
// The application stops when ctx is cancelled, Stop is called or a quit key is pressed
func StartApplication(ctx context.Context, cfg AppConfig, opts ...Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logFile, err := logging.Setup(cfg.DebugMode, cfg.LogDir)
	if err != nil {
		return nil, err
	}

	screen := o.screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			closeLog(logFile)
			return nil, fmt.Errorf("open screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		closeLog(logFile)
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.Clear()

	theme := color.Theme{}
	if cfg.Theme != "" {
		theme, _ = color.ThemeByName(cfg.Theme)
	}

	ctx, cancel := context.WithCancel(ctx)
	app := &Application{
		cfg:      cfg,
		theme:    theme,
		screen:   screen,
		grid:     grid.New(cfg.DefaultSize),
		renderer: renderer.NewTerminal(screen, cfg.ResolvedColorMode()),
		bell:     audio.NewBell(cfg.Bell, cfg.BellVolume),
		onKey:    o.onKey,
		stderr:   o.stderr,
		logFile:  logFile,
		loadTileset: sync.OnceValues(func() (*tileset.Tileset, error) {
			return tileset.Load(cfg.Tileset)
		}),
		ctx:    ctx,
		cancel: cancel,
		events: make(chan tcell.Event, 100),
		resize: make(chan struct{}, 1),
		polled: make(chan struct{}),
		done:   make(chan struct{}),
	}

	logging.Logger().Info("application started",
		"title", cfg.Title,
		"grid", app.grid.ID(),
		"size", cfg.DefaultSize,
		"tileset", cfg.Tileset.ID,
		"fps", cfg.FPS,
	)

	go app.poll()
	app.goSafe(app.dispatch)
	app.goSafe(app.renderLoop)
	go app.shutdown()
	return app, nil
}

func closeLog(f *os.File) {
	if f != nil {
		logging.SetLogger(nil)
		f.Close()
	}
}

// TileGrid is the surface to draw on
func (a *Application) TileGrid() *grid.TileGrid { return a.grid }

// Config returns the config the application was started with
func (a *Application) Config() AppConfig { return a.cfg }

// Theme is the configured color theme, zero when none is set
func (a *Application) Theme() color.Theme { return a.theme }

// Bell returns the application bell
func (a *Application) Bell() *audio.Bell { return a.bell }

// Tileset loads the configured tileset on first use
func (a *Application) Tileset() (*tileset.Tileset, error) { return a.loadTileset() }

// Stop shuts the application down and waits for it to finish
func (a *Application) Stop() {
	a.cancel()
	<-a.done
}

// Wait blocks until the application stops
func (a *Application) Wait() {
	<-a.done
}

// Done is closed once the application has stopped
func (a *Application) Done() <-chan struct{} { return a.done }

// WritePNG renders the current grid with the configured tileset
func (a *Application) WritePNG(w io.Writer) error {
	ts, err := a.Tileset()
	if err != nil {
		return err
	}
	return renderer.NewImage(ts).WritePNG(w, a.grid.Snapshot())
}

// SaveSnapshot stores the current grid contents at path
func (a *Application) SaveSnapshot(path string) error {
	return snapshot.WriteFile(path, a.grid.Snapshot().Image(), a.cfg.Title)
}

// poll forwards screen events until the screen is finalized
func (a *Application) poll() {
	defer close(a.polled)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.ctx.Done():
		}
	}
}

func (a *Application) dispatch() {
	for {
		select {
		case <-a.ctx.Done():
			return
		case ev := <-a.events:
			a.handleEvent(ev)
		}
	}
}

func (a *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.onKey != nil && a.onKey(a, ev) {
			return
		}
		if isQuitKey(ev) {
			logging.Logger().Info("quit requested", "key", ev.Name())
			a.cancel()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Invalidate()
		select {
		case a.resize <- struct{}{}:
		default:
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (a *Application) renderLoop() {
	frame := time.NewTicker(a.cfg.FrameInterval())
	defer frame.Stop()

	var blink <-chan time.Time
	if a.cfg.BlinkInterval > 0 {
		t := time.NewTicker(a.cfg.BlinkInterval)
		defer t.Stop()
		blink = t.C
	}

	var lastVersion uint64
	dirty := true
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-blink:
			a.renderer.ToggleBlink()
			dirty = true
		case <-a.resize:
			dirty = true
		case <-frame.C:
			if v := a.grid.Version(); v != lastVersion {
				lastVersion = v
				dirty = true
			}
			if !dirty {
				continue
			}
			if a.cfg.DebugMode {
				a.renderer.SetStatus(fmt.Sprintf("%s | frame %d | version %d", a.cfg.Title, a.renderer.Frames()+1, lastVersion))
			}
			a.renderer.Render(a.grid.Snapshot())
			dirty = false
		}
	}
}

// shutdown releases the terminal once the context is done
func (a *Application) shutdown() {
	<-a.ctx.Done()
	a.wg.Wait()
	a.screen.Fini()
	<-a.polled
	logging.Logger().Info("application stopped", "frames", a.renderer.Frames())
	closeLog(a.logFile)
	close(a.done)
}

// Frames returns the number of frames drawn so far
func (a *Application) Frames() uint64 { return a.renderer.Frames() }
