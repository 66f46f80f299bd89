// Command cp437-chars draws the whole CP437 code page in a boxed, themed panel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lixenwraith/tilegrid/application"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/tileset"
)

var (
	themeFlag = flag.String("theme", "entrapped_in_a_palette", "Color theme")
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag = flag.Bool("debug", false, "Log to logs/ and show the status line")
)

var (
	panelOffset = data.Position{X: 1, Y: 1}
	panelSize   = data.MustSize(19, 19)
)

// drawPanel fills the panel, wraps it with a box and a shadow and draws every glyph at its sheet cell
func drawPanel(surface graphics.DrawSurface, theme color.Theme) {
	// The shadow takes the last row and column of the panel
	boxSize := data.MustSize(panelSize.Width-1, panelSize.Height-1)
	style := graphics.DefaultStyle().
		WithForeground(theme.PrimaryFg).
		WithBackground(theme.PrimaryBg)

	fill := graphics.NewTileImage(boxSize, style.Tile(' '))
	fill.DrawOnto(surface, panelOffset)
	graphics.DrawBox(surface, panelOffset, boxSize, graphics.BoxSingle, style.WithForeground(theme.SecondaryFg))
	graphics.DrawShadow(surface, panelOffset, boxSize, graphics.BlockSparse)

	content := panelOffset.Plus(data.Offset1x1())
	for ch, meta := range tileset.NewCP437MetadataLoader(tileset.SheetColumns, tileset.SheetRows).FetchMetadata() {
		p := content.Plus(data.Position{X: meta.X, Y: meta.Y})
		surface.SetTileAt(p, style.Tile(ch))
	}
}

func main() {
	flag.Parse()

	theme, err := color.ThemeByName(*themeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, available: %v\n", err, color.ThemeNames())
		os.Exit(1)
	}

	cfg, err := application.NewConfig().
		DefaultSize(data.MustSize(21, 21)).
		DefaultTileset(tileset.IBMBios.ToTilesetResource(20)).
		Theme(theme.Name).
		ColorMode(*colorFlag).
		DebugMode(*debugFlag).
		Title("cp437 chars").
		BlinkInterval(0).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := application.StartApplication(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	g := app.TileGrid()
	g.SetCursorVisibility(false)
	drawPanel(g, app.Theme())
	app.Wait()
}
