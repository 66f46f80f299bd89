// Command font-modifiers shows one letter per tile modifier in a 16x3 grid.
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
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/modifier"
	"github.com/lixenwraith/tilegrid/tileset"
)

var (
	configFlag = flag.String("config", "", "YAML config file overriding the defaults")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	pngFlag    = flag.String("png", "", "Write the rendered grid to this PNG file and exit")
	saveFlag   = flag.String("save", "", "Store the grid contents in a snapshot file on exit")
)

// step writes one letter with its modifiers and colors
type step struct {
	char rune
	mods []modifier.Modifier
	bg   color.TileColor
	fg   color.TileColor
}

var steps = []step{
	{'A', []modifier.Modifier{modifier.VerticalFlip}, color.Blue, color.Yellow},
	{'B', []modifier.Modifier{modifier.CrossedOut}, color.Red, color.Green},
	{'C', []modifier.Modifier{modifier.Blink}, color.Red, color.White},
	{'D', []modifier.Modifier{modifier.Underline}, color.Blue, color.Cyan},
	{'E', []modifier.Modifier{modifier.HorizontalFlip}, color.Black, color.Yellow},
	{'F', []modifier.Modifier{modifier.Blink}, color.Cyan, color.Yellow},
	{'G', []modifier.Modifier{modifier.HorizontalFlip, modifier.VerticalFlip, modifier.Blink}, color.Blue, color.White},
	{'H', []modifier.Modifier{modifier.NewBorderBuilder().
		BorderType(modifier.BorderSolid).
		BorderPositions(modifier.Top, modifier.Right).
		Build()}, color.White, color.Blue},
	{'I', []modifier.Modifier{modifier.NewRayShade()}, color.White, color.Blue},
	{'J', []modifier.Modifier{modifier.Glow}, color.White, color.Blue},
}

// drawModifiers writes every step separated by a plain space
func drawModifiers(g *grid.TileGrid) {
	g.SetCursorVisibility(false)
	for i, s := range steps {
		g.EnableModifiers(s.mods...)
		g.SetBackgroundColor(s.bg)
		g.SetForegroundColor(s.fg)
		g.PutCharacter(s.char)
		if i < len(steps)-1 {
			putEmptySpace(g)
		}
	}
}

func putEmptySpace(g *grid.TileGrid) {
	g.ResetColorsAndModifiers()
	g.SetForegroundColor(color.Black)
	g.PutCharacter(' ')
}

func buildConfig() (application.AppConfig, error) {
	if *configFlag != "" {
		return application.LoadConfig(*configFlag)
	}
	return application.NewConfig().
		DefaultTileset(tileset.Wanderlust16x16).
		DefaultSize(data.MustSize(16, 3)).
		DebugMode(true).
		Title("font modifiers").
		ColorMode(*colorFlag).
		Build()
}

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if *pngFlag != "" {
		if err := writePNG(cfg, *pngFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write png: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := application.StartApplication(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	drawModifiers(app.TileGrid())
	app.Wait()

	if *saveFlag != "" {
		if err := app.SaveSnapshot(*saveFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", err)
			os.Exit(1)
		}
	}
}
