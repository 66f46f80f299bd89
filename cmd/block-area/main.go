// Command block-area builds a small house out of custom blocks and shows it level by level.
// Up and Down move the visible level.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilegrid/application"
	"github.com/lixenwraith/tilegrid/area"
	"github.com/lixenwraith/tilegrid/color"
	"github.com/lixenwraith/tilegrid/data"
	"github.com/lixenwraith/tilegrid/examples/custom"
	"github.com/lixenwraith/tilegrid/graphics"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/logging"
)

var (
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag = flag.Bool("debug", false, "Log to logs/ and show the status line")
)

const (
	areaWidth  = 12
	areaHeight = 8
	areaDepth  = 3
)

var (
	grass = color.Create(40, 110, 40)
	stone = color.Create(120, 120, 130)
	roof  = color.Create(150, 60, 40)
)

// buildHouse places ground everywhere, walls on level 1 and a roof on level 2
func buildHouse() (*area.GameArea, error) {
	a := area.New(area.Size3D{Width: areaWidth, Height: areaHeight, Depth: areaDepth})
	ground := data.NewTile('.', color.Green, grass)

	for y := 0; y < areaHeight; y++ {
		for x := 0; x < areaWidth; x++ {
			if err := a.SetBlock(custom.NewCustomBlock(data.NewPosition3D(x, y, 0), []data.Tile{ground})); err != nil {
				return nil, err
			}
		}
	}

	// House footprint is x in [3,8], y in [2,5]
	for y := 2; y <= 5; y++ {
		for x := 3; x <= 8; x++ {
			wall := x == 3 || x == 8 || y == 2 || y == 5
			if wall && !(x == 5 && y == 5) {
				layers := []data.Tile{
					data.NewTile(' ', color.Transparent(), stone),
					data.NewTile('#', color.BrightWhite, color.Transparent()),
				}
				if err := a.SetBlock(custom.NewCustomBlock(data.NewPosition3D(x, y, 1), layers)); err != nil {
					return nil, err
				}
			}
			top := data.NewTile('^', color.BrightYellow, roof)
			if err := a.SetBlock(custom.NewCustomBlock(data.NewPosition3D(x, y, 2), []data.Tile{top})); err != nil {
				return nil, err
			}
		}
	}
	return a, nil
}

// redraw projects the visible level into the grid below a one line caption
func redraw(g *grid.TileGrid, a *area.GameArea) {
	frame := graphics.NewTileImage(g.Size(), data.DefaultTile())
	frame.PutText(fmt.Sprintf("level %d/%d", a.VisibleLevel(), areaDepth-1), data.Position{})
	a.Project(frame, data.Position{X: 0, Y: 1})
	g.Draw(frame, data.Position{})
}

func main() {
	flag.Parse()

	a, err := buildHouse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build area: %v\n", err)
		os.Exit(1)
	}

	cfg, err := application.NewConfig().
		DefaultSize(data.MustSize(areaWidth, areaHeight+1)).
		ColorMode(*colorFlag).
		DebugMode(*debugFlag).
		Title("block area").
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	onKey := func(app *application.Application, ev *tcell.EventKey) bool {
		switch ev.Key() {
		case tcell.KeyUp:
			a.ScrollUp()
		case tcell.KeyDown:
			a.ScrollDown()
		default:
			return false
		}
		logging.Logger().Debug("level changed", "level", a.VisibleLevel())
		redraw(app.TileGrid(), a)
		return true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := application.StartApplication(ctx, cfg, application.WithKeyHandler(onKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	app.TileGrid().SetCursorVisibility(false)
	redraw(app.TileGrid(), a)
	app.Wait()
}
