package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/tilegrid/application"
	"github.com/lixenwraith/tilegrid/grid"
	"github.com/lixenwraith/tilegrid/renderer"
	"github.com/lixenwraith/tilegrid/tileset"
)

// writePNG renders the modifiers without a terminal
func writePNG(cfg application.AppConfig, path string) error {
	ts, err := tileset.Load(cfg.Tileset)
	if err != nil {
		return err
	}
	g := grid.New(cfg.DefaultSize)
	drawModifiers(g)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderer.NewImage(ts).WritePNG(f, g.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
