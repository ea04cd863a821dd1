package obj

import "github.com/milk9111/jumpman/prefabs"

// World is the static level layout. It is built once and only read during
// simulation.
type World struct {
	Width      float64
	Height     float64
	TileSize   float64
	Title      string
	Background string
	MenuBG     string
	Platforms  []*Platform
}

// NewWorld lays out the ground row, then the floating runs, then the hill.
// Platform order matters: collision resolution stops at the first match.
func NewWorld(spec prefabs.WorldSpec) *World {
	w := &World{
		Width:      spec.Width,
		Height:     spec.Height,
		TileSize:   spec.TileSize,
		Title:      spec.Title,
		Background: spec.Background,
		MenuBG:     spec.MenuBackground,
	}
	tile := spec.TileSize

	for x := 0.0; x < spec.Width; x += tile {
		w.Platforms = append(w.Platforms, NewPlatform(spec.Ground.Image, x, spec.Ground.Y, tile, true))
	}

	for _, run := range spec.Floating {
		w.Platforms = append(w.Platforms, NewFloatingRun(run.Image, run.X, run.Y, tile, run.Length)...)
	}

	for i := 0; i < spec.Hill.Tiles; i++ {
		y := spec.Ground.Y - float64(i+1)*tile
		w.Platforms = append(w.Platforms, NewPlatform(spec.Hill.Image, spec.Hill.X, y, tile, false))
	}

	return w
}
