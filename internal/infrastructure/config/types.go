package config

import (
	"image/color"
	"time"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Grid    GridConfig    `yaml:"grid"`
	Loop    LoopConfig    `yaml:"loop"`
	Palette PaletteConfig `yaml:"palette"`
	Rules   RulesConfig   `yaml:"rules"`
	Sound   SoundConfig   `yaml:"sound"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"` // Frontend update rate, independent of the game tick
	Title        string `yaml:"title"`
}

// GridConfig controls how the surface is divided into cells
type GridConfig struct {
	TilesPerRow int `yaml:"tilesPerRow"` // Target cells across the surface width
	MinCellPx   int `yaml:"minCellPx"`   // Cells never get smaller than this (pixels)
	Cols        int `yaml:"cols"`        // Grid used before the first surface size is known
	Rows        int `yaml:"rows"`
}

type LoopConfig struct {
	TickIntervalMs int `yaml:"tickIntervalMs"`
}

// TickInterval returns the tick interval as a duration
func (c LoopConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// RGBA is a color written as [r, g, b, a] with straight (not premultiplied) alpha
type RGBA [4]uint8

// Color converts to image/color
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

type PaletteConfig struct {
	Background RGBA `yaml:"background"`
	Grid       RGBA `yaml:"grid"`
	Food       RGBA `yaml:"food"`
	Snake      RGBA `yaml:"snake"`
	Text       RGBA `yaml:"text"`
}

type RulesConfig struct {
	Seed int64 `yaml:"seed"` // 0 = seed from the clock
}

type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}
