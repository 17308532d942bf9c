package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameFile is the name of the main config file
const GameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, GameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GameFile, err)
	}

	return &cfg, nil
}

// LoadWithOverride loads game.yaml, then applies the user file at path on top.
// Only fields present in the user file are replaced. An empty path skips the override.
func (l *Loader) LoadWithOverride(path string) (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config override: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config override %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes and intervals that cannot drive a game
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("display tps must be positive, got %d", c.Display.TPS))
	}
	if c.Grid.TilesPerRow <= 0 || c.Grid.MinCellPx <= 0 {
		errs = append(errs, fmt.Errorf("grid tilesPerRow and minCellPx must be positive, got %d and %d",
			c.Grid.TilesPerRow, c.Grid.MinCellPx))
	}
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Loop.TickIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("loop tickIntervalMs must be positive, got %d", c.Loop.TickIntervalMs))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
