package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/swipesnake/internal/application/game"
	"github.com/younwookim/swipesnake/internal/application/scene/playing"
	"github.com/younwookim/swipesnake/internal/infrastructure/config"
	"github.com/younwookim/swipesnake/internal/infrastructure/sound"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML file overriding the embedded game.yaml")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config)")
	soundFlag := flag.Bool("sound", false, "Play tones on eat and crash")
	termFlag := flag.Bool("term", false, "Play in the terminal instead of a window")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *termFlag {
		// stderr shares the terminal with the game; only warnings get through
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	slog.SetDefault(logger)

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		slog.Error("failed to get config subfs", "error", err)
		os.Exit(1)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadWithOverride(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Rules.Seed = *seed
	}

	var player sound.Player = sound.Silent{}
	if *soundFlag || cfg.Sound.Enabled {
		spk, err := sound.NewSpeaker()
		if err != nil {
			slog.Warn("sound disabled", "error", err)
		} else {
			player = spk
		}
	}
	defer player.Close()

	if *termFlag {
		if err := runTerminal(cfg, logger, player); err != nil {
			slog.Error("terminal session failed", "error", err)
			os.Exit(1)
		}
		return
	}

	g := game.New(playing.New(cfg, logger, player), cfg.Display.TPS)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
