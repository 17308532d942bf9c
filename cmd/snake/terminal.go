package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/swipesnake/internal/application/term"
	"github.com/younwookim/swipesnake/internal/infrastructure/config"
	"github.com/younwookim/swipesnake/internal/infrastructure/sound"
)

// runTerminal plays one session on the controlling terminal
func runTerminal(cfg *config.GameConfig, logger *slog.Logger, player sound.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := term.NewSession(screen, cfg, logger, player)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
