package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/reel/internal/player"
	"github.com/desertthunder/reel/internal/shared"
	"github.com/desertthunder/reel/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive carousel.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	level, err := shared.ParseLevel(r.config.Log.Level)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, level)
	r.SetLogger(fileLogger)

	lib, err := r.Library()
	if err != nil {
		return err
	}

	cfg := r.config
	model := ui.NewModel(ctx, lib, ui.Options{
		SettleDelay: cfg.Carousel.SettleDelay(),
		Visible:     cfg.Carousel.Visible,
		AdvanceRate: cfg.Carousel.AdvanceRate,
		Player: player.New(player.Options{
			DefaultTrackLength: time.Duration(cfg.Player.DefaultTrackSeconds) * time.Second,
			Autoplay:           cfg.Player.Autoplay,
			Logger:             shared.WithLogger(fileLogger, "component", "player"),
		}),
		Logger: shared.WithLogger(fileLogger, "component", "ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
