package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/parallax/config"
	"github.com/lixenwraith/parallax/engine"
	"github.com/lixenwraith/parallax/logging"
	"github.com/lixenwraith/parallax/terminal"
	"github.com/lixenwraith/parallax/window"
)

// host is a display that owns the frame loop
type host interface {
	engine.Display
	Run(ctx context.Context) error
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the background in the terminal or a window",
		RunE:  runHost,
	}
	cmd.Flags().String("host", config.HostTerminal, "Display host: terminal | window")
	cmd.Flags().Int("width", 1280, "Window width in pixels")
	cmd.Flags().Int("height", 720, "Window height in pixels")
	return cmd
}

func runHost(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	logger, err := logging.New(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bg, err := engine.NewBackground(cfg.Background, logger)
	if err != nil {
		return err
	}

	var h host
	switch cfg.Display.Host {
	case config.HostWindow:
		h = window.New(cfg.Display.Width, cfg.Display.Height, cfg.Display.Title, cfg.Display.FrameBudget, logger)
	default:
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		th := terminal.New(screen, cfg.Display.FrameBudget, logger)
		defer th.Close()
		h = th
	}

	logger.Info("Starting background",
		zap.String("host", cfg.Display.Host),
		zap.String("variant", string(cfg.Background.Variant)))

	if err := mount(bg, h, logger); err != nil {
		return err
	}
	defer bg.Unmount()

	return h.Run(ctx)
}

// mount attaches bg to d, a missing surface leaves the host running without animation
func mount(bg *engine.Background, d engine.Display, logger *zap.Logger) error {
	err := bg.Mount(d)
	if errors.Is(err, engine.ErrSurfaceUnavailable) {
		logger.Warn("Background disabled", zap.Error(err))
		return nil
	}
	return err
}
