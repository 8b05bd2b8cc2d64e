// Package main runs the animated water progress bar in a terminal, fed by a
// demo producer that counts from 0 to 99 percent.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"waterbar/internal/config"
	"waterbar/internal/logging"
	"waterbar/internal/loop"
	"waterbar/internal/progressbar"
	"waterbar/internal/report"
	"waterbar/internal/signal"
	"waterbar/internal/surface"
)

// host is a surface the program owns and must close on exit.
type host interface {
	loop.Surface
	Close() error
}

var configPath = flag.String("config", "", "path to config.yaml (default: ./config.yaml, then the XDG config dir)")

func main() {
	flag.Parse()

	// Set up signal handling for graceful shutdown
	signal.RunWithContext(main0)
}

func main0(ctx context.Context) {
	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, flushLog, err := logging.Setup(cfg.Log.Debug, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer flushLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bar := progressbar.New(cfg.Style(), cfg.Params())

	surf, err := openHost(cfg, bar, cancel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s host: %v\n", cfg.Render.Host, err)
		os.Exit(1)
	}

	l := loop.New(bar, surf, cfg.LoopOptions()...)
	l.Start(ctx)

	go func() {
		if err := cfg.Driver().Run(ctx, bar); err != nil {
			logging.Debug("feed stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	l.Stop()
	if err := surf.Close(); err != nil {
		logging.Error("close host", zap.String("host", cfg.Render.Host), zap.Error(err))
	}

	s := l.Stats()
	if !cfg.Render.Quiet {
		if err := report.Print(os.Stderr, s, bar.Snapshot()); err != nil {
			logging.Error("summary", zap.Error(err))
		}
	}
	logging.Info("exiting", zap.Uint64("frames", s.Frames), zap.Uint64("skipped", s.Skipped),
		zap.Uint64("failed", s.Failed), zap.Uint64("overruns", s.Overruns))
}

// loadConfig reads path when given, otherwise the default locations.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// openHost creates the configured surface and sizes the bar for it. The
// tcell host keeps the bar sized to the screen and calls quit on q or Esc.
func openHost(cfg *config.Config, bar *progressbar.Bar, quit func()) (host, error) {
	switch cfg.Render.Host {
	case config.HostTcell:
		term, err := surface.OpenTerminal()
		if err != nil {
			return nil, err
		}
		bar.Resize(term.PixelSize())
		go term.Poll(bar.Resize, quit)
		return term, nil
	default:
		bar.Resize(cfg.Render.Width, cfg.Render.Height)
		return surface.NewANSI(os.Stdout), nil
	}
}
