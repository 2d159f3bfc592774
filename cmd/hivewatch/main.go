package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/five82/hivewatch/internal/app"
	"github.com/five82/hivewatch/internal/config"
)

var errNoTerminal = errors.New("hivewatch needs an interactive terminal")

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.config/hivewatch/config.toml)")
	tickRate := flag.Duration("tick-rate", 0, "UI tick rate, e.g. 250ms (optional)")
	enhanced := flag.Bool("enhanced-graphics", true, "draw charts with braille characters")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hivewatch: %v\n", err)
		return 1
	}
	applyFlags(&cfg, *tickRate, *enhanced)

	if !isTerminal(os.Stdout) {
		fmt.Fprintf(os.Stderr, "hivewatch: %v\n", errNoTerminal)
		return 1
	}

	logger, closeLog, err := initLogging(cfg.LogPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hivewatch: init logging: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{
		Config:  cfg,
		Logger:  logger,
		LogPath: cfg.LogPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "hivewatch: %v\n", err)
		return 1
	}
	return 0
}

// applyFlags lets flags that were set on the command line override the file.
func applyFlags(cfg *config.Config, tickRate time.Duration, enhanced bool) {
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "enhanced-graphics" {
			cfg.EnhancedGraphics = enhanced
		}
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// initLogging opens the log file, truncating it, and returns a logger that
// writes only there. The terminal belongs to the dashboard.
func initLogging(path string, debug bool) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = file.Close() }, nil
}
