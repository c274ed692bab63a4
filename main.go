// farm-defense is a turn-based farm defense game played in the terminal.
//
// Usage:
//
//	farm-defense [-seed 42] [-config farm.yaml] [-tui] [-log-level info]
//
// Environment variables FARM_SEED, FARM_UI, FARM_LOG_LEVEL and
// FARM_DIFFICULTY override the config file; flags override both.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"farm-defense/internal/config"
	"farm-defense/internal/game"
	"farm-defense/internal/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	tui := flag.Bool("tui", false, "Play in the full-screen terminal UI")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	cfg.ApplyEnv()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "tui":
			cfg.UI = config.UIStream
			if *tui {
				cfg.UI = config.UITerminal
			}
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	con, closeUI, err := openUI(ctx, cfg.UI)
	if err != nil {
		log.Fatalf("%v", err)
	}
	g := game.New(con, game.Options{Seed: cfg.Seed, Balance: cfg.Balance, Logger: newLogger(cfg)})
	err = g.Run()
	if cfg.UI == config.UITerminal && err == nil {
		_, _ = con.Prompt("Press Enter to exit.")
	}
	closeUI()
	if err != nil {
		log.Fatalf("session: %v", err)
	}
}

// newLogger writes to stderr, except under the terminal UI where stderr
// shares the screen.
func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()
	var out io.Writer = os.Stderr
	if cfg.UI == config.UITerminal {
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// openUI returns the front end named by kind and a function that releases it.
func openUI(ctx context.Context, kind string) (ui.IO, func(), error) {
	if kind != config.UITerminal {
		return ui.NewStream(ctx, os.Stdin, os.Stdout), func() {}, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, fmt.Errorf("init screen: %w", err)
	}
	return ui.NewTerminal(screen), screen.Fini, nil
}
