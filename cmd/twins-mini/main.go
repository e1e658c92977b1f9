package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/lixenwraith/termwins/app"
	"github.com/lixenwraith/termwins/config"
	"github.com/lixenwraith/termwins/terminal"
	"github.com/lixenwraith/termwins/trace"
	"github.com/lixenwraith/termwins/widget"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	backendFlag = flag.String("backend", "", "Input backend: stdio, tty, script")
	mouseFlag   = flag.String("mouse", "", "Mouse mode: off, click, drag, motion")
	maxIterFlag = flag.Int("max-iter", 0, "Stop after N cycles (0 = until Ctrl+D)")
	logFileFlag = flag.String("log-file", "", "Append JSON logs to this file")
	debugFlag   = flag.Bool("debug", false, "Trace decoded input")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTWINS-MINI CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "twins-mini: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := widget.Validate(wndMainWgts); err != nil {
		return fmt.Errorf("main window: %w", err)
	}

	level, _ := trace.ParseLevel(cfg.Log.Level)
	tracer := trace.New(cfg.TraceRows)
	logger, logCloser, err := trace.NewLogger(tracer, level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	platform, err := app.OpenPlatform(&cfg)
	if err != nil {
		return err
	}
	defer platform.Close()

	term := app.NewTerminal(platform.Out)
	loop := &app.Loop{
		Term:   term,
		Source: platform.Source,
		Window: newMainWndState(term),
		Tracer: tracer,
		Log:    logger,
		Opts:   app.OptionsFrom(&cfg),
		Screen: platform,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return loop.Run(ctx)
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backendFlag
		case "mouse":
			cfg.MouseMode = *mouseFlag
		case "max-iter":
			cfg.MaxIterations = *maxIterFlag
		case "log-file":
			cfg.Log.File = *logFileFlag
		case "debug":
			if *debugFlag {
				cfg.Log.Level = "debug"
			}
		}
	})
}
