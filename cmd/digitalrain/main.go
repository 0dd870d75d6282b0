package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"chosenoffset.com/digitalrain/internal/game"
	"chosenoffset.com/digitalrain/internal/log"
	ebitenrender "chosenoffset.com/digitalrain/internal/render/ebiten"
	"chosenoffset.com/digitalrain/internal/render/terminal"
)

const (
	backendWindow   = "ebiten"
	backendTerminal = "terminal"
)

// config is everything the command line decides.
type config struct {
	backend string
	opts    game.Options
	level   log.Level
	logPath string
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	defaults := game.DefaultOptions()
	cfg := config{opts: defaults}

	fs := flag.NewFlagSet("digitalrain", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.backend, "backend", backendWindow, "renderer to use: ebiten or terminal")
	fs.BoolVar(&cfg.opts.Fullscreen, "fullscreen", defaults.Fullscreen, "cover the whole monitor")
	fs.IntVar(&cfg.opts.Width, "width", defaults.Width, "window width when not fullscreen")
	fs.IntVar(&cfg.opts.Height, "height", defaults.Height, "window height when not fullscreen")
	fs.Int64Var(&cfg.opts.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.IntVar(&cfg.opts.TPS, "tps", defaults.TPS, "window updates per second")
	fs.IntVar(&cfg.opts.TerminalFPS, "fps", defaults.TerminalFPS, "terminal frames per second")
	levelName := fs.String("log-level", "info", "debug, info, warn, error or none")
	fs.StringVar(&cfg.logPath, "log", "", "write the log to this file (terminal backend logs nowhere otherwise)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.backend != backendWindow && cfg.backend != backendTerminal {
		return config{}, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if cfg.opts.TPS <= 0 || cfg.opts.TerminalFPS <= 0 {
		return config{}, fmt.Errorf("tps %d and fps %d must be positive", cfg.opts.TPS, cfg.opts.TerminalFPS)
	}
	level, err := log.ParseLevel(*levelName)
	if err != nil {
		return config{}, err
	}
	cfg.level = level
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	out, closeLog, err := openLog(cfg.logPath, cfg.backend == backendTerminal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	logger := log.New(out, cfg.level)

	if cfg.backend == backendTerminal {
		err = runTerminal(cfg.opts, logger)
	} else {
		err = runWindow(cfg.opts, logger)
	}
	if err != nil {
		logger.Errorf("%v", err)
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	closeLog()
}

// openLog picks the log destination. The terminal backend owns stderr's
// screen, so it only logs when a file is given.
func openLog(path string, quiet bool) (io.Writer, func(), error) {
	if path == "" {
		if quiet {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func runWindow(opts game.Options, logger *log.Logger) error {
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()
	return game.RunWindow(engine, renderer, inputMgr, opts, logger)
}

func runTerminal(opts game.Options, logger *log.Logger) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return game.RunTerminal(ctx, screen, opts, logger)
}
