package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/digitalrain/internal/game"
	"chosenoffset.com/digitalrain/internal/log"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	if cfg.backend != backendWindow {
		t.Errorf("Expected backend %q, got %q", backendWindow, cfg.backend)
	}
	if cfg.opts != game.DefaultOptions() {
		t.Errorf("Expected default options, got %+v", cfg.opts)
	}
	if cfg.level != log.LevelInfo || cfg.logPath != "" {
		t.Errorf("Expected INFO to stderr, got %s to %q", cfg.level, cfg.logPath)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	args := []string{
		"-backend", "terminal", "-fullscreen=false", "-width", "800", "-height", "600",
		"-seed", "42", "-tps", "30", "-fps", "20", "-log-level", "debug", "-log", "rain.log",
	}
	cfg, err := parseFlags(args, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	o := cfg.opts
	if cfg.backend != backendTerminal || o.Fullscreen || o.Width != 800 || o.Height != 600 {
		t.Errorf("Unexpected window settings: %+v", cfg)
	}
	if o.Seed != 42 || o.TPS != 30 || o.TerminalFPS != 20 {
		t.Errorf("Expected seed 42, tps 30, fps 20, got %d, %d, %d", o.Seed, o.TPS, o.TerminalFPS)
	}
	if cfg.level != log.LevelDebug || cfg.logPath != "rain.log" {
		t.Errorf("Expected DEBUG to rain.log, got %s to %q", cfg.level, cfg.logPath)
	}
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	tests := map[string][]string{
		"backend":   {"-backend", "opengl"},
		"log level": {"-log-level", "loud"},
		"tps":       {"-tps", "0"},
		"fps":       {"-fps", "-1"},
		"unknown":   {"-colour", "red"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseFlags(args, io.Discard); err == nil {
				t.Errorf("Expected error for %v", args)
			}
		})
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var usage bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &usage)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(usage.String(), "-backend") {
		t.Errorf("Expected usage to list flags, got %q", usage.String())
	}
}

func TestOpenLogDestinations(t *testing.T) {
	out, closeLog, err := openLog("", true)
	if err != nil || out != io.Discard {
		t.Errorf("Expected io.Discard for a quiet backend, got %v, %v", out, err)
	}
	closeLog()

	out, closeLog, err = openLog("", false)
	if err != nil || out != io.Writer(os.Stderr) {
		t.Errorf("Expected stderr, got %v, %v", out, err)
	}
	closeLog()
}

func TestOpenLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.log")
	for _, msg := range []string{"first", "second"} {
		out, closeLog, err := openLog(path, true)
		if err != nil {
			t.Fatalf("openLog failed: %v", err)
		}
		log.New(out, log.LevelInfo).Infof("%s", msg)
		closeLog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	for _, want := range []string{"INFO: first", "INFO: second"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in log file, got %q", want, data)
		}
	}
}

func TestOpenLogFailsOnMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "rain.log")
	if _, _, err := openLog(path, true); err == nil {
		t.Error("Expected error for a log file in a missing directory")
	}
}
