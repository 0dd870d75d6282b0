package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/digitalrain/internal/clock"
	"chosenoffset.com/digitalrain/internal/dice"
	"chosenoffset.com/digitalrain/internal/log"
	"chosenoffset.com/digitalrain/internal/rain"
	"chosenoffset.com/digitalrain/internal/render"
	"chosenoffset.com/digitalrain/internal/render/terminal"
)

// WindowTitle is shown when the rain runs windowed.
const WindowTitle = "Digital Rain"

// glyphsPerScreen sets the glyph height to 1/30 of the screen height.
const glyphsPerScreen = 30

// Options holds everything the driver decides before the first frame.
type Options struct {
	Width       int // windowed size, also the fallback when the monitor size is unknown
	Height      int
	Fullscreen  bool
	TPS         int // window updates per second
	TerminalFPS int
	Seed        int64 // 0 picks a time-based seed

	// Clock defaults to a monotonic clock started at launch.
	Clock rain.Clock
}

// DefaultOptions returns a fullscreen 60 Hz window.
func DefaultOptions() Options {
	return Options{
		Width:       1280,
		Height:      720,
		Fullscreen:  true,
		TPS:         60,
		TerminalFPS: 15,
	}
}

// TerminalTuning slows the rain down for character cells: one cell per frame
// and a bigger fade step so glyphs still pulse at a low frame rate.
func TerminalTuning() rain.Tuning {
	t := rain.DefaultTuning()
	t.MinSpeed = 1
	t.MaxSpeed = 1
	t.FadeStep = 15
	return t
}

// GlyphSizeFor returns the glyph height used for a screen height.
func GlyphSizeFor(height int) int {
	return max(1, height/glyphsPerScreen)
}

func (o Options) clockOrDefault() rain.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return clock.NewMonotonic()
}

func buildScene(geo rain.Geometry, tuning rain.Tuning, palette []rain.Image, surface rain.Surface, clk rain.Clock, seed int64, logger *log.Logger) (*rain.Scene, error) {
	roller := dice.NewRoller(seed)
	scene, err := rain.NewScene(&rain.Env{
		Geometry: geo,
		Tuning:   tuning,
		Palette:  palette,
		Surface:  surface,
		Clock:    clk,
		Rand:     roller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	logger.Infof("Scene %dx%d, glyph height %d, %d columns, %d glyphs, seed %d",
		geo.Width, geo.Height, geo.GlyphHeight, len(scene.Columns()), scene.GlyphCount(), roller.Seed())
	return scene, nil
}

// RunWindow renders the rain through a graphics engine until the window is
// closed or a quit key is pressed.
func RunWindow(engine render.Engine, r render.Renderer, input render.InputManager, opts Options, logger *log.Logger) error {
	width, height := opts.Width, opts.Height
	if opts.Fullscreen {
		if w, h := engine.ScreenSize(); w > 0 && h > 0 {
			width, height = w, h
		} else {
			logger.Warnf("Monitor size unknown, using %dx%d", width, height)
		}
	}

	glyph := GlyphSizeFor(height)
	palette, err := render.BuildPalette(r, render.BinaryGlyphs, float64(glyph), render.RainGreen)
	if err != nil {
		return fmt.Errorf("failed to render glyphs: %w", err)
	}
	defer render.DisposePalette(palette)

	clk := opts.clockOrDefault()
	surface := render.NewSurface()
	scene, err := buildScene(rain.Geometry{Width: width, Height: height, GlyphHeight: glyph},
		rain.DefaultTuning(), palette, surface, clk, opts.Seed, logger)
	if err != nil {
		return err
	}

	frame := r.NewImage(width, height)
	defer frame.Dispose()

	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(WindowTitle)
	engine.SetFullscreen(opts.Fullscreen)
	engine.SetCursorHidden(opts.Fullscreen)
	engine.SetTPS(opts.TPS)

	g := NewGame(scene, surface, frame, clk, input, logger, width, height)
	logger.Infof("Starting rain at %d TPS", opts.TPS)
	if err := engine.RunGame(g); err != nil && !errors.Is(err, render.ErrTerminated) {
		return err
	}
	logger.Infof("Stopped after %d frames", g.Frames())
	return nil
}

// RunTerminal renders the rain into screen until a quit key or ctx ends it.
// The caller owns the screen.
func RunTerminal(ctx context.Context, screen tcell.Screen, opts Options, logger *log.Logger) error {
	width, height := screen.Size()
	clk := opts.clockOrDefault()
	surface := terminal.NewSurface(screen, render.RainGreen.R, render.RainGreen.G, render.RainGreen.B)

	scene, err := buildScene(rain.Geometry{Width: width, Height: height, GlyphHeight: 1},
		TerminalTuning(), terminal.Palette(render.BinaryGlyphs), surface, clk, opts.Seed, logger)
	if err != nil {
		return err
	}

	logger.Infof("Starting terminal rain at %d fps", opts.TerminalFPS)
	frames := 0
	err = terminal.Run(ctx, screen, opts.TerminalFPS, func() {
		scene.Advance(clk.NowMs())
		frames++
	})
	logger.Infof("Stopped after %d frames", frames)
	return err
}
