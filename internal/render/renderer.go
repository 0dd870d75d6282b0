package render

import (
	"errors"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop cleanly.
var ErrTerminated = errors.New("terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. The rain only needs a frame buffer and pre-rendered glyphs.
type Renderer interface {
	// NewImage creates a blank, transparent image.
	NewImage(width, height int) Image

	// NewGlyphImage rasterises text at the given pixel size and colour.
	NewGlyphImage(text string, size float64, clr color.Color) (Image, error)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
// A nil *DrawImageOptions draws opaque and untransformed.
type DrawImageOptions struct {
	GeoM GeoM

	// Alpha scales the source alpha, 0 transparent to 1 unchanged.
	Alpha float32
}

// GeoM represents a geometric transformation matrix.
// Glyphs are only ever placed, never scaled.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// InputManager handles input from the user.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the rain listens to
const (
	KeyEscape Key = iota
	KeyQ
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update is called every tick (typically 60 times per second) and is
	// the only place the animation advances.
	// Returning ErrTerminated stops the engine without error.
	Update() error

	// Draw presents the latest frame. It may run more or less often than Update.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetFullscreen switches between fullscreen and windowed mode.
	SetFullscreen(fullscreen bool)

	// SetCursorHidden hides the mouse cursor over the window.
	SetCursorHidden(hidden bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// ScreenSize returns the monitor size in device-independent pixels.
	ScreenSize() (width, height int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
