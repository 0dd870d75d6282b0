package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"

	"chosenoffset.com/digitalrain/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	fontSource *text.GoTextFaceSource
}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer using the embedded Go Mono Bold face.
func NewRenderer() (render.Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load glyph font: %w", err)
	}
	return &EbitenRenderer{fontSource: src}, nil
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// NewGlyphImage renders str once into an image sized to its advance and line height.
func (r *EbitenRenderer) NewGlyphImage(str string, size float64, clr color.Color) (render.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("glyph size %.1f must be positive", size)
	}
	face := &text.GoTextFace{Source: r.fontSource, Size: size}

	w, h := text.Measure(str, face, 0)
	img := ebiten.NewImage(max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h))))

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, str, face, op)

	return &EbitenImage{img: img}, nil
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Dispose releases the image's GPU memory. The image must not be used again.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
		i.img = nil
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}
	ebitenOpts.ColorScale.ScaleAlpha(opts.Alpha)

	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *EbitenInputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyEscape:
		return ebiten.KeyEscape
	case render.KeyQ:
		return ebiten.KeyQ
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetFullscreen switches between fullscreen and windowed mode.
func (e *EbitenEngine) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

// SetCursorHidden hides the mouse cursor over the window.
func (e *EbitenEngine) SetCursorHidden(hidden bool) {
	if hidden {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// ScreenSize returns the size of the monitor the window is on.
func (e *EbitenEngine) ScreenSize() (width, height int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return 0, 0
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
