package render

import (
	"image/color"

	"chosenoffset.com/digitalrain/internal/rain"
)

// RainGreen is the colour of the classic glyphs.
var RainGreen = color.RGBA{0, 255, 0, 255}

// BinaryGlyphs is the default palette text.
var BinaryGlyphs = []string{"0", "1"}

// Surface implements rain.Surface on top of an Image, normally the offscreen
// frame the game advances into on every tick.
type Surface struct {
	target Image
}

// NewSurface creates a surface with no target; blits are dropped until SetTarget.
func NewSurface() *Surface {
	return &Surface{}
}

// SetTarget points subsequent blits at img.
func (s *Surface) SetTarget(img Image) {
	s.target = img
}

// Blit draws a glyph image at (x, y) with the given alpha.
// Fully transparent glyphs are skipped.
func (s *Surface) Blit(img rain.Image, x, y int, alpha uint8) {
	if s.target == nil || alpha == 0 {
		return
	}
	src, ok := img.(Image)
	if !ok {
		return
	}
	opts := &DrawImageOptions{
		GeoM:  NewGeoM(),
		Alpha: float32(alpha) / 255,
	}
	opts.GeoM.Translate(float64(x), float64(y))
	s.target.DrawImage(src, opts)
}

// BuildPalette renders every glyph text once so frames only blit.
func BuildPalette(r Renderer, glyphs []string, size float64, clr color.Color) ([]rain.Image, error) {
	palette := make([]rain.Image, 0, len(glyphs))
	for _, g := range glyphs {
		img, err := r.NewGlyphImage(g, size, clr)
		if err != nil {
			return nil, err
		}
		palette = append(palette, img)
	}
	return palette, nil
}

// DisposePalette releases the glyph images built by BuildPalette.
func DisposePalette(palette []rain.Image) {
	for _, img := range palette {
		if d, ok := img.(Image); ok {
			d.Dispose()
		}
	}
}
