// Package terminal renders the rain into a character terminal through tcell.
// One cell is one glyph, and alpha becomes the brightness of the foreground.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/digitalrain/internal/rain"
)

// Cell is a single-rune glyph image.
type Cell rune

// Size reports one cell.
func (c Cell) Size() (int, int) { return 1, 1 }

// Palette turns glyph texts into cells, using the first rune of each.
func Palette(glyphs []string) []rain.Image {
	palette := make([]rain.Image, 0, len(glyphs))
	for _, g := range glyphs {
		for _, r := range g {
			palette = append(palette, Cell(r))
			break
		}
	}
	return palette
}

// NewScreen creates and initialises the terminal screen with the cursor hidden.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	return screen, nil
}

// Surface implements rain.Surface on a tcell screen.
type Surface struct {
	screen  tcell.Screen
	r, g, b int32
}

// NewSurface draws glyphs in colour (r, g, b) at full alpha.
func NewSurface(screen tcell.Screen, r, g, b uint8) *Surface {
	return &Surface{screen: screen, r: int32(r), g: int32(g), b: int32(b)}
}

// StyleFor returns the cell style used for a glyph drawn with alpha.
func (s *Surface) StyleFor(alpha uint8) tcell.Style {
	a := int32(alpha)
	fg := tcell.NewRGBColor(s.r*a/255, s.g*a/255, s.b*a/255)
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

// Blit writes the glyph rune into its cell. Transparent glyphs, cells off
// screen and images that are not Cells are skipped.
func (s *Surface) Blit(img rain.Image, x, y int, alpha uint8) {
	cell, ok := img.(Cell)
	if !ok || alpha == 0 {
		return
	}
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, rune(cell), nil, s.StyleFor(alpha))
}

// IsQuit reports whether ev asks the rain to stop: Esc, Ctrl-C or q.
func IsQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}

// Run clears the screen, calls frame and presents the result fps times per
// second until a quit key arrives or ctx is cancelled. The caller owns the
// screen and must Fini it afterwards.
//
// Events are read by a goroutine blocked in PollEvent. It can outlive Run
// until the next event arrives or the caller calls Fini on the screen.
func Run(ctx context.Context, screen tcell.Screen, fps int, frame func()) error {
	if fps <= 0 {
		return fmt.Errorf("frame rate %d must be positive", fps)
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if IsQuit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case <-ticker.C:
			screen.Clear()
			frame()
			screen.Show()
		}
	}
}
