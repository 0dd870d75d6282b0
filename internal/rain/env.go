// Package rain implements the digital rain animation: columns of glyphs that
// fall down the screen while each glyph pulses between transparent and opaque.
//
// The package owns no window, font or timer. Everything it touches on the
// outside goes through the Surface, Clock and Rand interfaces carried by Env.
package rain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by constructors when geometry or tuning
// would produce degenerate columns.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Image is a pre-rendered glyph. The core never looks inside it.
type Image interface {
	Size() (width, height int)
}

// Surface receives one blit per glyph per frame.
// Coordinates may be negative or beyond the surface bounds.
type Surface interface {
	Blit(img Image, x, y int, alpha uint8)
}

// Clock returns monotonically non-decreasing milliseconds.
type Clock interface {
	NowMs() int64
}

// Rand is the random source. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Geometry describes the drawable area in the same units the Surface uses.
type Geometry struct {
	Width       int
	Height      int
	GlyphHeight int // also the horizontal spacing between columns
}

// Validate checks that the geometry can hold at least one glyph.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("screen size %dx%d: %w", g.Width, g.Height, ErrInvalidConfiguration)
	}
	if g.GlyphHeight <= 0 {
		return fmt.Errorf("glyph height %d: %w", g.GlyphHeight, ErrInvalidConfiguration)
	}
	return nil
}

// Tuning holds the animation constants.
type Tuning struct {
	ChangeIntervalMs int64 // how long a glyph keeps its value

	FadeStep     int // opacity change per frame
	RiseCeilMin  int // ceiling for Rising is drawn from [RiseCeilMin, RiseCeilMax)
	RiseCeilMax  int
	FallFloorMax int // floor for Falling is drawn from [0, FallFloorMax)

	MinLength int // column length is drawn from [MinLength, MaxLength]
	MaxLength int
	MinSpeed  int // fall speed is drawn from [MinSpeed, MaxSpeed]
	MaxSpeed  int

	BurstOdds int // a column forces one glyph Rising with probability 1/BurstOdds
}

// DefaultTuning returns the constants of the classic binary rain.
func DefaultTuning() Tuning {
	return Tuning{
		ChangeIntervalMs: 300,
		FadeStep:         5,
		RiseCeilMin:      100,
		RiseCeilMax:      255,
		FallFloorMax:     10,
		MinLength:        8,
		MaxLength:        24,
		MinSpeed:         3,
		MaxSpeed:         5,
		BurstOdds:        2,
	}
}

// Validate rejects tuning that would break the random ranges or stall the animation.
func (t Tuning) Validate() error {
	switch {
	case t.ChangeIntervalMs <= 0:
		return fmt.Errorf("change interval %dms: %w", t.ChangeIntervalMs, ErrInvalidConfiguration)
	case t.FadeStep <= 0:
		return fmt.Errorf("fade step %d: %w", t.FadeStep, ErrInvalidConfiguration)
	case t.RiseCeilMin < 0 || t.RiseCeilMax <= t.RiseCeilMin || t.RiseCeilMax > MaxOpacity+1:
		return fmt.Errorf("rise ceiling [%d,%d): %w", t.RiseCeilMin, t.RiseCeilMax, ErrInvalidConfiguration)
	case t.FallFloorMax <= 0 || t.FallFloorMax > MaxOpacity:
		return fmt.Errorf("fall floor [0,%d): %w", t.FallFloorMax, ErrInvalidConfiguration)
	case t.MinLength <= 0 || t.MaxLength < t.MinLength:
		return fmt.Errorf("column length [%d,%d]: %w", t.MinLength, t.MaxLength, ErrInvalidConfiguration)
	case t.MinSpeed <= 0 || t.MaxSpeed < t.MinSpeed:
		return fmt.Errorf("fall speed [%d,%d]: %w", t.MinSpeed, t.MaxSpeed, ErrInvalidConfiguration)
	case t.BurstOdds <= 0:
		return fmt.Errorf("burst odds 1/%d: %w", t.BurstOdds, ErrInvalidConfiguration)
	}
	return nil
}

// Env bundles the immutable configuration and collaborators shared by every
// column and glyph of a scene. It is read-only once built.
type Env struct {
	Geometry Geometry
	Tuning   Tuning
	Palette  []Image
	Surface  Surface
	Clock    Clock
	Rand     Rand
}

// Validate checks configuration and that every collaborator is present.
func (e *Env) Validate() error {
	if e == nil {
		return fmt.Errorf("nil env: %w", ErrInvalidConfiguration)
	}
	if err := e.Geometry.Validate(); err != nil {
		return err
	}
	if err := e.Tuning.Validate(); err != nil {
		return err
	}
	if len(e.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", ErrInvalidConfiguration)
	}
	if e.Surface == nil || e.Clock == nil || e.Rand == nil {
		return fmt.Errorf("missing collaborator: %w", ErrInvalidConfiguration)
	}
	return nil
}

// between returns a uniform integer in [lo, hi).
func (e *Env) between(lo, hi int) int {
	return lo + e.Rand.Intn(hi-lo)
}
