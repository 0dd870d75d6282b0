package rain

import (
	"errors"
	"testing"
)

func TestNewSceneCoversWidth(t *testing.T) {
	env, _, _ := newTestEnv(t, 11)
	env.Geometry = Geometry{Width: 100, Height: 300, GlyphHeight: 20}

	s, err := NewScene(env)
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	cols := s.Columns()
	if len(cols) != 5 {
		t.Fatalf("Expected 5 columns, got %d", len(cols))
	}
	for i, c := range cols {
		if c.X() != i*20 {
			t.Errorf("Column %d: expected x %d, got %d", i, i*20, c.X())
		}
		if y := c.Glyph(0).Y(); y < -300 || y >= 0 {
			t.Errorf("Column %d: origin %d outside [-300,0)", i, y)
		}
	}
}

func TestSceneAdvanceDrawsEveryGlyphOnceInColumnOrder(t *testing.T) {
	env, surface, clock := newTestEnv(t, 3)

	s, err := NewScene(env)
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}

	clock.now += 16
	s.Advance(clock.now)

	if len(surface.blits) != s.GlyphCount() {
		t.Fatalf("Expected %d blits, got %d", s.GlyphCount(), len(surface.blits))
	}
	lastX := -1
	for i, b := range surface.blits {
		if b.x < lastX {
			t.Fatalf("Blit %d: x %d drawn after x %d", i, b.x, lastX)
		}
		lastX = b.x
	}
}

func TestNewSceneRejectsBadGeometry(t *testing.T) {
	env, _, _ := newTestEnv(t, 1)
	env.Geometry.GlyphHeight = -4

	if _, err := NewScene(env); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero interval", func(t *Tuning) { t.ChangeIntervalMs = 0 }},
		{"zero step", func(t *Tuning) { t.FadeStep = 0 }},
		{"empty ceiling range", func(t *Tuning) { t.RiseCeilMax = t.RiseCeilMin }},
		{"ceiling past opaque", func(t *Tuning) { t.RiseCeilMax = 300 }},
		{"zero floor", func(t *Tuning) { t.FallFloorMax = 0 }},
		{"inverted lengths", func(t *Tuning) { t.MinLength, t.MaxLength = 10, 5 }},
		{"zero speed", func(t *Tuning) { t.MinSpeed = 0 }},
		{"zero burst odds", func(t *Tuning) { t.BurstOdds = 0 }},
	}

	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("Expected default tuning to be valid, got %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			if err := tuning.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestFadeStateString(t *testing.T) {
	if Rising.String() != "rising" || Falling.String() != "falling" {
		t.Errorf("Unexpected names %q and %q", Rising.String(), Falling.String())
	}
	if got := FadeState(7).String(); got != "FadeState(7)" {
		t.Errorf("Expected FadeState(7), got %q", got)
	}
}
