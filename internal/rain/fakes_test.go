package rain

import (
	"math/rand"
	"testing"
)

type fakeImage struct {
	name string
}

func (f *fakeImage) Size() (int, int) { return 10, 20 }

type blit struct {
	name  string
	x, y  int
	alpha uint8
}

type recordingSurface struct {
	blits []blit
}

func (s *recordingSurface) Blit(img Image, x, y int, alpha uint8) {
	s.blits = append(s.blits, blit{name: img.(*fakeImage).name, x: x, y: y, alpha: alpha})
}

type manualClock struct {
	now int64
}

func (c *manualClock) NowMs() int64 { return c.now }

// scriptedRand returns queued values (capped to n-1) and then fallback.
type scriptedRand struct {
	queue    []int
	fallback int
	calls    int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	v := r.fallback
	if len(r.queue) > 0 {
		v, r.queue = r.queue[0], r.queue[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func testPalette() []Image {
	return []Image{&fakeImage{name: "0"}, &fakeImage{name: "1"}}
}

func newTestEnv(t *testing.T, seed int64) (*Env, *recordingSurface, *manualClock) {
	t.Helper()
	surface := &recordingSurface{}
	clock := &manualClock{now: 1000}
	env := &Env{
		Geometry: Geometry{Width: 200, Height: 480, GlyphHeight: 20},
		Tuning:   DefaultTuning(),
		Palette:  testPalette(),
		Surface:  surface,
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(seed)),
	}
	if err := env.Validate(); err != nil {
		t.Fatalf("Failed to build test env: %v", err)
	}
	return env, surface, clock
}
