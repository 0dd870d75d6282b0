package rain

import "fmt"

// MaxOpacity is the fully opaque alpha value.
const MaxOpacity = 255

// FadeState is the direction of a glyph's opacity walk.
type FadeState int

const (
	// Rising glyphs brighten until they pass a re-rolled ceiling.
	Rising FadeState = iota
	// Falling glyphs dim until they drop under a re-rolled floor.
	Falling
)

func (s FadeState) String() string {
	switch s {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return fmt.Sprintf("FadeState(%d)", int(s))
	}
}

// Glyph is one animated character cell.
type Glyph struct {
	env *Env

	x, y  int
	speed int

	value      int // index into env.Palette
	opacity    int
	state      FadeState
	lastChange int64
}

// NewGlyph creates a transparent, Rising glyph with a random value.
func NewGlyph(env *Env, x, y, speed int, now int64) (*Glyph, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if speed <= 0 {
		return nil, fmt.Errorf("glyph fall speed %d: %w", speed, ErrInvalidConfiguration)
	}
	return &Glyph{
		env:        env,
		x:          x,
		y:          y,
		speed:      speed,
		value:      env.Rand.Intn(len(env.Palette)),
		state:      Rising,
		lastChange: now,
	}, nil
}

// Advance runs one frame: refresh the value, step the opacity, draw, then fall.
func (g *Glyph) Advance(now int64) {
	g.refreshValue(now)
	g.stepOpacity()
	g.env.Surface.Blit(g.env.Palette[g.value], g.x, g.y, uint8(g.opacity))
	g.fall()
}

func (g *Glyph) refreshValue(now int64) {
	if now-g.lastChange < g.env.Tuning.ChangeIntervalMs {
		return
	}
	g.value = g.env.Rand.Intn(len(g.env.Palette))
	g.lastChange = now
}

// stepOpacity moves opacity one step in the current direction, or flips the
// direction without moving once the freshly drawn threshold is reached.
func (g *Glyph) stepOpacity() {
	t := &g.env.Tuning
	switch g.state {
	case Rising:
		if g.opacity < g.env.between(t.RiseCeilMin, t.RiseCeilMax) {
			g.opacity += t.FadeStep
		} else {
			g.state = Falling
		}
	default:
		if g.opacity > g.env.Rand.Intn(t.FallFloorMax) {
			g.opacity -= t.FadeStep
		} else {
			g.state = Rising
		}
	}
	g.opacity = clampOpacity(g.opacity)
}

func (g *Glyph) fall() {
	g.y += g.speed
	if g.y > g.env.Geometry.Height {
		g.y = -g.env.Geometry.GlyphHeight
	}
}

// setState is used by Column to force a burst.
func (g *Glyph) setState(s FadeState) {
	g.state = s
}

func clampOpacity(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxOpacity {
		return MaxOpacity
	}
	return v
}

// X returns the fixed horizontal position.
func (g *Glyph) X() int { return g.x }

// Y returns the current vertical position.
func (g *Glyph) Y() int { return g.y }

// Speed returns the fall speed per frame.
func (g *Glyph) Speed() int { return g.speed }

// Value returns the palette index currently shown.
func (g *Glyph) Value() int { return g.value }

// Opacity returns the current alpha in [0,255].
func (g *Glyph) Opacity() int { return g.opacity }

// State returns the fade direction.
func (g *Glyph) State() FadeState { return g.state }

// LastChange returns the time of the last value resample.
func (g *Glyph) LastChange() int64 { return g.lastChange }
