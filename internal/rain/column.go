package rain

import "fmt"

// Column is a fixed-length stack of glyphs sharing one x and one fall speed.
//
// Glyph 0 sits at the column's origin and leads the fall; each following
// glyph is one glyph height above the previous one. The first half of the
// sequence is the lower half of the column on screen.
type Column struct {
	env    *Env
	x      int
	speed  int
	glyphs []*Glyph
}

// NewColumn builds a column of length glyphs whose lowest glyph is at originY.
func NewColumn(env *Env, x, originY, length, speed int) (*Column, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, fmt.Errorf("column length %d: %w", length, ErrInvalidConfiguration)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("column fall speed %d: %w", speed, ErrInvalidConfiguration)
	}

	now := env.Clock.NowMs()
	c := &Column{
		env:    env,
		x:      x,
		speed:  speed,
		glyphs: make([]*Glyph, 0, length),
	}
	for i := 0; i < length; i++ {
		g, err := NewGlyph(env, x, originY-i*env.Geometry.GlyphHeight, speed, now)
		if err != nil {
			return nil, err
		}
		c.glyphs = append(c.glyphs, g)
	}
	for _, g := range c.lowerHalf() {
		g.setState(Rising)
	}
	return c, nil
}

// RandomColumn builds a column with length and speed drawn from env.Tuning.
func RandomColumn(env *Env, x, originY int) (*Column, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	t := env.Tuning
	length := env.between(t.MinLength, t.MaxLength+1)
	speed := env.between(t.MinSpeed, t.MaxSpeed+1)
	return NewColumn(env, x, originY, length, speed)
}

// Advance may force one lower-half glyph into Rising, then advances every
// glyph once, in order.
func (c *Column) Advance(now int64) {
	if lower := c.lowerHalf(); len(lower) > 0 && c.env.Rand.Intn(c.env.Tuning.BurstOdds) == 0 {
		lower[c.env.Rand.Intn(len(lower))].setState(Rising)
	}
	for _, g := range c.glyphs {
		g.Advance(now)
	}
}

func (c *Column) lowerHalf() []*Glyph {
	return c.glyphs[:len(c.glyphs)/2]
}

// X returns the column's horizontal position.
func (c *Column) X() int { return c.x }

// Speed returns the fall speed shared by every glyph.
func (c *Column) Speed() int { return c.speed }

// Len returns the number of glyphs.
func (c *Column) Len() int { return len(c.glyphs) }

// Glyph returns the i-th glyph, 0 being the lowest.
func (c *Column) Glyph(i int) *Glyph { return c.glyphs[i] }
