package rain

// Scene owns one column per horizontal glyph cell.
type Scene struct {
	env     *Env
	columns []*Column
}

// NewScene fills the screen width with random columns, each starting at a
// random height above the visible area so they enter at staggered times.
func NewScene(env *Env) (*Scene, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	geo := env.Geometry
	s := &Scene{env: env}
	for x := 0; x < geo.Width; x += geo.GlyphHeight {
		col, err := RandomColumn(env, x, env.between(-geo.Height, 0))
		if err != nil {
			return nil, err
		}
		s.columns = append(s.columns, col)
	}
	return s, nil
}

// Advance runs one frame over every column, left to right.
func (s *Scene) Advance(now int64) {
	for _, c := range s.columns {
		c.Advance(now)
	}
}

// Columns returns the columns in creation order.
func (s *Scene) Columns() []*Column {
	return s.columns
}

// GlyphCount returns the number of glyphs drawn per frame.
func (s *Scene) GlyphCount() int {
	n := 0
	for _, c := range s.columns {
		n += c.Len()
	}
	return n
}
