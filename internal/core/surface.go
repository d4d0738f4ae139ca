package core

// Sprite is glyph art drawn in place of an image on a character surface.
// Rows are sampled nearest-neighbour to fit the target size, so the art
// stretches with the terminal. Spaces are transparent.
type Sprite struct {
	Rows  []string
	Color Color
}

// CellSurface draws playfield-space shapes onto a Screen.
// The playfield rectangle (0,0)-(field.X,field.Y) is mapped onto area.
type CellSurface struct {
	dst     *Screen
	field   Vec
	area    Rect
	sprites map[string]Sprite
}

// NewCellSurface creates a surface mapping a playfield of the given size
// onto the area of dst.
func NewCellSurface(dst *Screen, field Vec, area Rect) *CellSurface {
	return &CellSurface{
		dst:   dst,
		field: field,
		area:  area,
	}
}

// SetSprites installs the glyph art used by DrawImage.
func (s *CellSurface) SetSprites(sprites map[string]Sprite) {
	s.sprites = sprites
}

// Area returns the screen region the playfield maps to.
func (s *CellSurface) Area() Rect {
	return s.area
}

// Clear blanks the playfield area.
func (s *CellSurface) Clear() {
	s.dst.DrawRectColored(s.area, ' ', ColorDefault)
}

// DrawRect fills the cells covered by the given playfield box.
func (s *CellSurface) DrawRect(pos, size Vec, c Color) {
	r := s.clip(s.cellRect(pos, size))
	s.dst.DrawRectColored(r, '█', c)
}

// DrawCircle fills the cells whose centers fall inside the circle.
// A circle smaller than a cell still marks the cell under its center.
func (s *CellSurface) DrawCircle(center Vec, radius float64, c Color) {
	full := s.cellRect(V(center.X-radius, center.Y-radius), V(radius*2, radius*2))
	r := s.clip(full)
	sx, sy := s.scale()
	drawn := false
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fx := (float64(x-s.area.X) + 0.5) / sx
			fy := (float64(y-s.area.Y) + 0.5) / sy
			dx, dy := fx-center.X, fy-center.Y
			if dx*dx+dy*dy <= radius*radius {
				s.dst.SetColored(x, y, '█', c)
				drawn = true
			}
		}
	}
	if !drawn {
		cx := s.area.X + FloorInt(center.X*sx)
		cy := s.area.Y + FloorInt(center.Y*sy)
		if s.area.Contains(cx, cy) {
			s.dst.SetColored(cx, cy, '●', c)
		}
	}
}

// DrawImage draws the named sprite stretched over the playfield box.
// Returns false when no sprite with that name is installed.
func (s *CellSurface) DrawImage(name string, pos, size Vec) bool {
	sp, ok := s.sprites[name]
	if !ok || len(sp.Rows) == 0 {
		return false
	}

	full := s.cellRect(pos, size)
	r := s.clip(full)
	for y := r.Y; y < r.Bottom(); y++ {
		row := []rune(sp.Rows[(y-full.Y)*len(sp.Rows)/full.H])
		if len(row) == 0 {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			ch := row[(x-full.X)*len(row)/full.W]
			if ch != ' ' {
				s.dst.SetColored(x, y, ch, sp.Color)
			}
		}
	}
	return true
}

// scale returns cells per playfield unit on each axis.
func (s *CellSurface) scale() (float64, float64) {
	if s.field.X <= 0 || s.field.Y <= 0 {
		return 1, 1
	}
	return float64(s.area.W) / s.field.X, float64(s.area.H) / s.field.Y
}

// cellRect converts a playfield box to the cell rectangle covering it.
// The result is at least one cell in each dimension.
func (s *CellSurface) cellRect(pos, size Vec) Rect {
	sx, sy := s.scale()
	x0 := s.area.X + FloorInt(pos.X*sx)
	y0 := s.area.Y + FloorInt(pos.Y*sy)
	x1 := s.area.X + CeilInt((pos.X+size.X)*sx)
	y1 := s.area.Y + CeilInt((pos.Y+size.Y)*sy)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// clip restricts r to the playfield area.
func (s *CellSurface) clip(r Rect) Rect {
	x0 := Max(r.X, s.area.X)
	y0 := Max(r.Y, s.area.Y)
	x1 := Min(r.Right(), s.area.Right())
	y1 := Min(r.Bottom(), s.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}
