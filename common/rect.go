package common

// Rect is an axis-aligned box. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a Rect, clamping negative sizes to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectFromCenter builds a Rect of the given size centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return NewRect(cx-w/2, cy-h/2, w, h)
}

func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects is the strict AABB overlap test. Touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// OverlapsX compares only the horizontal ranges of the two boxes.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X+r.Width > other.X && r.X < other.X+other.Width
}

// Contains reports whether the point lies inside r. Left and top edges are
// inclusive, right and bottom are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps is Intersects as a free function.
func Overlaps(a, b Rect) bool {
	return a.Intersects(b)
}
