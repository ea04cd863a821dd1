package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 5, 5), true},
		{"touching_right_edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching_bottom_edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"apart", NewRect(0, 0, 10, 10), NewRect(50, 50, 10, 10), false},
		{"x_only", NewRect(0, 0, 10, 10), NewRect(5, 20, 10, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("a.Intersects(b) = %v, want %v", got, c.want)
			}
			if got := Overlaps(c.b, c.a); got != c.want {
				t.Fatalf("Overlaps(b, a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.OverlapsX(NewRect(5, 500, 10, 1)) {
		t.Fatalf("expected x overlap regardless of y")
	}
	if a.OverlapsX(NewRect(10, 0, 10, 10)) {
		t.Fatalf("touching x ranges should not overlap")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{29.9, 29.9, true},
		{30, 15, false},
		{15, 30, false},
		{9.9, 15, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 2, -5, -1)
	if r.Width != 0 || r.Height != 0 {
		t.Fatalf("expected zero size, got %vx%v", r.Width, r.Height)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(50, 50, 20, 10)
	if r.X != 40 || r.Y != 45 || r.Right() != 60 || r.Bottom() != 55 {
		t.Fatalf("unexpected rect %+v", r)
	}
	if r.CenterX() != 50 || r.CenterY() != 50 {
		t.Fatalf("center moved: %v,%v", r.CenterX(), r.CenterY())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Fatalf("clamp out of range")
	}
}
