package gamemath

import "math"

// Rect is an axis-aligned box given by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return OverlapsX(a, b) && OverlapsY(a, b)
}

// Touches is Overlaps with shared edges counted as contact.
func Touches(a, b Rect) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

func OverlapsX(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right()
}

func OverlapsY(a, b Rect) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Rebound reflects a velocity off a surface. Speeds that come back below
// rest are treated as settled and return 0.
func Rebound(v, bounce, rest float64) float64 {
	r := -v * bounce
	if math.Abs(r) < rest {
		return 0
	}
	return r
}
