package geom

// Rect is an axis-aligned rectangle in pixel space.
// Coordinates are unsigned; a rect is empty when either dimension is zero.
type Rect struct {
	X, Y uint32
	W, H uint32
}

// IsEmpty reports whether the rect covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W == 0 || r.H == 0
}

// Contains reports whether the pixel (x, y) lies inside the rect.
func (r Rect) Contains(x, y uint32) bool {
	return r.X <= x && x < r.X+r.W &&
		r.Y <= y && y < r.Y+r.H
}

// Intersect returns the largest rectangle covered by both a and b.
// The second result is false when the rectangles do not overlap.
func Intersect(a, b Rect) (Rect, bool) {
	x1 := max(a.X, b.X)
	x2 := min(a.X+a.W, b.X+b.W)
	y1 := max(a.Y, b.Y)
	y2 := min(a.Y+a.H, b.Y+b.H)

	if x2 > x1 && y2 > y1 {
		return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
	}
	return Rect{}, false
}

// AnyContains reports whether any rect in rs contains the pixel (x, y).
// The compositor uses this to skip pixels that fall inside occlusion regions.
func AnyContains(rs []Rect, x, y uint32) bool {
	for _, r := range rs {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
