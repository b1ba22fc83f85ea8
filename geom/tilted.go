package geom

import "math"

// TiltedRect is a rotated rectangle described by three corner points A, B, C
// where B is adjacent to both A and C, so AB and BC trace two adjacent edges.
// The fourth corner is implicit (A + BC).
//
// Edge vectors and their self dot-products are cached at construction so that
// containment tests are O(1), and an axis-aligned bounding Rect is cached for
// cheap intersection pre-checks. Translating a TiltedRect is O(1): the edge
// vectors are translation-invariant, so only the corners and bounds shift.
type TiltedRect struct {
	a, b, c Point
	ab, bc  Vec
	dotAB   float64
	dotBC   float64
	bounds  Rect
}

// NewTiltedRect builds a TiltedRect from three corners with B adjacent to
// both A and C. Containment results are independent of which two adjacent
// edges of the rectangle are chosen as AB/BC.
func NewTiltedRect(a, b, c Point) TiltedRect {
	ab := b.Sub(a)
	bc := c.Sub(b)
	t := TiltedRect{
		a:     a,
		b:     b,
		c:     c,
		ab:    ab,
		bc:    bc,
		dotAB: ab.Dot(ab),
		dotBC: bc.Dot(bc),
	}
	t.bounds = t.computeBounds()
	return t
}

// computeBounds returns the axis-aligned bounding rect of all four corners.
// The implicit fourth corner can extend past the three named ones, so it
// participates in the min/max fold. Negative coordinates clamp to zero
// since pixel space is unsigned.
func (t *TiltedRect) computeBounds() Rect {
	d := t.a.Add(t.bc)

	minX := math.Min(math.Min(t.a.X, t.b.X), math.Min(t.c.X, d.X))
	maxX := math.Max(math.Max(t.a.X, t.b.X), math.Max(t.c.X, d.X))
	minY := math.Min(math.Min(t.a.Y, t.b.Y), math.Min(t.c.Y, d.Y))
	maxY := math.Max(math.Max(t.a.Y, t.b.Y), math.Max(t.c.Y, d.Y))

	x0 := math.Floor(snap(minX))
	y0 := math.Floor(snap(minY))
	x1 := math.Ceil(snap(maxX))
	y1 := math.Ceil(snap(maxY))

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	return Rect{
		X: uint32(x0),
		Y: uint32(y0),
		W: uint32(x1 - x0),
		H: uint32(y1 - y0),
	}
}

// snap collapses values within rounding noise of an integer onto that
// integer, so that right-angle rotations produce exact pixel bounds.
func snap(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < 1e-9 {
		return r
	}
	return v
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// A point M is inside iff its projections onto both cached edges fall
// within the edge lengths: 0 <= AB.AM <= AB.AB and 0 <= BC.BM <= BC.BC.
func (t *TiltedRect) Contains(x, y float64) bool {
	m := Point{X: x, Y: y}
	am := m.Sub(t.a)
	p := t.ab.Dot(am)
	if p < 0 || p > t.dotAB {
		return false
	}
	bm := m.Sub(t.b)
	q := t.bc.Dot(bm)
	return q >= 0 && q <= t.dotBC
}

// Bounds returns the cached axis-aligned bounding rect.
func (t *TiltedRect) Bounds() Rect {
	return t.bounds
}

// Corners returns the three defining corners A, B, C.
func (t *TiltedRect) Corners() (a, b, c Point) {
	return t.a, t.b, t.c
}

// Translate shifts the rectangle by (dx, dy) in O(1). The edge vectors and
// dot products are unchanged; only the corners and cached bounds move.
func (t *TiltedRect) Translate(dx, dy float64) {
	v := Vec{X: dx, Y: dy}
	t.a = t.a.Add(v)
	t.b = t.b.Add(v)
	t.c = t.c.Add(v)
	t.bounds = t.computeBounds()
}

// TiltRect rotates the axis-aligned rect r by angle degrees about its center
// and returns the resulting TiltedRect.
func TiltRect(r Rect, degrees float64) TiltedRect {
	cx := float64(r.X) + float64(r.W)/2
	cy := float64(r.Y) + float64(r.H)/2
	m := Translate(cx, cy).Mul(RotateDegrees(degrees)).Mul(Translate(-cx, -cy))

	a := m.ApplyPoint(Point{X: float64(r.X), Y: float64(r.Y)})
	b := m.ApplyPoint(Point{X: float64(r.X + r.W), Y: float64(r.Y)})
	c := m.ApplyPoint(Point{X: float64(r.X + r.W), Y: float64(r.Y + r.H)})
	return NewTiltedRect(a, b, c)
}
