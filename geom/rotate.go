package geom

import "math"

// RotatedSize returns the bounding box size of a width x height pixel grid
// rotated by angle degrees about the origin corner. Fractional overflow
// beyond a tenth of a pixel rounds the result up.
func RotatedSize(width, height uint32, degrees float64) (uint32, uint32) {
	if width == 0 || height == 0 {
		return 0, 0
	}

	w := float64(width)
	h := float64(height)
	sin, cos := math.Sincos(degrees * math.Pi / 180)

	x1, y1 := (w-1)*cos, (w-1)*sin
	x2, y2 := (w-1)*cos-(h-1)*sin, (w-1)*sin+(h-1)*cos
	x3, y3 := -(h-1)*sin, (h-1)*cos

	minX := math.Min(math.Min(x1, x2), math.Min(x3, 0))
	maxX := math.Max(math.Max(x1, x2), math.Max(x3, 0))
	minY := math.Min(math.Min(y1, y2), math.Min(y3, 0))
	maxY := math.Max(math.Max(y1, y2), math.Max(y3, 0))

	return roundSpan(maxX - minX + 1), roundSpan(maxY - minY + 1)
}

// roundSpan floors a span, counting any fractional excess over 0.1 as a
// whole extra pixel.
func roundSpan(v float64) uint32 {
	floor := math.Floor(v)
	if v-floor > 0.1 {
		return uint32(floor) + 1
	}
	return uint32(floor)
}
