package compositor

import (
	"math"

	"github.com/gogpu/compositor/pixel"
)

// SampleMode selects how rotated texture objects pick texels.
type SampleMode uint8

const (
	// SampleNearest picks the texel under the sample point. Default.
	SampleNearest SampleMode = iota

	// SampleBilinear blends the four surrounding texels.
	SampleBilinear

	sampleModeCount
)

// String returns the name of the sample mode.
func (m SampleMode) String() string {
	switch m {
	case SampleNearest:
		return "Nearest"
	case SampleBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the mode is one of the defined sample modes.
func (m SampleMode) IsValid() bool { return m < sampleModeCount }

// sampleBilinear blends the four texels around the sample point. Sample
// points needing a neighbor outside the texture fall back to def; a zero
// fractional weight needs no right/bottom neighbor, so exact-integer
// samples stay valid up to the last row and column. Blended pixels always
// come out fully opaque.
func sampleBilinear(t Texture, x, y float64, def pixel.Pixel) pixel.Pixel {
	left := math.Floor(x)
	top := math.Floor(y)
	fx := x - left
	fy := y - top
	right := left + 1
	if fx == 0 {
		right = left
	}
	bottom := top + 1
	if fy == 0 {
		bottom = top
	}
	w, h := float64(t.width), float64(t.Height())
	if left < 0 || top < 0 || right >= w || bottom >= h {
		return def
	}
	lx, ty := uint32(left), uint32(top)
	rx, by := uint32(right), uint32(bottom)
	tl, _ := t.pixelAt(lx, ty)
	tr, _ := t.pixelAt(rx, ty)
	bl, _ := t.pixelAt(lx, by)
	br, _ := t.pixelAt(rx, by)

	blend := func(a, b, c, d uint8) uint8 {
		top := float64(a)*(1-fx) + float64(b)*fx
		bot := float64(c)*(1-fx) + float64(d)*fx
		return uint8(math.Round(top*(1-fy) + bot*fy))
	}
	return pixel.Pixel{
		R: blend(tl.R, tr.R, bl.R, br.R),
		G: blend(tl.G, tr.G, bl.G, br.G),
		B: blend(tl.B, tr.B, bl.B, br.B),
		A: 255,
	}
}

// sampleNearest picks the texel containing the sample point, or false when
// the point lies outside the texture.
func sampleNearest(t Texture, x, y float64) (pixel.Pixel, bool) {
	if x < 0 || y < 0 {
		return pixel.Pixel{}, false
	}
	return t.pixelAt(uint32(math.Floor(x)), uint32(math.Floor(y)))
}
