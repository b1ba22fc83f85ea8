package pixel

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pixel is an 8-bit RGBA color value. Alpha zero means fully transparent;
// the compositor skips writes of transparent samples.
type Pixel struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Pixel{}
	Black       = Pixel{A: 255}
	White       = Pixel{R: 255, G: 255, B: 255, A: 255}
	Red         = Pixel{R: 255, A: 255}
	Green       = Pixel{G: 255, A: 255}
	Blue        = Pixel{B: 255, A: 255}
)

// RGBA creates a pixel from explicit channel values.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// IsTransparent reports whether the pixel has zero alpha.
func (p Pixel) IsTransparent() bool {
	return p.A == 0
}

// Color converts the pixel to the standard color.Color interface.
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// FromColor converts a standard color.Color to a Pixel. Channels are
// stored straight (non-premultiplied), so premultiplied inputs are
// un-premultiplied on the way in.
func FromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses a "#RRGGBB" or "#RGB" web color into an opaque pixel.
func ParseHex(s string) (Pixel, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Pixel{}, fmt.Errorf("pixel: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Pixel{R: r, G: g, B: b, A: 255}, nil
}

// Lerp blends two pixels by t in [0, 1] in linear RGB space; t=0 yields a,
// t=1 yields b. Alpha interpolates linearly.
func Lerp(a, b Pixel, t float64) Pixel {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return Pixel{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}
