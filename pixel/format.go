// Package pixel defines the pixel formats and color values the compositor
// stores in its buffers. A Format fixes the number of interleaved bytes per
// pixel and their channel meaning; Pixel is the 8-bit RGBA value every
// format encodes to and decodes from.
package pixel

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel). The zero value, and
	// the default format for compositor buffers.
	FormatRGBA8 Format = iota

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel).
	// Common for window surfaces on Windows and some GPU swapchains.
	FormatBGRA8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatGray8 is 8-bit grayscale (1 byte per pixel, no alpha).
	FormatGray8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of interleaved bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates whether the format carries an alpha channel.
	HasAlpha bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {BytesPerPixel: 1, Channels: 1, HasAlpha: false},
	FormatRGB8:  {BytesPerPixel: 3, Channels: 3, HasAlpha: false},
	FormatRGBA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
	FormatBGRA8: {BytesPerPixel: 4, Channels: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
// Returns the zero FormatInfo for invalid formats.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether the format is one of the defined constants.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// TextureFormat maps the format onto the equivalent gputypes.TextureFormat,
// so a presenter can hand a compositor buffer straight to a render target.
// The second result is false for formats with no GPU equivalent (RGB8).
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	switch f {
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm, true
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, true
	default:
		return 0, false
	}
}

// Put encodes p into dst, which must hold at least BytesPerPixel bytes.
// Formats without alpha drop it; grayscale uses the standard luminance
// weights.
func (f Format) Put(dst []byte, p Pixel) {
	switch f {
	case FormatGray8:
		dst[0] = luminance(p)
	case FormatRGB8:
		dst[0] = p.R
		dst[1] = p.G
		dst[2] = p.B
	case FormatRGBA8:
		dst[0] = p.R
		dst[1] = p.G
		dst[2] = p.B
		dst[3] = p.A
	case FormatBGRA8:
		dst[0] = p.B
		dst[1] = p.G
		dst[2] = p.R
		dst[3] = p.A
	}
}

// At decodes the pixel stored in src. Formats without an alpha channel
// decode as fully opaque; grayscale decodes with r=g=b.
func (f Format) At(src []byte) Pixel {
	switch f {
	case FormatGray8:
		v := src[0]
		return Pixel{R: v, G: v, B: v, A: 255}
	case FormatRGB8:
		return Pixel{R: src[0], G: src[1], B: src[2], A: 255}
	case FormatRGBA8:
		return Pixel{R: src[0], G: src[1], B: src[2], A: src[3]}
	case FormatBGRA8:
		return Pixel{R: src[2], G: src[1], B: src[0], A: src[3]}
	default:
		return Pixel{}
	}
}

// Alpha returns the alpha byte of the pixel stored in src.
// Formats without an alpha channel are always fully opaque.
func (f Format) Alpha(src []byte) uint8 {
	switch f {
	case FormatRGBA8, FormatBGRA8:
		return src[3]
	default:
		return 255
	}
}

// luminance converts a color to its 8-bit gray value using the standard
// weights 0.299/0.587/0.114.
func luminance(p Pixel) uint8 {
	return uint8((int(p.R)*299 + int(p.G)*587 + int(p.B)*114) / 1000)
}
