package compositor

import (
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/pixel"
)

// Texture is an immutable pixel source sampled by texture objects. The
// data is tightly packed rows in the given format; height is derived from
// the data length.
type Texture struct {
	data   []byte
	width  uint32
	format pixel.Format
}

// NewTexture wraps raw pixel data as a texture. The data length must be a
// whole number of rows of width pixels in the given format.
func NewTexture(data []byte, width uint32, format pixel.Format) (Texture, error) {
	if !format.IsValid() {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidFormat)
	}
	bpp := format.BytesPerPixel()
	stride := int(width) * bpp
	if width == 0 || stride == 0 || len(data) == 0 || len(data)%stride != 0 {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidDimensions)
	}
	return Texture{data: data, width: width, format: format}, nil
}

// Width returns the texture width in pixels.
func (t Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t Texture) Height() uint32 {
	return uint32(len(t.data) / (int(t.width) * t.format.BytesPerPixel()))
}

// Format returns the pixel format of the texture data.
func (t Texture) Format() pixel.Format { return t.format }

// Data returns the backing pixel bytes. The slice must not be mutated
// while the texture is registered with a compositor.
func (t Texture) Data() []byte { return t.data }

// pixelAt returns the pixel at the given texel, or false when the texel
// lies outside the texture.
func (t Texture) pixelAt(x, y uint32) (pixel.Pixel, bool) {
	if x >= t.width || y >= t.Height() {
		return pixel.Pixel{}, false
	}
	bpp := t.format.BytesPerPixel()
	off := (int(y)*int(t.width) + int(x)) * bpp
	return t.format.At(t.data[off:]), true
}

// TextureFromImage converts an image into a texture of the given format.
func TextureFromImage(img image.Image, format pixel.Format) (Texture, error) {
	b := img.Bounds()
	return textureFromNRGBA(rasterize(img, b.Dx(), b.Dy()), format)
}

// ScaledTextureFromImage converts an image into a texture of the given
// format, resampling it to width x height with nearest-neighbor.
func ScaledTextureFromImage(img image.Image, width, height uint32, format pixel.Format) (Texture, error) {
	if width == 0 || height == 0 {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidDimensions)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return textureFromNRGBA(dst, format)
}

func rasterize(img image.Image, w, h int) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == image.Pt(0, 0) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return dst
}

func textureFromNRGBA(src *image.NRGBA, format pixel.Format) (Texture, error) {
	if !format.IsValid() {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidFormat)
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidDimensions)
	}
	bpp := format.BytesPerPixel()
	data := make([]byte, w*h*bpp)
	for y := range h {
		for x := range w {
			c := src.NRGBAAt(x, y)
			p := pixel.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
			format.Put(data[(y*w+x)*bpp:], p)
		}
	}
	return Texture{data: data, width: uint32(w), format: format}, nil
}

// TransformTexture samples a source texture through a matrix into a new
// width x height texture of the same format. Destination pixels that map
// outside the source are filled with def. The matrix maps destination
// coordinates to source coordinates. Sampling is bilinear.
func TransformTexture(src Texture, m geom.Matrix, width, height uint32, def pixel.Pixel) (Texture, error) {
	if width == 0 || height == 0 {
		return Texture{}, fmt.Errorf("compositor: texture: %w", ErrInvalidDimensions)
	}
	bpp := src.format.BytesPerPixel()
	data := make([]byte, int(width)*int(height)*bpp)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			sx, sy := m.Apply(float64(x), float64(y))
			p := sampleBilinear(src, sx, sy, def)
			src.format.Put(data[(int(y)*int(width)+int(x))*bpp:], p)
		}
	}
	return Texture{data: data, width: width, format: src.format}, nil
}

// RotateTextureAboutCenter rotates a texture by the given angle in degrees
// about its center, returning a new texture sized to fit the rotated
// content. Pixels outside the source are filled with def.
func RotateTextureAboutCenter(src Texture, degrees float64, def pixel.Pixel) (Texture, error) {
	w, h := src.width, src.Height()
	nw, nh := geom.RotatedSize(w, h, degrees)
	// Map destination pixels back into the source: center the destination,
	// un-rotate, then restore the source center.
	theta := -degrees * math.Pi / 180
	cxs, cys := float64(w-1)/2, float64(h-1)/2
	cxd, cyd := float64(nw-1)/2, float64(nh-1)/2
	m := geom.Translate(cxs, cys).Mul(geom.Rotate(theta)).Mul(geom.Translate(-cxd, -cyd))
	return TransformTexture(src, m, nw, nh, def)
}

// AddTexture registers a texture and returns its handle. Textures whose
// format differs from the buffer format are converted on registration so
// drawing stays a straight byte copy.
func (c *Compositor) AddTexture(t Texture) (TextureID, error) {
	if t.data == nil {
		return 0, fmt.Errorf("compositor: add texture: %w", ErrInvalidDimensions)
	}
	if t.format != c.format {
		t = t.convert(c.format)
	}
	return TextureID(c.textures.Insert(t)), nil
}

// RemoveTexture unregisters a texture and frees its slot. Objects still
// referencing the texture stop painting pixels until retargeted.
func (c *Compositor) RemoveTexture(id TextureID) error {
	if _, err := c.texture(id); err != nil {
		return err
	}
	c.textures.Remove(int(id))
	return nil
}

func (c *Compositor) texture(id TextureID) (*Texture, error) {
	t := c.textures.At(int(id))
	if t == nil || t.data == nil {
		return nil, fmt.Errorf("compositor: texture %d: %w", id, ErrUnknownTexture)
	}
	return t, nil
}

// convert repacks the texture's pixels into another format.
func (t Texture) convert(format pixel.Format) Texture {
	srcBpp := t.format.BytesPerPixel()
	dstBpp := format.BytesPerPixel()
	n := len(t.data) / srcBpp
	data := make([]byte, n*dstBpp)
	for i := 0; i < n; i++ {
		format.Put(data[i*dstBpp:], t.format.At(t.data[i*srcBpp:]))
	}
	return Texture{data: data, width: t.width, format: format}
}
