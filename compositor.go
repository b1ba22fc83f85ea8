package compositor

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/arena"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/pixel"
	"github.com/gogpu/compositor/portion"
)

// Errors returned by the compositor.
var (
	// ErrInvalidDimensions is returned when a size is zero or does not
	// divide evenly into the requested grid.
	ErrInvalidDimensions = errors.New("compositor: invalid dimensions")

	// ErrInvalidFormat is returned for pixel formats outside the defined
	// set.
	ErrInvalidFormat = errors.New("compositor: invalid pixel format")

	// ErrUnknownObject is returned when an ObjectID does not name a live
	// object.
	ErrUnknownObject = errors.New("compositor: unknown object")

	// ErrUnknownTexture is returned when a TextureID does not name a
	// registered texture.
	ErrUnknownTexture = errors.New("compositor: unknown texture")
)

// Config describes a compositor buffer. Width and height are in pixels;
// GridRows and GridCols shape the dirty-region grid and must divide the
// buffer evenly. A zero Format means FormatRGBA8.
type Config struct {
	Width    uint32
	Height   uint32
	GridRows uint32
	GridCols uint32
	Format   pixel.Format
}

func (c Config) validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("compositor: config: %w", ErrInvalidFormat)
	}
	if !portion.DimensionsValid(c.Width, c.Height, c.GridRows, c.GridCols) {
		return fmt.Errorf("compositor: config: %w", ErrInvalidDimensions)
	}
	return nil
}

// Compositor owns a CPU pixel buffer and a scene of layered objects, and
// redraws only the parts of the buffer that changed. It is not safe for
// concurrent use.
type Compositor struct {
	width  uint32
	height uint32
	format pixel.Format
	bpp    int

	// pixels is the composited output; clear holds the last full clear
	// color so uncovered areas can be restored without repainting the
	// whole buffer.
	pixels []byte
	clear  []byte

	portioner *portion.Portioner

	textures arena.Arena[Texture]
	objects  arena.Arena[Object]
	layers   []layer

	sampleMode SampleMode
}

// New creates a compositor for the given configuration. The buffer starts
// fully transparent (black for formats without alpha) and fully dirty.
func New(cfg Config) (*Compositor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	format := cfg.Format
	p, err := portion.New(cfg.Width, cfg.Height, cfg.GridRows, cfg.GridCols)
	if err != nil {
		return nil, err
	}
	bpp := format.BytesPerPixel()
	c := &Compositor{
		width:     cfg.Width,
		height:    cfg.Height,
		format:    format,
		bpp:       bpp,
		pixels:    make([]byte, int(cfg.Width)*int(cfg.Height)*bpp),
		clear:     make([]byte, bpp),
		portioner: p,
	}
	c.markAll()
	return c, nil
}

// Width returns the buffer width in pixels.
func (c *Compositor) Width() uint32 { return c.width }

// Height returns the buffer height in pixels.
func (c *Compositor) Height() uint32 { return c.height }

// Format returns the pixel format of the buffer.
func (c *Compositor) Format() pixel.Format { return c.format }

// Stride returns the number of bytes per buffer row.
func (c *Compositor) Stride() int { return int(c.width) * c.bpp }

// Pixels returns the backing buffer. The slice is live: it reflects
// subsequent draw calls, and callers must not resize it.
func (c *Compositor) Pixels() []byte { return c.pixels }

// PixelAt returns the bytes of one pixel, or nil when the coordinate is
// outside the buffer.
func (c *Compositor) PixelAt(x, y uint32) []byte {
	if x >= c.width || y >= c.height {
		return nil
	}
	off := (int(y)*int(c.width) + int(x)) * c.bpp
	return c.pixels[off : off+c.bpp]
}

// GridDims returns the dirty grid shape as (rows, cols).
func (c *Compositor) GridDims() (uint32, uint32) { return c.portioner.GridDims() }

// FlushPortions returns the minimal set of rectangles covering every
// pixel written since the last flush, and resets the dirty grid. Upload
// these regions to the display or GPU; pixels outside them are unchanged.
// The rects are in pixel coordinates, scaled up from the grid cells the
// Portioner tracks.
func (c *Compositor) FlushPortions() []geom.Rect {
	rects := c.portioner.Flush()
	cw, ch := c.portioner.CellSize()
	for i, r := range rects {
		rects[i] = geom.Rect{X: r.X * cw, Y: r.Y * ch, W: r.W * cw, H: r.H * ch}
	}
	return rects
}

// SetSampleMode selects the texel filter used for rotated texture
// objects. Invalid modes are ignored with a warning.
func (c *Compositor) SetSampleMode(m SampleMode) {
	if !m.IsValid() {
		logger().Warn("ignoring invalid sample mode", "mode", uint8(m))
		return
	}
	c.sampleMode = m
}

// Clear fills the whole buffer with the given color, marks everything
// dirty, and remembers the color as the background restored under moved
// or removed objects.
func (c *Compositor) Clear(p pixel.Pixel) {
	c.format.Put(c.clear, p)
	row := make([]byte, c.Stride())
	for x := 0; x < int(c.width); x++ {
		copy(row[x*c.bpp:], c.clear)
	}
	for y := 0; y < int(c.height); y++ {
		copy(c.pixels[y*c.Stride():], row)
	}
	c.markAll()
	// Every visible object has to repaint over the new background.
	for id := range c.objects.Len() {
		if o := c.objects.At(id); o != nil && !o.bounds.IsEmpty() {
			c.markPending(ObjectID(id))
		}
	}
	logger().Debug("buffer cleared")
}

// Blit copies raw pixel data over a region of the buffer and marks the
// region dirty. The data must hold bounds.W x bounds.H pixels in the
// buffer's format; regions reaching outside the buffer are clipped.
func (c *Compositor) Blit(data []byte, bounds geom.Rect) error {
	srcStride := int(bounds.W) * c.bpp
	if srcStride == 0 || len(data) < srcStride*int(bounds.H) {
		return fmt.Errorf("compositor: blit: %w", ErrInvalidDimensions)
	}
	clipped, ok := geom.Intersect(bounds, geom.Rect{W: c.width, H: c.height})
	if !ok {
		return nil
	}
	for y := clipped.Y; y < clipped.Y+clipped.H; y++ {
		srcOff := int(y-bounds.Y)*srcStride + int(clipped.X-bounds.X)*c.bpp
		dstOff := (int(y)*int(c.width) + int(clipped.X)) * c.bpp
		copy(c.pixels[dstOff:dstOff+int(clipped.W)*c.bpp], data[srcOff:])
		for x := clipped.X; x < clipped.X+clipped.W; x++ {
			c.portioner.TakePixel(x, y)
		}
	}
	return nil
}

func (c *Compositor) markAll() {
	for y := uint32(0); y < c.height; y++ {
		for x := uint32(0); x < c.width; x++ {
			c.portioner.TakePixel(x, y)
		}
	}
}

func (c *Compositor) object(id ObjectID) (*Object, error) {
	o := c.objects.At(int(id))
	if o == nil || o.bounds.IsEmpty() {
		return nil, fmt.Errorf("compositor: object %d: %w", id, ErrUnknownObject)
	}
	return o, nil
}
