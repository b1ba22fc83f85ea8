package compositor

import (
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/pixel"
)

// DrawAll redraws every object whose footprint changed since the last
// call, bottom layer first. Each object is drawn at most once per change:
// the per-layer pending queues are drained up front, so repaints triggered
// while drawing (lower objects resampled under a moved one) do not recurse.
// Call FlushPortions afterwards to collect the touched regions.
func (c *Compositor) DrawAll() {
	for li := range c.layers {
		pending := c.layers[li].pending
		c.layers[li].pending = nil
		for _, id := range pending {
			o := c.objects.At(int(id))
			if o == nil || o.bounds.IsEmpty() {
				continue
			}
			c.drawObject(id, o)
		}
	}
}

// drawObject erases the object's previous footprint and paints its
// current one, leaving pixels owned by higher-layer objects untouched.
func (c *Compositor) drawObject(id ObjectID, o *Object) {
	cur := c.footprint(o)
	prev := o.prev
	if o.firstRender {
		prev = geom.Rect{}
	}
	aboveCur, abovePrev := c.aboveRegions(o, cur, prev)

	if !prev.IsEmpty() {
		below := c.belowRegions(o, prev)
		c.clearRegion(prev, abovePrev, below)
	}

	for y := cur.Y; y < cur.Y+cur.H; y++ {
		for x := cur.X; x < cur.X+cur.W; x++ {
			if geom.AnyContains(aboveCur, x, y) {
				continue
			}
			p, ok := c.samplePixel(o, x, y)
			if !ok || p.A == 0 {
				continue
			}
			c.writePixel(x, y, p)
		}
	}

	o.prev = cur
	o.firstRender = false
}

// clearRegion restores a rectangle the object no longer covers. Pixels
// under a higher-layer object are left alone; pixels over a lower-layer
// object are resampled from it, falling through transparent samples to
// the next object down; everything else reverts to the background color.
func (c *Compositor) clearRegion(prev geom.Rect, abovePrev []geom.Rect, below []region) {
	for y := prev.Y; y < prev.Y+prev.H; y++ {
		for x := prev.X; x < prev.X+prev.W; x++ {
			if geom.AnyContains(abovePrev, x, y) {
				continue
			}
			restored := false
			for i := len(below) - 1; i >= 0; i-- {
				if !below[i].rect.Contains(x, y) {
					continue
				}
				owner := c.objects.At(int(below[i].owner))
				if owner == nil {
					continue
				}
				p, ok := c.samplePixel(owner, x, y)
				if !ok || p.A == 0 {
					continue
				}
				c.writePixel(x, y, p)
				restored = true
				break
			}
			if !restored {
				c.writeBackground(x, y)
			}
		}
	}
}

func (c *Compositor) writePixel(x, y uint32, p pixel.Pixel) {
	off := (int(y)*int(c.width) + int(x)) * c.bpp
	c.format.Put(c.pixels[off:], p)
	c.portioner.TakePixel(x, y)
}

func (c *Compositor) writeBackground(x, y uint32) {
	off := (int(y)*int(c.width) + int(x)) * c.bpp
	copy(c.pixels[off:off+c.bpp], c.clear)
	c.portioner.TakePixel(x, y)
}

// samplePixel returns the object's color at a buffer coordinate inside
// its footprint. The bool result is false when the object contributes no
// pixel there: outside the tilted shape, past the texture edge, or a
// missing texture.
func (c *Compositor) samplePixel(o *Object, x, y uint32) (pixel.Pixel, bool) {
	if o.transform == nil {
		if o.hasColor {
			return o.color, true
		}
		tex := c.textures.At(int(o.texture))
		if tex == nil {
			return pixel.Pixel{}, false
		}
		return tex.pixelAt(x-o.bounds.X, y-o.bounds.Y)
	}

	// Sample at the pixel center so right-angle rotations land on exact
	// texel boundaries.
	fx, fy := float64(x)+0.5, float64(y)+0.5
	if !o.transform.tilted.Contains(fx, fy) {
		return pixel.Pixel{}, false
	}
	if o.hasColor {
		return o.color, true
	}
	tex := c.textures.At(int(o.texture))
	if tex == nil {
		return pixel.Pixel{}, false
	}
	tx, ty := o.transform.inverse.Apply(fx-float64(o.bounds.X), fy-float64(o.bounds.Y))
	if c.sampleMode == SampleBilinear {
		p := sampleBilinear(*tex, tx-0.5, ty-0.5, pixel.Transparent)
		return p, !p.IsTransparent()
	}
	return sampleNearest(*tex, tx, ty)
}
