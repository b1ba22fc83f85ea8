package compositor

import "github.com/gogpu/compositor/geom"

// region is a slice of the buffer owned by a specific object, used when
// restoring pixels a departing object used to cover.
type region struct {
	rect  geom.Rect
	owner ObjectID
}

func (c *Compositor) bufferRect() geom.Rect {
	return geom.Rect{W: c.width, H: c.height}
}

// footprint returns the buffer pixels an object currently covers: the
// bounding rect of its tilted shape when rotated, its bounds otherwise,
// clipped to the buffer. Returns an empty rect for fully off-buffer
// objects.
func (c *Compositor) footprint(o *Object) geom.Rect {
	r := o.bounds
	if o.transform != nil {
		r = o.transform.tilted.Bounds()
	}
	clipped, ok := geom.Intersect(r, c.bufferRect())
	if !ok {
		return geom.Rect{}
	}
	return clipped
}

// aboveRegions collects, for every object on a strictly higher layer, its
// current footprint intersected with cur and with prev. Pixels inside the
// first set are not painted; pixels inside the second set are not cleared.
func (c *Compositor) aboveRegions(o *Object, cur, prev geom.Rect) (aboveCur, abovePrev []geom.Rect) {
	for li := o.layer + 1; li < len(c.layers); li++ {
		for _, oid := range c.layers[li].objects {
			other := c.objects.At(int(oid))
			if other == nil || other.bounds.IsEmpty() {
				continue
			}
			fp := c.footprint(other)
			if r, ok := geom.Intersect(fp, cur); ok {
				aboveCur = append(aboveCur, r)
			}
			if r, ok := geom.Intersect(fp, prev); ok {
				abovePrev = append(abovePrev, r)
			}
		}
	}
	return aboveCur, abovePrev
}

// belowRegions collects, for every object on a strictly lower layer, its
// current footprint intersected with prev. Cleared pixels inside one of
// these regions are restored by resampling the owning object instead of
// the background. The result is ordered bottom layer first.
func (c *Compositor) belowRegions(o *Object, prev geom.Rect) []region {
	var regions []region
	for li := 0; li < o.layer; li++ {
		for _, oid := range c.layers[li].objects {
			other := c.objects.At(int(oid))
			if other == nil || other.bounds.IsEmpty() {
				continue
			}
			if r, ok := geom.Intersect(c.footprint(other), prev); ok {
				regions = append(regions, region{rect: r, owner: oid})
			}
		}
	}
	return regions
}
