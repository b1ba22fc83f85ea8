package compositor

import (
	"fmt"
	"slices"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/pixel"
)

// ObjectID is a stable handle for an object in the compositor.
// It stays valid across inserts and removals of other objects.
type ObjectID int

// TextureID is a stable handle for a texture stored in the compositor.
type TextureID int

// noTexture marks objects without a texture reference.
const noTexture TextureID = -1

// Object is one rectangular element of the scene: a position on a layer
// plus either a flat color or a texture reference, and an optional
// rotation. Objects are created through the Compositor and mutated through
// its move/rotate calls; callers only ever hold the ObjectID.
type Object struct {
	// layer indexes the compositor's sorted layer list (not the sparse
	// user-facing z-key).
	layer int

	// bounds is the unrotated pixel footprint.
	bounds geom.Rect

	// prev is the footprint actually drawn by the last draw call: the
	// tilted bounding rect when the object was rotated, bounds otherwise.
	// Only meaningful once firstRender is false.
	prev geom.Rect

	// color is used when hasColor is set; otherwise texture names the
	// pixel source. A color object with alpha zero draws nothing.
	color    pixel.Pixel
	hasColor bool
	texture  TextureID

	// rotation is the current rotation in degrees; transform caches the
	// derived inverse matrix and tilted footprint, and is nil when the
	// object is axis-aligned.
	rotation  float64
	transform *transformState

	// firstRender is true until the object has been drawn once; the first
	// draw has no previous footprint to clear.
	firstRender bool
}

// transformState caches the per-rotation geometry: the inverse matrix
// mapping local drawn coordinates back into texture space, and the tilted
// footprint in global coordinates. Rebuilt on rotation changes, translated
// in O(1) on moves.
type transformState struct {
	inverse geom.Matrix
	tilted  geom.TiltedRect
}

// CreateColorObject adds a flat-color rectangle to the scene on the layer
// with the given key, creating the layer if needed. The object is queued
// for the next draw call.
func (c *Compositor) CreateColorObject(layerKey uint32, bounds geom.Rect, color pixel.Pixel) (ObjectID, error) {
	if bounds.IsEmpty() {
		return 0, fmt.Errorf("compositor: create object: %w", ErrInvalidDimensions)
	}
	return c.addObject(layerKey, Object{
		bounds:      bounds,
		color:       color,
		hasColor:    true,
		texture:     noTexture,
		firstRender: true,
	}), nil
}

// CreateTextureObject adds a textured rectangle to the scene on the layer
// with the given key. The texture must already be registered with
// AddTexture; bounds larger than the texture leave the excess unpainted.
func (c *Compositor) CreateTextureObject(layerKey uint32, bounds geom.Rect, tex TextureID) (ObjectID, error) {
	if bounds.IsEmpty() {
		return 0, fmt.Errorf("compositor: create object: %w", ErrInvalidDimensions)
	}
	if _, err := c.texture(tex); err != nil {
		return 0, err
	}
	return c.addObject(layerKey, Object{
		bounds:      bounds,
		texture:     tex,
		firstRender: true,
	}), nil
}

func (c *Compositor) addObject(layerKey uint32, o Object) ObjectID {
	li := c.layerIndex(layerKey)
	o.layer = li
	id := ObjectID(c.objects.Insert(o))
	c.layers[li].objects = append(c.layers[li].objects, id)
	c.markPending(id)
	return id
}

// ObjectBounds returns the object's unrotated bounds.
func (c *Compositor) ObjectBounds(id ObjectID) (geom.Rect, error) {
	o, err := c.object(id)
	if err != nil {
		return geom.Rect{}, err
	}
	return o.bounds, nil
}

// MoveObjectBy shifts an object by a signed pixel delta. Moves that would
// carry an edge past the top-left corner are clamped at zero on that
// axis; the clamped delta is what actually applies. The object is queued
// for the next draw call unless the clamped delta is zero.
func (c *Compositor) MoveObjectBy(id ObjectID, dx, dy int32) error {
	o, err := c.object(id)
	if err != nil {
		return err
	}
	nx := clampCoord(o.bounds.X, dx)
	ny := clampCoord(o.bounds.Y, dy)
	adx := float64(nx) - float64(o.bounds.X)
	ady := float64(ny) - float64(o.bounds.Y)
	if adx == 0 && ady == 0 {
		return nil
	}
	o.bounds.X, o.bounds.Y = nx, ny
	if o.transform != nil {
		o.transform.tilted.Translate(adx, ady)
	}
	c.markPending(id)
	return nil
}

func clampCoord(v uint32, d int32) uint32 {
	n := int64(v) + int64(d)
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// SetObjectRotation rotates an object about the center of its bounds.
// Zero restores the axis-aligned fast path exactly. The object is queued
// for the next draw call.
func (c *Compositor) SetObjectRotation(id ObjectID, degrees float64) error {
	o, err := c.object(id)
	if err != nil {
		return err
	}
	if degrees == o.rotation {
		return nil
	}
	if degrees == 0 {
		o.rotation = 0
		o.transform = nil
		c.markPending(id)
		return nil
	}
	cx := float64(o.bounds.W) / 2
	cy := float64(o.bounds.H) / 2
	forward := geom.Translate(cx, cy).Mul(geom.RotateDegrees(degrees)).Mul(geom.Translate(-cx, -cy))
	inverse, ok := forward.Invert()
	if !ok {
		// A pure rotation always inverts; keep the old transform if
		// float trouble ever proves otherwise.
		return fmt.Errorf("compositor: object %d: singular rotation matrix", id)
	}
	o.rotation = degrees
	o.transform = &transformState{
		inverse: inverse,
		tilted:  geom.TiltRect(o.bounds, degrees),
	}
	c.markPending(id)
	return nil
}

// ObjectNeedsDrawing reports whether the object has changes the next
// draw call will paint. Useful for skipping DrawAll entirely on idle
// frames.
func (c *Compositor) ObjectNeedsDrawing(id ObjectID) (bool, error) {
	o, err := c.object(id)
	if err != nil {
		return false, err
	}
	if o.firstRender {
		return true, nil
	}
	return slices.Contains(c.layers[o.layer].pending, id), nil
}

// RemoveObject deletes an object from the scene, immediately restoring
// the pixels it covered from lower layers or the background, and frees
// its slot for reuse by later objects.
func (c *Compositor) RemoveObject(id ObjectID) error {
	o, err := c.object(id)
	if err != nil {
		return err
	}
	prev := o.prev
	if o.firstRender {
		// Never drawn: nothing on screen to restore.
		prev = geom.Rect{}
	}
	if !prev.IsEmpty() {
		_, abovePrev := c.aboveRegions(o, geom.Rect{}, prev)
		below := c.belowRegions(o, prev)
		c.clearRegion(prev, abovePrev, below)
	}
	l := &c.layers[o.layer]
	l.objects = slices.DeleteFunc(l.objects, func(oid ObjectID) bool { return oid == id })
	l.pending = slices.DeleteFunc(l.pending, func(oid ObjectID) bool { return oid == id })
	c.objects.Remove(int(id))
	logger().Debug("object removed", "id", int(id))
	return nil
}
