package compositor

import (
	"slices"
	"sort"
)

// layer is one z-slice of the scene. Layers are created lazily when the
// first object names their key, and kept sorted by key so stacking order
// follows the key order regardless of insertion order.
type layer struct {
	// key is the sparse user-facing z value. Higher keys stack above
	// lower ones.
	key uint32

	// objects lists every object on this layer, in insertion order.
	objects []ObjectID

	// pending lists objects on this layer whose footprint changed since
	// the last draw call. Drained (and cleared) per layer by DrawAll.
	pending []ObjectID
}

// layerIndex returns the index of the layer with the given key, creating
// it in sorted position when absent. Existing layer indices held by
// objects are fixed up after an insertion.
func (c *Compositor) layerIndex(key uint32) int {
	i := sort.Search(len(c.layers), func(i int) bool {
		return c.layers[i].key >= key
	})
	if i < len(c.layers) && c.layers[i].key == key {
		return i
	}
	c.layers = slices.Insert(c.layers, i, layer{key: key})
	for id := range c.objects.Len() {
		o := c.objects.At(id)
		if o != nil && o.layer >= i {
			o.layer++
		}
	}
	return i
}

// markPending records that an object needs redrawing. Idempotent between
// draws: an object already queued on its layer is not queued again.
func (c *Compositor) markPending(id ObjectID) {
	l := &c.layers[c.objects.At(int(id)).layer]
	if slices.Contains(l.pending, id) {
		return
	}
	l.pending = append(l.pending, id)
}
