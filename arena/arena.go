// Package arena provides a generic slot arena: a container that hands out
// stable integer indices and reuses freed slots in FIFO order.
//
// The compositor cross-references objects, textures, and layer membership
// by raw index, so removing an element must never shift the indices of the
// others. A swap-remove or compacting slice is unsound for that contract;
// the arena keeps freed slots in place and recycles them on insert.
package arena

// Arena is a slot container for values of type T.
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	slots []T
	free  []int
}

// Insert stores v and returns its index. The oldest freed index is reused
// first; when none exist the arena grows. The returned index stays valid
// until Remove is called with it.
func (a *Arena[T]) Insert(v T) int {
	if len(a.free) > 0 {
		i := a.free[0]
		a.free = a.free[1:]
		a.slots[i] = v
		return i
	}
	a.slots = append(a.slots, v)
	return len(a.slots) - 1
}

// Remove frees the slot at index, resetting it to the zero value of T so
// the old element can be collected. Removing an out-of-range index is a
// no-op, never a fault.
func (a *Arena[T]) Remove(index int) {
	if index < 0 || index >= len(a.slots) {
		return
	}
	var zero T
	a.slots[index] = zero
	a.free = append(a.free, index)
}

// Replace swaps the value at index for v and frees the slot.
// Out-of-range indices are ignored.
func (a *Arena[T]) Replace(index int, v T) {
	if index < 0 || index >= len(a.slots) {
		return
	}
	a.slots[index] = v
	a.free = append(a.free, index)
}

// At returns a pointer to the slot at index, or nil when the index is out
// of range. Accessing a freed slot yields the zero value.
func (a *Arena[T]) At(index int) *T {
	if index < 0 || index >= len(a.slots) {
		return nil
	}
	return &a.slots[index]
}

// Len returns the total number of slots, used and free.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// UsedLen returns the number of occupied slots.
func (a *Arena[T]) UsedLen() int {
	return len(a.slots) - len(a.free)
}

// UnusedLen returns the number of freed slots awaiting reuse.
func (a *Arena[T]) UnusedLen() int {
	return len(a.free)
}
