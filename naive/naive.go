// Package naive provides a linear-scan collision index. It stores every
// entry in a single slice and tests all of them on each query, which makes
// it a simple reference to check and benchmark the spatial indexes against.
package naive

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gridbugs/collision-detection-experiments/aabb"
)

type entry[T any] struct {
	box   aabb.AABB
	value T
}

// Index is an unordered list of (AABB, value) entries.
type Index[T any] struct {
	items []entry[T]
}

// New creates an empty index. The world size is unused and only accepted so
// the constructor matches the spatial indexes.
func New[T any](_ mgl32.Vec2) *Index[T] {
	return &Index[T]{}
}

// Insert appends an entry.
func (n *Index[T]) Insert(box aabb.AABB, value T) {
	n.items = append(n.items, entry[T]{box: box, value: value})
}

// ForEachIntersection calls fn for every stored entry intersecting box, in
// insertion order.
func (n *Index[T]) ForEachIntersection(box aabb.AABB, fn func(aabb.AABB, *T)) {
	for i := range n.items {
		e := &n.items[i]
		if box.IsIntersecting(e.box) {
			fn(e.box, &e.value)
		}
	}
}

// Clear drops every entry, keeping the backing storage.
func (n *Index[T]) Clear() {
	clear(n.items)
	n.items = n.items[:0]
}

// Len returns the number of stored entries.
func (n *Index[T]) Len() int {
	return len(n.items)
}
