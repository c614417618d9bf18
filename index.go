package collision

import "github.com/gridbugs/collision-detection-experiments/aabb"

// Index is a collection of (AABB, value) entries that can be queried for
// overlap with a box. LooseQuadTree and naive.Index both implement it.
type Index[T any] interface {
	// Insert stores value under box.
	Insert(box aabb.AABB, value T)
	// ForEachIntersection calls fn for each stored entry intersecting box.
	ForEachIntersection(box aabb.AABB, fn func(aabb.AABB, *T))
	// Clear removes every entry.
	Clear()
	// Len returns the number of stored entries.
	Len() int
}

var _ Index[struct{}] = (*LooseQuadTree[struct{}])(nil)
