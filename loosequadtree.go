// Package collision implements a broad-phase collision index: a loose
// quadtree over a fixed-size 2D world.
//
// Features:
// - Implicit tree stored in a flat slice; children are found by offset, not pointer.
// - Loose quadrants: each child is tested with a region twice its nominal size,
//   so an entry descends only as far as its own size allows.
// - O(1) Clear via a generation counter; storage is kept and reused.
// - No allocations on Insert once the tree has reached its working size.
package collision

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gridbugs/collision-detection-experiments/aabb"
)

// Child slot order inside a block.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
	numChildren
)

// maxDepth bounds how far Insert descends. Below it a quadrant's loose
// margin approaches float32 rounding of the region coordinates, so
// zero-size and near-zero-size entries stop here instead of subdividing
// forever.
const maxDepth = 16

// entry is a stored (AABB, value) pair.
type entry[T any] struct {
	box   aabb.AABB
	value T
}

// node is one quadrant. Its contents are only meaningful when generation
// matches the tree's generation; otherwise the slot is logically empty.
type node[T any] struct {
	items      []entry[T]
	children   int    // offset of the 4-slot child block, 0 if none
	generation uint64 // tree generation this node was last reset in
}

// reuse resets the node in place for generation gen, keeping item storage.
func (n *node[T]) reuse(gen uint64) {
	clear(n.items)
	n.items = n.items[:0]
	n.children = 0
	n.generation = gen
}

// LooseQuadTree indexes AABBs inside the region (0,0)-size.
//
// Entries must lie inside that region. An entry whose AABB lies even
// partly outside it is still stored, but queries may miss it.
//
// A LooseQuadTree is not safe for concurrent use.
type LooseQuadTree[T any] struct {
	nodes      []node[T]
	size       mgl32.Vec2
	generation uint64
	nextFree   int // first slot of the next unused child block
	count      int
	itemCap    int
}

// NewLooseQuadTree creates an empty tree covering (0,0)-size. Both size
// components must be positive.
func NewLooseQuadTree[T any](size mgl32.Vec2, opts ...Option) *LooseQuadTree[T] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	q := &LooseQuadTree[T]{
		nodes:      make([]node[T], 1, max(1, o.nodeCapacity)),
		size:       size,
		generation: 1,
		nextFree:   1,
		itemCap:    o.itemCapacity,
	}
	q.nodes[0].generation = q.generation
	return q
}

// Clear logically empties the tree in O(1). Only the root is reset; every
// other node goes stale and is reset the next time Insert reaches it.
// Node storage is kept and never shrinks.
//
// Clear also rewinds the child block cursor, so later inserts hand out the
// retained slots again instead of appending new ones. A reused block can
// hold stale siblings next to a live node, which is why ForEachIntersection
// treats any node from an older generation as empty.
func (q *LooseQuadTree[T]) Clear() {
	q.generation++
	q.nodes[0].reuse(q.generation)
	q.nextFree = 1
	q.count = 0
}

// Insert stores value under box. It descends from the root, halving the
// quadrant extent at each level, and stops at the first node whose children
// would be smaller than box on either axis, or at maxDepth.
func (q *LooseQuadTree[T]) Insert(box aabb.AABB, value T) {
	centre := box.Centre()
	maxSize := q.size.Mul(0.5)
	index := 0
	for depth := 0; ; depth++ {
		n := &q.nodes[index]
		if n.generation != q.generation {
			n.reuse(q.generation)
		}
		if depth == maxDepth || box.Size.X() > maxSize.X() || box.Size.Y() > maxSize.Y() {
			if n.items == nil && q.itemCap > 0 {
				n.items = make([]entry[T], 0, q.itemCap)
			}
			n.items = append(n.items, entry[T]{box: box, value: value})
			q.count++
			return
		}
		offset := n.children
		if offset == 0 {
			// allocChildren may move the slice; n is stale after it.
			offset = q.allocChildren()
			q.nodes[index].children = offset
		}
		if centre.X() < maxSize.X() {
			if centre.Y() < maxSize.Y() {
				index = offset + topLeft
			} else {
				index = offset + bottomLeft
				centre[1] -= maxSize.Y()
			}
		} else {
			if centre.Y() < maxSize.Y() {
				index = offset + topRight
				centre[0] -= maxSize.X()
			} else {
				index = offset + bottomRight
				centre = centre.Sub(maxSize)
			}
		}
		maxSize = maxSize.Mul(0.5)
	}
}

// allocChildren reserves the next block of 4 slots and returns its offset.
// Slots left over from earlier generations are reused as they are; Insert
// resets them lazily.
func (q *LooseQuadTree[T]) allocChildren() int {
	offset := q.nextFree
	if offset == 0 {
		panic("collision: child block allocated over the root slot")
	}
	q.nextFree += numChildren
	if missing := q.nextFree - len(q.nodes); missing > 0 {
		q.nodes = extendSlice(q.nodes, missing)
	}
	return offset
}

// ForEachIntersection calls fn once for every stored entry whose AABB
// intersects box. Entries are visited pre-order: a node's own entries in
// insertion order, then its children top-left, top-right, bottom-left,
// bottom-right.
//
// fn must not call Insert or Clear on the same tree.
func (q *LooseQuadTree[T]) ForEachIntersection(box aabb.AABB, fn func(aabb.AABB, *T)) {
	root := aabb.New(mgl32.Vec2{}, q.size)
	q.forEachIntersection(0, root, box, fn)
}

func (q *LooseQuadTree[T]) forEachIntersection(index int, region, box aabb.AABB, fn func(aabb.AABB, *T)) {
	if index >= len(q.nodes) {
		return
	}
	n := &q.nodes[index]
	if n.generation != q.generation {
		return
	}
	for i := range n.items {
		e := &n.items[i]
		if e.box.IsIntersecting(box) {
			fn(e.box, &e.value)
		}
	}
	if n.children == 0 {
		return
	}
	// An entry in a child can overhang the child's quadrant by up to half
	// the quadrant size, so descent is tested against the doubled quadrant.
	for i, quadrant := range region.SplitFour().Array() {
		if quadrant.DoubleAboutCentre().IsIntersecting(box) {
			q.forEachIntersection(n.children+i, quadrant, box, fn)
		}
	}
}

// Len returns the number of entries inserted since the last Clear.
func (q *LooseQuadTree[T]) Len() int {
	return q.count
}

// Slots returns the number of node slots held in storage. It never
// decreases, including across Clear.
func (q *LooseQuadTree[T]) Slots() int {
	return len(q.nodes)
}

// Generation returns the current generation, starting at 1 and incremented
// by every Clear.
func (q *LooseQuadTree[T]) Generation() uint64 {
	return q.generation
}

// Size returns the extent of the root region.
func (q *LooseQuadTree[T]) Size() mgl32.Vec2 {
	return q.size
}
