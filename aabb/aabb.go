// Package aabb provides the axis-aligned bounding box used by the collision
// indexes. Coordinates follow screen space: X grows to the right and Y grows
// downward, so "top" is the smaller Y.
package aabb

import "github.com/go-gl/mathgl/mgl32"

// AABB is an axis-aligned rectangle described by its top-left corner and
// its size. Size components are expected to be non-negative.
type AABB struct {
	TopLeft mgl32.Vec2
	Size    mgl32.Vec2
}

// Quadrants is the exact four-way split of a region.
type Quadrants struct {
	TopLeft     AABB
	TopRight    AABB
	BottomLeft  AABB
	BottomRight AABB
}

// New creates an AABB from its top-left corner and size.
func New(topLeft, size mgl32.Vec2) AABB {
	return AABB{TopLeft: topLeft, Size: size}
}

// BottomRight returns the corner opposite TopLeft.
func (a AABB) BottomRight() mgl32.Vec2 {
	return a.TopLeft.Add(a.Size)
}

// Centre returns the midpoint of the box.
func (a AABB) Centre() mgl32.Vec2 {
	return a.TopLeft.Add(a.Size.Mul(0.5))
}

// IsIntersecting reports whether a and other overlap with a non-zero area.
// Boxes that only share an edge or a corner do not intersect.
func (a AABB) IsIntersecting(other AABB) bool {
	aBR := a.BottomRight()
	oBR := other.BottomRight()
	return a.TopLeft.X() < oBR.X() && aBR.X() > other.TopLeft.X() &&
		a.TopLeft.Y() < oBR.Y() && aBR.Y() > other.TopLeft.Y()
}

// Contains reports whether other lies entirely inside a, edges included.
func (a AABB) Contains(other AABB) bool {
	aBR := a.BottomRight()
	oBR := other.BottomRight()
	return other.TopLeft.X() >= a.TopLeft.X() && oBR.X() <= aBR.X() &&
		other.TopLeft.Y() >= a.TopLeft.Y() && oBR.Y() <= aBR.Y()
}

// SplitFour divides the box into four equal quadrants.
func (a AABB) SplitFour() Quadrants {
	half := a.Size.Mul(0.5)
	x, y := a.TopLeft.X(), a.TopLeft.Y()
	return Quadrants{
		TopLeft:     AABB{TopLeft: a.TopLeft, Size: half},
		TopRight:    AABB{TopLeft: mgl32.Vec2{x + half.X(), y}, Size: half},
		BottomLeft:  AABB{TopLeft: mgl32.Vec2{x, y + half.Y()}, Size: half},
		BottomRight: AABB{TopLeft: a.TopLeft.Add(half), Size: half},
	}
}

// DoubleAboutCentre returns a box with the same centre and twice the size.
func (a AABB) DoubleAboutCentre() AABB {
	return AABB{
		TopLeft: a.TopLeft.Sub(a.Size.Mul(0.5)),
		Size:    a.Size.Mul(2),
	}
}

// Array returns the quadrants in top-left, top-right, bottom-left,
// bottom-right order.
func (q Quadrants) Array() [4]AABB {
	return [4]AABB{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight}
}
