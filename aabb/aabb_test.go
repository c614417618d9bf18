package aabb

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float32) AABB {
	return New(mgl32.Vec2{x, y}, mgl32.Vec2{w, h})
}

func TestCentreAndBottomRight(t *testing.T) {
	b := box(1, 4, 2, 6)
	require.Equal(t, mgl32.Vec2{2, 7}, b.Centre())
	require.Equal(t, mgl32.Vec2{3, 10}, b.BottomRight())
}

func TestIsIntersecting(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlap", box(0, 0, 5, 5), box(3, 3, 4, 4), true},
		{"identical", box(0, 0, 5, 5), box(0, 0, 5, 5), true},
		{"contained", box(0, 0, 10, 10), box(3, 3, 4, 4), true},
		{"separate on x", box(0, 0, 5, 5), box(6, 0, 5, 5), false},
		{"separate on y", box(0, 0, 5, 5), box(0, 6, 5, 5), false},
		{"touching edge", box(0, 0, 5, 5), box(5, 0, 5, 5), false},
		{"touching corner", box(0, 0, 5, 5), box(5, 5, 5, 5), false},
		{"overlap on x only", box(0, 0, 5, 5), box(2, 8, 5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.IsIntersecting(tt.b))
			require.Equal(t, tt.want, tt.b.IsIntersecting(tt.a), "intersection must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	outer := box(0, 0, 10, 10)
	require.True(t, outer.Contains(outer))
	require.True(t, outer.Contains(box(2, 2, 3, 3)))
	require.True(t, outer.Contains(box(0, 5, 10, 5)))
	require.False(t, outer.Contains(box(8, 8, 3, 1)))
	require.False(t, box(2, 2, 3, 3).Contains(outer))
}

func TestSplitFour(t *testing.T) {
	q := box(2, 4, 8, 6).SplitFour()
	require.Equal(t, box(2, 4, 4, 3), q.TopLeft)
	require.Equal(t, box(6, 4, 4, 3), q.TopRight)
	require.Equal(t, box(2, 7, 4, 3), q.BottomLeft)
	require.Equal(t, box(6, 7, 4, 3), q.BottomRight)

	arr := q.Array()
	require.Equal(t, [4]AABB{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight}, arr)
}

func TestDoubleAboutCentre(t *testing.T) {
	b := box(2, 2, 4, 2)
	d := b.DoubleAboutCentre()
	require.Equal(t, box(0, 1, 8, 4), d)
	require.Equal(t, b.Centre(), d.Centre())
	require.True(t, d.Contains(b))
}
