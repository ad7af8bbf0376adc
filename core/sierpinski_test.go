package funimg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	funimg "github.com/tristanphease/fun-images/core"
)

// expectedTriangles is the size of a ternary tree whose levels are the
// heights h, h/2, h/4, ... still at or above the minimum height, plus the leaves.
func expectedTriangles(h float64) int {
	levels := 0
	for ; h >= funimg.MinTriangleHeight; h /= 2 {
		levels++
	}
	return (int(math.Pow(3, float64(levels+1))) - 1) / 2
}

func drainTriangles(root funimg.Triangle) (drawn int, leaves []funimg.Triangle, maxPending int) {
	s := funimg.NewSubdivider(root)
	for tri, ok := s.Next(); ok; tri, ok = s.Next() {
		drawn++
		if tri.Height < funimg.MinTriangleHeight {
			leaves = append(leaves, tri)
		}
		maxPending = max(maxPending, s.Pending())
	}
	return drawn, leaves, maxPending
}

func TestSierpinski_ShouldDrawTernaryTree(t *testing.T) {
	for _, h := range []float64{9.99, 10, 19, 20, 100, 921.6} {
		root := funimg.Triangle{Center: funimg.Point{X: 500, Y: 500}, Height: h}
		drawn, leaves, _ := drainTriangles(root)

		assert.Equal(t, expectedTriangles(h), drawn, "height %g", h)
		assert.Equal(t, (drawn*2+1)/3, len(leaves), "height %g leaves", h)
	}

	drawn, _, _ := drainTriangles(funimg.Triangle{Height: 100})
	assert.Equal(t, 121, drawn)

	drawn, _, _ = drainTriangles(funimg.Triangle{Height: 10})
	assert.Equal(t, 4, drawn, "height 10 is still subdivided")
}

func TestSierpinski_LeavesShouldBeBetweenHalfAndFullMinimum(t *testing.T) {
	_, leaves, _ := drainTriangles(funimg.Triangle{Height: 700})
	require.NotEmpty(t, leaves)
	for _, l := range leaves {
		assert.GreaterOrEqual(t, l.Height, funimg.MinTriangleHeight/2)
		assert.Less(t, l.Height, funimg.MinTriangleHeight)
	}
}

func TestSierpinski_StackShouldStayShallow(t *testing.T) {
	_, _, maxPending := drainTriangles(funimg.Triangle{Height: 1000})
	// 7 subdividing levels for 1000 -> 7.8
	assert.LessOrEqual(t, maxPending, 2*7+1)
}

func TestSierpinski_ChildrenShouldKeepOrientation(t *testing.T) {
	for _, o := range []funimg.Orientation{funimg.OrientationUp, funimg.OrientationDown} {
		parent := funimg.Triangle{Center: funimg.Point{X: 100, Y: 100}, Height: 40, Orientation: o}
		for _, child := range parent.Subdivide() {
			assert.Equal(t, o, child.Orientation)
			assert.Equal(t, 20.0, child.Height)
		}
	}
}

func TestSierpinski_ChildrenShouldSitInParentCorners(t *testing.T) {
	parent := funimg.Triangle{Center: funimg.Point{X: 100, Y: 100}, Height: 40, Orientation: funimg.OrientationDown}
	pv := parent.Vertices()

	// Every parent vertex is a vertex of exactly one child.
	for _, v := range pv {
		shared := 0
		for _, child := range parent.Subdivide() {
			for _, cv := range child.Vertices() {
				if math.Abs(cv.X-v.X) < 1e-9 && math.Abs(cv.Y-v.Y) < 1e-9 {
					shared++
				}
			}
		}
		assert.Equal(t, 1, shared, "vertex %v", v)
	}
}

func TestSierpinski_FullZoomShouldReproduceUnzoomedRoot(t *testing.T) {
	const size = 1024
	start := funimg.RootTriangle(size, 0)
	assert.Equal(t, funimg.Point{X: 512, Y: 512}, start.Center)
	assert.InDelta(t, 921.6, start.Height, 1e-9)

	end := funimg.RootTriangle(size, 1)
	assert.InDelta(t, 2*start.Height, end.Height, 1e-9)

	child := end.Subdivide()[1]
	assert.InDelta(t, start.Center.X, child.Center.X, 1e-9)
	assert.InDelta(t, start.Center.Y, child.Center.Y, 1e-9)
	assert.InDelta(t, start.Height, child.Height, 1e-9)
}

func TestSierpinski_ZoomStepsShouldSpanUnitInterval(t *testing.T) {
	steps := funimg.ZoomSteps()
	require.Len(t, steps, 21)
	assert.Equal(t, 0.0, steps[0])
	assert.Equal(t, 1.0, steps[20])
	assert.InDelta(t, 0.05, steps[1], 1e-12)
}

func TestSierpinski_ValidateShouldRejectOutOfRangeZoom(t *testing.T) {
	o := funimg.SierpinskiOptions{Size: 64, Zoom: 1.5}
	assert.ErrorIs(t, o.Validate(), funimg.ErrInvalidZoom)

	o.Zoom = 0.5
	assert.NoError(t, o.Validate())

	o.Size = 0
	assert.ErrorIs(t, o.Validate(), funimg.ErrInvalidSize)
}
