package funimg

import (
	"image"
	"image/color"
)

// MinTriangleHeight is the height under which triangles are no longer subdivided.
const MinTriangleHeight = 10.0

// ZoomFrames is the number of frames of the zoom animation.
const ZoomFrames = 21

// Orientation tells which way a triangle is drawn.
type Orientation int

const (
	OrientationUp Orientation = iota
	OrientationDown
)

// Point is a position on the canvas in floating point coordinates.
type Point struct {
	X, Y float64
}

// Triangle is an equilateral-ish triangle whose width equals its height.
type Triangle struct {
	Center      Point
	Height      float64
	Orientation Orientation
}

// Vertices returns the three corners of the triangle in drawing order.
func (t Triangle) Vertices() [3]Point {
	f := 1.0
	if t.Orientation == OrientationUp {
		f = -1.0
	}
	h := t.Height / 2
	c := t.Center

	return [3]Point{
		{c.X, c.Y - f*h},
		{c.X + f*h, c.Y + f*h},
		{c.X - f*h, c.Y + f*h},
	}
}

// Subdivide splits the triangle into three half height children,
// one toward each corner. Children keep the parent orientation.
func (t Triangle) Subdivide() [3]Triangle {
	f := -1.0
	if t.Orientation == OrientationUp {
		f = 1.0
	}
	nh := t.Height / 2
	off := f * nh / 2
	c := t.Center

	return [3]Triangle{
		{Point{c.X - off, c.Y - off}, nh, t.Orientation},
		{Point{c.X + off, c.Y - off}, nh, t.Orientation},
		{Point{c.X, c.Y + off}, nh, t.Orientation},
	}
}

// RootTriangle returns the outermost triangle for a size x size canvas.
// zoom in [0,1] moves the center toward the point where the bottom left
// child of the zoomed root covers the unzoomed root, and grows the height
// up to twice the original, so zoom 1 shows the same picture as zoom 0.
func RootTriangle(size int, zoom float64) Triangle {
	c := float64(size) / 2
	h := c * 1.8
	target := Point{c + h/2, c - h/2}

	return Triangle{
		Center: Point{
			X: c + (target.X-c)*zoom,
			Y: c + (target.Y-c)*zoom,
		},
		Height:      h * (1 + zoom),
		Orientation: OrientationDown,
	}
}

// ZoomSteps returns the zoom factors 0, 1/20, ..., 1 of the zoom animation.
func ZoomSteps() []float64 {
	steps := make([]float64, ZoomFrames)
	for i := range steps {
		steps[i] = float64(i) / float64(ZoomFrames-1)
	}
	return steps
}

// Subdivider drains a LIFO work list of triangles. Every popped triangle
// tall enough is replaced on the stack by its three children, so the
// stack never grows beyond 2 entries per subdivision level plus one.
type Subdivider struct {
	stack     []Triangle
	minHeight float64
}

// NewSubdivider creates a subdivider seeded with the root triangle.
func NewSubdivider(root Triangle) *Subdivider {
	return &Subdivider{
		stack:     []Triangle{root},
		minHeight: MinTriangleHeight,
	}
}

// Next pops the next triangle to draw. It returns false when the stack is empty.
func (s *Subdivider) Next() (Triangle, bool) {
	n := len(s.stack)
	if n == 0 {
		return Triangle{}, false
	}
	t := s.stack[n-1]
	s.stack = s.stack[:n-1]

	if t.Height >= s.minHeight {
		children := t.Subdivide()
		s.stack = append(s.stack, children[:]...)
	}
	return t, true
}

// Pending returns the number of triangles still waiting on the stack.
func (s *Subdivider) Pending() int {
	return len(s.stack)
}

// DefaultSierpinskiSize is the default side of the Sierpinski image.
const DefaultSierpinskiSize = 1024

// SierpinskiOptions configures the Sierpinski render.
type SierpinskiOptions struct {
	Size       int
	Zoom       float64
	Color      color.NRGBA
	Background color.NRGBA
}

// Validate checks the canvas size and zoom factor.
func (o SierpinskiOptions) Validate() error {
	if o.Size < 1 {
		return wrapf(ErrInvalidSize, "got %d", o.Size)
	}
	if o.Zoom < 0 || o.Zoom > 1 {
		return wrapf(ErrInvalidZoom, "got %g", o.Zoom)
	}
	return nil
}

// Bounds returns the image rectangle of the render.
func (o SierpinskiOptions) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Size, o.Size)
}

// DrawSierpinski draws the outline of every triangle of the subdivision
// and returns how many triangles were drawn.
func DrawSierpinski(c Canvas, o SierpinskiOptions) int {
	if o.Background.A > 0 {
		c.Fill(o.Background)
	}
	drawn := 0
	s := NewSubdivider(RootTriangle(o.Size, o.Zoom))
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		v := t.Vertices()
		c.Line(v[0], v[1], o.Color)
		c.Line(v[1], v[2], o.Color)
		c.Line(v[2], v[0], o.Color)
		drawn++
	}
	return drawn
}
