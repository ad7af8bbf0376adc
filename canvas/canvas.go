package canvas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	funimg "github.com/tristanphease/fun-images/core"
)

// Canvas is a raster surface backed by a gg drawing context.
// Single pixels are written straight into the context image.
type Canvas struct {
	dc *gg.Context
	im *image.RGBA
}

var _ funimg.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given bounds size.
func NewCanvas(bounds image.Rectangle) *Canvas {
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	return &Canvas{dc: dc, im: dc.Image().(*image.RGBA)}
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.dc.Width(), c.dc.Height())
}

// At returns the color of the pixel at (x, y).
func (c *Canvas) At(x, y int) color.Color {
	return c.im.At(x, y)
}

// SetPixel sets a single pixel, ignoring coordinates outside the canvas.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if !image.Pt(x, y).In(c.Bounds()) {
		return
	}
	r, g, b, a := col.RGBA()
	c.im.SetRGBA(x, y, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

// FillCircle draws a filled circle of radius r centered on (x, y).
func (c *Canvas) FillCircle(x, y, r int, col color.Color) {
	if r < 1 {
		c.SetPixel(x, y, col)
		return
	}
	c.dc.DrawCircle(float64(x), float64(y), float64(r))
	c.dc.SetFillStyle(gg.NewSolidPattern(col))
	c.dc.Fill()
}

// FillPolygon fills the polygon described by the ordered points.
func (c *Canvas) FillPolygon(pts []image.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.dc.NewSubPath()
	c.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.dc.ClosePath()
	c.dc.SetFillStyle(gg.NewSolidPattern(col))
	c.dc.Fill()
}

// Line strokes a one pixel wide segment.
func (c *Canvas) Line(from, to funimg.Point, col color.Color) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.SetLineWidth(1.0)
	c.dc.SetStrokeStyle(gg.NewSolidPattern(col))
	c.dc.Stroke()
}

// Fill paints every pixel with col.
func (c *Canvas) Fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// Image returns the image the canvas draws into. The image keeps changing
// with further drawing calls, use Snapshot to capture a frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Snapshot returns an independent copy of the current canvas content.
func (c *Canvas) Snapshot() *image.NRGBA {
	return imaging.Clone(c.dc.Image())
}
