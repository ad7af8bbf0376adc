package funimg

import (
	"image"
	"image/color"
	"math"
)

// Canvas is the raster surface the generators draw on.
type Canvas interface {
	Bounds() image.Rectangle
	At(x, y int) color.Color
	SetPixel(x, y int, c color.Color)
	// FillCircle draws a filled circle of radius r centered on (x, y).
	// A radius below one sets the single center pixel.
	FillCircle(x, y, r int, c color.Color)
	FillPolygon(pts []image.Point, c color.Color)
	Line(from, to Point, c color.Color)
	// Fill paints the whole canvas.
	Fill(c color.Color)
}

// thickLinePolygon returns the quadrilateral covering the segment p1-p2
// widened by thickness on each side.
func thickLinePolygon(p1, p2 image.Point, thickness int) []image.Point {
	angle := math.Atan2(float64(p2.Y-p1.Y), float64(p2.X-p1.X))
	perp1 := angle + math.Pi/2
	perp2 := angle - math.Pi/2

	return []image.Point{
		addDistance(p1, perp1, thickness),
		addDistance(p1, perp2, thickness),
		addDistance(p2, perp2, thickness),
		addDistance(p2, perp1, thickness),
	}
}

func addDistance(p image.Point, angle float64, distance int) image.Point {
	d := float64(distance)
	return image.Pt(p.X+int(math.Cos(angle)*d), p.Y+int(math.Sin(angle)*d))
}
