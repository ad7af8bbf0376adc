package funimg

import (
	"image"
	"image/color"
)

const (
	// DefaultSunburstSize is the side of the square sunburst image.
	DefaultSunburstSize = 1024
	sunburstThickness   = 6
	sunburstRadius      = 20
	sunburstMargin      = 20
)

// SunburstOptions configures the Farey sunburst.
type SunburstOptions struct {
	Order      int
	Size       int
	Color      color.NRGBA
	Background color.NRGBA
}

// NewSunburstOptions returns the options with the default canvas size.
func NewSunburstOptions(order int, c color.NRGBA) SunburstOptions {
	return SunburstOptions{Order: order, Size: DefaultSunburstSize, Color: c}
}

// Scale returns the pixel distance of one fraction unit.
func (o SunburstOptions) Scale() int {
	return o.Size/o.Order/2 - sunburstMargin
}

// Validate checks the options can produce a sunburst.
func (o SunburstOptions) Validate() error {
	if o.Order < 1 {
		return wrapf(ErrInvalidOrder, "got %d", o.Order)
	}
	if o.Size < 1 {
		return wrapf(ErrInvalidSize, "got %d", o.Size)
	}
	if o.Scale() < 1 {
		return wrapf(ErrFareyOrderTooLarge, "order %d on a %dpx canvas", o.Order, o.Size)
	}
	return nil
}

// Bounds returns the image rectangle the sunburst draws into.
func (o SunburstOptions) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Size, o.Size)
}

// DrawSunburst draws the Farey sequence of the given order eight times, once
// per octant around the center. Every fraction num/den is placed at
// (num, den) in its quadrant; the descending pass swaps both coordinates,
// which mirrors the ascending pass along the diagonal.
func DrawSunburst(c Canvas, o SunburstOptions) {
	if o.Background.A > 0 {
		c.Fill(o.Background)
	}
	scale := o.Scale()
	center := o.Size / 2

	quadrants := []func(x, y int) image.Point{
		func(x, y int) image.Point { return image.Pt(center+x*scale, center-y*scale) },
		func(x, y int) image.Point { return image.Pt(center+x*scale, center+y*scale) },
		func(x, y int) image.Point { return image.Pt(center-x*scale, center+y*scale) },
		func(x, y int) image.Point { return image.Pt(center-x*scale, center-y*scale) },
	}
	for _, position := range quadrants {
		drawOctant(c, position, NewFareyIterator(o.Order), false, o.Color)
		drawOctant(c, position, NewDescendingFareyIterator(o.Order), true, o.Color)
	}
}

func drawOctant(c Canvas, position func(x, y int) image.Point, it *FareyIterator, swap bool, col color.NRGBA) {
	var (
		last    image.Point
		hasLast bool
	)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		x, y := f.Num, f.Den
		if swap {
			x, y = y, x
		}
		p := position(x, y)
		c.FillCircle(p.X, p.Y, sunburstRadius, col)
		if hasLast {
			c.FillPolygon(thickLinePolygon(last, p, sunburstThickness), col)
		}
		last, hasLast = p, true
	}
}
