package funimg

import (
	"image"
	"image/color"
)

// UlamMode selects what the Ulam spiral visualizes.
type UlamMode int

const (
	// PrimeOnly lights one pixel per prime number.
	PrimeOnly UlamMode = iota
	// Divisor draws a circle per number sized by its divisor count.
	Divisor
)

const (
	// DefaultUlamTotal is the default number of spiral points.
	DefaultUlamTotal = 201 * 201
	divisorCellSize  = 10
)

// ParseUlamMode returns the mode named s ("prime" or "divisor").
func ParseUlamMode(s string) (UlamMode, error) {
	switch s {
	case "prime":
		return PrimeOnly, nil
	case "divisor":
		return Divisor, nil
	}
	return 0, wrapf(ErrInvalidMode, "%q", s)
}

func (m UlamMode) String() string {
	if m == Divisor {
		return "divisor"
	}
	return "prime"
}

// UlamOptions configures the Ulam spiral.
type UlamOptions struct {
	Total      int
	Mode       UlamMode
	Color      color.NRGBA
	Background color.NRGBA
}

// Validate checks the spiral holds at least one number.
func (o UlamOptions) Validate() error {
	if o.Total < 1 {
		return wrapf(ErrInvalidSize, "spiral size %d", o.Total)
	}
	if o.Mode != PrimeOnly && o.Mode != Divisor {
		return wrapf(ErrInvalidMode, "%d", o.Mode)
	}
	return nil
}

// Bounds returns the image rectangle of the spiral.
func (o UlamOptions) Bounds() image.Rectangle {
	side := UlamSide(o.Total)
	if o.Mode == Divisor {
		side *= divisorCellSize
	}
	return image.Rect(0, 0, side, side)
}

// DrawUlam draws the spiral of the numbers 0..Total-1, starting with 0 on
// the central cell and walking anticlockwise.
func DrawUlam(c Canvas, o UlamOptions) {
	side := UlamSide(o.Total)
	spiral := NewSpiralIterator(o.Total, image.Pt(side/2, side/2), AntiClockwise)

	switch o.Mode {
	case Divisor:
		c.Fill(o.Background)
		for n := 0; ; n++ {
			p, ok := spiral.Next()
			if !ok {
				return
			}
			if isqrt(n) == 0 {
				continue
			}
			r := DivisorCount(n) / 3
			c.FillCircle(p.X*divisorCellSize, p.Y*divisorCellSize, r, o.Color)
		}
	default:
		for n := 0; ; n++ {
			p, ok := spiral.Next()
			if !ok {
				return
			}
			if IsPrime(n) {
				c.SetPixel(p.X, p.Y, o.Color)
			} else {
				c.SetPixel(p.X, p.Y, o.Background)
			}
		}
	}
}
