package funimg

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// CellSize is the distance in pixels between two gradient vectors of the Perlin grid.
const CellSize = 20

// Vec2 is a two dimensional vector.
type Vec2 struct {
	X, Y float64
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// PerlinGrid holds one random unit gradient per grid corner.
type PerlinGrid struct {
	cols, rows int
	cell       int
	vecs       []Vec2
}

// NewPerlinGrid creates the gradient grid covering a w x h image.
// The grid extends one cell past the image on each axis.
func NewPerlinGrid(w, h int, rng *rand.Rand) *PerlinGrid {
	g := &PerlinGrid{
		cols: (w+CellSize-1)/CellSize + 1,
		rows: (h+CellSize-1)/CellSize + 1,
		cell: CellSize,
	}
	g.vecs = make([]Vec2, g.cols*g.rows)
	for i := range g.vecs {
		angle := rng.Float64() * 2 * math.Pi
		g.vecs[i] = Vec2{math.Cos(angle), math.Sin(angle)}
	}
	return g
}

// Size returns the number of grid corners on each axis.
func (g *PerlinGrid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Gradient returns the vector of corner (gx, gy), clamping out of range indices to the edge.
func (g *PerlinGrid) Gradient(gx, gy int) Vec2 {
	gx = min(max(gx, 0), g.cols-1)
	gy = min(max(gy, 0), g.rows-1)

	return g.vecs[gy*g.cols+gx]
}

// Noise returns the noise value at pixel (x, y), roughly in [-1, 1].
func (g *PerlinGrid) Noise(x, y int) float64 {
	left, top := x/g.cell, y/g.cell
	right := min(left+1, g.cols-1)
	bottom := min(top+1, g.rows-1)

	px := float64(x) / float64(g.cell)
	py := float64(y) / float64(g.cell)
	offset := func(gx, gy int) Vec2 {
		return Vec2{float64(gx) - px, float64(gy) - py}
	}

	d1 := g.Gradient(left, top).Dot(offset(left, top))
	d2 := g.Gradient(right, top).Dot(offset(right, top))
	d3 := g.Gradient(left, bottom).Dot(offset(left, bottom))
	d4 := g.Gradient(right, bottom).Dot(offset(right, bottom))

	fx := Fade(float64(x%g.cell) / float64(g.cell))
	fy := Fade(float64(y%g.cell) / float64(g.cell))

	return lerp(lerp(d1, d2, fx), lerp(d3, d4, fx), fy)
}

// Level maps the noise at pixel (x, y) into [0, 1].
func (g *PerlinGrid) Level(x, y int) float64 {
	return clamp01((g.Noise(x, y) + 1) / 2)
}

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// DefaultPerlinSize is the default side of the noise image.
const DefaultPerlinSize = 512

// PerlinOptions configures the Perlin noise render.
type PerlinOptions struct {
	Size   int
	Color1 color.NRGBA
	Color2 color.NRGBA
	Seed   int64
}

// Validate checks the image size.
func (o PerlinOptions) Validate() error {
	if o.Size < 1 {
		return wrapf(ErrInvalidSize, "got %d", o.Size)
	}
	return nil
}

// Bounds returns the image rectangle of the render.
func (o PerlinOptions) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Size, o.Size)
}

// Grid builds the gradient grid seeded from the options.
func (o PerlinOptions) Grid() *PerlinGrid {
	return NewPerlinGrid(o.Size, o.Size, rand.New(rand.NewSource(o.Seed)))
}

// DrawPerlin colors every pixel with Color1 weighted by the noise level and
// Color2 weighted by its complement.
func DrawPerlin(c Canvas, o PerlinOptions) {
	DrawPerlinGrid(c, o, o.Grid())
}

// DrawPerlinGrid is like DrawPerlin but samples the supplied grid.
func DrawPerlinGrid(c Canvas, o PerlinOptions, g *PerlinGrid) {
	for y := 0; y < o.Size; y++ {
		for x := 0; x < o.Size; x++ {
			c.SetPixel(x, y, Mix(o.Color1, o.Color2, g.Level(x, y)))
		}
	}
}
