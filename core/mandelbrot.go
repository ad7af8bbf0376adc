package funimg

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
)

const (
	// MaxIterations is the iteration cap after which a sample is considered to be in the set.
	MaxIterations = 200
	// EscapeBound is the absolute value either component of z must exceed to escape.
	EscapeBound = 20.0
)

// Viewport maps image pixels onto the complex plane.
type Viewport struct {
	Center   complex128
	RealSpan float64
	ImagSpan float64
}

// ClassicViewport shows the whole Mandelbrot set.
var ClassicViewport = Viewport{
	Center:   complex(-0.7, 0),
	RealSpan: 3.0769,
	ImagSpan: 2.307675,
}

// Sample returns the complex point under pixel (x, y) of a w x h image.
func (v Viewport) Sample(x, y, w, h int) complex128 {
	re := float64(x)/float64(w)*v.RealSpan - v.RealSpan/2 + real(v.Center)
	im := float64(y)/float64(h)*v.ImagSpan - v.ImagSpan/2 + imag(v.Center)

	return complex(re, im)
}

// Escape iterates z = z*z + c starting from zero. It returns the index of the
// iteration at which z escaped, or false if c did not escape past
// MaxIterations and so belongs to the set. The escape test runs once more
// after the iteration at MaxIterations, so the largest index returned is
// MaxIterations+1.
func Escape(c complex128) (int, bool) {
	var z complex128
	for i := 0; i <= MaxIterations+1; i++ {
		z = z*z + c
		if math.Abs(real(z)) > EscapeBound || math.Abs(imag(z)) > EscapeBound {
			return i, true
		}
	}
	return 0, false
}

const (
	// DefaultMandelbrotWidth is the default width of the Mandelbrot render.
	DefaultMandelbrotWidth = 1600
	// DefaultMandelbrotHeight is the default height of the Mandelbrot render.
	DefaultMandelbrotHeight = 1200
)

// MandelbrotOptions configures the Mandelbrot render.
type MandelbrotOptions struct {
	Width, Height int
	Viewport      Viewport
	Color         color.NRGBA
	Background    color.NRGBA
	UseGradient   bool
	Blend         Blend
	// Workers bounds the number of rows evaluated concurrently.
	// Zero means runtime.NumCPU().
	Workers int
}

// NewMandelbrotOptions returns the classic full set view at the default size.
func NewMandelbrotOptions(fg, bg color.NRGBA, gradient bool) MandelbrotOptions {
	return MandelbrotOptions{
		Width:       DefaultMandelbrotWidth,
		Height:      DefaultMandelbrotHeight,
		Viewport:    ClassicViewport,
		Color:       fg,
		Background:  bg,
		UseGradient: gradient,
	}
}

// Validate checks the render dimensions.
func (o MandelbrotOptions) Validate() error {
	if o.Width < 1 || o.Height < 1 {
		return wrapf(ErrInvalidSize, "%dx%d", o.Width, o.Height)
	}
	if o.Blend != BlendRGB && o.Blend != BlendLab {
		return wrapf(ErrInvalidBlend, "%d", o.Blend)
	}
	return nil
}

// Bounds returns the image rectangle of the render.
func (o MandelbrotOptions) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Width, o.Height)
}

// ColorAt returns the color of a sample given its escape result.
func (o MandelbrotOptions) ColorAt(iter int, escaped bool) color.NRGBA {
	switch {
	case !escaped:
		return o.Background
	case o.UseGradient:
		return o.Blend.Mix(o.Background, o.Color, float64(iter)/MaxIterations)
	default:
		return o.Color
	}
}

// Escapes evaluates every pixel and returns the escape iteration per pixel
// in row major order, with -1 for the samples inside the set. Rows are
// spread over a pool of workers, each row being written by a single worker.
func (o MandelbrotOptions) Escapes() []int {
	w, h := o.Width, o.Height
	out := make([]int, w*h)

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rows := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < w; x++ {
					iter, ok := Escape(o.Viewport.Sample(x, y, w, h))
					if !ok {
						iter = -1
					}
					out[y*w+x] = iter
				}
			}
		}()
	}
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return out
}

// DrawMandelbrot renders the set onto the canvas.
func DrawMandelbrot(c Canvas, o MandelbrotOptions) {
	escapes := o.Escapes()
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			iter := escapes[y*o.Width+x]
			c.SetPixel(x, y, o.ColorAt(iter, iter >= 0))
		}
	}
}
