package canvas

import (
	"image"

	funimg "github.com/tristanphease/fun-images/core"
)

// Sunburst renders the Farey sunburst.
func Sunburst(o funimg.SunburstOptions) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := NewCanvas(o.Bounds())
	funimg.DrawSunburst(c, o)

	return c.Image(), nil
}

// Ulam renders the Ulam spiral in the mode chosen by the options.
func Ulam(o funimg.UlamOptions) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := NewCanvas(o.Bounds())
	funimg.DrawUlam(c, o)

	return c.Image(), nil
}

// Mandelbrot renders the Mandelbrot set.
func Mandelbrot(o funimg.MandelbrotOptions) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := NewCanvas(o.Bounds())
	funimg.DrawMandelbrot(c, o)

	return c.Image(), nil
}

// Sierpinski renders a single Sierpinski frame at the zoom set in the options.
func Sierpinski(o funimg.SierpinskiOptions) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := NewCanvas(o.Bounds())
	funimg.DrawSierpinski(c, o)

	return c.Image(), nil
}

// SierpinskiZoom renders the zoom animation, one independent frame per zoom step.
// The zoom of the options is ignored.
func SierpinskiZoom(o funimg.SierpinskiOptions) ([]image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	frames := make([]image.Image, 0, funimg.ZoomFrames)
	for _, zoom := range funimg.ZoomSteps() {
		o.Zoom = zoom
		c := NewCanvas(o.Bounds())
		funimg.DrawSierpinski(c, o)
		frames = append(frames, c.Image())
	}
	return frames, nil
}

// Perlin renders a Perlin noise field.
func Perlin(o funimg.PerlinOptions) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	c := NewCanvas(o.Bounds())
	funimg.DrawPerlin(c, o)

	return c.Image(), nil
}

// Waves renders the wave animation. Every frame holds all the circles of the
// previous one plus the next sample.
func Waves(o funimg.WaveOptions) ([]image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	var frames []image.Image

	c := NewCanvas(o.Bounds())
	funimg.DrawWave(c, o, func(int) {
		frames = append(frames, c.Snapshot())
	})
	return frames, nil
}
