package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/tristanphease/fun-images/canvas"
	funimg "github.com/tristanphease/fun-images/core"
	"github.com/tristanphease/fun-images/utils"
)

func init() {
	register(generator{
		name:       "farey",
		usage:      "Sunburst drawn from the Farey sequence of order n",
		defaultOut: "farey.png",
		setup:      fareySetup,
	})
	register(generator{
		name:       "ulam",
		usage:      "Ulam spiral of primes or divisor counts",
		defaultOut: "ulam.png",
		setup:      ulamSetup,
	})
	register(generator{
		name:       "mandelbrot",
		usage:      "Escape time render of the Mandelbrot set",
		defaultOut: "mandelbrot.png",
		setup:      mandelbrotSetup,
	})
	register(generator{
		name:       "sierpinski",
		usage:      "Sierpinski triangle, optionally as a zoom animation",
		defaultOut: "sierpinski.png",
		setup:      sierpinskiSetup,
	})
	register(generator{
		name:       "perlin",
		usage:      "Perlin noise blended between two colors",
		defaultOut: "perlin.png",
		setup:      perlinSetup,
	})
	register(generator{
		name:       "waves",
		usage:      "Animation of a trigonometric wave drawing itself",
		defaultOut: "waves.png",
		setup:      wavesSetup,
	})
}

func fareySetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		order = fs.Int("n", 5, "Order of the Farey sequence")
		size  = fs.Int("size", funimg.DefaultSunburstSize, "Width and height of the image")
		fg    = utils.NewColorFlag("white")
		bg    = utils.NewColorFlag("transparent")
	)
	fs.Var(fg, "color", "Line color")
	fs.Var(bg, "bg", "Background color")

	return func() (*result, error) {
		opts := funimg.NewSunburstOptions(*order, fg.NRGBA)
		opts.Size = *size
		opts.Background = bg.NRGBA

		img, err := canvas.Sunburst(opts)
		if err != nil {
			return nil, err
		}
		return &result{
			still:   img,
			summary: fmt.Sprintf("%d fractions per octant", funimg.FareyLength(*order)),
		}, nil
	}
}

func ulamSetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		total = fs.Int("size", funimg.DefaultUlamTotal, "Number of integers in the spiral")
		mode  = fs.String("mode", "prime", "Spiral mode: prime|divisor")
		fg    = utils.NewColorFlag("white")
		bg    = utils.NewColorFlag("black")
	)
	fs.Var(fg, "color", "Number color")
	fs.Var(bg, "bg", "Background color")

	return func() (*result, error) {
		m, err := funimg.ParseUlamMode(*mode)
		if err != nil {
			return nil, err
		}
		opts := funimg.UlamOptions{
			Total:      *total,
			Mode:       m,
			Color:      fg.NRGBA,
			Background: bg.NRGBA,
		}
		img, err := canvas.Ulam(opts)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		return &result{
			still:   img,
			summary: fmt.Sprintf("%s spiral of %d numbers on %dx%d", m, *total, b.Dx(), b.Dy()),
		}, nil
	}
}

func mandelbrotSetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		width    = fs.Int("width", funimg.DefaultMandelbrotWidth, "Image width")
		height   = fs.Int("height", funimg.DefaultMandelbrotHeight, "Image height")
		gradient = fs.Bool("gradient", false, "Shade escaping points by their iteration count")
		blend    = fs.String("blend", "rgb", "Gradient blend space: rgb|lab")
		workers  = fs.Int("workers", 0, "Number of rendering workers, 0 for one per CPU")
		fg       = utils.NewColorFlag("white")
		bg       = utils.NewColorFlag("black")
	)
	fs.Var(fg, "color", "Color of the escaping points")
	fs.Var(bg, "bg", "Color of the set")

	return func() (*result, error) {
		bl, err := funimg.ParseBlend(*blend)
		if err != nil {
			return nil, err
		}
		opts := funimg.NewMandelbrotOptions(fg.NRGBA, bg.NRGBA, *gradient)
		opts.Width, opts.Height = *width, *height
		opts.Blend = bl
		opts.Workers = *workers

		img, err := canvas.Mandelbrot(opts)
		if err != nil {
			return nil, err
		}
		return &result{still: img}, nil
	}
}

func sierpinskiSetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		size    = fs.Int("size", funimg.DefaultSierpinskiSize, "Width and height of the image")
		zoom    = fs.Float64("zoom", 0, "Zoom factor within [0,1] of a still image")
		animate = fs.Bool("animate", false, "Render the zoom animation as an APNG")
		fg      = utils.NewColorFlag("white")
		bg      = utils.NewColorFlag("transparent")
	)
	fs.Var(fg, "color", "Line color")
	fs.Var(bg, "bg", "Background color")

	return func() (*result, error) {
		opts := funimg.SierpinskiOptions{
			Size:       *size,
			Zoom:       *zoom,
			Color:      fg.NRGBA,
			Background: bg.NRGBA,
		}
		if *animate {
			frames, err := canvas.SierpinskiZoom(opts)
			if err != nil {
				return nil, err
			}
			return &result{frames: frames, summary: fmt.Sprintf("%d frames", len(frames))}, nil
		}
		img, err := canvas.Sierpinski(opts)
		if err != nil {
			return nil, err
		}
		return &result{still: img}, nil
	}
}

func perlinSetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		size = fs.Int("size", funimg.DefaultPerlinSize, "Width and height of the image")
		seed = fs.Int64("seed", 0, "Random seed of the gradient grid, 0 picks one")
		c1   = utils.NewColorFlag("white")
		c2   = utils.NewColorFlag("black")
	)
	fs.Var(c1, "color", "Color of the high noise values")
	fs.Var(c2, "bg", "Color of the low noise values")

	return func() (*result, error) {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		opts := funimg.PerlinOptions{
			Size:   *size,
			Color1: c1.NRGBA,
			Color2: c2.NRGBA,
			Seed:   s,
		}
		img, err := canvas.Perlin(opts)
		if err != nil {
			return nil, err
		}
		return &result{still: img, summary: fmt.Sprintf("seed %d", s)}, nil
	}
}

func wavesSetup(fs *flag.FlagSet) func() (*result, error) {
	var (
		kind   = fs.String("wave", "sine", "Wave function: sine|cosine|tangent")
		width  = fs.Int("width", funimg.DefaultWaveWidth, "Frame width")
		height = fs.Int("height", funimg.DefaultWaveHeight, "Frame height")
		fg     = utils.NewColorFlag("white")
		bg     = utils.NewColorFlag("transparent")
	)
	fs.Var(fg, "color", "Circle color")
	fs.Var(bg, "bg", "Background color")

	return func() (*result, error) {
		k, err := funimg.ParseWaveKind(*kind)
		if err != nil {
			return nil, err
		}
		frames, err := canvas.Waves(funimg.WaveOptions{
			Kind:       k,
			Width:      *width,
			Height:     *height,
			Color:      fg.NRGBA,
			Background: bg.NRGBA,
		})
		if err != nil {
			return nil, err
		}
		return &result{frames: frames, summary: fmt.Sprintf("%d frames", len(frames))}, nil
	}
}
