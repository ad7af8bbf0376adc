package funimg

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend selects how two colors are mixed together.
type Blend int

const (
	// BlendRGB mixes every channel linearly.
	BlendRGB Blend = iota
	// BlendLab mixes in the CIE L*a*b* space. Alpha stays linear.
	BlendLab
)

// ParseBlend returns the blend mode named s ("rgb" or "lab").
func ParseBlend(s string) (Blend, error) {
	switch s {
	case "rgb", "":
		return BlendRGB, nil
	case "lab":
		return BlendLab, nil
	}
	return 0, wrapf(ErrInvalidBlend, "%q", s)
}

// Mix returns a*t + b*(1-t) on every channel, alpha included. Fractions
// are truncated.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	return BlendRGB.Mix(a, b, t)
}

// Mix returns a*t + b*(1-t) computed in the color space of the blend mode.
func (bl Blend) Mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x)*t + float64(y)*(1-t))
	}
	alpha := ch(a.A, b.A)

	if bl == BlendLab {
		// BlendLab goes from the receiver (weight 0) toward the argument (weight 1).
		c := toColorful(b).BlendLab(toColorful(a), t).Clamped()
		r, g, bb := c.RGB255()
		return color.NRGBA{R: r, G: g, B: bb, A: alpha}
	}
	return color.NRGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: alpha}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
