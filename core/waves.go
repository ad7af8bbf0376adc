package funimg

import (
	"image"
	"image/color"
	"math"
)

const (
	// WaveStep is the horizontal distance in pixels between two samples.
	WaveStep = 4
	// WaveRadius is the radius of the circle stamped at every sample.
	WaveRadius = 30
)

// WaveKind selects the trigonometric function drawn by the wave animation.
type WaveKind int

const (
	Sine WaveKind = iota
	Cosine
	Tangent
)

var waveNames = map[string]WaveKind{
	"sine":    Sine,
	"cosine":  Cosine,
	"tangent": Tangent,
}

// ParseWaveKind returns the wave kind named s.
func ParseWaveKind(s string) (WaveKind, error) {
	k, ok := waveNames[s]
	if !ok {
		return 0, wrapf(ErrInvalidWave, "%q", s)
	}
	return k, nil
}

func (k WaveKind) String() string {
	for name, v := range waveNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Eval evaluates the wave function at phase.
func (k WaveKind) Eval(phase float64) float64 {
	switch k {
	case Cosine:
		return math.Cos(phase)
	case Tangent:
		return math.Tan(phase)
	default:
		return math.Sin(phase)
	}
}

// WaveSamples returns the circle centers of a wave across a w x h canvas,
// one every WaveStep pixels from left to right.
func WaveSamples(k WaveKind, w, h int) []image.Point {
	half := h / 2
	limit := 4 * float64(h)

	samples := make([]image.Point, 0, (w+WaveStep-1)/WaveStep)
	for x := 0; x < w; x += WaveStep {
		phase := 2 * math.Pi * float64(x) / float64(w)
		dy := k.Eval(phase) * float64(half) * 0.5
		dy = min(max(dy, -limit), limit)
		samples = append(samples, image.Pt(x, half+int(dy)))
	}
	return samples
}

const (
	// DefaultWaveWidth is the default width of the wave animation.
	DefaultWaveWidth = 800
	// DefaultWaveHeight is the default height of the wave animation.
	DefaultWaveHeight = 400
)

// WaveOptions configures the wave animation.
type WaveOptions struct {
	Kind          WaveKind
	Width, Height int
	Color         color.NRGBA
	Background    color.NRGBA
}

// Validate checks the canvas dimensions and wave kind.
func (o WaveOptions) Validate() error {
	if o.Width < 1 || o.Height < 1 {
		return wrapf(ErrInvalidSize, "%dx%d", o.Width, o.Height)
	}
	if o.Kind < Sine || o.Kind > Tangent {
		return wrapf(ErrInvalidWave, "%d", o.Kind)
	}
	return nil
}

// Bounds returns the rectangle of every frame.
func (o WaveOptions) Bounds() image.Rectangle {
	return image.Rect(0, 0, o.Width, o.Height)
}

// DrawWave stamps one circle per sample onto the same canvas, calling frame
// after each stamp so the caller can capture the cumulative frame.
func DrawWave(c Canvas, o WaveOptions, frame func(i int)) {
	if o.Background.A > 0 {
		c.Fill(o.Background)
	}
	for i, p := range WaveSamples(o.Kind, o.Width, o.Height) {
		c.FillCircle(p.X, p.Y, WaveRadius, o.Color)
		frame(i)
	}
}
