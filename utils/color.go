package utils

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a CSS color name, "transparent", or a hex color in the
// #rgb, #rrggbb or #rrggbbaa forms.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// ColorFlag is a flag.Value holding a parsed color.
type ColorFlag struct {
	color.NRGBA
	raw string
}

// NewColorFlag returns a flag initialized with the default color string.
// It panics if def does not parse, which only happens on programming errors.
func NewColorFlag(def string) *ColorFlag {
	f := &ColorFlag{}
	if err := f.Set(def); err != nil {
		panic(err)
	}
	return f
}

// String returns the color as it was given on the command line.
func (f *ColorFlag) String() string {
	if f == nil {
		return ""
	}
	return f.raw
}

// Set parses the color string.
func (f *ColorFlag) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	f.NRGBA, f.raw = c, s
	return nil
}
