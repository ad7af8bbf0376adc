package funimg_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	funimg "github.com/tristanphease/fun-images/core"
)

func TestMix_ShouldWeightTheFirstColor(t *testing.T) {
	a := color.NRGBA{R: 200, G: 100, B: 0, A: 255}
	b := color.NRGBA{R: 0, G: 100, B: 200, A: 0}

	assert.Equal(t, a, funimg.Mix(a, b, 1))
	assert.Equal(t, b, funimg.Mix(a, b, 0))
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 127}, funimg.Mix(a, b, 0.5))
	assert.Equal(t, a, funimg.Mix(a, b, 3), "weights are clamped")
}

func TestMix_ShouldTruncateFractions(t *testing.T) {
	a := color.NRGBA{R: 255, G: 10, B: 3, A: 255}
	b := color.NRGBA{}

	assert.Equal(t, color.NRGBA{R: 127, G: 5, B: 1, A: 127}, funimg.Mix(a, b, 0.5))
	assert.Equal(t, color.NRGBA{R: 191, G: 7, B: 2, A: 191}, funimg.Mix(a, b, 0.75))
}

func TestBlendLab_ShouldKeepEndpoints(t *testing.T) {
	a := color.NRGBA{R: 250, G: 20, B: 30, A: 255}
	b := color.NRGBA{R: 10, G: 40, B: 220, A: 100}

	for _, tc := range []struct {
		t    float64
		want color.NRGBA
	}{{1, a}, {0, b}} {
		got := funimg.BlendLab.Mix(a, b, tc.t)
		assert.InDelta(t, tc.want.R, got.R, 1)
		assert.InDelta(t, tc.want.G, got.G, 1)
		assert.InDelta(t, tc.want.B, got.B, 1)
		assert.Equal(t, tc.want.A, got.A)
	}
}

func TestParseBlend_ShouldKnowBothSpaces(t *testing.T) {
	b, err := funimg.ParseBlend("lab")
	require.NoError(t, err)
	assert.Equal(t, funimg.BlendLab, b)

	b, err = funimg.ParseBlend("rgb")
	require.NoError(t, err)
	assert.Equal(t, funimg.BlendRGB, b)

	_, err = funimg.ParseBlend("hsv")
	assert.ErrorIs(t, err, funimg.ErrInvalidBlend)
}
