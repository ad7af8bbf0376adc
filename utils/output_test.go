package utils_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tristanphease/fun-images/utils"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(w-1, h-1, color.NRGBA{B: 255, A: 255})
	return img
}

func TestFormatFor_ShouldFollowExtension(t *testing.T) {
	for path, want := range map[string]imaging.Format{
		utils.PipeName: imaging.PNG,
		"out":          imaging.PNG,
		"a.png":        imaging.PNG,
		"a.JPG":        imaging.JPEG,
		"b.gif":        imaging.GIF,
	} {
		got, err := utils.FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := utils.FormatFor("a.xyz")
	assert.ErrorIs(t, err, imaging.ErrUnsupportedFormat)
}

func TestUpscale_ShouldRepeatPixels(t *testing.T) {
	img := testImage(2, 2)
	assert.Same(t, img, utils.Upscale(img, 1))

	big := utils.Upscale(img, 4)
	require.Equal(t, image.Rect(0, 0, 8, 8), big.Bounds())
	for _, p := range []image.Point{{0, 0}, {3, 3}, {0, 3}} {
		assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(big.At(p.X, p.Y)), "%v", p)
	}
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, color.NRGBAModel.Convert(big.At(7, 7)))
}

func TestSaveImage_ShouldWriteDecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	require.NoError(t, utils.SaveImage(path, testImage(6, 4)))

	got, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), got.Bounds())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSaveImage_FailureShouldKeepPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xyz")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	assert.Error(t, utils.SaveImage(path, testImage(2, 2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestSaveAnimation_ShouldRejectBadInput(t *testing.T) {
	dir := t.TempDir()

	err := utils.SaveAnimation(filepath.Join(dir, "anim.png"), nil)
	assert.ErrorIs(t, err, utils.ErrEmptyAnimation)

	err = utils.SaveAnimation(filepath.Join(dir, "anim.gif"), []image.Image{testImage(2, 2)})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// frameCount reads the number of frames from the acTL chunk of an APNG.
func frameCount(t *testing.T, data []byte) int {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")), "PNG signature")
	i := bytes.Index(data, []byte("acTL"))
	require.GreaterOrEqual(t, i, 0, "acTL chunk")
	return int(binary.BigEndian.Uint32(data[i+4 : i+8]))
}

func TestSaveAnimation_ShouldCommitAnimatedPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.png")
	frames := []image.Image{testImage(6, 4), testImage(6, 4), testImage(6, 4)}

	require.NoError(t, utils.SaveAnimation(path, frames))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, frameCount(t, data))

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 4, cfg.Height)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")

	var buf bytes.Buffer
	require.NoError(t, utils.WriteAnimation(&buf, frames))
	assert.Equal(t, data, buf.Bytes())
}

func TestSaveAnimation_ShouldAcceptMixedColorModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.apng")
	frames := []image.Image{image.NewRGBA(image.Rect(0, 0, 4, 4)), testImage(4, 4)}

	require.NoError(t, utils.SaveAnimation(path, frames))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, frameCount(t, data))
}

func TestSaveAnimation_EncodingFailureShouldKeepPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anim.png")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	// Later frames may not be larger than the first one.
	frames := []image.Image{testImage(2, 2), testImage(4, 4)}
	assert.Error(t, utils.SaveAnimation(path, frames))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var buf bytes.Buffer
	assert.Error(t, utils.WriteAnimation(&buf, frames))
	assert.Zero(t, buf.Len(), "nothing is streamed on failure")
}
