package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/setanarut/apng"
)

// PipeName is the file name that indicates stdout is being used.
const PipeName = "-"

// FrameDelay is the delay between two animation frames, in hundredths of a second.
const FrameDelay = 5

// ErrEmptyAnimation is returned when an animation has no frames to write.
var ErrEmptyAnimation = errors.New("animation has no frames")

// Upscale enlarges img by an integer factor with nearest neighbour sampling.
// Factors below 2 return the image unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

// FormatFor returns the encoding selected by the file extension.
// Files without extension and the stdout pipe are encoded as PNG.
func FormatFor(path string) (imaging.Format, error) {
	if path == PipeName || filepath.Ext(path) == "" {
		return imaging.PNG, nil
	}
	return imaging.FormatFromFilename(path)
}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
}

// SaveImage encodes img fully in memory and then replaces the file at path,
// so a failed encode never truncates a previously written image.
func SaveImage(path string, img image.Image) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, format); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return commitFile(path, func(f *os.File) error {
		_, err := buf.WriteTo(f)
		return err
	})
}

// SaveAnimation encodes the frames as an animated PNG in memory and then
// replaces the file at path.
func SaveAnimation(path string, frames []image.Image) error {
	if ext := filepath.Ext(path); ext != ".png" && ext != ".apng" {
		return fmt.Errorf("animations are written as APNG, unsupported extension %q", ext)
	}
	var buf bytes.Buffer
	if err := EncodeAnimation(&buf, frames); err != nil {
		return err
	}
	return commitFile(path, func(f *os.File) error {
		_, err := buf.WriteTo(f)
		return err
	})
}

// WriteAnimation encodes the frames as an animated PNG and writes them to w.
// Nothing is written if the encoding fails.
func WriteAnimation(w io.Writer, frames []image.Image) error {
	var buf bytes.Buffer
	if err := EncodeAnimation(&buf, frames); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// EncodeAnimation writes the frames to w as an animated PNG looping forever,
// FrameDelay apart. Every frame must fit in the bounds of the first one.
func EncodeAnimation(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrEmptyAnimation
	}
	a := &apng.APNG{
		Images: sameModel(frames),
		Delays: make([]uint16, len(frames)),
	}
	for i := range a.Delays {
		a.Delays[i] = FrameDelay
	}
	if err := apng.EncodeAll(w, a); err != nil {
		return fmt.Errorf("encoding animation: %w", err)
	}
	return nil
}

// sameModel returns the frames converted to NRGBA when they do not all
// share the color model of the first frame. Nil frames are left for the
// encoder to reject.
func sameModel(frames []image.Image) []image.Image {
	for _, f := range frames {
		if f == nil {
			return frames
		}
	}
	model := frames[0].ColorModel()
	mixed := false
	for _, f := range frames[1:] {
		if f.ColorModel() != model {
			mixed = true
			break
		}
	}
	if !mixed {
		return frames
	}
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		out[i] = imaging.Clone(f)
	}
	return out
}

// commitFile writes to a temporary file next to path and renames it over
// path once write succeeded.
func commitFile(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
