package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = color.Palette{
	color.RGBA{A: 0},
	color.RGBA{R: 255, A: 255},
	color.RGBA{G: 255, A: 255},
	color.RGBA{B: 255, A: 255},
}

// solidFrame returns a paletted frame filled with palette index idx
func solidFrame(rect image.Rectangle, idx uint8) *image.Paletted {
	frame := image.NewPaletted(rect, testPalette)
	for i := range frame.Pix {
		frame.Pix[i] = idx
	}
	return frame
}

func writeGIF(t *testing.T, fs afero.Fs, path string, g *gif.GIF) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, g))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o644))
}

func TestLoadGIFFrames(t *testing.T) {
	fs := afero.NewMemMapFs()
	full := image.Rect(0, 0, 4, 2)
	writeGIF(t, fs, "/assets/background.gif", &gif.GIF{
		Image: []*image.Paletted{
			solidFrame(full, 1),
			solidFrame(image.Rect(0, 0, 2, 2), 2), // partial frame over the first
			solidFrame(full, 3),
		},
		Delay:  []int{5, 5, 5},
		Config: image.Config{Width: 4, Height: 2, ColorModel: testPalette},
	})

	frames, err := LoadGIFFrames(fs, "/assets/background.gif")
	require.NoError(t, err)
	require.Len(t, frames, 3)

	for _, frame := range frames {
		assert.Equal(t, full, frame.Bounds())
	}

	assertColor(t, frames[0], 0, 0, 255, 0, 0)
	// Second frame covers the left half only; the right half keeps the first frame
	assertColor(t, frames[1], 0, 0, 0, 255, 0)
	assertColor(t, frames[1], 3, 1, 255, 0, 0)
	assertColor(t, frames[2], 3, 1, 0, 0, 255)
}

func TestLoadGIFFrames_DisposalBackground(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeGIF(t, fs, "/bg.gif", &gif.GIF{
		Image: []*image.Paletted{
			solidFrame(image.Rect(0, 0, 4, 2), 1),
			solidFrame(image.Rect(0, 0, 2, 2), 2),
		},
		Delay:    []int{5, 5},
		Disposal: []byte{gif.DisposalBackground, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 2, ColorModel: testPalette},
	})

	frames, err := LoadGIFFrames(fs, "/bg.gif")
	require.NoError(t, err)
	require.Len(t, frames, 2)

	// The first frame was cleared before the second was drawn
	_, _, _, a := frames[1].At(3, 1).RGBA()
	assert.Zero(t, a)
}

func TestLoadGIFFrames_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/not-a.gif", []byte("hello"), 0o644))

	_, err := LoadGIFFrames(fs, "/missing.gif")
	assert.Error(t, err)

	_, err = LoadGIFFrames(fs, "/not-a.gif")
	assert.Error(t, err)
}

func TestAnimatedBackground_Next(t *testing.T) {
	frames := []image.Image{
		solidFrame(image.Rect(0, 0, 1, 1), 1),
		solidFrame(image.Rect(0, 0, 1, 1), 2),
		solidFrame(image.Rect(0, 0, 1, 1), 3),
	}
	bg := NewAnimatedBackground(frames)

	assert.Equal(t, 3, bg.FrameCount())
	assert.NotNil(t, bg.Object())
	assert.Same(t, frames[1], bg.Next())
	assert.Same(t, frames[2], bg.Next())
	assert.Same(t, frames[0], bg.Next(), "should wrap to the first frame")
}

func TestAnimatedBackground_StartStop(t *testing.T) {
	single := NewAnimatedBackground([]image.Image{solidFrame(image.Rect(0, 0, 1, 1), 1)})
	single.Start(time.Millisecond)
	assert.Nil(t, single.stop, "a single frame should not animate")

	bg := NewAnimatedBackground([]image.Image{
		solidFrame(image.Rect(0, 0, 1, 1), 1),
		solidFrame(image.Rect(0, 0, 1, 1), 2),
	})
	bg.Start(time.Hour)
	assert.NotNil(t, bg.stop)

	bg.Stop()
	bg.Stop()
	assert.Nil(t, bg.stop)
}

func assertColor(t *testing.T, img image.Image, x, y int, r, g, b uint8) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	assert.Equal(t, color.RGBA{R: r, G: g, B: b, A: 255}, got, "pixel (%d,%d)", x, y)
}
