package ui

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/spf13/afero"
)

// LoadGIFFrames decodes every frame of a GIF into a full-size image,
// applying each frame's disposal method.
func LoadGIFFrames(fs afero.Fs, path string) ([]image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("decode %s: no frames", path)
	}
	return composeFrames(g), nil
}

func composeFrames(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	current := image.NewRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(current)
		}

		draw.Draw(current, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(current))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(current, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			current = previous
		}
	}
	return frames
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// AnimatedBackground cycles pre-decoded frames on a canvas image
type AnimatedBackground struct {
	image  *canvas.Image
	frames []image.Image

	mu      sync.Mutex
	current int
	stop    chan struct{}
}

// NewAnimatedBackground shows the first frame; call Start to animate
func NewAnimatedBackground(frames []image.Image) *AnimatedBackground {
	img := canvas.NewImageFromImage(frames[0])
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest
	return &AnimatedBackground{image: img, frames: frames}
}

// Object returns the canvas object to place behind the widgets
func (b *AnimatedBackground) Object() fyne.CanvasObject {
	return b.image
}

// FrameCount returns the number of frames
func (b *AnimatedBackground) FrameCount() int {
	return len(b.frames)
}

// Next advances to the following frame, wrapping at the end
func (b *AnimatedBackground) Next() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = (b.current + 1) % len(b.frames)
	return b.frames[b.current]
}

// Start advances one frame per interval until Stop. A single frame is static.
func (b *AnimatedBackground) Start(interval time.Duration) {
	b.mu.Lock()
	if b.stop != nil || len(b.frames) < 2 {
		b.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	b.stop = stop
	b.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				frame := b.Next()
				fyne.Do(func() {
					b.image.Image = frame
					b.image.Refresh()
				})
			}
		}
	}()
}

// Stop halts the animation; safe to call more than once
func (b *AnimatedBackground) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		close(b.stop)
		b.stop = nil
	}
}
