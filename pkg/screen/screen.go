// Package screen provides the in-memory framebuffer the renderer paints
// into, along with image-file persistence and an optional live window.
package screen

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// Context is an RGB framebuffer with a current drawing color. It implements
// the renderer's Screen interface; Present is a no-op since the framebuffer
// is always up to date, and the live window reads snapshots on its own.
//
// The single render goroutine is the only writer; the mutex only guards
// snapshotting against concurrent reads from the window.
type Context struct {
	mu     sync.Mutex
	img    *image.RGBA
	color  color.RGBA
	width  int
	height int
}

// NewContext creates a framebuffer of the given dimensions, cleared to black
func NewContext(width, height int) *Context {
	ctx := &Context{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	ctx.Clear(0)
	return ctx
}

// Width returns the framebuffer width in pixels
func (c *Context) Width() int { return c.width }

// Height returns the framebuffer height in pixels
func (c *Context) Height() int { return c.height }

// SetColor sets the color used by subsequent drawing operations. The
// channels are real numbers in [0, 1].
func (c *Context) SetColor(r, g, b float64) {
	c.color = color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

// PlotPixel paints a single pixel with the current color
func (c *Context) PlotPixel(x, y int) {
	c.mu.Lock()
	c.img.SetRGBA(x, y, c.color)
	c.mu.Unlock()
}

// Clear fills the framebuffer with a grey shade given as a real number in [0, 1]
func (c *Context) Clear(shade float64) {
	v := uint8(math.Round(shade * 255))
	grey := color.RGBA{R: v, G: v, B: v, A: 255}

	c.mu.Lock()
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.img.SetRGBA(x, y, grey)
		}
	}
	c.mu.Unlock()
}

// Present flushes pending drawing. The in-memory framebuffer needs no
// flushing, so this only exists to satisfy the renderer's interface.
func (c *Context) Present() error { return nil }

// Image returns a copy of the current framebuffer contents
func (c *Context) Image() *image.RGBA {
	copied := image.NewRGBA(c.img.Rect)
	c.mu.Lock()
	copy(copied.Pix, c.img.Pix)
	c.mu.Unlock()
	return copied
}

// snapshotInto copies the raw RGBA pixels into dst, which must be
// len(4·width·height). Used by the live window each frame.
func (c *Context) snapshotInto(dst []byte) {
	c.mu.Lock()
	copy(dst, c.img.Pix)
	c.mu.Unlock()
}

// Save writes the framebuffer to an image file whose format is derived from
// the path's extension: .png, .jpg/.jpeg, .webp, .tga or .bmp.
func (c *Context) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screen: create %s: %w", path, err)
	}
	defer file.Close()

	img := c.Image()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	case ".webp":
		err = nativewebp.Encode(file, img, nil)
	case ".tga":
		err = tga.Encode(file, img)
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		return fmt.Errorf("screen: unsupported image extension %q", filepath.Ext(path))
	}

	if err != nil {
		return fmt.Errorf("screen: encode %s: %w", path, err)
	}
	return nil
}
