package hal

import (
	"image"
	"image/color"
	"sync"

	"quickgfx/gfx"
)

// MemFramebuffer is an RGB565 framebuffer in ordinary memory. It supports a
// vertical scroll offset the way display panels do: row Scroll of the buffer
// is shown at the top and the rest wraps around.
type MemFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	scroll   int
	presents uint64
}

// NewMemFramebuffer allocates a zeroed width x height framebuffer.
func NewMemFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fillRGB565(f.buf, gfx.RGB(r, g, b))
}

// Present counts frames. Memory framebuffers are always up to date.
func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

// Presents returns how many times Present has been called.
func (f *MemFramebuffer) Presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// SetScroll sets the buffer row shown at the top of the view.
func (f *MemFramebuffer) SetScroll(line int16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.height == 0 {
		return
	}
	f.scroll = ((int(line) % f.height) + f.height) % f.height
}

// Scroll returns the buffer row shown at the top of the view.
func (f *MemFramebuffer) Scroll() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scroll
}

// viewRow maps a row of the visible view to a buffer row.
func (f *MemFramebuffer) viewRow(y int) int {
	return (y + f.scroll) % f.height
}

// snapshotRGB565 copies the visible view, scroll applied, into dst.
func (f *MemFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		src := f.viewRow(y) * f.stride
		copy(dst[y*f.stride:(y+1)*f.stride], f.buf[src:src+f.stride])
	}
}

// Snapshot returns the visible view as an RGBA image.
func (f *MemFramebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	raw := make([]byte, len(f.buf))
	f.snapshotRGB565(raw)
	expandRGB565(img.Pix, raw)
	return img
}

// expandRGB565 converts little-endian RGB565 pixels to opaque RGBA.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := getRGB565(src, i).RGBA8()
		j := (i / 2) * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}
}

var _ image.Image = (*MemFramebuffer)(nil)

func (f *MemFramebuffer) ColorModel() color.Model { return gfx.ColorModel }

func (f *MemFramebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At returns the visible pixel at (x, y), scroll applied.
func (f *MemFramebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return gfx.Black
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return getRGB565(f.buf, f.viewRow(y)*f.stride+x*2)
}
