package gfx

import (
	"errors"
	"testing"
)

type point struct {
	X, Y int
}

// memDriver records every primitive call and keeps the resulting pixels.
type memDriver struct {
	w, h   int
	pix    []Color
	clip   Rect
	puts   []point
	fills  []Rect
	begins int
	ends   int
	clips  []Rect
	queue  *EventQueue

	failAfter int // fail PutPixel once this many calls succeeded; <0 never
	initErr   error
}

var errDriver = errors.New("driver failure")

func newMemDriver() *memDriver {
	return &memDriver{failAfter: -1, queue: NewEventQueue(4)}
}

func (d *memDriver) Init(w, h int) error {
	if d.initErr != nil {
		return d.initErr
	}
	d.w, d.h = w, h
	d.pix = make([]Color, w*h)
	return nil
}

func (d *memDriver) Size() (int, int)     { return d.w, d.h }
func (d *memDriver) Framebuffer() []byte  { return nil }
func (d *memDriver) BeginPaint() error    { d.begins++; return nil }
func (d *memDriver) EndPaint() error      { d.ends++; return nil }
func (d *memDriver) SetClip(r Rect) error { d.clip = r; d.clips = append(d.clips, r); return nil }

func (d *memDriver) PutPixel(x, y int, c Color) error {
	if d.failAfter >= 0 && len(d.puts) >= d.failAfter {
		return errDriver
	}
	d.puts = append(d.puts, point{x, y})
	d.pix[y*d.w+x] = c
	return nil
}

func (d *memDriver) FillRegion(r Rect, c Color) error {
	d.fills = append(d.fills, r)
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			d.pix[y*d.w+x] = c
		}
	}
	return nil
}

func (d *memDriver) CheckEvents(h EventHandler) error { return d.queue.Poll(h) }

func (d *memDriver) at(x, y int) Color { return d.pix[y*d.w+x] }

func (d *memDriver) reset() {
	d.puts = nil
	d.fills = nil
}

// fastDriver adds native draw paths that write pixels directly.
type fastDriver struct {
	*memDriver
	fastCalls int
}

func (d *fastDriver) plot(x, y int, c Color) {
	if d.clip.Admits(x, y) {
		d.pix[y*d.w+x] = c
	}
}

func (d *fastDriver) DrawIcon(x, y int, icon *Image, sx, sy, w, h int, mask *Image, c Color) error {
	d.fastCalls++
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if mask != nil && mask.pixel(i, j) == 0 {
				continue
			}
			if icon.pixel(sx+i, sy+j) != 0 {
				d.plot(x+i, y+j, c)
			}
		}
	}
	return nil
}

func (d *fastDriver) DrawImage4(x, y int, im *Image, sx, sy, w, h int, mask *Image, pal *Palette) error {
	d.fastCalls++
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if mask != nil && mask.pixel(i, j) == 0 {
				continue
			}
			d.plot(x+i, y+j, pal.Lookup(uint8(im.pixel(sx+i, sy+j))))
		}
	}
	return nil
}

func (d *fastDriver) DrawImage16(x, y int, im *Image, sx, sy, w, h int, mask *Image) error {
	d.fastCalls++
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if mask != nil && mask.pixel(i, j) == 0 {
				continue
			}
			d.plot(x+i, y+j, Color(im.pixel(sx+i, sy+j)))
		}
	}
	return nil
}

func mustSurface(t testing.TB, d Driver, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(d, w, h)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s
}

// testImage fills an image with v(x, y).
func testImage(t testing.TB, w, h int, bpp BPP, v func(x, y int) uint16) *Image {
	t.Helper()
	im, err := NewImage(w, h, bpp)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err := im.SetPixel(x, y, v(x, y)); err != nil {
				t.Fatalf("SetPixel(%d,%d): %v", x, y, err)
			}
		}
	}
	return im
}
