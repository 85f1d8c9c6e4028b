package hal

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"

	"quickgfx/gfx"
)

// rectFiller is the optional FillRectangle most TinyGo display drivers have.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// DisplayerDriver adapts any TinyGo drivers.Displayer (ST7789, ILI9341,
// SSD1306 and friends) to gfx.Driver. Display is called on the outermost
// EndPaint.
type DisplayerDriver struct {
	dev    drivers.Displayer
	ptr    Pointer
	queue  *gfx.EventQueue
	clip   gfx.Rect
	w, h   int
	depth  int
	dirty  bool
	logger Logger
}

// NewDisplayerDriver wraps dev. ptr may be nil.
func NewDisplayerDriver(dev drivers.Displayer, ptr Pointer, logger Logger) *DisplayerDriver {
	if ptr == nil {
		ptr = nullPointer{}
	}
	return &DisplayerDriver{
		dev:    dev,
		ptr:    ptr,
		queue:  gfx.NewEventQueue(gfx.DefaultEventQueueSize),
		logger: logger,
	}
}

func (d *DisplayerDriver) Init(width, height int) error {
	if d.dev == nil {
		return fmt.Errorf("displayer driver: no device: %w", gfx.ErrOutOfMemory)
	}
	w, h := d.dev.Size()
	d.w, d.h = int(w), int(h)
	if d.w <= 0 || d.h <= 0 {
		return fmt.Errorf("displayer driver: device reports %dx%d: %w", w, h, gfx.ErrInternal)
	}
	d.clip = gfx.Rect{X2: d.w - 1, Y2: d.h - 1}
	return nil
}

func (d *DisplayerDriver) Size() (int, int)   { return d.w, d.h }
func (d *DisplayerDriver) Framebuffer() []byte { return nil }

func (d *DisplayerDriver) BeginPaint() error {
	d.depth++
	return nil
}

func (d *DisplayerDriver) EndPaint() error {
	if d.depth == 0 {
		return fmt.Errorf("displayer driver: EndPaint without BeginPaint: %w", gfx.ErrFailed)
	}
	d.depth--
	if d.depth > 0 || !d.dirty {
		return nil
	}
	d.dirty = false
	if err := d.dev.Display(); err != nil {
		if d.logger != nil {
			d.logger.WriteLineString("gfx: display: " + err.Error())
		}
		return fmt.Errorf("displayer driver: %w", err)
	}
	return nil
}

func (d *DisplayerDriver) SetClip(r gfx.Rect) error {
	d.clip = r
	return nil
}

func (d *DisplayerDriver) PutPixel(x, y int, c gfx.Color) error {
	if !d.clip.Admits(x, y) {
		return nil
	}
	d.dev.SetPixel(int16(x), int16(y), c.RGBA8())
	d.dirty = true
	return nil
}

func (d *DisplayerDriver) FillRegion(r gfx.Rect, c gfx.Color) error {
	r, ok := d.clip.ClampSpan(r.X1, r.Y1, r.X2, r.Y2)
	if !ok {
		return nil
	}
	d.dirty = true
	if f, ok := d.dev.(rectFiller); ok {
		return f.FillRectangle(int16(r.X1), int16(r.Y1), int16(r.Dx()), int16(r.Dy()), c.RGBA8())
	}
	rgba := c.RGBA8()
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			d.dev.SetPixel(int16(x), int16(y), rgba)
		}
	}
	return nil
}

// PushEvent queues a touch event and reports whether it fit.
func (d *DisplayerDriver) PushEvent(t gfx.EventType, x, y int) bool {
	ok := d.queue.Push(t, x, y)
	if !ok && d.logger != nil {
		d.logger.WriteLineString(fmt.Sprintf("gfx: touch queue full, dropped %s at (%d,%d)", t, x, y))
	}
	return ok
}

func (d *DisplayerDriver) CheckEvents(h gfx.EventHandler) error {
	d.ptr.PollTouch(func(t gfx.EventType, x, y int) { d.PushEvent(t, x, y) })
	return d.queue.Poll(h)
}

var _ gfx.Driver = (*DisplayerDriver)(nil)
