package hal

import (
	"fmt"

	"quickgfx/gfx"
)

// FramebufferDriver is a gfx.Driver that draws into an RGB565 Framebuffer
// and presents it when the outermost paint bracket closes. It owns the touch
// event queue fed by an optional Pointer.
type FramebufferDriver struct {
	fb    Framebuffer
	log   Logger
	ptr   Pointer
	queue *gfx.EventQueue

	width, height int
	stride        int
	clip          gfx.Rect

	depth  int
	dirty  bool
	dirtyY [2]int
}

// FramebufferDriverConfig wires the optional collaborators of a
// FramebufferDriver.
type FramebufferDriverConfig struct {
	Logger    Logger
	Pointer   Pointer
	QueueSize int
}

// NewFramebufferDriver returns a driver over fb. fb may be nil, in which case
// Init fails with gfx.ErrOutOfMemory.
func NewFramebufferDriver(fb Framebuffer, cfg FramebufferDriverConfig) *FramebufferDriver {
	ptr := cfg.Pointer
	if ptr == nil {
		ptr = nullPointer{}
	}
	return &FramebufferDriver{
		fb:    fb,
		log:   cfg.Logger,
		ptr:   ptr,
		queue: gfx.NewEventQueue(cfg.QueueSize),
	}
}

func (d *FramebufferDriver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Init adopts the framebuffer's own size. A size request that differs is
// logged and ignored.
func (d *FramebufferDriver) Init(width, height int) error {
	if d.fb == nil || d.fb.Buffer() == nil {
		return fmt.Errorf("framebuffer driver: no framebuffer: %w", gfx.ErrOutOfMemory)
	}
	if d.fb.Format() != PixelFormatRGB565 {
		return fmt.Errorf("framebuffer driver: pixel format %d: %w", d.fb.Format(), gfx.ErrInternal)
	}
	d.width, d.height = d.fb.Width(), d.fb.Height()
	d.stride = d.fb.StrideBytes()
	if d.stride < d.width*2 || len(d.fb.Buffer()) < d.stride*d.height {
		return fmt.Errorf("framebuffer driver: %dx%d stride %d in %d bytes: %w",
			d.width, d.height, d.stride, len(d.fb.Buffer()), gfx.ErrInternal)
	}
	if width != d.width || height != d.height {
		d.logf("gfx: requested %dx%d, framebuffer is %dx%d", width, height, d.width, d.height)
	}
	d.clip = gfx.Rect{X2: d.width - 1, Y2: d.height - 1}
	return nil
}

func (d *FramebufferDriver) Size() (int, int) { return d.width, d.height }

func (d *FramebufferDriver) Framebuffer() []byte {
	if d.fb == nil {
		return nil
	}
	return d.fb.Buffer()
}

// BeginPaint opens a bracket. Brackets nest; only the outermost EndPaint
// presents.
func (d *FramebufferDriver) BeginPaint() error {
	d.depth++
	return nil
}

func (d *FramebufferDriver) EndPaint() error {
	if d.depth == 0 {
		return fmt.Errorf("framebuffer driver: EndPaint without BeginPaint: %w", gfx.ErrFailed)
	}
	d.depth--
	if d.depth > 0 {
		return nil
	}
	return d.flush()
}

// Flush presents pending writes outside a paint bracket.
func (d *FramebufferDriver) Flush() error {
	if d.depth > 0 {
		return nil
	}
	return d.flush()
}

func (d *FramebufferDriver) flush() error {
	if !d.dirty {
		return nil
	}
	if t, ok := d.fb.(DirtyTracker); ok {
		t.MarkDirty(d.dirtyY[0], d.dirtyY[1])
	}
	d.dirty = false
	if err := d.fb.Present(); err != nil {
		d.logf("gfx: present: %v", err)
		return fmt.Errorf("framebuffer driver: present: %w", err)
	}
	return nil
}

func (d *FramebufferDriver) touch(y1, y2 int) {
	if !d.dirty {
		d.dirty = true
		d.dirtyY = [2]int{y1, y2}
		return
	}
	d.dirtyY[0] = min(d.dirtyY[0], y1)
	d.dirtyY[1] = max(d.dirtyY[1], y2)
}

func (d *FramebufferDriver) SetClip(r gfx.Rect) error {
	if r.Empty() || !(gfx.Rect{X2: d.width - 1, Y2: d.height - 1}).Contains(r) {
		return fmt.Errorf("framebuffer driver: clip %v: %w", r, gfx.ErrBadArgument)
	}
	d.clip = r
	return nil
}

func (d *FramebufferDriver) PutPixel(x, y int, c gfx.Color) error {
	if !d.clip.Admits(x, y) {
		return nil
	}
	putRGB565(d.fb.Buffer(), y*d.stride+x*2, c)
	d.touch(y, y)
	return nil
}

func (d *FramebufferDriver) FillRegion(r gfx.Rect, c gfx.Color) error {
	r, ok := d.clip.ClampSpan(r.X1, r.Y1, r.X2, r.Y2)
	if !ok {
		return nil
	}
	buf := d.fb.Buffer()
	for y := r.Y1; y <= r.Y2; y++ {
		row := y * d.stride
		fillRGB565(buf[row+r.X1*2:row+(r.X2+1)*2], c)
	}
	d.touch(r.Y1, r.Y2)
	return nil
}

// DrawImage16 copies unmasked rows straight into the framebuffer; both sides
// store RGB565 little-endian.
func (d *FramebufferDriver) DrawImage16(x, y int, im *gfx.Image, sx, sy, w, h int, mask *gfx.Image) error {
	r, ok := d.clip.ClampSpan(x, y, x+w-1, y+h-1)
	if !ok || w == 0 || h == 0 {
		return nil
	}
	buf := d.fb.Buffer()
	istride := im.RowStride()
	for dy := r.Y1; dy <= r.Y2; dy++ {
		j := dy - y
		src := (sy+j)*istride + (sx+r.X1-x)*2
		dst := dy*d.stride + r.X1*2
		if mask == nil {
			copy(buf[dst:dst+r.Dx()*2], im.Data[src:src+r.Dx()*2])
			continue
		}
		for dx := r.X1; dx <= r.X2; dx++ {
			if bit, _ := mask.Pixel(dx-x, j); bit != 0 {
				copy(buf[dst:dst+2], im.Data[src:src+2])
			}
			src += 2
			dst += 2
		}
	}
	d.touch(r.Y1, r.Y2)
	return nil
}

// PushEvent queues a touch event. A full queue drops the event and logs it.
func (d *FramebufferDriver) PushEvent(t gfx.EventType, x, y int) bool {
	if d.queue.Push(t, x, y) {
		return true
	}
	d.logf("gfx: touch queue full (%d), dropped %s at (%d,%d), %d dropped so far",
		d.queue.Cap(), t, x, y, d.queue.Overflows())
	return false
}

// CheckEvents polls the pointer and drains the queue into h.
func (d *FramebufferDriver) CheckEvents(h gfx.EventHandler) error {
	d.ptr.PollTouch(func(t gfx.EventType, x, y int) { d.PushEvent(t, x, y) })
	return d.queue.Poll(h)
}

// Events exposes the queue, mainly for overflow statistics.
func (d *FramebufferDriver) Events() *gfx.EventQueue { return d.queue }

// SetScroll forwards a vertical scroll offset to framebuffers that support it.
func (d *FramebufferDriver) SetScroll(line int16) {
	if s, ok := d.fb.(gfx.Scroller); ok {
		s.SetScroll(line)
	}
}

var (
	_ gfx.Driver        = (*FramebufferDriver)(nil)
	_ gfx.Image16Drawer = (*FramebufferDriver)(nil)
	_ gfx.Scroller      = (*FramebufferDriver)(nil)
)
