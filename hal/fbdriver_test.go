package hal

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"quickgfx/gfx"
)

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type scriptedPointer struct {
	evs []gfx.TouchEvent
}

func (p *scriptedPointer) PollTouch(emit func(gfx.EventType, int, int)) {
	for _, ev := range p.evs {
		emit(ev.Type, ev.X, ev.Y)
	}
	p.evs = nil
}

func newTestSurface(t *testing.T, w, h int, cfg FramebufferDriverConfig) (*gfx.Surface, *FramebufferDriver, *MemFramebuffer) {
	t.Helper()
	fb := NewMemFramebuffer(w, h)
	drv := NewFramebufferDriver(fb, cfg)
	s, err := gfx.NewSurface(drv, w, h)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s, drv, fb
}

func TestFramebufferDriver_InitWithoutFramebuffer(t *testing.T) {
	drv := NewFramebufferDriver(nil, FramebufferDriverConfig{})
	if _, err := gfx.NewSurface(drv, 320, 240); !errors.Is(err, gfx.ErrOutOfMemory) {
		t.Fatalf("err=%v, want ErrOutOfMemory", err)
	}
}

func TestFramebufferDriver_AdoptsFramebufferSize(t *testing.T) {
	log := &lineLog{}
	fb := NewMemFramebuffer(32, 16)
	s, err := gfx.NewSurface(NewFramebufferDriver(fb, FramebufferDriverConfig{Logger: log}), 320, 240)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.Width() != 32 || s.Height() != 16 {
		t.Fatalf("surface=%dx%d, want 32x16", s.Width(), s.Height())
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "320x240") {
		t.Fatalf("log=%q", log.lines)
	}
}

func TestFramebufferDriver_PixelsLittleEndian(t *testing.T) {
	s, _, fb := newTestSurface(t, 4, 4, FramebufferDriverConfig{})
	if err := s.PutPixel(1, 2, gfx.Red); err != nil {
		t.Fatalf("PutPixel: %v", err)
	}
	off := 2*fb.StrideBytes() + 1*2
	if fb.Buffer()[off] != 0x00 || fb.Buffer()[off+1] != 0xF8 {
		t.Fatalf("bytes=% x, want 00 f8", fb.Buffer()[off:off+2])
	}
	if got := gfx.ColorOf(fb.At(1, 2)); got != gfx.Red {
		t.Fatalf("At=%#04x, want red", got)
	}
}

func TestFramebufferDriver_PresentOnOutermostEndPaint(t *testing.T) {
	s, _, fb := newTestSurface(t, 4, 4, FramebufferDriverConfig{})
	err := s.Paint(func() error {
		return s.Paint(func() error { return s.Clear(gfx.Blue) })
	})
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if fb.Presents() != 1 {
		t.Fatalf("presents=%d, want 1", fb.Presents())
	}
	// Nothing drawn, nothing presented.
	if err := s.Paint(func() error { return nil }); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if fb.Presents() != 1 {
		t.Fatalf("presents=%d after empty paint, want 1", fb.Presents())
	}
	if err := s.EndPaint(); !errors.Is(err, gfx.ErrFailed) {
		t.Fatalf("unbalanced EndPaint err=%v, want ErrFailed", err)
	}
}

func TestFramebufferDriver_FillRegionHonoursClip(t *testing.T) {
	s, _, fb := newTestSurface(t, 8, 8, FramebufferDriverConfig{})
	if err := s.SetClip(2, 2, 5, 5); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	if err := s.Clear(gfx.Green); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := gfx.Black
			if x >= 2 && x <= 5 && y >= 2 && y <= 5 {
				want = gfx.Green
			}
			if got := gfx.ColorOf(fb.At(x, y)); got != want {
				t.Fatalf("(%d,%d)=%#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestFramebufferDriver_Image16FastPathMatchesGeneric(t *testing.T) {
	im, err := gfx.NewImage(7, 5, gfx.BPP16)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	mask, err := gfx.NewImage(4, 3, gfx.BPP1)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			_ = im.SetPixel(x, y, uint16(x*4099+y*37))
			if x < 4 && y < 3 {
				_ = mask.SetPixel(x, y, uint16((x+y)%2))
			}
		}
	}

	draw := func(s *gfx.Surface) {
		t.Helper()
		if err := s.SetClip(1, 1, 8, 8); err != nil {
			t.Fatalf("SetClip: %v", err)
		}
		if err := s.DrawImage16(-2, 0, im, 0, 0, 7, 5, nil); err != nil {
			t.Fatalf("DrawImage16: %v", err)
		}
		if err := s.DrawImage16(5, 6, im, 2, 1, 4, 3, mask); err != nil {
			t.Fatalf("DrawImage16 masked: %v", err)
		}
	}

	fast, _, fastFB := newTestSurface(t, 10, 10, FramebufferDriverConfig{})
	draw(fast)

	slowFB := NewMemFramebuffer(10, 10)
	slow, err := gfx.NewSurface(gfx.Unaccelerated(NewFramebufferDriver(slowFB, FramebufferDriverConfig{})), 10, 10)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	draw(slow)

	for i := range fastFB.Buffer() {
		if fastFB.Buffer()[i] != slowFB.Buffer()[i] {
			t.Fatalf("byte %d differs: fast %#02x, generic %#02x", i, fastFB.Buffer()[i], slowFB.Buffer()[i])
		}
	}
}

func TestFramebufferDriver_EventsFromPointer(t *testing.T) {
	ptr := &scriptedPointer{evs: []gfx.TouchEvent{
		{Type: gfx.EventTouch, X: 1, Y: 1},
		{Type: gfx.EventDrag, X: 2, Y: 1},
		{Type: gfx.EventRelease, X: 2, Y: 1},
	}}
	log := &lineLog{}
	s, drv, _ := newTestSurface(t, 4, 4, FramebufferDriverConfig{Logger: log, Pointer: ptr, QueueSize: 2})

	var got []gfx.EventType
	if err := s.CheckEvents(func(ev gfx.TouchEvent) error {
		got = append(got, ev.Type)
		return nil
	}); err != nil {
		t.Fatalf("CheckEvents: %v", err)
	}
	if len(got) != 2 || got[0] != gfx.EventTouch || got[1] != gfx.EventDrag {
		t.Fatalf("events=%v, want touch, drag", got)
	}
	if drv.Events().Overflows() != 1 {
		t.Fatalf("overflows=%d, want 1", drv.Events().Overflows())
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "dropped release") {
		t.Fatalf("log=%q", log.lines)
	}
}

func TestMemFramebuffer_ScrollView(t *testing.T) {
	s, _, fb := newTestSurface(t, 2, 4, FramebufferDriverConfig{})
	if err := s.FillRegion(0, 1, 1, 1, gfx.White); err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	s.SetScroll(1)
	if got := gfx.ColorOf(fb.At(0, 0)); got != gfx.White {
		t.Fatalf("top row after scroll=%#04x, want white", got)
	}
	s.SetScroll(-3)
	if got := gfx.ColorOf(fb.At(0, 0)); got != gfx.White {
		t.Fatalf("negative scroll not wrapped: %#04x", got)
	}
	img := fb.Snapshot()
	if img.RGBAAt(1, 0) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("snapshot top row=%v", img.RGBAAt(1, 0))
	}
}
