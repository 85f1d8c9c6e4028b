package gfx

import (
	"errors"
	"testing"
)

func TestNewSurface_FullClip(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 20, 10)
	if s.Clip() != (Rect{X2: 19, Y2: 9}) {
		t.Fatalf("clip=%v, want full surface", s.Clip())
	}
	if d.clip != s.Clip() {
		t.Fatalf("driver clip=%v, want %v", d.clip, s.Clip())
	}
	// Every in-bounds point is admitted by the default clip.
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if !s.Clip().Admits(x, y) {
				t.Fatalf("(%d,%d) not admitted", x, y)
			}
		}
	}
}

func TestNewSurface_InitFailure(t *testing.T) {
	d := newMemDriver()
	d.initErr = ErrOutOfMemory
	if _, err := NewSurface(d, 10, 10); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("err=%v, want ErrOutOfMemory", err)
	}
}

func TestSurface_SetClipRejects(t *testing.T) {
	s := mustSurface(t, newMemDriver(), 10, 10)
	for _, r := range []Rect{{5, 0, 4, 9}, {0, 0, 10, 9}, {-1, 0, 3, 3}} {
		if err := s.SetClip(r.X1, r.Y1, r.X2, r.Y2); !errors.Is(err, ErrBadArgument) {
			t.Fatalf("SetClip(%v) err=%v, want ErrBadArgument", r, err)
		}
	}
	if s.Clip() != s.Bounds() {
		t.Fatalf("rejected SetClip changed clip to %v", s.Clip())
	}
}

func TestSurface_SetClipReplaces(t *testing.T) {
	s := mustSurface(t, newMemDriver(), 10, 10)
	if err := s.SetClip(0, 0, 3, 3); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	if err := s.SetClip(5, 5, 9, 9); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	if s.Clip() != (Rect{5, 5, 9, 9}) {
		t.Fatalf("clip=%v, want replaced not intersected", s.Clip())
	}
}

func TestSurface_WithClipRestores(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 10, 10)
	boom := errors.New("boom")
	err := s.WithClip(Rect{2, 2, 4, 4}, func() error {
		if s.Clip() != (Rect{2, 2, 4, 4}) {
			t.Fatalf("inner clip=%v", s.Clip())
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if s.Clip() != s.Bounds() || d.clip != s.Bounds() {
		t.Fatalf("clip not restored: surface %v driver %v", s.Clip(), d.clip)
	}
}

func TestSurface_PaintAlwaysEnds(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 4)
	boom := errors.New("boom")
	if err := s.Paint(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if d.begins != 1 || d.ends != 1 {
		t.Fatalf("begins=%d ends=%d, want 1/1", d.begins, d.ends)
	}
}

func TestSurface_PutPixelClipped(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 10, 10)
	if err := s.SetClip(2, 2, 3, 3); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	for _, p := range []point{{1, 2}, {2, 2}, {3, 3}, {4, 3}, {-1, -1}, {50, 50}} {
		if err := s.PutPixel(p.X, p.Y, White); err != nil {
			t.Fatalf("PutPixel(%d,%d): %v", p.X, p.Y, err)
		}
	}
	if len(d.puts) != 2 || d.puts[0] != (point{2, 2}) || d.puts[1] != (point{3, 3}) {
		t.Fatalf("puts=%v", d.puts)
	}
}

func TestSurface_FillRegionClamped(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 10, 10)
	if err := s.FillRegion(-3, 8, 4, 20, Red); err != nil {
		t.Fatalf("FillRegion: %v", err)
	}
	if len(d.fills) != 1 || d.fills[0] != (Rect{0, 8, 4, 9}) {
		t.Fatalf("fills=%v", d.fills)
	}
	d.reset()
	if err := s.FillRegion(10, 0, 12, 3, Red); err != nil || len(d.fills) != 0 {
		t.Fatalf("offscreen fill: err=%v fills=%v", err, d.fills)
	}
	if err := s.FillBox(3, 0, 2, 0, Red); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("FillBox reversed err=%v", err)
	}
}

func TestSurface_CheckEventsDelegates(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 4)
	d.queue.Push(EventTouch, 1, 2)
	var got []TouchEvent
	if err := s.CheckEvents(func(ev TouchEvent) error { got = append(got, ev); return nil }); err != nil {
		t.Fatalf("CheckEvents: %v", err)
	}
	if len(got) != 1 || got[0] != (TouchEvent{EventTouch, 1, 2}) {
		t.Fatalf("events=%v", got)
	}
}
