package gfx

import "fmt"

// Surface is the drawing context for one display. It owns the clip rectangle
// and turns every drawing call into clipped driver primitives. A Surface is
// not safe for concurrent use.
type Surface struct {
	drv    Driver
	width  int
	height int
	clip   Rect

	// first error from a drivers.Displayer call, reported by Display
	deferred error
}

// NewSurface initialises d and returns a surface covering the size the driver
// settled on, with the clip set to the whole surface.
func NewSurface(d Driver, width, height int) (*Surface, error) {
	if d == nil {
		return nil, fmt.Errorf("surface: nil driver: %w", ErrBadArgument)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: size %dx%d: %w", width, height, ErrBadArgument)
	}
	if err := d.Init(width, height); err != nil {
		return nil, fmt.Errorf("surface: init driver: %w", err)
	}
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface: driver reports %dx%d: %w", w, h, ErrInternal)
	}
	s := &Surface{drv: d, width: w, height: h}
	if err := s.ResetClip(); err != nil {
		return nil, err
	}
	return s, nil
}

// Driver returns the backend the surface draws through.
func (s *Surface) Driver() Driver { return s.drv }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Bounds returns the whole surface as a Rect.
func (s *Surface) Bounds() Rect {
	return Rect{X2: s.width - 1, Y2: s.height - 1}
}

// Clip returns the current clip rectangle.
func (s *Surface) Clip() Rect { return s.clip }

// SetClip replaces the clip rectangle. It does not intersect with the
// previous one. Inverted rectangles and rectangles reaching outside the
// surface are rejected.
func (s *Surface) SetClip(x1, y1, x2, y2 int) error {
	r := Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
	if r.Empty() || !s.Bounds().Contains(r) {
		return fmt.Errorf("clip %v on %dx%d surface: %w", r, s.width, s.height, ErrBadArgument)
	}
	return s.setClip(r)
}

// ResetClip sets the clip to the whole surface.
func (s *Surface) ResetClip() error {
	return s.setClip(s.Bounds())
}

func (s *Surface) setClip(r Rect) error {
	if err := s.drv.SetClip(r); err != nil {
		return fmt.Errorf("driver set clip: %w", err)
	}
	s.clip = r
	return nil
}

// WithClip runs fn with r as the clip and restores the previous clip on the
// way out, whatever fn returns.
func (s *Surface) WithClip(r Rect, fn func() error) (err error) {
	prev := s.clip
	if err := s.SetClip(r.X1, r.Y1, r.X2, r.Y2); err != nil {
		return err
	}
	defer func() {
		if rerr := s.setClip(prev); err == nil {
			err = rerr
		}
	}()
	return fn()
}

// BeginPaint opens a batch of drawing calls.
func (s *Surface) BeginPaint() error { return s.drv.BeginPaint() }

// EndPaint closes a batch of drawing calls. Buffering backends flush here.
func (s *Surface) EndPaint() error { return s.drv.EndPaint() }

// Paint brackets fn with BeginPaint and EndPaint. EndPaint always runs once
// BeginPaint has succeeded.
func (s *Surface) Paint(fn func() error) (err error) {
	if err := s.drv.BeginPaint(); err != nil {
		return err
	}
	defer func() {
		if eerr := s.drv.EndPaint(); err == nil {
			err = eerr
		}
	}()
	return fn()
}

// PutPixel sets one pixel if the clip admits it.
func (s *Surface) PutPixel(x, y int, c Color) error {
	if !s.clip.Admits(x, y) {
		return nil
	}
	return s.drv.PutPixel(x, y, c)
}

// FillRegion fills the rectangle (x1,y1)-(x2,y2) trimmed to the clip.
func (s *Surface) FillRegion(x1, y1, x2, y2 int, c Color) error {
	r, ok := s.clip.ClampSpan(x1, y1, x2, y2)
	if !ok {
		return nil
	}
	return s.drv.FillRegion(r, c)
}

// FillBox is FillRegion with ordered corners required.
func (s *Surface) FillBox(x1, y1, x2, y2 int, c Color) error {
	if x1 > x2 || y1 > y2 {
		return fmt.Errorf("fill box (%d,%d)-(%d,%d): %w", x1, y1, x2, y2, ErrBadArgument)
	}
	return s.FillRegion(x1, y1, x2, y2, c)
}

// Clear fills the clip rectangle with c.
func (s *Surface) Clear(c Color) error {
	return s.drv.FillRegion(s.clip, c)
}

// CheckEvents asks the driver to deliver pending input events to h.
func (s *Surface) CheckEvents(h EventHandler) error {
	return s.drv.CheckEvents(h)
}

// Framebuffer returns the driver's pixel memory, or nil.
func (s *Surface) Framebuffer() []byte {
	return s.drv.Framebuffer()
}
