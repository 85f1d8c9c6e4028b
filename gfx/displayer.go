package gfx

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
)

// Scroller is implemented by drivers that can offset the displayed rows, the
// way ILI9341-class panels do in hardware.
type Scroller interface {
	SetScroll(line int16)
}

var _ drivers.Displayer = (*Surface)(nil)

// Size implements drivers.Displayer.
func (s *Surface) Size() (x, y int16) {
	return int16(s.width), int16(s.height)
}

// SetPixel implements drivers.Displayer. The first driver error is held until
// the next call to Display.
func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	if err := s.PutPixel(int(x), int(y), ColorOf(c)); err != nil && s.deferred == nil {
		s.deferred = err
	}
}

// Display implements drivers.Displayer. It reports and clears the first error
// seen by SetPixel since the last call.
func (s *Surface) Display() error {
	err := s.deferred
	s.deferred = nil
	return err
}

// FillRectangle fills a width x height rectangle at (x,y) through the clip.
func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fill rectangle %dx%d: %w", width, height, ErrBadArgument)
	}
	return s.FillRegion(int(x), int(y), int(x)+int(width)-1, int(y)+int(height)-1, ColorOf(c))
}

// SetScroll forwards to the driver when it can scroll, and is a no-op
// otherwise.
func (s *Surface) SetScroll(line int16) {
	if sc, ok := s.drv.(Scroller); ok {
		sc.SetScroll(line)
	}
}

// SetRotation accepts only the native orientation.
func (s *Surface) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return fmt.Errorf("rotation %d: %w", rotation, ErrBadArgument)
	}
	return nil
}
