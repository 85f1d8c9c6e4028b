package hal

import (
	"fmt"

	"quickgfx/gfx"
)

// NewSurface builds the standard stack for h: a FramebufferDriver over the
// HAL framebuffer, fed by the HAL pointer and logging through the HAL logger.
func NewSurface(h HAL, queueSize int) (*gfx.Surface, *FramebufferDriver, error) {
	var fb Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, nil, fmt.Errorf("hal: no framebuffer: %w", gfx.ErrOutOfMemory)
	}
	var ptr Pointer
	if in := h.Input(); in != nil {
		ptr = in.Pointer()
	}
	drv := NewFramebufferDriver(fb, FramebufferDriverConfig{
		Logger:    h.Logger(),
		Pointer:   ptr,
		QueueSize: queueSize,
	})
	s, err := gfx.NewSurface(drv, fb.Width(), fb.Height())
	if err != nil {
		return nil, nil, err
	}
	return s, drv, nil
}
