package hal

import (
	"errors"

	"quickgfx/gfx"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb, little-endian in memory.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// DirtyTracker is implemented by framebuffers that can present a band of
// rows instead of the whole buffer.
type DirtyTracker interface {
	MarkDirty(y1, y2 int)
}

// Pointer is a touch or mouse source. PollTouch hands every event seen since
// the last call to emit, oldest first.
type Pointer interface {
	PollTouch(emit func(t gfx.EventType, x, y int))
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() Pointer
}

// HAL provides the only contact point between the drawing stack and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

type nullPointer struct{}

func (nullPointer) PollTouch(func(gfx.EventType, int, int)) {}
