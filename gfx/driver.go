package gfx

// Driver is the primitive set a display backend provides. Everything else on
// a Surface is built from these calls.
type Driver interface {
	// Init prepares the backend. The backend may choose a different size;
	// Size reports what it settled on.
	Init(width, height int) error
	Size() (width, height int)
	// Framebuffer returns the backend's pixel memory, or nil. The format is
	// backend-defined and callers must not retain it.
	Framebuffer() []byte
	BeginPaint() error
	EndPaint() error
	SetClip(r Rect) error
	PutPixel(x, y int, c Color) error
	FillRegion(r Rect, c Color) error
	CheckEvents(h EventHandler) error
}

// Fast paths. A Surface looks for these by type assertion after validating
// arguments and pushing the current clip to the driver with SetClip. The
// result must match the generic path pixel for pixel.
type (
	IconDrawer interface {
		DrawIcon(x, y int, icon *Image, sx, sy, w, h int, mask *Image, c Color) error
	}
	Image4Drawer interface {
		DrawImage4(x, y int, im *Image, sx, sy, w, h int, mask *Image, pal *Palette) error
	}
	Image16Drawer interface {
		DrawImage16(x, y int, im *Image, sx, sy, w, h int, mask *Image) error
	}
	LineDrawer interface {
		DrawLine(x1, y1, x2, y2 int, c Color) error
	}
	BoxDrawer interface {
		DrawBox(x1, y1, x2, y2 int, c Color) error
	}
)

type unaccelerated struct {
	Driver
}

// Unaccelerated hides every fast path of d so a Surface uses the generic
// implementations only.
func Unaccelerated(d Driver) Driver {
	if u, ok := d.(unaccelerated); ok {
		return u
	}
	return unaccelerated{d}
}
