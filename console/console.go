// Package console runs a tinyterm text terminal on a gfx surface, either
// full screen or inside a rectangle of it.
package console

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyterm"

	"quickgfx/fonts/basic"
	"quickgfx/gfx"
)

// Console is a scrolling text area. Output understands the ANSI subset that
// tinyterm does (SGR colors, erase in line and display, cursor movement).
type Console struct {
	s    *gfx.Surface
	area gfx.Rect
	font *gfx.Font
	disp tinyterm.Displayer
	term *tinyterm.Terminal
}

// New opens a console covering the whole surface. A nil font selects the
// built-in system font. Line feeds use the display's hardware scroll when
// the driver has one.
func New(s *gfx.Surface, f *gfx.Font) (*Console, error) {
	return NewRegion(s, s.Bounds(), f)
}

// NewRegion opens a console restricted to area. Regions smaller than the
// surface wrap to their top line instead of scrolling.
func NewRegion(s *gfx.Surface, area gfx.Rect, f *gfx.Font) (*Console, error) {
	if s == nil {
		return nil, fmt.Errorf("console: nil surface: %w", gfx.ErrBadArgument)
	}
	if area.Empty() || !s.Bounds().Contains(area) {
		return nil, fmt.Errorf("console: area %v outside %dx%d: %w", area, s.Width(), s.Height(), gfx.ErrBadArgument)
	}
	if f == nil {
		var err error
		if f, err = basic.Font(); err != nil {
			return nil, err
		}
	}
	if area.Dy() < int(f.Height) {
		return nil, fmt.Errorf("console: area %v shorter than one line: %w", area, gfx.ErrBadArgument)
	}

	c := &Console{s: s, area: area, font: f}
	if area == s.Bounds() {
		c.disp = s
	} else {
		c.disp = region{s: s, r: area}
	}
	return c, c.Reset()
}

// Reset clears the area and homes the cursor.
func (c *Console) Reset() error {
	c.term = tinyterm.NewTerminal(c.disp)
	return c.paint(func() {
		c.term.Configure(&tinyterm.Config{
			Font:       c.font.Face(),
			FontHeight: int16(c.font.Height),
			FontOffset: int16(c.font.Height) - 1,
		})
		_ = c.disp.FillRectangle(0, 0, int16(c.area.Dx()), int16(c.area.Dy()), gfx.Black.RGBA8())
	})
}

// Write implements io.Writer. The text is drawn inside one paint bracket.
func (c *Console) Write(p []byte) (int, error) {
	var n int
	err := c.paint(func() {
		n, _ = c.term.Write(p)
	})
	return n, err
}

// Printf formats to the console.
func (c *Console) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(c, format, args...)
}

// Println writes args and a line feed.
func (c *Console) Println(args ...any) (int, error) {
	return fmt.Fprintln(c, args...)
}

// Area is the rectangle the console draws in.
func (c *Console) Area() gfx.Rect { return c.area }

// Rows returns the number of text lines that fit.
func (c *Console) Rows() int { return c.area.Dy() / int(c.font.Height) }

func (c *Console) paint(fn func()) error {
	return c.s.Paint(func() error {
		return c.s.WithClip(c.area, func() error {
			fn()
			return c.s.Display()
		})
	})
}

// region presents a sub-rectangle of a surface as a display of its own.
type region struct {
	s *gfx.Surface
	r gfx.Rect
}

func (d region) Size() (x, y int16) {
	return int16(d.r.Dx()), int16(d.r.Dy())
}

func (d region) SetPixel(x, y int16, c color.RGBA) {
	d.s.SetPixel(x+int16(d.r.X1), y+int16(d.r.Y1), c)
}

func (d region) Display() error { return nil }

func (d region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.s.FillRectangle(x+int16(d.r.X1), y+int16(d.r.Y1), width, height, c)
}

func (d region) SetScroll(int16) {}

func (d region) SetRotation(rotation drivers.Rotation) error {
	return d.s.SetRotation(rotation)
}
