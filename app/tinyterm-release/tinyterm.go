// Package tinyterm draws a scrolling ANSI text terminal on any display that
// implements Displayer. Glyphs come from a tinyfont.Fonter, so packed and
// generated fonts work as well as the tinyfont collections.
package tinyterm

import (
	"bytes"
	"fmt"
	"image/color"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer is a drivers.Displayer that can also fill rectangles and move the
// hardware scroll origin.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScroll(line int16)
	SetRotation(rotation drivers.Rotation) error
}

// Config contains the configuration for a Terminal.
type Config struct {
	// Font supplies the glyphs. Cell width is the advance of "0".
	Font tinyfont.Fonter

	// FontHeight is the line pitch in pixels.
	FontHeight int16

	// FontOffset is the baseline offset from the top of a line.
	FontOffset int16

	// UseSoftwareScroll keeps the scroll origin at zero. A full screen is
	// shifted with ScrollUp when the display has it and blanked otherwise.
	UseSoftwareScroll bool
}

// Terminal renders text written to it onto a display.
type Terminal struct {
	display Displayer
	width   int16
	height  int16

	// line is the buffer row of the current text line.
	line int16
	rows int16
	cols int16
	col  int16

	state  state
	params *bytes.Buffer
	attrs  sgrAttrs

	font       tinyfont.Fonter
	cellWidth  int16
	lineHeight int16
	baseline   int16

	softScroll bool
}

// NewTerminal returns a Terminal on display. Configure must be called before
// the first write.
func NewTerminal(display Displayer) *Terminal {
	return &Terminal{display: display}
}

// Configure sets the font and homes the cursor on the top line.
func (t *Terminal) Configure(config *Config) {
	t.state = stateInput
	t.params = bytes.NewBuffer(make([]byte, 0, 32))
	t.attrs.reset()

	t.font = config.Font
	_, w := tinyfont.LineWidth(config.Font, "0")
	t.cellWidth = int16(w)
	if t.cellWidth <= 0 {
		t.cellWidth = 1
	}
	t.lineHeight = config.FontHeight
	t.baseline = config.FontOffset

	t.width, t.height = t.display.Size()
	t.rows = t.height / t.lineHeight
	t.cols = t.width / t.cellWidth

	t.softScroll = config.UseSoftwareScroll
	t.line = 0
	t.col = 0
	if !t.softScroll {
		t.display.SetScroll(0)
	}
	t.clearLine()
}

// Write implements io.Writer. Invalid UTF-8 bytes are drawn as Latin-1.
func (t *Terminal) Write(buf []byte) (int, error) {
	for i := 0; i < len(buf); {
		b := buf[i]
		if t.state != stateInput || b < utf8.RuneSelf {
			t.putchar(b)
			i++
			continue
		}
		r, n := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && n == 1 {
			r = rune(b)
		}
		t.drawRune(r)
		i += n
	}
	return len(buf), nil
}

// WriteByte implements io.ByteWriter.
func (t *Terminal) WriteByte(b byte) error {
	t.putchar(b)
	return nil
}

// Printf formats to the terminal.
func (t *Terminal) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(t, format, args...)
}

// Println writes args and a line feed.
func (t *Terminal) Println(args ...any) (int, error) {
	return fmt.Fprintln(t, args...)
}

// Display flushes the display.
func (t *Terminal) Display() error {
	return t.display.Display()
}

// padX widens cell clears for fonts with a negative XOffset, which would
// otherwise leave pixels in the previous cell after a redraw.
const padX = int16(2)

func (t *Terminal) drawRune(r rune) {
	if t.col >= t.cols {
		t.lf()
	}
	x := t.col * t.cellWidth
	_ = t.display.FillRectangle(x-padX, t.line, t.cellWidth+2*padX, t.lineHeight, t.attrs.bg())
	cell := cellClip{
		Displayer: t.display,
		x0:        x - padX,
		y0:        t.line,
		x1:        x + t.cellWidth + padX,
		y1:        t.line + t.lineHeight,
	}
	tinyfont.DrawChar(cell, t.font, x, t.line+t.baseline, r, t.attrs.fg())
	t.col++
}

func (t *Terminal) cr() {
	t.col = 0
}

func (t *Terminal) backspace() {
	if t.col > 0 {
		t.col--
	}
}

type scrollUpper interface {
	ScrollUp(lines int16, bg color.RGBA) error
}

func (t *Terminal) lf() {
	t.col = 0
	used := t.rows * t.lineHeight
	if used <= 0 {
		used = t.height
	}
	switch {
	case !t.softScroll:
		t.line = (t.line + t.lineHeight) % used
		t.display.SetScroll((t.line + t.lineHeight) % t.height)
	case t.line+t.lineHeight < used:
		t.line += t.lineHeight
	default:
		if s, ok := t.display.(scrollUpper); ok {
			_ = s.ScrollUp(t.lineHeight, t.attrs.bg())
		} else {
			_ = t.display.FillRectangle(0, 0, t.width, t.height, t.attrs.bg())
		}
		t.line = used - t.lineHeight
	}
	t.clearLine()
}

func (t *Terminal) clearLine() {
	_ = t.display.FillRectangle(0, t.line, t.width, t.lineHeight, t.attrs.bg())
}

// cellClip drops pixels outside one character cell.
type cellClip struct {
	Displayer
	x0, y0, x1, y1 int16
}

func (d cellClip) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.Displayer.SetPixel(x, y, c)
}
