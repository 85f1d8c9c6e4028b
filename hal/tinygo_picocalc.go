//go:build tinygo && baremetal && picocalc

package hal

import "quickgfx/gfx"

// New returns a PicoCalc HAL (Pico/Pico2 on the PicoCalc carrier).
func New() HAL {
	logger := newUARTLogger()
	var fb Framebuffer
	if disp, err := newPicoCalcDisplay(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
		fb = &stubFramebuffer{w: picoCalcWidth, h: picoCalcHeight, format: PixelFormatRGB565}
	}
	return &boardHAL{log: logger, fb: fb}
}

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

// picoCalcFramebuffer keeps the frame in RAM and sends only the rows marked
// dirty since the last Present.
type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	dirty    bool
	dirtyY   [2]int
	fullNext bool

	lcd *ili9488
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, gfx.RGB(r, g, b))
	f.fullNext = true
}

func (f *picoCalcFramebuffer) MarkDirty(y1, y2 int) {
	y1 = max(y1, 0)
	y2 = min(y2, f.h-1)
	if y1 > y2 {
		return
	}
	if !f.dirty {
		f.dirty = true
		f.dirtyY = [2]int{y1, y2}
		return
	}
	f.dirtyY[0] = min(f.dirtyY[0], y1)
	f.dirtyY[1] = max(f.dirtyY[1], y2)
}

func (f *picoCalcFramebuffer) Present() error {
	y1, y2 := 0, f.h-1
	switch {
	case f.fullNext:
	case f.dirty:
		y1, y2 = f.dirtyY[0], f.dirtyY[1]
	default:
		return nil
	}
	f.dirty = false
	f.fullNext = false
	return f.lcd.blitRows(f.buf, f.w, y1, y2)
}

// SetScroll uses the panel's vertical scrolling start address.
func (f *picoCalcFramebuffer) SetScroll(line int16) {
	f.lcd.setScroll(uint16((int(line)%f.h + f.h) % f.h))
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	lcd.defineScrollArea(picoCalcHeight)
	return &picoCalcFramebuffer{
		w:        picoCalcWidth,
		h:        picoCalcHeight,
		stride:   picoCalcWidth * 2,
		buf:      make([]byte, picoCalcWidth*picoCalcHeight*2),
		fullNext: true,
		lcd:      lcd,
	}, nil
}
