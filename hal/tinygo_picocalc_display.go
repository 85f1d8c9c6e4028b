//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

// ILI9488 command opcodes used by the PicoCalc panel.
const (
	opSleepOut   = 0x11
	opInvertOn   = 0x21
	opDisplayOn  = 0x29
	opColumnAddr = 0x2A
	opPageAddr   = 0x2B
	opMemWrite   = 0x2C
	opScrollDef  = 0x33
	opMADCTL     = 0x36
	opScrollAddr = 0x37
	opPixelFmt   = 0x3A
	opFrameRate  = 0xB1
	opDispFunc   = 0xB6
	opPower1     = 0xC0
	opPower2     = 0xC1
	opVCOM       = 0xC5
)

// panelRows is the height of the controller's frame memory, which is what
// the scroll definition must add up to.
const panelRows = 480

type panelStep struct {
	op    byte
	args  []byte
	pause time.Duration
}

// panelInit brings the panel up in 16 bpp with the PicoCalc mirroring and
// BGR order.
var panelInit = []panelStep{
	{op: opPower1, args: []byte{0x17, 0x15}},
	{op: opPower2, args: []byte{0x41}},
	{op: opVCOM, args: []byte{0x00, 0x12, 0x80, 0x40}},
	{op: opPixelFmt, args: []byte{0x55}},
	{op: opFrameRate, args: []byte{0xA0, 0x11}},
	{op: opDispFunc, args: []byte{0x02, 0x22, 0x27}},
	{op: opInvertOn},
	{op: opMADCTL, args: []byte{0x40 | 0x08 | 0x04}},
	{op: opSleepOut, pause: 120 * time.Millisecond},
	{op: opDisplayOn},
}

// ili9488 drives the panel over SPI1 (GP10-GP12) with chip select, data or
// command and reset on GP13-GP15.
type ili9488 struct {
	bus         *machine.SPI
	cs, dc, rst machine.Pin
	tx          []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}
	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	p := &ili9488{
		bus: machine.SPI1,
		cs:  machine.GP13,
		dc:  machine.GP14,
		rst: machine.GP15,
		tx:  make([]byte, 4096),
	}
	for _, pin := range []machine.Pin{p.cs, p.dc, p.rst} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.High()
	}

	p.rst.Low()
	time.Sleep(64 * time.Millisecond)
	p.rst.High()
	time.Sleep(140 * time.Millisecond)

	for _, s := range panelInit {
		p.command(s.op, s.args...)
		if s.pause > 0 {
			time.Sleep(s.pause)
		}
	}
	return p, nil
}

func (p *ili9488) command(op byte, args ...byte) {
	p.cs.Low()
	p.dc.Low()
	p.bus.Tx([]byte{op}, nil)
	p.dc.High()
	if len(args) > 0 {
		p.bus.Tx(args, nil)
	}
	p.cs.High()
}

func be16(v int) (byte, byte) { return byte(v >> 8), byte(v) }

// window selects the rectangle the next memory write fills.
func (p *ili9488) window(x1, y1, x2, y2 int) {
	a, b := be16(x1)
	c, d := be16(x2)
	p.command(opColumnAddr, a, b, c, d)
	a, b = be16(y1)
	c, d = be16(y2)
	p.command(opPageAddr, a, b, c, d)
	p.command(opMemWrite)
}

// defineScrollArea makes the top visible rows one scrolling region with no
// fixed areas above it.
func (p *ili9488) defineScrollArea(visible int) {
	vh, vl := be16(visible)
	bh, bl := be16(panelRows - visible)
	p.command(opScrollDef, 0, 0, vh, vl, bh, bl)
}

func (p *ili9488) setScroll(line uint16) {
	h, l := be16(int(line))
	p.command(opScrollAddr, h, l)
}

// blitRows streams rows y1..y2 of a little-endian RGB565 frame of width w.
// The panel takes pixels high byte first, so each chunk is swapped on the
// way out.
func (p *ili9488) blitRows(frame []byte, w, y1, y2 int) error {
	start, end := y1*w*2, (y2+1)*w*2
	if w <= 0 || y1 < 0 || y2 < y1 || len(frame) < end {
		return errors.New("ili9488: band outside frame")
	}
	buf := p.tx[:len(p.tx)&^1]
	if len(buf) == 0 {
		return errors.New("ili9488: no transfer buffer")
	}

	p.window(0, y1, w-1, y2)
	p.cs.Low()
	p.dc.High()
	for off := start; off < end; off += len(buf) {
		n := copy(buf, frame[off:end])
		for i := 0; i+1 < n; i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
		p.bus.Tx(buf[:n], nil)
	}
	p.cs.High()
	return nil
}
