package gfx

import "image/color"

// Color is a 16-bit display color: rrrrrggggggbbbbb.
type Color uint16

// Common colors.
const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// RGB packs 8-bit components by keeping the top 5/6/5 bits. There is no rounding.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGB888 expands c back to 8-bit channels, scaling so that full intensity maps to 255.
func (c Color) RGB888() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBA8 returns c as an opaque color.RGBA.
func (c Color) RGBA8() color.RGBA {
	r, g, b := c.RGB888()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// ColorModel converts arbitrary colors to Color. Alpha is ignored.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return ColorOf(c)
})

// ColorOf converts any color.Color to the display format.
func ColorOf(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
