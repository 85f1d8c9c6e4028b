package tinyterm

import "image/color"

// Color is an index into the 16 color ANSI palette.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

const bright Color = 8

var palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xaa, 0x00, 0x00, 0xff},
	{0x00, 0xaa, 0x00, 0xff},
	{0xaa, 0x55, 0x00, 0xff},
	{0x00, 0x00, 0xaa, 0xff},
	{0xaa, 0x00, 0xaa, 0xff},
	{0x00, 0xaa, 0xaa, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
	{0x55, 0x55, 0x55, 0xff},
	{0xff, 0x55, 0x55, 0xff},
	{0x55, 0xff, 0x55, 0xff},
	{0xff, 0xff, 0x55, 0xff},
	{0x55, 0x55, 0xff, 0xff},
	{0xff, 0x55, 0xff, 0xff},
	{0x55, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// RGBA returns the palette entry for c.
func (c Color) RGBA() color.RGBA { return palette[c&0x0f] }

// sgrAttrs is the current Select Graphic Rendition state.
type sgrAttrs struct {
	bold    bool
	reverse bool
	fgcol   Color
	bgcol   Color
}

// reset restores white on black. The default foreground is the bright
// entry so text stays readable on small panels.
func (a *sgrAttrs) reset() {
	*a = sgrAttrs{fgcol: ColorWhite | bright, bgcol: ColorBlack}
}

func (a *sgrAttrs) fg() color.RGBA {
	c := a.fgcol
	if a.reverse {
		c = a.bgcol
	}
	if a.bold && c < bright {
		c |= bright
	}
	return c.RGBA()
}

func (a *sgrAttrs) bg() color.RGBA {
	if a.reverse {
		return a.fgcol.RGBA()
	}
	return a.bgcol.RGBA()
}

// apply runs every parameter of one SGR sequence. No parameters means reset.
func (a *sgrAttrs) apply(p []int) {
	if len(p) == 0 {
		a.reset()
		return
	}
	for i := 0; i < len(p); i++ {
		switch n := p[i]; {
		case n <= 0:
			a.reset()
		case n == 1:
			a.bold = true
		case n == 7:
			a.reverse = true
		case n == 22:
			a.bold = false
		case n == 27:
			a.reverse = false
		case n >= 30 && n <= 37:
			a.fgcol = Color(n - 30)
		case n == 39:
			a.fgcol = ColorWhite | bright
		case n >= 40 && n <= 47:
			a.bgcol = Color(n - 40)
		case n == 49:
			a.bgcol = ColorBlack
		case n >= 90 && n <= 97:
			a.fgcol = Color(n-90) | bright
		case n >= 100 && n <= 107:
			a.bgcol = Color(n-100) | bright
		case n == 38 || n == 48:
			// 38;5;n and 48;5;n with n in the 16 color range.
			if i+2 < len(p) && p[i+1] == 5 {
				c := Color(p[i+2] & 0x0f)
				if n == 38 {
					a.fgcol = c
				} else {
					a.bgcol = c
				}
				i += 2
			}
		}
	}
}
