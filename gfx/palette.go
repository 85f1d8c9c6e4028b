package gfx

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of entries in a Palette.
const PaletteSize = 16

// Palette maps a 4-bit index to a display color. It is owned by the caller of a
// draw operation, never by the image.
type Palette [PaletteSize]Color

// Lookup returns the color at index. Only the low nibble is used.
func (p *Palette) Lookup(index uint8) Color {
	return p[index&0x0F]
}

// System palette slots. Drawing code that wants to follow the system look uses
// these indices instead of hard-coded colors.
const (
	SysBackground = iota
	SysForeground
	SysWindowBackground
	SysWindowForeground
	SysControlBackground
	SysControlForeground
	SysControlHighlight
	SysControlBorder
	SysDialogBackground
	SysDialogForeground
	SysSuccess
	SysSuccessAlt
	SysWarning
	SysWarningAlt
	SysError
	SysErrorAlt
)

// SystemPalette returns the default system palette.
func SystemPalette() Palette {
	return Palette{
		SysBackground:        RGB(0x10, 0x18, 0x20),
		SysForeground:        RGB(0xF0, 0xF0, 0xF0),
		SysWindowBackground:  RGB(0x28, 0x30, 0x38),
		SysWindowForeground:  RGB(0xE0, 0xE0, 0xE0),
		SysControlBackground: RGB(0x40, 0x48, 0x58),
		SysControlForeground: RGB(0xFF, 0xFF, 0xFF),
		SysControlHighlight:  RGB(0x30, 0x90, 0xF0),
		SysControlBorder:     RGB(0x80, 0x88, 0x98),
		SysDialogBackground:  RGB(0xF0, 0xF0, 0xE8),
		SysDialogForeground:  RGB(0x10, 0x10, 0x10),
		SysSuccess:           RGB(0x20, 0xC0, 0x40),
		SysSuccessAlt:        RGB(0x10, 0x60, 0x20),
		SysWarning:           RGB(0xF0, 0xC0, 0x20),
		SysWarningAlt:        RGB(0x80, 0x60, 0x10),
		SysError:             RGB(0xE0, 0x30, 0x30),
		SysErrorAlt:          RGB(0x70, 0x18, 0x18),
	}
}

// GradientPalette interpolates PaletteSize entries from one color to another in
// CIE-Lab space. Entry 0 is from and entry 15 is to.
func GradientPalette(from, to color.Color) Palette {
	c1, _ := colorful.MakeColor(opaque(from))
	c2, _ := colorful.MakeColor(opaque(to))

	var p Palette
	for i := range p {
		t := float64(i) / float64(PaletteSize-1)
		r, g, b := c1.BlendLab(c2, t).Clamped().RGB255()
		p[i] = RGB(r, g, b)
	}
	return p
}

// PaletteFrom copies up to PaletteSize entries of a standard palette. Missing
// entries are black.
func PaletteFrom(cp color.Palette) Palette {
	var p Palette
	for i := 0; i < len(cp) && i < PaletteSize; i++ {
		p[i] = ColorOf(cp[i])
	}
	return p
}

// ColorPalette returns p as a standard palette, e.g. for dithering.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, PaletteSize)
	for i, c := range p {
		cp[i] = c.RGBA8()
	}
	return cp
}

// colorful.MakeColor refuses fully transparent colors.
func opaque(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0xFFFF {
		return c
	}
	if a == 0 {
		return color.Black
	}
	return color.RGBA64{
		R: uint16(r * 0xFFFF / a),
		G: uint16(g * 0xFFFF / a),
		B: uint16(b * 0xFFFF / a),
		A: 0xFFFF,
	}
}
