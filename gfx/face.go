package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Face adapts a packed Font to tinyfont. Runes above 0xFF resolve to the
// default character. A Face reuses one glyph value and is not safe for
// concurrent use.
type Face struct {
	font  *Font
	glyph faceGlyph
}

// Face returns a tinyfont view of f. Glyphs are anchored on the baseline the
// tinyfont way, with the bottom row of the cell on the baseline.
func (f *Font) Face() *Face {
	return &Face{font: f, glyph: faceGlyph{font: f}}
}

var _ tinyfont.Fonter = (*Face)(nil)

// GetGlyph implements tinyfont.Fonter.
func (fc *Face) GetGlyph(r rune) tinyfont.Glypher {
	ch := fc.font.Default
	if r >= 0 && r <= 0xFF {
		ch = byte(r)
	}
	fc.glyph.r = r
	fc.glyph.ch = ch
	fc.glyph.g, fc.glyph.ok = fc.font.Lookup(ch)
	if !fc.glyph.ok {
		fc.glyph.g, fc.glyph.ok = fc.font.Lookup(fc.font.Default)
	}
	return &fc.glyph
}

// GetYAdvance implements tinyfont.Fonter.
func (fc *Face) GetYAdvance() uint8 { return fc.font.Height }

type faceGlyph struct {
	font *Font
	r    rune
	ch   byte
	g    Glyph
	ok   bool
}

func (g *faceGlyph) top() int8 {
	return -int8(g.font.Height - 1)
}

// Draw renders through Surface.DrawChar when display is a Surface so the
// driver fast path and clip apply; any other display gets plain SetPixel calls.
func (g *faceGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	if !g.ok {
		return
	}
	top := y + int16(g.top())
	if s, ok := display.(*Surface); ok {
		if _, err := s.DrawChar(int(x), int(top), g.font, ColorOf(c), g.g.Char); err != nil && s.deferred == nil {
			s.deferred = err
		}
		return
	}
	atlas := g.font.Atlas
	for j := 0; j < int(g.font.Height); j++ {
		for i := 0; i < int(g.g.Width); i++ {
			if atlas.pixel(int(g.g.X)+i, int(g.g.Y)+j) != 0 {
				display.SetPixel(x+int16(i), top+int16(j), c)
			}
		}
	}
}

func (g *faceGlyph) Info() tinyfont.GlyphInfo {
	var w uint8
	if g.ok {
		w = g.g.Width
	}
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    w,
		Height:   g.font.Height,
		XAdvance: w,
		XOffset:  0,
		YOffset:  g.top(),
	}
}
