package gfx

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

// pixelDisplay is a bare drivers.Displayer for checking the non-Surface path.
type pixelDisplay struct {
	w, h int16
	set  map[point]color.RGBA
}

func (p *pixelDisplay) Size() (int16, int16) { return p.w, p.h }
func (p *pixelDisplay) Display() error       { return nil }
func (p *pixelDisplay) SetPixel(x, y int16, c color.RGBA) {
	p.set[point{int(x), int(y)}] = c
}

func TestFace_WriteLineMatchesDrawString(t *testing.T) {
	f := testFont(t)

	direct := newMemDriver()
	if _, err := mustSurface(t, direct, 16, 4).DrawString(0, 0, f, White, "AB?"); err != nil {
		t.Fatalf("DrawString: %v", err)
	}

	viaFace := newMemDriver()
	s := mustSurface(t, viaFace, 16, 4)
	tinyfont.WriteLine(s, f.Face(), 0, int16(f.Height-1), "AB?", White.RGBA8())
	if err := s.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}

	for i := range direct.pix {
		if direct.pix[i] != viaFace.pix[i] {
			t.Fatalf("pixel (%d,%d): DrawString %#04x, tinyfont %#04x", i%16, i/16, direct.pix[i], viaFace.pix[i])
		}
	}
}

func TestFace_GenericDisplayer(t *testing.T) {
	f := testFont(t)
	d := &pixelDisplay{w: 8, h: 8, set: map[point]color.RGBA{}}
	tinyfont.WriteLine(d, f.Face(), 0, int16(f.Height-1), "Ж", White.RGBA8())
	// Runes outside the font use the default dot glyph.
	if len(d.set) != 1 {
		t.Fatalf("pixels=%v, want one", d.set)
	}
	if _, ok := d.set[point{0, 1}]; !ok {
		t.Fatalf("pixels=%v, want (0,1)", d.set)
	}

	w, _ := tinyfont.LineWidth(f.Face(), "AB")
	if w != 5 {
		t.Fatalf("LineWidth=%d, want 5", w)
	}
}
