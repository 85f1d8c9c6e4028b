// Package fonts turns golang.org/x/image faces into packed gfx fonts.
package fonts

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"quickgfx/gfx"
)

// Threshold is the coverage at or above which an anti-aliased face pixel is
// set in the 1 bpp atlas.
const Threshold = 0x80

// ASCII is the printable ASCII range.
const ASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

var ErrTooLarge = errors.New("fonts: glyphs do not fit a 255x255 atlas")

// FromFace rasterises the characters of chars (bytes, read as Latin-1) into a
// packed font whose default character is def. Glyphs the face lacks are
// skipped. Glyph cells are the face's line height tall and their advance wide.
func FromFace(face font.Face, chars string, def byte) (*gfx.Font, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	if height <= 0 || height > gfx.MaxImageSize {
		return nil, fmt.Errorf("fonts: line height %d: %w", height, ErrTooLarge)
	}

	type cell struct {
		ch   byte
		w    int
		x, y int
	}
	var cells []cell
	seen := map[byte]bool{}
	x, y, atlasW := 0, 0, 0
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		if seen[ch] {
			continue
		}
		adv, ok := face.GlyphAdvance(rune(ch))
		if !ok {
			continue
		}
		w := adv.Round()
		if w <= 0 || w > gfx.MaxImageSize {
			continue
		}
		if x+w > gfx.MaxImageSize {
			x = 0
			y += height
		}
		if y+height > gfx.MaxImageSize || len(cells) == gfx.MaxImageSize {
			return nil, ErrTooLarge
		}
		seen[ch] = true
		cells = append(cells, cell{ch: ch, w: w, x: x, y: y})
		x += w
		atlasW = max(atlasW, x)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("fonts: face has none of %q", chars)
	}
	if !seen[def] {
		return nil, fmt.Errorf("fonts: default character %q not rendered: %w", def, gfx.ErrInternal)
	}

	atlas, err := gfx.NewImage(atlasW, y+height, gfx.BPP1)
	if err != nil {
		return nil, err
	}
	f := &gfx.Font{
		FontHeader: gfx.FontHeader{Chars: uint8(len(cells)), Height: uint8(height), Default: def},
		Glyphs:     make([]gfx.Glyph, 0, len(cells)),
		Atlas:      atlas,
	}
	for _, c := range cells {
		dr, mask, mp, _, ok := face.Glyph(fixed.P(c.x, c.y+ascent), rune(c.ch))
		if ok {
			cellRect := image.Rect(c.x, c.y, c.x+c.w, c.y+height)
			paint(atlas, dr.Intersect(cellRect), dr, mask, mp)
		}
		f.Glyphs = append(f.Glyphs, gfx.Glyph{Char: c.ch, Width: uint8(c.w), X: uint8(c.x), Y: uint8(c.y)})
	}
	return f, f.Validate()
}

// paint sets the atlas bits covered by mask inside r. dr is where the face
// placed the glyph and mp the matching origin inside mask.
func paint(atlas *gfx.Image, r, dr image.Rectangle, mask image.Image, mp image.Point) {
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			a := color.AlphaModel.Convert(mask.At(mp.X+px-dr.Min.X, mp.Y+py-dr.Min.Y)).(color.Alpha).A
			if a >= Threshold {
				_ = atlas.SetPixel(px, py, 1)
			}
		}
	}
}
