package gfx

import "fmt"

// FontHeaderSize is the size of the byte-packed font header.
const FontHeaderSize = 4

// GlyphSize is the size of one byte-packed glyph descriptor.
const GlyphSize = 4

// FontHeader is the persisted prefix of a font.
type FontHeader struct {
	Chars    uint8
	Height   uint8
	Default  uint8
	Reserved uint8
}

// Glyph locates one character in the font atlas. Width is both the bitmap
// width and the cursor advance.
type Glyph struct {
	Char  uint8
	Width uint8
	X     uint8
	Y     uint8
}

// Font is a set of fixed-height glyphs packed into a single 1 bpp atlas.
type Font struct {
	FontHeader
	Glyphs []Glyph
	Atlas  *Image
}

// ParseFont decodes a font: header, Chars glyph descriptors, then the atlas
// image. The atlas data aliases b.
func ParseFont(b []byte) (*Font, error) {
	if len(b) < FontHeaderSize {
		return nil, fmt.Errorf("font header: %d bytes: %w", len(b), ErrBadArgument)
	}
	f := &Font{FontHeader: FontHeader{
		Chars:    b[0],
		Height:   b[1],
		Default:  b[2],
		Reserved: b[3],
	}}
	b = b[FontHeaderSize:]

	table := int(f.Chars) * GlyphSize
	if len(b) < table {
		return nil, fmt.Errorf("font glyph table: need %d bytes, have %d: %w", table, len(b), ErrBadArgument)
	}
	f.Glyphs = make([]Glyph, f.Chars)
	for i := range f.Glyphs {
		g := b[i*GlyphSize:]
		f.Glyphs[i] = Glyph{Char: g[0], Width: g[1], X: g[2], Y: g[3]}
	}

	atlas, _, err := ParseImage(b[table:])
	if err != nil {
		return nil, fmt.Errorf("font atlas: %w", err)
	}
	f.Atlas = atlas
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the atlas depth, the glyph count and that every glyph
// rectangle lies inside the atlas.
func (f *Font) Validate() error {
	if f.Atlas == nil {
		return fmt.Errorf("font: no atlas: %w", ErrBadArgument)
	}
	if err := f.Atlas.Validate(); err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	if f.Atlas.BPP != BPP1 {
		return fmt.Errorf("font atlas depth %d: %w", f.Atlas.BPP, ErrBadArgument)
	}
	if len(f.Glyphs) != int(f.Chars) || len(f.Glyphs) > MaxImageSize {
		return fmt.Errorf("font: header says %d glyphs, table has %d: %w", f.Chars, len(f.Glyphs), ErrBadArgument)
	}
	for _, g := range f.Glyphs {
		if int(g.X)+int(g.Width) > f.Atlas.W() || int(g.Y)+int(f.Height) > f.Atlas.H() {
			return fmt.Errorf("font: glyph %q at (%d,%d) %dx%d outside %dx%d atlas: %w",
				g.Char, g.X, g.Y, g.Width, f.Height, f.Atlas.Width, f.Atlas.Height, ErrBadArgument)
		}
	}
	return nil
}

// Lookup finds the first glyph for ch.
func (f *Font) Lookup(ch byte) (Glyph, bool) {
	for _, g := range f.Glyphs {
		if g.Char == ch {
			return g, true
		}
	}
	return Glyph{}, false
}

// Resolve finds the glyph for ch, falling back to the default character once.
// A font without its default glyph is malformed and yields ErrInternal.
func (f *Font) Resolve(ch byte) (Glyph, error) {
	if g, ok := f.Lookup(ch); ok {
		return g, nil
	}
	if g, ok := f.Lookup(f.Default); ok {
		return g, nil
	}
	return Glyph{}, fmt.Errorf("font: no glyph for %q and no default %q: %w", ch, f.Default, ErrInternal)
}

// StringWidth sums the declared widths of the glyphs s resolves to.
func (f *Font) StringWidth(s string) (int, error) {
	w := 0
	for i := 0; i < len(s); i++ {
		g, err := f.Resolve(s[i])
		if err != nil {
			return w, err
		}
		w += int(g.Width)
	}
	return w, nil
}

// AppendBinary appends the byte-packed header, glyph table and atlas.
func (f *Font) AppendBinary(dst []byte) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return dst, err
	}
	dst = append(dst, f.Chars, f.Height, f.Default, f.Reserved)
	for _, g := range f.Glyphs {
		dst = append(dst, g.Char, g.Width, g.X, g.Y)
	}
	return f.Atlas.AppendBinary(dst)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Font) MarshalBinary() ([]byte, error) {
	n := FontHeaderSize + len(f.Glyphs)*GlyphSize + ImageHeaderSize
	if f.Atlas != nil {
		n += f.Atlas.DataSize()
	}
	return f.AppendBinary(make([]byte, 0, n))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Font) UnmarshalBinary(b []byte) error {
	parsed, err := ParseFont(b)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}
