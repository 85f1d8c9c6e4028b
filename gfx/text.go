package gfx

import "fmt"

// DrawChar draws ch with its top-left corner at (x,y) and returns the glyph's
// declared width, which is how far the cursor should advance. Characters
// missing from the font are drawn as the font's default character.
func (s *Surface) DrawChar(x, y int, f *Font, c Color, ch byte) (int, error) {
	if f == nil || f.Atlas == nil {
		return 0, fmt.Errorf("draw char: no font: %w", ErrBadArgument)
	}
	g, err := f.Resolve(ch)
	if err != nil {
		return 0, err
	}
	if err := s.DrawIcon(x, y, f.Atlas, int(g.X), int(g.Y), int(g.Width), int(f.Height), nil, c); err != nil {
		return 0, fmt.Errorf("draw char %q: %w", ch, err)
	}
	return int(g.Width), nil
}

// DrawString draws the bytes of text left to right and returns the total
// advance. It stops at the first character that cannot be drawn.
func (s *Surface) DrawString(x, y int, f *Font, c Color, text string) (int, error) {
	adv := 0
	for i := 0; i < len(text); i++ {
		n, err := s.DrawChar(x+adv, y, f, c, text[i])
		if err != nil {
			return adv, err
		}
		adv += n
	}
	return adv, nil
}
