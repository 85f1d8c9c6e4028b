package gfx

import "fmt"

// checkBlit validates a sub-region request against the source image and the
// optional mask.
func checkBlit(im *Image, sx, sy, w, h int, mask *Image) error {
	if err := im.Validate(); err != nil {
		return err
	}
	if sx < 0 || sy < 0 || w < 0 || h < 0 || sx+w > im.W() || sy+h > im.H() {
		return fmt.Errorf("region %dx%d at (%d,%d) outside %dx%d image: %w",
			w, h, sx, sy, im.Width, im.Height, ErrBadArgument)
	}
	if mask == nil {
		return nil
	}
	if err := mask.Validate(); err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	if mask.BPP != BPP1 {
		return fmt.Errorf("mask depth %d: %w", mask.BPP, ErrBadArgument)
	}
	if mask.W() < w || mask.H() < h {
		return fmt.Errorf("mask %dx%d smaller than region %dx%d: %w", mask.Width, mask.Height, w, h, ErrBadArgument)
	}
	return nil
}

// Blit copies the w x h region at (sx,sy) of im to (x,y) using the generic
// pixel path. A 1 bpp image draws c where bits are set, a 4 bpp image maps
// through pal, a 16 bpp image is drawn as is. Where mask is given only pixels
// with a set mask bit are drawn. Pixels go out in raster order and the first
// driver error stops the blit, leaving what was already drawn.
func (s *Surface) Blit(x, y int, im *Image, sx, sy, w, h int, mask *Image, c Color, pal *Palette) error {
	if err := checkBlit(im, sx, sy, w, h, mask); err != nil {
		return err
	}
	if im.BPP == BPP4 && pal == nil {
		return fmt.Errorf("4 bpp image without palette: %w", ErrBadArgument)
	}
	return s.blit(x, y, im, sx, sy, w, h, mask, c, pal)
}

func (s *Surface) blit(x, y int, im *Image, sx, sy, w, h int, mask *Image, c Color, pal *Palette) error {
	// Columns and rows that survive the clip.
	i0, i1 := max(0, s.clip.X1-x), min(w, s.clip.X2-x+1)
	j0, j1 := max(0, s.clip.Y1-y), min(h, s.clip.Y2-y+1)

	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			if mask != nil && mask.pixel(i, j) == 0 {
				continue
			}
			v := im.pixel(sx+i, sy+j)
			var col Color
			switch im.BPP {
			case BPP16:
				col = Color(v)
			case BPP4:
				col = pal[v]
			default:
				if v == 0 {
					continue
				}
				col = c
			}
			if err := s.drv.PutPixel(x+i, y+j, col); err != nil {
				return fmt.Errorf("blit pixel (%d,%d): %w", x+i, y+j, err)
			}
		}
	}
	return nil
}

// DrawIcon draws a 1 bpp image in color c. Clear bits leave the destination
// untouched.
func (s *Surface) DrawIcon(x, y int, icon *Image, sx, sy, w, h int, mask *Image, c Color) error {
	if err := checkBlit(icon, sx, sy, w, h, mask); err != nil {
		return err
	}
	if icon.BPP != BPP1 {
		return fmt.Errorf("icon depth %d: %w", icon.BPP, ErrBadArgument)
	}
	if fast, ok := s.drv.(IconDrawer); ok {
		return fast.DrawIcon(x, y, icon, sx, sy, w, h, mask, c)
	}
	return s.blit(x, y, icon, sx, sy, w, h, mask, c, nil)
}

// DrawImage4 draws a 4 bpp image through pal.
func (s *Surface) DrawImage4(x, y int, im *Image, sx, sy, w, h int, mask *Image, pal *Palette) error {
	if err := checkBlit(im, sx, sy, w, h, mask); err != nil {
		return err
	}
	if im.BPP != BPP4 {
		return fmt.Errorf("image depth %d, want 4: %w", im.BPP, ErrBadArgument)
	}
	if pal == nil {
		return fmt.Errorf("4 bpp image without palette: %w", ErrBadArgument)
	}
	if fast, ok := s.drv.(Image4Drawer); ok {
		return fast.DrawImage4(x, y, im, sx, sy, w, h, mask, pal)
	}
	return s.blit(x, y, im, sx, sy, w, h, mask, 0, pal)
}

// DrawImage16 draws a 16 bpp image.
func (s *Surface) DrawImage16(x, y int, im *Image, sx, sy, w, h int, mask *Image) error {
	if err := checkBlit(im, sx, sy, w, h, mask); err != nil {
		return err
	}
	if im.BPP != BPP16 {
		return fmt.Errorf("image depth %d, want 16: %w", im.BPP, ErrBadArgument)
	}
	if fast, ok := s.drv.(Image16Drawer); ok {
		return fast.DrawImage16(x, y, im, sx, sy, w, h, mask)
	}
	return s.blit(x, y, im, sx, sy, w, h, mask, 0, nil)
}

// DrawImage dispatches on the image depth to DrawIcon, DrawImage4 or
// DrawImage16. c is used for 1 bpp images and pal for 4 bpp images.
func (s *Surface) DrawImage(x, y int, im *Image, sx, sy, w, h int, mask *Image, c Color, pal *Palette) error {
	if im == nil {
		return fmt.Errorf("nil image: %w", ErrBadArgument)
	}
	switch im.BPP {
	case BPP1:
		return s.DrawIcon(x, y, im, sx, sy, w, h, mask, c)
	case BPP4:
		return s.DrawImage4(x, y, im, sx, sy, w, h, mask, pal)
	case BPP16:
		return s.DrawImage16(x, y, im, sx, sy, w, h, mask)
	default:
		return fmt.Errorf("image depth %d: %w", im.BPP, ErrBadArgument)
	}
}

// DrawWhole draws all of im at (x,y) without a mask.
func (s *Surface) DrawWhole(x, y int, im *Image, c Color, pal *Palette) error {
	if im == nil {
		return fmt.Errorf("nil image: %w", ErrBadArgument)
	}
	return s.DrawImage(x, y, im, 0, 0, im.W(), im.H(), nil, c, pal)
}
