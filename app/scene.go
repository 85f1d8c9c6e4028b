package app

import (
	"fmt"
	"image"

	"tinygo.org/x/tinyfont"

	"quickgfx/gfx"
	"quickgfx/internal/buildinfo"
)

const (
	minWidth  = 240
	minHeight = 160

	swatchSize = 12
	swatchGap  = 2
	spriteSize = 32
)

// layout places the demo widgets on a surface of a given size.
type layout struct {
	w, h    int
	title   gfx.Rect
	swatch0 image.Point
	sprites int
	canvas  gfx.Rect
	console gfx.Rect
	status  gfx.Rect
}

func newLayout(w, h int, f *gfx.Font) (layout, error) {
	if w < minWidth || h < minHeight {
		return layout{}, fmt.Errorf("app: surface %dx%d smaller than %dx%d: %w", w, h, minWidth, minHeight, gfx.ErrBadArgument)
	}
	fh := int(f.Height)
	l := layout{w: w, h: h}
	l.title = gfx.Rect{X1: 0, Y1: 0, X2: w - 1, Y2: fh + 1}
	l.swatch0 = image.Point{X: 4, Y: l.title.Y2 + 4}
	l.sprites = l.swatch0.Y + swatchSize + 4
	l.status = gfx.Rect{X1: 0, Y1: h - fh - 2, X2: w - 1, Y2: h - 1}

	split := w * 9 / 16
	top := l.sprites + spriteSize + 4
	l.console = gfx.Rect{X1: 4, Y1: top, X2: split - 4, Y2: l.status.Y1 - 3}
	l.canvas = gfx.Rect{X1: split + 1, Y1: top + 1, X2: w - 6, Y2: l.status.Y1 - 4}
	return l, nil
}

// swatchAt maps a point to the palette slot drawn under it.
func (l layout) swatchAt(x, y int) (int, bool) {
	if y < l.swatch0.Y || y >= l.swatch0.Y+swatchSize || x < l.swatch0.X {
		return 0, false
	}
	i := (x - l.swatch0.X) / (swatchSize + swatchGap)
	if i >= gfx.PaletteSize || (x-l.swatch0.X)%(swatchSize+swatchGap) >= swatchSize {
		return 0, false
	}
	return i, true
}

func (a *App) drawScene() error {
	s, l, pal := a.s, a.layout, &a.pal
	return s.Paint(func() error {
		if err := s.Clear(pal[gfx.SysBackground]); err != nil {
			return err
		}
		if err := a.drawTitle(); err != nil {
			return err
		}

		for i := 0; i < gfx.PaletteSize; i++ {
			x := l.swatch0.X + i*(swatchSize+swatchGap)
			y := l.swatch0.Y
			if err := s.FillBox(x, y, x+swatchSize-1, y+swatchSize-1, pal[i]); err != nil {
				return err
			}
			if err := s.DrawBox(x, y, x+swatchSize-1, y+swatchSize-1, pal[gfx.SysControlBorder]); err != nil {
				return err
			}
		}

		if err := a.drawSprites(); err != nil {
			return err
		}

		c := l.canvas
		if err := s.FillBox(c.X1, c.Y1, c.X2, c.Y2, pal[gfx.SysWindowBackground]); err != nil {
			return err
		}
		if err := s.DrawBox(c.X1-1, c.Y1-1, c.X2+1, c.Y2+1, pal[gfx.SysControlBorder]); err != nil {
			return err
		}
		return a.drawStatus()
	})
}

func (a *App) drawTitle() error {
	s, t, pal := a.s, a.layout.title, &a.pal
	if err := s.FillBox(t.X1, t.Y1, t.X2, t.Y2, pal[gfx.SysControlBackground]); err != nil {
		return err
	}
	face := a.font.Face()
	fg := pal[gfx.SysControlForeground].RGBA8()
	baseline := int16(t.Y1 + int(a.font.Height))
	tinyfont.WriteLine(s, face, 4, baseline, "quickgfx", fg)

	ver := buildinfo.Short()
	_, outbox := tinyfont.LineWidth(face, ver)
	tinyfont.WriteLine(s, face, int16(t.X2-3-int(outbox)), baseline, ver, fg)
	return s.Display()
}

func (a *App) drawSprites() error {
	s, y := a.s, a.layout.sprites
	x := 4

	icon, mask := smiley()
	if err := s.DrawWhole(x, y, mask, a.pal[gfx.SysForeground], nil); err != nil {
		return err
	}
	if err := s.DrawIcon(x, y, icon, 0, 0, icon.W(), icon.H(), mask, a.pal[gfx.SysWarning]); err != nil {
		return err
	}
	x += spriteSize + 4

	ramp := gfx.GradientPalette(a.pal[gfx.SysControlHighlight], a.pal[gfx.SysSuccess])
	if err := s.DrawWhole(x, y, stripes(), 0, &ramp); err != nil {
		return err
	}
	x += spriteSize + 4

	if err := s.DrawWhole(x, y, colorCube(), 0, nil); err != nil {
		return err
	}
	x += spriteSize + 4

	// Line fan inside a framed square.
	x2, y2 := x+spriteSize-1, y+spriteSize-1
	if err := s.DrawBox(x, y, x2, y2, a.pal[gfx.SysControlBorder]); err != nil {
		return err
	}
	for i := 0; i < spriteSize; i += 4 {
		c := a.pal[gfx.SysSuccess+i/4%6]
		if err := s.DrawLine(x, y2, x+i, y, c); err != nil {
			return err
		}
		if err := s.DrawLine(x, y2, x2, y2-i, c); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) drawStatus() error {
	s, st, pal := a.s, a.layout.status, &a.pal
	if err := s.FillBox(st.X1, st.Y1, st.X2, st.Y2, pal[gfx.SysWindowBackground]); err != nil {
		return err
	}
	ev := a.drv.Events()
	msg := fmt.Sprintf("frame %d  queue %d/%d  dropped %d", a.frame, ev.Len(), ev.Cap(), ev.Overflows())
	_, err := s.DrawString(st.X1+4, st.Y1+1, a.font, pal[gfx.SysWindowForeground], msg)
	return err
}

// smiley returns a 32x32 face icon and the disc that masks it.
func smiley() (icon, mask *gfx.Image) {
	icon, _ = gfx.NewImage(spriteSize, spriteSize, gfx.BPP1)
	mask, _ = gfx.NewImage(spriteSize, spriteSize, gfx.BPP1)
	const c, r = spriteSize / 2, spriteSize/2 - 1
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			dx, dy := x-c, y-c
			d := dx*dx + dy*dy
			if d <= r*r {
				_ = mask.SetPixel(x, y, 1)
			}
			eye := (dx+6)*(dx+6)+(dy+5)*(dy+5) <= 6 || (dx-6)*(dx-6)+(dy+5)*(dy+5) <= 6
			mouth := dy >= 4 && dy <= 9 && d >= 8*8 && d <= 10*10
			if d <= r*r && !eye && !mouth {
				_ = icon.SetPixel(x, y, 1)
			}
		}
	}
	return icon, mask
}

// stripes returns a 4 bpp image stepping through all sixteen indices.
func stripes() *gfx.Image {
	im, _ := gfx.NewImage(spriteSize, spriteSize, gfx.BPP4)
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			_ = im.SetPixel(x, y, uint16((x+y)/4%gfx.PaletteSize))
		}
	}
	return im
}

// colorCube returns a 16 bpp red/green ramp over a fixed blue.
func colorCube() *gfx.Image {
	im, _ := gfx.NewImage(spriteSize, spriteSize, gfx.BPP16)
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			_ = im.SetPixel(x, y, uint16(gfx.RGB(uint8(x*8), uint8(y*8), 0x80)))
		}
	}
	return im
}
