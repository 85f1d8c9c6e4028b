package gfx

import (
	"errors"
	"testing"
)

func solid(t testing.TB, w, h int, bpp BPP, v uint16) *Image {
	return testImage(t, w, h, bpp, func(_, _ int) uint16 { return v })
}

func TestBlit_ClearMaskDrawsNothing(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 8, 8)
	im := solid(t, 4, 4, BPP16, uint16(Red))
	mask := solid(t, 4, 4, BPP1, 0)
	if err := s.DrawImage16(0, 0, im, 0, 0, 4, 4, mask); err != nil {
		t.Fatalf("DrawImage16: %v", err)
	}
	if len(d.puts) != 0 {
		t.Fatalf("puts=%d, want 0", len(d.puts))
	}
}

func TestBlit_OutsideClipNoCalls(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 16, 16)
	if err := s.SetClip(0, 0, 3, 3); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	im := solid(t, 4, 4, BPP16, uint16(Red))
	for _, p := range []point{{4, 0}, {0, 4}, {-4, 0}, {10, 10}} {
		if err := s.DrawImage16(p.X, p.Y, im, 0, 0, 4, 4, nil); err != nil {
			t.Fatalf("DrawImage16 at %v: %v", p, err)
		}
	}
	if len(d.puts) != 0 {
		t.Fatalf("puts=%v, want none", d.puts)
	}
}

func TestBlit_RasterOrderAndPartialClip(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 8, 8)
	if err := s.SetClip(1, 1, 7, 7); err != nil {
		t.Fatalf("SetClip: %v", err)
	}
	im := solid(t, 3, 3, BPP16, uint16(Green))
	if err := s.DrawImage16(0, 0, im, 0, 0, 3, 3, nil); err != nil {
		t.Fatalf("DrawImage16: %v", err)
	}
	want := []point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	if len(d.puts) != len(want) {
		t.Fatalf("puts=%v, want %v", d.puts, want)
	}
	for i := range want {
		if d.puts[i] != want[i] {
			t.Fatalf("puts[%d]=%v, want %v", i, d.puts[i], want[i])
		}
	}
}

func TestDrawImage4_Palette(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 1)
	im := testImage(t, 4, 1, BPP4, func(x, _ int) uint16 { return uint16(x) })
	pal := Palette{Black, Red, Green, Blue}
	if err := s.DrawImage4(0, 0, im, 0, 0, 4, 1, nil, &pal); err != nil {
		t.Fatalf("DrawImage4: %v", err)
	}
	for x, want := range []Color{Black, Red, Green, Blue} {
		if got := d.at(x, 0); got != want {
			t.Fatalf("pixel %d=%#04x, want %#04x", x, got, want)
		}
	}
	if err := s.DrawImage4(0, 0, im, 0, 0, 4, 1, nil, nil); !errors.Is(err, ErrBadArgument) {
		t.Fatalf("nil palette err=%v, want ErrBadArgument", err)
	}
}

func TestDrawIcon_SkipsClearBits(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 4)
	if err := s.Clear(Blue); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	icon := testImage(t, 4, 4, BPP1, func(x, y int) uint16 { return uint16((x + y) & 1) })
	if err := s.DrawIcon(0, 0, icon, 0, 0, 4, 4, nil, White); err != nil {
		t.Fatalf("DrawIcon: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Blue
			if (x+y)&1 == 1 {
				want = White
			}
			if got := d.at(x, y); got != want {
				t.Fatalf("(%d,%d)=%#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestBlit_MaskIndexedByRegion(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 4)
	im := testImage(t, 4, 4, BPP16, func(x, y int) uint16 { return uint16(y*4 + x + 1) })
	mask := testImage(t, 2, 2, BPP1, func(x, y int) uint16 { return uint16(x & y) })
	if err := s.DrawImage16(0, 0, im, 2, 2, 2, 2, mask); err != nil {
		t.Fatalf("DrawImage16: %v", err)
	}
	if len(d.puts) != 1 || d.puts[0] != (point{1, 1}) {
		t.Fatalf("puts=%v, want [(1,1)]", d.puts)
	}
	if got := d.at(1, 1); got != Color(3*4+3+1) {
		t.Fatalf("pixel=%d, want source (3,3)", got)
	}
}

func TestBlit_BadArguments(t *testing.T) {
	s := mustSurface(t, newMemDriver(), 8, 8)
	im := solid(t, 4, 4, BPP16, 1)
	cases := map[string]func() error{
		"region too wide": func() error { return s.DrawImage16(0, 0, im, 1, 0, 4, 4, nil) },
		"region too tall": func() error { return s.DrawImage16(0, 0, im, 0, 2, 4, 3, nil) },
		"wrong depth":     func() error { return s.DrawIcon(0, 0, im, 0, 0, 1, 1, nil, White) },
		"mask depth":      func() error { return s.DrawImage16(0, 0, im, 0, 0, 4, 4, im) },
		"small mask": func() error {
			return s.DrawImage16(0, 0, im, 0, 0, 4, 4, solid(t, 2, 2, BPP1, 1))
		},
		"short data": func() error {
			bad := &Image{ImageHeader: ImageHeader{Width: 4, Height: 4, BPP: BPP16}, Data: make([]byte, 3)}
			return s.DrawImage16(0, 0, bad, 0, 0, 1, 1, nil)
		},
	}
	for name, fn := range cases {
		if err := fn(); !errors.Is(err, ErrBadArgument) {
			t.Fatalf("%s: err=%v, want ErrBadArgument", name, err)
		}
	}
}

func TestBlit_DriverErrorKeepsPartial(t *testing.T) {
	d := newMemDriver()
	s := mustSurface(t, d, 4, 4)
	d.failAfter = 3
	im := solid(t, 4, 1, BPP16, uint16(Red))
	err := s.DrawImage16(0, 0, im, 0, 0, 4, 1, nil)
	if !errors.Is(err, errDriver) {
		t.Fatalf("err=%v, want driver error", err)
	}
	for x := 0; x < 3; x++ {
		if d.at(x, 0) != Red {
			t.Fatalf("pixel %d rolled back", x)
		}
	}
	if d.at(3, 0) != Black {
		t.Fatalf("pixel 3 drawn after failure")
	}
}

func TestDrawImage_FastPathMatchesGeneric(t *testing.T) {
	pal := GradientPalette(Black, White)
	im1 := testImage(t, 9, 7, BPP1, func(x, y int) uint16 { return uint16((x*y + x) & 1) })
	im4 := testImage(t, 9, 7, BPP4, func(x, y int) uint16 { return uint16(x + y) })
	im16 := testImage(t, 9, 7, BPP16, func(x, y int) uint16 { return uint16(x*1000 + y) })
	mask := testImage(t, 6, 5, BPP1, func(x, y int) uint16 { return uint16((x + 2*y) % 3 & 1) })

	draw := func(s *Surface) {
		t.Helper()
		if err := s.SetClip(2, 1, 12, 9); err != nil {
			t.Fatalf("SetClip: %v", err)
		}
		for i, im := range []*Image{im1, im4, im16} {
			if err := s.DrawImage(i*4-1, i*3, im, 2, 1, 6, 5, mask, Red, &pal); err != nil {
				t.Fatalf("DrawImage bpp %d: %v", im.BPP, err)
			}
			if err := s.DrawImage(i*3, 8-i, im, 0, 0, 9, 7, nil, Green, &pal); err != nil {
				t.Fatalf("DrawImage bpp %d: %v", im.BPP, err)
			}
		}
	}

	fast := &fastDriver{memDriver: newMemDriver()}
	draw(mustSurface(t, fast, 16, 16))
	slow := newMemDriver()
	draw(mustSurface(t, Unaccelerated(slow), 16, 16))

	if fast.fastCalls != 6 {
		t.Fatalf("fast calls=%d, want 6", fast.fastCalls)
	}
	if len(fast.puts) != 0 {
		t.Fatalf("fast driver got %d generic puts", len(fast.puts))
	}
	for i := range slow.pix {
		if fast.pix[i] != slow.pix[i] {
			t.Fatalf("pixel (%d,%d): fast %#04x, generic %#04x", i%16, i/16, fast.pix[i], slow.pix[i])
		}
	}
}
