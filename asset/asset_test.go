package asset

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"quickgfx/gfx"
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)
	img.Set(2, 0, color.Black)
	img.Set(0, 1, color.White)
	img.Set(1, 1, color.Black)
	// (2,1) stays transparent.
	return img
}

func mustConvert(t *testing.T, img image.Image, opts Options) *gfx.Image {
	t.Helper()
	im, err := Convert(img, opts)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return im
}

func pixelOf(t *testing.T, im *gfx.Image, x, y int) uint16 {
	t.Helper()
	v, err := im.Pixel(x, y)
	if err != nil {
		t.Fatalf("Pixel(%d,%d): %v", x, y, err)
	}
	return v
}

func TestConvertMono(t *testing.T) {
	im := mustConvert(t, checker(), Options{BPP: gfx.BPP1})
	if im.W() != 3 || im.H() != 2 {
		t.Fatalf("size=%dx%d, want 3x2", im.W(), im.H())
	}

	want := [2][3]uint16{{1, 0, 1}, {0, 1, 0}}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if v := pixelOf(t, im, x, y); v != want[y][x] {
				t.Fatalf("pixel (%d,%d)=%d, want %d", x, y, v, want[y][x])
			}
		}
	}
}

func TestConvertMonoInvert(t *testing.T) {
	im := mustConvert(t, checker(), Options{BPP: gfx.BPP1, Invert: true})
	if v := pixelOf(t, im, 1, 0); v != 1 {
		t.Fatalf("white pixel=%d, want 1", v)
	}
	if v := pixelOf(t, im, 0, 0); v != 0 {
		t.Fatalf("black pixel=%d, want 0", v)
	}
	if v := pixelOf(t, im, 2, 1); v != 0 {
		t.Fatalf("transparent pixel=%d, want 0", v)
	}
}

func TestConvertIndexed(t *testing.T) {
	pal := gfx.Palette{gfx.Black, gfx.White, gfx.Red, gfx.Green, gfx.Blue}
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})

	im := mustConvert(t, img, Options{BPP: gfx.BPP4, Palette: &pal})
	if v := pixelOf(t, im, 0, 0); v != 2 {
		t.Fatalf("red index=%d, want 2", v)
	}
	if v := pixelOf(t, im, 1, 0); v != 4 {
		t.Fatalf("blue index=%d, want 4", v)
	}
}

func TestConvertTrueColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	im := mustConvert(t, img, Options{BPP: gfx.BPP16})
	if v := pixelOf(t, im, 0, 0); v != uint16(gfx.Red) {
		t.Fatalf("pixel=%#04x, want red", v)
	}
}

func TestConvertRejects(t *testing.T) {
	for name, tc := range map[string]struct {
		img  image.Image
		opts Options
	}{
		"bpp":   {checker(), Options{BPP: 8}},
		"width": {checker(), Options{BPP: gfx.BPP1, Width: 300}},
		"empty": {image.NewRGBA(image.Rect(0, 0, 0, 0)), Options{BPP: gfx.BPP1}},
	} {
		if _, err := Convert(tc.img, tc.opts); err == nil {
			t.Fatalf("%s: Convert succeeded", name)
		}
	}
}

func TestScaleKeepsAspect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	out, err := Scale(img, 10, 0)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if want := image.Rect(0, 0, 10, 5); out.Bounds() != want {
		t.Fatalf("bounds=%v, want %v", out.Bounds(), want)
	}

	out, err = Scale(img, 0, 4)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if want := image.Rect(0, 0, 8, 4); out.Bounds() != want {
		t.Fatalf("bounds=%v, want %v", out.Bounds(), want)
	}
}

func TestMask(t *testing.T) {
	m, err := Mask(checker(), 0, 0)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	if m.BPP != gfx.BPP1 {
		t.Fatalf("bpp=%d, want 1", m.BPP)
	}
	if v := pixelOf(t, m, 1, 0); v != 1 {
		t.Fatalf("opaque pixel=%d, want 1", v)
	}
	if v := pixelOf(t, m, 2, 1); v != 0 {
		t.Fatalf("transparent pixel=%d, want 0", v)
	}
}

func TestToRGBA(t *testing.T) {
	t.Run("mono", func(t *testing.T) {
		im := mustConvert(t, checker(), Options{BPP: gfx.BPP1})
		out, err := ToRGBA(im, nil, gfx.White)
		if err != nil {
			t.Fatalf("ToRGBA: %v", err)
		}
		if got := out.RGBAAt(0, 0); got != gfx.White.RGBA8() {
			t.Fatalf("(0,0)=%v, want white", got)
		}
		if got := out.RGBAAt(1, 0); got != (color.RGBA{}) {
			t.Fatalf("(1,0)=%v, want transparent", got)
		}
		if got := out.RGBAAt(1, 1); got != gfx.White.RGBA8() {
			t.Fatalf("(1,1)=%v, want white", got)
		}
	})
	t.Run("indexed", func(t *testing.T) {
		pal := gfx.Palette{gfx.Black, gfx.Green}
		im, err := gfx.NewImage(3, 1, gfx.BPP4)
		if err != nil {
			t.Fatalf("NewImage: %v", err)
		}
		if err := im.SetPixel(1, 0, 1); err != nil {
			t.Fatalf("SetPixel: %v", err)
		}
		out, err := ToRGBA(im, &pal, gfx.White)
		if err != nil {
			t.Fatalf("ToRGBA: %v", err)
		}
		if got := out.RGBAAt(0, 0); got != gfx.Black.RGBA8() {
			t.Fatalf("(0,0)=%v, want black", got)
		}
		if got := out.RGBAAt(1, 0); got != gfx.Green.RGBA8() {
			t.Fatalf("(1,0)=%v, want green", got)
		}
	})
	t.Run("true color", func(t *testing.T) {
		im, err := gfx.NewImage(2, 2, gfx.BPP16)
		if err != nil {
			t.Fatalf("NewImage: %v", err)
		}
		c := gfx.RGB(0x12, 0x34, 0x56)
		if err := im.SetPixel(1, 1, uint16(c)); err != nil {
			t.Fatalf("SetPixel: %v", err)
		}
		out, err := ToRGBA(im, nil, gfx.White)
		if err != nil {
			t.Fatalf("ToRGBA: %v", err)
		}
		if got := out.RGBAAt(1, 1); got != c.RGBA8() {
			t.Fatalf("(1,1)=%v, want %v", got, c.RGBA8())
		}
	})
	t.Run("nil", func(t *testing.T) {
		if _, err := ToRGBA(nil, nil, gfx.White); err == nil {
			t.Fatalf("ToRGBA(nil) succeeded")
		}
	})
}

func TestTrueType(t *testing.T) {
	f, err := TrueType(goregular.TTF, 10, 72, "AB?", '?')
	if err != nil {
		t.Fatalf("TrueType: %v", err)
	}
	if f.Chars != 3 || f.Height == 0 {
		t.Fatalf("chars=%d height=%d", f.Chars, f.Height)
	}
	g, ok := f.Lookup('A')
	if !ok || g.Width == 0 {
		t.Fatalf("glyph A=%+v ok=%v", g, ok)
	}

	if _, err := TrueType([]byte("not a font"), 10, 72, "A", 'A'); err == nil {
		t.Fatalf("garbage parsed as a font")
	}
	if _, err := TrueType(goregular.TTF, 0, 72, "A", 'A'); err == nil {
		t.Fatalf("zero size accepted")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	im := mustConvert(t, checker(), Options{BPP: gfx.BPP1})

	path := filepath.Join(dir, "icon.qgi")
	if err := WriteBinary(path, im); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}
	back, err := ReadImage(path)
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	if back.ImageHeader != im.ImageHeader || !bytes.Equal(back.Data, im.Data) {
		t.Fatalf("read back %+v, want %+v", back, im)
	}

	pngPath := filepath.Join(dir, "icon.png")
	preview, err := ToRGBA(back, nil, gfx.White)
	if err != nil {
		t.Fatalf("ToRGBA: %v", err)
	}
	if err := SavePNG(pngPath, preview); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if loaded.Bounds() != preview.Bounds() {
		t.Fatalf("bounds=%v, want %v", loaded.Bounds(), preview.Bounds())
	}

	if _, err := ReadFont(path); err == nil {
		t.Fatalf("an image was read as a font")
	}
}
