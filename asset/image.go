// Package asset converts ordinary images and TrueType fonts into the packed
// gfx formats, and back again for previews.
package asset

import (
	"image"
	"image/color"

	"github.com/go-errors/errors"
	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"quickgfx/gfx"
)

// Options controls Convert.
type Options struct {
	BPP gfx.BPP
	// Width and Height scale the source with Catmull-Rom. Zero keeps the
	// source size; a single zero keeps the aspect ratio.
	Width, Height int
	// Palette maps 4 bpp output. Nil means the system palette.
	Palette *gfx.Palette
	// Dither applies Floyd-Steinberg error diffusion for 1 and 4 bpp.
	Dither bool
	// Invert sets 1 bpp bits on light pixels instead of dark ones.
	Invert bool
}

// Convert packs src into a gfx image. For 1 bpp a set bit marks a dark,
// opaque pixel (light with Invert), so the result draws as an icon.
func Convert(src image.Image, opts Options) (*gfx.Image, error) {
	if !opts.BPP.Valid() {
		return nil, errors.Errorf("asset: unsupported depth %d", opts.BPP)
	}
	scaled, err := Scale(src, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	b := scaled.Bounds()
	out, err := gfx.NewImage(b.Dx(), b.Dy(), opts.BPP)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	switch opts.BPP {
	case gfx.BPP16:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				_ = out.SetPixel(x, y, uint16(gfx.ColorOf(scaled.At(b.Min.X+x, b.Min.Y+y))))
			}
		}
	case gfx.BPP4:
		pal := gfx.SystemPalette()
		if opts.Palette != nil {
			pal = *opts.Palette
		}
		idx := quantize(scaled, pal.ColorPalette(), opts.Dither)
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				_ = out.SetPixel(x, y, uint16(idx.ColorIndexAt(x, y)))
			}
		}
	case gfx.BPP1:
		ink := color.Palette{color.White, color.Black}
		if opts.Invert {
			ink = color.Palette{color.Black, color.White}
		}
		idx := quantize(flatten(scaled), ink, opts.Dither)
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				_, _, _, a := scaled.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if a >= 0x8000 && idx.ColorIndexAt(x, y) == 1 {
					_ = out.SetPixel(x, y, 1)
				}
			}
		}
	}
	return out, nil
}

// Mask builds a 1 bpp mask from the alpha channel of src: opaque pixels are
// drawn.
func Mask(src image.Image, width, height int) (*gfx.Image, error) {
	scaled, err := Scale(src, width, height)
	if err != nil {
		return nil, err
	}
	b := scaled.Bounds()
	out, err := gfx.NewImage(b.Dx(), b.Dy(), gfx.BPP1)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if _, _, _, a := scaled.At(b.Min.X+x, b.Min.Y+y).RGBA(); a >= 0x8000 {
				_ = out.SetPixel(x, y, 1)
			}
		}
	}
	return out, nil
}

// Scale resizes src to width x height. Zero dimensions follow the rules of
// Options. The result always starts at (0,0).
func Scale(src image.Image, width, height int) (image.Image, error) {
	sb := src.Bounds()
	if sb.Empty() {
		return nil, errors.Errorf("asset: empty source image")
	}
	switch {
	case width == 0 && height == 0:
		width, height = sb.Dx(), sb.Dy()
	case width == 0:
		width = max(1, sb.Dx()*height/sb.Dy())
	case height == 0:
		height = max(1, sb.Dy()*width/sb.Dx())
	}
	if width < 0 || height < 0 || width > gfx.MaxImageSize || height > gfx.MaxImageSize {
		return nil, errors.Errorf("asset: target size %dx%d outside 1..%d", width, height, gfx.MaxImageSize)
	}
	if width == sb.Dx() && height == sb.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Copy(dst, image.Point{}, src, sb, draw.Src, nil)
		return dst, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}

// flatten composites src over white so transparent areas count as light.
func flatten(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, b, src, b.Min, draw.Over)
	return dst
}

func quantize(src image.Image, pal color.Palette, diffuse bool) *image.Paletted {
	if diffuse {
		d := dither.NewDitherer(pal)
		d.Matrix = dither.FloydSteinberg
		d.Serpentine = true
		return d.DitherPaletted(src)
	}
	b := src.Bounds()
	out := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetColorIndex(x, y, uint8(pal.Index(src.At(b.Min.X+x, b.Min.Y+y))))
		}
	}
	return out
}
