package asset

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/go-errors/errors"

	"quickgfx/gfx"
)

// ToRGBA expands a packed image for previewing. Set 1 bpp bits take fg and
// clear bits are transparent; 4 bpp indices go through pal, or the system
// palette when pal is nil.
func ToRGBA(im *gfx.Image, pal *gfx.Palette, fg gfx.Color) (*image.RGBA, error) {
	if im == nil {
		return nil, errors.Errorf("asset: nil image")
	}
	if err := im.Validate(); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if pal == nil {
		p := gfx.SystemPalette()
		pal = &p
	}
	w, h := im.W(), im.H()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	br := bitreader.NewReader(bytes.NewReader(im.Data[:im.DataSize()]))
	pad := uint(im.RowStride()*8 - w*int(im.BPP))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := readPixel(br, im.BPP, pal, fg)
			if err != nil {
				return nil, errors.WrapPrefix(err, "asset: decode", 0)
			}
			out.SetRGBA(x, y, c)
		}
		if pad > 0 {
			if _, err := br.Read8(pad); err != nil && err != io.EOF {
				return nil, errors.WrapPrefix(err, "asset: decode", 0)
			}
		}
	}
	return out, nil
}

func readPixel(br bitreader.BitReader, bpp gfx.BPP, pal *gfx.Palette, fg gfx.Color) (color.RGBA, error) {
	switch bpp {
	case gfx.BPP1:
		set, err := br.Read1()
		if err != nil || !set {
			return color.RGBA{}, err
		}
		return fg.RGBA8(), nil
	case gfx.BPP4:
		v, err := br.Read8(4)
		if err != nil {
			return color.RGBA{}, err
		}
		return pal.Lookup(v).RGBA8(), nil
	default:
		lo, err := br.Read8(8)
		if err != nil {
			return color.RGBA{}, err
		}
		hi, err := br.Read8(8)
		if err != nil {
			return color.RGBA{}, err
		}
		return gfx.Color(uint16(hi)<<8 | uint16(lo)).RGBA8(), nil
	}
}
