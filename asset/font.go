package asset

import (
	"github.com/go-errors/errors"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"quickgfx/fonts"
	"quickgfx/gfx"
)

// TrueType rasterizes chars from a TTF file at size points into a packed
// font with def as the fallback character. Hinting is always full so stems
// land on whole pixels before thresholding.
func TrueType(ttf []byte, size, dpi float64, chars string, def byte) (*gfx.Font, error) {
	if size <= 0 {
		return nil, errors.Errorf("asset: font size %v must be positive", size)
	}
	if dpi <= 0 {
		dpi = 72
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.WrapPrefix(err, "asset: parse ttf", 0)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	out, err := fonts.FromFace(face, chars, def)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return out, nil
}
