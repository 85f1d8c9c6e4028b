package asset

import (
	"encoding"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/go-errors/errors"
	_ "golang.org/x/image/bmp"

	"quickgfx/gfx"
)

// LoadImage decodes a PNG, JPEG, GIF or BMP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.WrapPrefix(err, "asset: decode "+path, 0)
	}
	return img, nil
}

// SavePNG writes img to path as a PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(err, 0)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// WriteBinary stores a packed image or font at path.
func WriteBinary(path string, m encoding.BinaryMarshaler) error {
	b, err := m.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

// ReadImage loads a packed image written by WriteBinary.
func ReadImage(path string) (*gfx.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	im := new(gfx.Image)
	if err := im.UnmarshalBinary(b); err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return im, nil
}

// ReadFont loads a packed font written by WriteBinary.
func ReadFont(path string) (*gfx.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	f := new(gfx.Font)
	if err := f.UnmarshalBinary(b); err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return f, nil
}
