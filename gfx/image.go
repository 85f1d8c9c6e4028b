package gfx

import (
	"encoding/binary"
	"fmt"
)

// BPP is the packed encoding width of one pixel.
type BPP uint8

const (
	BPP1  BPP = 1
	BPP4  BPP = 4
	BPP16 BPP = 16
)

// Valid reports whether b is one of the supported depths.
func (b BPP) Valid() bool {
	return b == BPP1 || b == BPP4 || b == BPP16
}

// ImageHeaderSize is the size of the byte-packed image header.
const ImageHeaderSize = 4

// MaxImageSize is the largest width or height an image header can carry.
const MaxImageSize = 255

// ImageHeader is the persisted prefix of an image.
type ImageHeader struct {
	Width    uint8
	Height   uint8
	BPP      BPP
	Reserved uint8
}

// Image is a packed 1, 4 or 16 bpp bitmap. Rows are RowStride bytes apart and
// the stride is never stored. 16 bpp pixels are little-endian.
type Image struct {
	ImageHeader
	Data []byte
}

// RowStride returns the number of bytes in one packed row.
func RowStride(width int, bpp BPP) int {
	return (width*int(bpp) + 7) / 8
}

// NewImage allocates a zeroed image.
func NewImage(width, height int, bpp BPP) (*Image, error) {
	if !bpp.Valid() {
		return nil, fmt.Errorf("image depth %d: %w", bpp, ErrBadArgument)
	}
	if width < 0 || height < 0 || width > MaxImageSize || height > MaxImageSize {
		return nil, fmt.Errorf("image size %dx%d: %w", width, height, ErrBadArgument)
	}
	return &Image{
		ImageHeader: ImageHeader{Width: uint8(width), Height: uint8(height), BPP: bpp},
		Data:        make([]byte, height*RowStride(width, bpp)),
	}, nil
}

// W returns the width in pixels.
func (im *Image) W() int { return int(im.Width) }

// H returns the height in pixels.
func (im *Image) H() int { return int(im.Height) }

// RowStride returns the byte distance between rows.
func (im *Image) RowStride() int {
	return RowStride(int(im.Width), im.BPP)
}

// DataSize is the number of data bytes the header implies.
func (im *Image) DataSize() int {
	return int(im.Height) * im.RowStride()
}

// Validate checks the depth and that Data holds at least DataSize bytes.
func (im *Image) Validate() error {
	if im == nil {
		return fmt.Errorf("nil image: %w", ErrBadArgument)
	}
	if !im.BPP.Valid() {
		return fmt.Errorf("image depth %d: %w", im.BPP, ErrBadArgument)
	}
	if len(im.Data) < im.DataSize() {
		return fmt.Errorf("image %dx%dx%d: have %d data bytes, need %d: %w",
			im.Width, im.Height, im.BPP, len(im.Data), im.DataSize(), ErrBadArgument)
	}
	return nil
}

// Pixel returns the raw value at (x, y): a bit, a palette index or a color.
func (im *Image) Pixel(x, y int) (uint16, error) {
	if x < 0 || y < 0 || x >= int(im.Width) || y >= int(im.Height) {
		return 0, fmt.Errorf("pixel (%d,%d) outside %dx%d: %w", x, y, im.Width, im.Height, ErrBadArgument)
	}
	return im.pixel(x, y), nil
}

// SetPixel packs v at (x, y). Bits above the image depth are discarded.
func (im *Image) SetPixel(x, y int, v uint16) error {
	if x < 0 || y < 0 || x >= int(im.Width) || y >= int(im.Height) {
		return fmt.Errorf("pixel (%d,%d) outside %dx%d: %w", x, y, im.Width, im.Height, ErrBadArgument)
	}
	stride := im.RowStride()
	switch im.BPP {
	case BPP16:
		binary.LittleEndian.PutUint16(im.Data[y*stride+x*2:], v)
	case BPP4:
		off := y*stride + x/2
		if x&1 == 0 {
			im.Data[off] = im.Data[off]&0x0F | byte(v&0x0F)<<4
		} else {
			im.Data[off] = im.Data[off]&0xF0 | byte(v&0x0F)
		}
	case BPP1:
		off := y*stride + x/8
		bit := byte(0x80) >> (x & 7)
		if v&1 != 0 {
			im.Data[off] |= bit
		} else {
			im.Data[off] &^= bit
		}
	default:
		return fmt.Errorf("image depth %d: %w", im.BPP, ErrBadArgument)
	}
	return nil
}

// pixel is the unchecked codec used by the blitter.
func (im *Image) pixel(x, y int) uint16 {
	switch im.BPP {
	case BPP16:
		off := y*int(im.Width)*2 + x*2
		return uint16(im.Data[off]) | uint16(im.Data[off+1])<<8
	case BPP4:
		b := im.Data[y*((int(im.Width)+1)/2)+x/2]
		if x&1 == 0 {
			return uint16(b >> 4)
		}
		return uint16(b & 0x0F)
	default:
		b := im.Data[y*((int(im.Width)+7)/8)+x/8]
		return uint16(b>>(7-uint(x&7))) & 1
	}
}

// ParseImage decodes an image from the front of b and returns the number of
// bytes consumed. Data aliases b.
func ParseImage(b []byte) (*Image, int, error) {
	if len(b) < ImageHeaderSize {
		return nil, 0, fmt.Errorf("image header: %d bytes: %w", len(b), ErrBadArgument)
	}
	im := &Image{ImageHeader: ImageHeader{
		Width:    b[0],
		Height:   b[1],
		BPP:      BPP(b[2]),
		Reserved: b[3],
	}}
	if !im.BPP.Valid() {
		return nil, 0, fmt.Errorf("image depth %d: %w", im.BPP, ErrBadArgument)
	}
	n := ImageHeaderSize + im.DataSize()
	if len(b) < n {
		return nil, 0, fmt.Errorf("image %dx%dx%d: truncated at %d of %d bytes: %w",
			im.Width, im.Height, im.BPP, len(b), n, ErrBadArgument)
	}
	im.Data = b[ImageHeaderSize:n:n]
	return im, n, nil
}

// AppendBinary appends the byte-packed header and exactly DataSize data bytes.
func (im *Image) AppendBinary(dst []byte) ([]byte, error) {
	if err := im.Validate(); err != nil {
		return dst, err
	}
	dst = append(dst, im.Width, im.Height, byte(im.BPP), im.Reserved)
	return append(dst, im.Data[:im.DataSize()]...), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (im *Image) MarshalBinary() ([]byte, error) {
	return im.AppendBinary(make([]byte, 0, ImageHeaderSize+im.DataSize()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Trailing bytes are an error.
func (im *Image) UnmarshalBinary(b []byte) error {
	parsed, n, err := ParseImage(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("image: %d trailing bytes: %w", len(b)-n, ErrBadArgument)
	}
	*im = *parsed
	return nil
}
