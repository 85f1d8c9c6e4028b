// Package gfx is the common drawing layer for small fixed-format displays.
//
// A display backend implements the narrow Driver contract (set one pixel, fill one
// rectangle, report touch events). Everything else is built here on top of those
// primitives and runs through the same clip discipline:
//
//	draw call → Surface → clip filter → Driver.PutPixel / Driver.FillRegion
//
// Colors are 16-bit RGB565. Images are packed at 1, 4 or 16 bits per pixel and
// are described by a byte-packed 4-byte header; fonts are a glyph table plus a
// single 1bpp atlas image. The binary layouts round-trip exactly through
// ParseImage/ParseFont and MarshalBinary.
//
// The package is single-threaded: a Surface and an EventQueue must not be shared
// between goroutines without external serialization. Nothing on the drawing hot
// path allocates.
package gfx
