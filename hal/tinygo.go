//go:build tinygo && baremetal && !picocalc

package hal

// New returns the HAL of a board without a panel. Its framebuffer has no
// memory, so building a surface on it fails with gfx.ErrOutOfMemory.
func New() HAL {
	return &boardHAL{
		log: newUARTLogger(),
		fb:  &stubFramebuffer{w: 320, h: 240, format: PixelFormatRGB565},
	}
}
