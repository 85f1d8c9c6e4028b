package hal

import "quickgfx/gfx"

func putRGB565(buf []byte, off int, c gfx.Color) {
	buf[off] = byte(c)
	buf[off+1] = byte(c >> 8)
}

func getRGB565(buf []byte, off int) gfx.Color {
	return gfx.Color(uint16(buf[off]) | uint16(buf[off+1])<<8)
}

// fillRGB565 paints every pixel of buf with c.
func fillRGB565(buf []byte, c gfx.Color) {
	lo, hi := byte(c), byte(c>>8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}
