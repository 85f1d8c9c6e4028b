// Package basic provides the built-in system font.
package basic

import (
	"sync"

	"golang.org/x/image/font/basicfont"

	"quickgfx/fonts"
	"quickgfx/gfx"
)

var (
	once sync.Once
	font *gfx.Font
	err  error
)

// Font returns the 7x13 system font covering printable ASCII, with '?' as
// the default character. It is built on first use and shared afterwards.
func Font() (*gfx.Font, error) {
	once.Do(func() {
		font, err = fonts.FromFace(basicfont.Face7x13, fonts.ASCII, '?')
	})
	return font, err
}

// MustFont is Font for callers that cannot continue without a font.
func MustFont() *gfx.Font {
	f, err := Font()
	if err != nil {
		panic("basic font: " + err.Error())
	}
	return f
}
