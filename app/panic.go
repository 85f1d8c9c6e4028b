package app

import (
	"fmt"
	"strings"

	"quickgfx/gfx"
)

// panicScreen logs the panic and stack, then paints them black on white
// with the system font. Lines longer than the screen are wrapped and output
// stops at the bottom edge.
func (a *App) panicScreen(v any, stack []byte) {
	lines := []string{"quickgfx panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	for _, line := range lines {
		logf(a.h, "%s", line)
	}

	s := a.s
	if s == nil || a.font == nil {
		return
	}
	charW, err := a.font.StringWidth("0")
	if err != nil || charW <= 0 {
		return
	}
	cols := s.Width() / charW
	if cols <= 0 {
		cols = 1
	}
	lineH := int(a.font.Height)

	err = s.Paint(func() error {
		if err := s.ResetClip(); err != nil {
			return err
		}
		s.SetScroll(0)
		if err := s.Clear(gfx.White); err != nil {
			return err
		}
		y := 0
		for _, line := range lines {
			for len(line) > 0 {
				if y+lineH > s.Height() {
					return nil
				}
				chunk, rest := splitAt(line, cols)
				if _, err := s.DrawString(0, y, a.font, gfx.Black, chunk); err != nil {
					return err
				}
				y += lineH
				line = strings.TrimLeft(rest, " ")
			}
		}
		return nil
	})
	if err != nil {
		logf(a.h, "app: panic screen: %v", err)
	}
}

// splitAt cuts s after n bytes.
func splitAt(s string, n int) (prefix, rest string) {
	if n <= 0 || len(s) <= n {
		return s, ""
	}
	return s[:n], s[n:]
}
