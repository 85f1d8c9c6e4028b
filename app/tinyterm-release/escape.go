package tinyterm

import (
	"strconv"
	"strings"
)

type state uint8

const (
	stateInput state = iota
	stateEscape
	stateCSI
	stateString
)

func (t *Terminal) putchar(b byte) {
	switch t.state {
	case stateInput:
		t.input(b)
	case stateEscape:
		t.escape(b)
	case stateCSI:
		switch {
		case b >= 0x20 && b <= 0x3f:
			t.params.WriteByte(b)
		default:
			t.state = stateInput
			t.csi(b, t.csiParams())
		}
	case stateString:
		// OSC, DCS, SOS, PM and APC bodies are skipped up to BEL or ESC.
		switch b {
		case 0x07:
			t.state = stateInput
		case 0x1b:
			t.state = stateEscape
		}
	}
}

func (t *Terminal) input(b byte) {
	switch b {
	case 0x1b:
		t.state = stateEscape
	case '\r':
		t.cr()
	case '\n':
		t.lf()
	case '\b':
		t.backspace()
	case '\t':
		t.drawRune(' ')
		for t.col%8 != 0 && t.col < t.cols {
			t.drawRune(' ')
		}
	default:
		if b >= 0x20 {
			t.drawRune(rune(b))
		}
	}
}

func (t *Terminal) escape(b byte) {
	t.state = stateInput
	switch b {
	case '[':
		t.params.Reset()
		t.state = stateCSI
	case ']', 'P', 'X', '^', '_':
		t.state = stateString
	case 'c':
		t.attrs.reset()
		t.eraseDisplay()
	}
}

// csiParams splits the parameter bytes on ';'. Empty or malformed fields are
// -1 so each command can apply its own default.
func (t *Terminal) csiParams() []int {
	s := strings.TrimSpace(t.params.String())
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			n = -1
		}
		out[i] = n
	}
	return out
}

func param(p []int, i, def int) int {
	if i < len(p) && p[i] >= 0 {
		return p[i]
	}
	return def
}

func (t *Terminal) csi(final byte, p []int) {
	switch final {
	case 'C': // CUF
		t.col = clamp(t.col+int16(max(param(p, 0, 1), 1)), 0, t.cols-1)
	case 'D': // CUB
		t.col = clamp(t.col-int16(max(param(p, 0, 1), 1)), 0, t.cols-1)
	case 'G': // CHA
		t.col = clamp(int16(param(p, 0, 1)-1), 0, t.cols-1)
	case 'J': // ED
		if param(p, 0, 0) == 2 {
			t.eraseDisplay()
		}
	case 'K': // EL
		t.eraseInLine(param(p, 0, 0))
	case 'm': // SGR
		t.attrs.apply(p)
	}
}

func (t *Terminal) eraseInLine(mode int) {
	x := t.col * t.cellWidth
	switch mode {
	case 1:
		_ = t.display.FillRectangle(0, t.line, x+t.cellWidth, t.lineHeight, t.attrs.bg())
	case 2:
		t.clearLine()
	default:
		_ = t.display.FillRectangle(x, t.line, t.width-x, t.lineHeight, t.attrs.bg())
	}
}

// eraseDisplay blanks the screen and homes the cursor.
func (t *Terminal) eraseDisplay() {
	_ = t.display.FillRectangle(0, 0, t.width, t.height, t.attrs.bg())
	t.line = 0
	t.col = 0
	if !t.softScroll {
		t.display.SetScroll(0)
	}
}

func clamp(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
