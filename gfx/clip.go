package gfx

import "fmt"

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Admits reports whether (x, y) lies inside r.
func (r Rect) Admits(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

// Contains reports whether o lies entirely inside r. An empty o is contained.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X1 >= r.X1 && o.X2 <= r.X2 && o.Y1 >= r.Y1 && o.Y2 <= r.Y2
}

// ClampSpan trims the span (x1,y1)-(x2,y2) to r. The second result is false
// when nothing remains. Corners may be given in any order.
func (r Rect) ClampSpan(x1, y1, x2, y2 int) (Rect, bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	out := Rect{
		X1: max(x1, r.X1),
		Y1: max(y1, r.Y1),
		X2: min(x2, r.X2),
		Y2: min(y2, r.Y2),
	}
	if out.Empty() {
		return Rect{}, false
	}
	return out, true
}

// Dx returns the width of r in pixels.
func (r Rect) Dx() int {
	if r.Empty() {
		return 0
	}
	return r.X2 - r.X1 + 1
}

// Dy returns the height of r in pixels.
func (r Rect) Dy() int {
	if r.Empty() {
		return 0
	}
	return r.Y2 - r.Y1 + 1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
