package gfx

import "fmt"

// DrawLine draws a straight line between both end points, inclusive. Points
// outside the clip are dropped one by one.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c Color) error {
	if fast, ok := s.drv.(LineDrawer); ok {
		return fast.DrawLine(x1, y1, x2, y2, c)
	}
	return s.line(x1, y1, x2, y2, c)
}

// line is Bresenham over the major axis.
func (s *Surface) line(x1, y1, x2, y2 int, c Color) error {
	dx, sx := x2-x1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y2-y1, 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	x, y := x1, y1
	if dx >= dy {
		e := dx / 2
		for {
			if err := s.PutPixel(x, y, c); err != nil {
				return fmt.Errorf("line pixel (%d,%d): %w", x, y, err)
			}
			if x == x2 {
				return nil
			}
			x += sx
			e -= dy
			if e < 0 {
				y += sy
				e += dx
			}
		}
	}

	e := dy / 2
	for {
		if err := s.PutPixel(x, y, c); err != nil {
			return fmt.Errorf("line pixel (%d,%d): %w", x, y, err)
		}
		if y == y2 {
			return nil
		}
		y += sy
		e -= dx
		if e < 0 {
			x += sx
			e += dy
		}
	}
}

// DrawBox outlines the rectangle (x1,y1)-(x2,y2). Corners must be ordered.
func (s *Surface) DrawBox(x1, y1, x2, y2 int, c Color) error {
	if x1 > x2 || y1 > y2 {
		return fmt.Errorf("box (%d,%d)-(%d,%d): %w", x1, y1, x2, y2, ErrBadArgument)
	}
	if fast, ok := s.drv.(BoxDrawer); ok {
		return fast.DrawBox(x1, y1, x2, y2, c)
	}
	if err := s.DrawLine(x1, y1, x2, y1, c); err != nil {
		return err
	}
	if err := s.DrawLine(x1, y2, x2, y2, c); err != nil {
		return err
	}
	if err := s.DrawLine(x1, y1, x1, y2, c); err != nil {
		return err
	}
	return s.DrawLine(x2, y1, x2, y2, c)
}
