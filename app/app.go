// Package app is the demo program shown on every backend: the system
// palette, the three image depths, lines and boxes, a touch canvas and an
// event console.
package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"quickgfx/console"
	"quickgfx/fonts/basic"
	"quickgfx/gfx"
	"quickgfx/hal"
)

// FrameTime is the step period used by Run.
const FrameTime = time.Second / 60

// Config selects what the demo shows.
type Config struct {
	// QueueSize is the touch queue capacity. Zero means the gfx default.
	QueueSize int
	// Terminal replaces the drawing demo with a full-screen console that
	// echoes events and ticks.
	Terminal bool
}

// App owns the surface for the lifetime of the program.
type App struct {
	h    hal.HAL
	cfg  Config
	s    *gfx.Surface
	drv  *hal.FramebufferDriver
	font *gfx.Font
	pal  gfx.Palette
	con  *console.Console

	layout layout
	pen    int
	down   bool
	lastX  int
	lastY  int

	frame  uint64
	halted bool
}

// New starts the demo with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig starts the demo and returns its step function. If setup
// fails the step function reports the error.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a, err := Start(h, cfg)
	if err != nil {
		logf(h, "app: %v", err)
		return func() error { return err }
	}
	return a.Step
}

// Run starts the demo and steps it forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			logf(h, "app: stopped: %v", err)
			select {}
		}
		time.Sleep(FrameTime)
	}
}

// Start builds the surface over the HAL framebuffer and draws the first
// frame.
func Start(h hal.HAL, cfg Config) (*App, error) {
	s, drv, err := hal.NewSurface(h, cfg.QueueSize)
	if err != nil {
		return nil, err
	}
	font, err := basic.Font()
	if err != nil {
		return nil, err
	}
	a := &App{
		h:    h,
		cfg:  cfg,
		s:    s,
		drv:  drv,
		font: font,
		pal:  gfx.SystemPalette(),
		pen:  gfx.SysForeground,
	}
	logf(h, "app: surface %dx%d", s.Width(), s.Height())

	if cfg.Terminal {
		if a.con, err = console.New(s, font); err != nil {
			return nil, err
		}
		_, err = a.con.Println("quickgfx terminal")
		return a, err
	}

	l, err := newLayout(s.Width(), s.Height(), font)
	if err != nil {
		return nil, err
	}
	a.layout = l
	if err := a.drawScene(); err != nil {
		return nil, err
	}
	if a.con, err = console.NewRegion(s, l.console, font); err != nil {
		return nil, err
	}
	return a, nil
}

// Surface exposes the drawing surface.
func (a *App) Surface() *gfx.Surface { return a.s }

// Halted reports whether a panic stopped the demo.
func (a *App) Halted() bool { return a.halted }

// Step handles pending input and advances one frame. A panic inside the
// step replaces the screen with the panic report and stops further steps.
func (a *App) Step() (err error) {
	if a.halted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			a.halted = true
			a.panicScreen(r, debug.Stack())
			err = nil
		}
	}()

	if err := a.s.CheckEvents(a.handle); err != nil {
		return err
	}
	a.frame++
	if a.frame%60 == 0 {
		return a.tick()
	}
	return nil
}

func (a *App) handle(ev gfx.TouchEvent) error {
	if a.cfg.Terminal {
		_, err := a.con.Printf("%s %d,%d\r\n", ev.Type, ev.X, ev.Y)
		return err
	}

	switch ev.Type {
	case gfx.EventTouch:
		if i, ok := a.layout.swatchAt(ev.X, ev.Y); ok {
			a.pen = i
			_, err := a.con.Printf("pen %d\r\n", i)
			return err
		}
		if !a.layout.canvas.Admits(ev.X, ev.Y) {
			return nil
		}
		a.down = true
		a.lastX, a.lastY = ev.X, ev.Y
		return a.s.Paint(func() error {
			return a.s.PutPixel(ev.X, ev.Y, a.pal[a.pen])
		})
	case gfx.EventDrag:
		if !a.down {
			return nil
		}
		x0, y0 := a.lastX, a.lastY
		a.lastX, a.lastY = ev.X, ev.Y
		return a.s.Paint(func() error {
			return a.s.WithClip(a.layout.canvas, func() error {
				return a.s.DrawLine(x0, y0, ev.X, ev.Y, a.pal[a.pen])
			})
		})
	case gfx.EventRelease:
		if !a.down {
			return nil
		}
		a.down = false
		_, err := a.con.Printf("stroke to %d,%d\r\n", ev.X, ev.Y)
		return err
	}
	return nil
}

func (a *App) tick() error {
	if a.cfg.Terminal {
		_, err := a.con.Printf("frame %d\r\n", a.frame)
		return err
	}
	return a.s.Paint(func() error {
		return a.drawStatus()
	})
}

func logf(h hal.HAL, format string, args ...any) {
	if h == nil {
		return
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf(format, args...))
	}
}
