//go:build !tinygo && cgo

package hal

import (
	"quickgfx/gfx"
	"quickgfx/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that displays the framebuffer and turns
// mouse and touch input into touch events. It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := New(cfg).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	rgba    []byte
	scratch []byte
	step    func() error

	mouseDown bool
	lastX     int
	lastY     int
	touches   []ebiten.TouchID
}

func (g *hostGame) Update() error {
	g.pollMouse()
	g.pollTouch()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// pollMouse reports a drag only while the left button is held and the
// cursor has moved.
func (g *hostGame) pollMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseDown = true
		g.h.ptr.push(gfx.EventTouch, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.h.ptr.push(gfx.EventRelease, x, y)
	case g.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != g.lastX || y != g.lastY):
		g.h.ptr.push(gfx.EventDrag, x, y)
	}
	g.lastX, g.lastY = x, y
}

func (g *hostGame) pollTouch() {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.h.ptr.push(gfx.EventTouch, x, y)
	}
	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.h.ptr.push(gfx.EventRelease, x, y)
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		if inpututil.TouchPressDuration(id) == 0 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x != px || y != py {
			g.h.ptr.push(gfx.EventDrag, x, y)
		}
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		g.rgba = make([]byte, fb.width*fb.height*4)
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	expandRGB565(g.rgba, g.scratch)
	g.fbImg.WritePixels(g.rgba)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
