//go:build !tinygo

package hal

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"quickgfx/gfx"
)

type hostHAL struct {
	cfg    HostConfig
	logger *slogLogger
	fb     *MemFramebuffer
	ptr    *pointerQueue
}

// New returns a host HAL with an in-memory framebuffer sized by cfg. Log
// lines go to stderr through log/slog.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg, os.Stderr)
}

func newHostHAL(cfg HostConfig, logOut io.Writer) *hostHAL {
	level, err := cfg.slogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	l := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	return &hostHAL{
		cfg:    cfg,
		logger: &slogLogger{l: l.With("component", "hal")},
		fb:     NewMemFramebuffer(cfg.Width, cfg.Height),
		ptr:    &pointerQueue{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }

// Slog exposes the structured logger behind Logger.
func (h *hostHAL) Slog() *slog.Logger { return h.logger.l }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *pointerQueue
}

func (in hostInput) Pointer() Pointer { return in.ptr }

type slogLogger struct {
	l *slog.Logger
}

func (l *slogLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *slogLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }

// pointerQueue collects events from the window or a headless script until
// the driver polls them.
type pointerQueue struct {
	mu      sync.Mutex
	pending []gfx.TouchEvent
}

func (p *pointerQueue) push(t gfx.EventType, x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, gfx.TouchEvent{Type: t, X: x, Y: y})
}

func (p *pointerQueue) PollTouch(emit func(t gfx.EventType, x, y int)) {
	p.mu.Lock()
	evs := p.pending
	p.pending = nil
	p.mu.Unlock()
	for _, ev := range evs {
		emit(ev.Type, ev.X, ev.Y)
	}
}
