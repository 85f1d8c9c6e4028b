//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"quickgfx/gfx"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz       int
	Frames   uint64
	Snapshot string
	Script   []ScriptedTouch
}

// ScriptedTouch is a pointer event injected before the given frame.
type ScriptedTouch struct {
	Frame uint64
	Type  gfx.EventType
	X, Y  int
}

// ParseTap parses "x,y@frame" into a touch on that frame and a release on
// the next one.
func ParseTap(s string) ([]ScriptedTouch, error) {
	pos, frame, ok := strings.Cut(s, "@")
	if !ok {
		frame = "0"
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return nil, fmt.Errorf("tap %q: want x,y[@frame]", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("tap %q: x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("tap %q: y: %w", s, err)
	}
	f, err := strconv.ParseUint(strings.TrimSpace(frame), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("tap %q: frame: %w", s, err)
	}
	return []ScriptedTouch{
		{Frame: f, Type: gfx.EventTouch, X: x, Y: y},
		{Frame: f + 1, Type: gfx.EventRelease, X: x, Y: y},
	}, nil
}

// RunHeadless runs the app without opening a window. With Frames set it stops
// after that many frames and, when Snapshot names a file, writes the visible
// framebuffer there as PNG.
func RunHeadless(ctx context.Context, hostCfg HostConfig, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(hostCfg, os.Stderr)
	step := newApp(h)

	script := append([]ScriptedTouch(nil), cfg.Script...)
	sort.SliceStable(script, func(i, j int) bool { return script[i].Frame < script[j].Frame })

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			for len(script) > 0 && script[0].Frame <= frame {
				h.ptr.push(script[0].Type, script[0].X, script[0].Y)
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return writeSnapshot(h.fb, cfg.Snapshot)
			}
		}
	}
}

func writeSnapshot(fb *MemFramebuffer, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}
