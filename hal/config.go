//go:build !tinygo

package hal

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"quickgfx/gfx"
)

// HostConfig sizes the host display and its logger.
type HostConfig struct {
	Width          int
	Height         int
	Scale          int
	EventQueueSize int
	Title          string
	LogLevel       string
}

// DefaultHostConfig matches a QVGA panel shown at twice its size.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Width:          320,
		Height:         240,
		Scale:          2,
		EventQueueSize: gfx.DefaultEventQueueSize,
		Title:          "quickgfx",
		LogLevel:       "info",
	}
}

// LoadHostConfig returns the defaults with QUICKGFX_WIDTH, QUICKGFX_HEIGHT,
// QUICKGFX_SCALE and QUICKGFX_LOG_LEVEL applied.
func LoadHostConfig() (HostConfig, error) {
	cfg := DefaultHostConfig()
	for _, v := range []struct {
		env string
		dst *int
	}{
		{"QUICKGFX_WIDTH", &cfg.Width},
		{"QUICKGFX_HEIGHT", &cfg.Height},
		{"QUICKGFX_SCALE", &cfg.Scale},
	} {
		s := os.Getenv(v.env)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", v.env, s, err)
		}
		*v.dst = n
	}
	if s := os.Getenv("QUICKGFX_LOG_LEVEL"); s != "" {
		cfg.LogLevel = s
	}
	return cfg, cfg.Validate()
}

// Validate rejects sizes a gfx surface cannot use.
func (c HostConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > 4096 || c.Height > 4096 {
		return fmt.Errorf("display size %dx%d out of range", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	if c.EventQueueSize <= 0 {
		return fmt.Errorf("event queue size %d must be positive", c.EventQueueSize)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	return nil
}

func (c HostConfig) slogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
