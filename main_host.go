//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"quickgfx/app"
	"quickgfx/hal"
	"quickgfx/internal/buildinfo"
)

type hostFlags struct {
	headless bool
	terminal bool
	hz       int
	frames   uint64
	snapshot string
	width    int
	height   int
	scale    int
	logLevel string
	taps     []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f hostFlags
	cmd := &cobra.Command{
		Use:           "quickgfx",
		Short:         "quickgfx demo on the host display",
		Version:       buildinfo.Long(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.BoolVar(&f.headless, "headless", false, "run without a window")
	fl.BoolVar(&f.terminal, "term-demo", false, "run the full-screen console demo")
	fl.IntVar(&f.hz, "hz", 60, "frame rate in headless mode")
	fl.Uint64Var(&f.frames, "frames", 0, "stop after N frames in headless mode (0 = run forever)")
	fl.StringVar(&f.snapshot, "snapshot", "", "write the last headless frame to this PNG file")
	fl.IntVar(&f.width, "width", 0, "display width (overrides QUICKGFX_WIDTH)")
	fl.IntVar(&f.height, "height", 0, "display height (overrides QUICKGFX_HEIGHT)")
	fl.IntVar(&f.scale, "scale", 0, "window scale (overrides QUICKGFX_SCALE)")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides QUICKGFX_LOG_LEVEL)")
	fl.StringArrayVar(&f.taps, "tap", nil, "headless tap as x,y@frame; repeatable")
	return cmd
}

func run(cmd *cobra.Command, f hostFlags) error {
	cfg, err := hal.LoadHostConfig()
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Height = f.height
	}
	if fl.Changed("scale") {
		cfg.Scale = f.scale
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appCfg := app.Config{QueueSize: cfg.EventQueueSize, Terminal: f.terminal}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, appCfg) }

	if !f.headless {
		return hal.RunWindow(cfg, newApp)
	}

	hc := hal.HeadlessConfig{Hz: f.hz, Frames: f.frames, Snapshot: f.snapshot}
	for _, s := range f.taps {
		tap, err := hal.ParseTap(s)
		if err != nil {
			return err
		}
		hc.Script = append(hc.Script, tap...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := hal.RunHeadless(ctx, cfg, hc, newApp); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
