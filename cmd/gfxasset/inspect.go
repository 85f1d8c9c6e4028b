package main

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"quickgfx/gfx"
)

func (a *app) inspectCmd() *cobra.Command {
	var isFont bool
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "print the header of a packed image or font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error { return a.inspect(args[0], isFont) })
		},
	}
	cmd.Flags().BoolVar(&isFont, "font", false, "file is a packed font")
	return cmd
}

func (a *app) inspect(path string, isFont bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}
	if !isFont {
		im, n, err := gfx.ParseImage(b)
		if err != nil {
			return errors.WrapPrefix(err, path, 0)
		}
		a.printf("image %dx%d, %d bpp, stride %d, %d bytes", im.W(), im.H(), im.BPP, im.RowStride(), n)
		if extra := len(b) - n; extra > 0 {
			a.printf(", %d trailing", extra)
		}
		a.printf("\n")
		return nil
	}

	f, err := gfx.ParseFont(b)
	if err != nil {
		return errors.WrapPrefix(err, path, 0)
	}
	a.printf("font %d glyphs, height %d, default %q, atlas %dx%d\n",
		f.Chars, f.Height, rune(f.Default), f.Atlas.W(), f.Atlas.H())
	for _, g := range f.Glyphs {
		a.printf("  %q width %d at (%d,%d)\n", rune(g.Char), g.Width, g.X, g.Y)
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
