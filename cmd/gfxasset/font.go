package main

import (
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"quickgfx/asset"
	"quickgfx/fonts"
	"quickgfx/fonts/basic"
	"quickgfx/gfx"
)

type fontOptions struct {
	ttf   string
	size  float64
	dpi   float64
	chars string
	def   string
}

func (a *app) fontCmd() *cobra.Command {
	var o fontOptions
	cmd := &cobra.Command{
		Use:   "font OUT",
		Short: "pack a TrueType font, or the built-in 7x13 font",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error { return a.packFont(args[0], o) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.ttf, "ttf", "", "TrueType file (empty uses the built-in font)")
	f.Float64Var(&o.size, "size", 12, "point size")
	f.Float64Var(&o.dpi, "dpi", 72, "resolution")
	f.StringVar(&o.chars, "chars", fonts.ASCII, "characters to include")
	f.StringVar(&o.def, "default", "?", "fallback character, must be in --chars")
	return cmd
}

func (a *app) packFont(out string, o fontOptions) error {
	if len(o.def) != 1 {
		return errors.Errorf("default %q: want a single byte", o.def)
	}
	var (
		f   *gfx.Font
		err error
	)
	if o.ttf == "" {
		f, err = basic.Font()
		if err != nil {
			return errors.Wrap(err, 0)
		}
	} else {
		ttf, rerr := os.ReadFile(o.ttf)
		if rerr != nil {
			return errors.Wrap(rerr, 0)
		}
		if f, err = asset.TrueType(ttf, o.size, o.dpi, o.chars, o.def[0]); err != nil {
			return err
		}
	}
	if err := asset.WriteBinary(out, f); err != nil {
		return err
	}
	a.printf("%s: %d glyphs, height %d, atlas %dx%d\n", out, f.Chars, f.Height, f.Atlas.W(), f.Atlas.H())
	return nil
}
