package main

import (
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"quickgfx/asset"
	"quickgfx/gfx"
)

type imageOptions struct {
	bpp     int
	width   int
	height  int
	dither  bool
	invert  bool
	palette string
	mask    string
}

func (a *app) imageCmd() *cobra.Command {
	var o imageOptions
	cmd := &cobra.Command{
		Use:   "image IN OUT",
		Short: "pack a PNG, JPEG, GIF or BMP picture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error { return a.packImage(args[0], args[1], o) })
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.bpp, "bpp", 16, "output depth: 1, 4 or 16")
	f.IntVar(&o.width, "width", 0, "scale to this width (0 keeps aspect or source size)")
	f.IntVar(&o.height, "height", 0, "scale to this height (0 keeps aspect or source size)")
	f.BoolVar(&o.dither, "dither", false, "Floyd-Steinberg dithering for 1 and 4 bpp")
	f.BoolVar(&o.invert, "invert", false, "1 bpp: set bits on light pixels")
	f.StringVar(&o.palette, "palette", "system", "4 bpp palette: system or gray")
	f.StringVar(&o.mask, "mask", "", "also write a 1 bpp alpha mask to this file")
	return cmd
}

func (a *app) packImage(in, out string, o imageOptions) error {
	src, err := asset.LoadImage(in)
	if err != nil {
		return err
	}
	pal, err := parsePalette(o.palette)
	if err != nil {
		return err
	}
	bpp := gfx.BPP(o.bpp)
	if !bpp.Valid() {
		return errors.Errorf("bpp %d: want 1, 4 or 16", o.bpp)
	}
	im, err := asset.Convert(src, asset.Options{
		BPP:     bpp,
		Width:   o.width,
		Height:  o.height,
		Palette: pal,
		Dither:  o.dither,
		Invert:  o.invert,
	})
	if err != nil {
		return err
	}
	if err := asset.WriteBinary(out, im); err != nil {
		return err
	}
	a.printf("%s: %dx%d %d bpp, %d bytes\n", out, im.W(), im.H(), im.BPP, gfx.ImageHeaderSize+im.DataSize())

	if o.mask == "" {
		return nil
	}
	m, err := asset.Mask(src, im.W(), im.H())
	if err != nil {
		return err
	}
	if err := asset.WriteBinary(o.mask, m); err != nil {
		return err
	}
	a.printf("%s: %dx%d mask\n", o.mask, m.W(), m.H())
	return nil
}
