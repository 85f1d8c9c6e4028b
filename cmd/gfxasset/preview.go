package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quickgfx/asset"
	"quickgfx/gfx"
)

type previewOptions struct {
	font    bool
	palette string
	fg      string
}

func (a *app) previewCmd() *cobra.Command {
	var o previewOptions
	cmd := &cobra.Command{
		Use:   "preview IN OUT.png",
		Short: "render a packed image or font atlas to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error { return a.preview(args[0], args[1], o) })
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.font, "font", false, "input is a packed font")
	f.StringVar(&o.palette, "palette", "system", "palette for 4 bpp images: system or gray")
	f.StringVar(&o.fg, "fg", "ffffff", "color of set 1 bpp pixels, as rrggbb")
	return cmd
}

func (a *app) preview(in, out string, o previewOptions) error {
	pal, err := parsePalette(o.palette)
	if err != nil {
		return err
	}
	fg, err := parseHex(o.fg)
	if err != nil {
		return err
	}

	var im *gfx.Image
	if o.font {
		f, err := asset.ReadFont(in)
		if err != nil {
			return err
		}
		im = f.Atlas
	} else {
		if im, err = asset.ReadImage(in); err != nil {
			return err
		}
	}
	rgba, err := asset.ToRGBA(im, pal, fg)
	if err != nil {
		return err
	}
	if err := asset.SavePNG(out, rgba); err != nil {
		return err
	}
	a.printf("%s: %dx%d\n", out, im.W(), im.H())
	return nil
}

func parseHex(s string) (gfx.Color, error) {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil || n != 3 || len(s) != 6 {
		return 0, fmt.Errorf("color %q: want rrggbb", s)
	}
	return gfx.RGB(r, g, b), nil
}
