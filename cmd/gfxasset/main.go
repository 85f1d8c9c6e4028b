// Command gfxasset converts pictures and fonts into the packed formats the
// gfx package draws, and turns packed files back into PNG previews.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"quickgfx/gfx"
	"quickgfx/internal/buildinfo"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	out, errOut io.Writer
	debug       bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "gfxasset",
		Short:         "convert images and fonts for quickgfx",
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "print error stacks")
	root.AddCommand(
		a.imageCmd(),
		a.fontCmd(),
		a.previewCmd(),
		a.inspectCmd(),
	)
	return root
}

// run reports err the way every subcommand does: a stack with --debug, the
// message otherwise.
func (a *app) run(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	var stacked *errors.Error
	if a.debug && errors.As(err, &stacked) {
		fmt.Fprintln(a.errOut, stacked.ErrorStack())
	} else {
		fmt.Fprintln(a.errOut, "gfxasset:", err)
	}
	return err
}

func parsePalette(name string) (*gfx.Palette, error) {
	var p gfx.Palette
	switch name {
	case "", "system":
		p = gfx.SystemPalette()
	case "gray":
		p = gfx.GradientPalette(gfx.Black, gfx.White)
	default:
		return nil, errors.Errorf("unknown palette %q (want system or gray)", name)
	}
	return &p, nil
}
