package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/packing"
)

func newVerifyCmd(*app) *cobra.Command {
	var gf graphFlags
	var coloringPath string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a coloring report against a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, err := gf.load()
			if err != nil {
				return err
			}
			f, err := os.Open(coloringPath)
			if err != nil {
				return err
			}
			defer f.Close()
			c, chromatic, err := graphio.ReadColoring(f)
			if err != nil {
				return fmt.Errorf("%s: %w", coloringPath, err)
			}
			if err = packing.Verify(g, c); err != nil {
				var v *packing.Violation
				if errors.As(err, &v) {
					return fmt.Errorf("%w (path %s)", err, strings.Join(v.Path, "-"))
				}
				return err
			}
			if n := c.NumColors(); n != chromatic {
				return fmt.Errorf("report states %d colors but the assignment uses %d", chromatic, n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: valid packing %d-coloring of %d vertices\n", chromatic, g.VertexCount())

			return nil
		},
	}
	fs := cmd.Flags()
	gf.register(fs)
	fs.StringVar(&coloringPath, "coloring", "", "coloring report file")
	_ = cmd.MarkFlagRequired("coloring")

	return cmd
}
