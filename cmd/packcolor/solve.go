package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/packcolor/core"
	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/packing"
	"github.com/katalvlaran/packcolor/render"
)

type solveFlags struct {
	solverFlags
	graphFlags
	feasibility int
	report      string
	png         string
	dot         string
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the packing chromatic number of one graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			f.solverFlags.apply(cmd.Flags(), cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}
			g, stem, err := f.graphFlags.load()
			if err != nil {
				return err
			}
			s, err := newSolver(cfg, a.log)
			if err != nil {
				return err
			}
			opts, err := packingOptions(cfg, a.log)
			if err != nil {
				return err
			}
			if f.feasibility > 0 {
				opts = append(opts, packing.WithFeasibility(f.feasibility))
			}

			res, err := packing.Solve(cmd.Context(), g, s, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Feasibility {
				a.log.Info("packing colorability",
					zap.String("graph", stem),
					zap.Int("k", res.K),
					zap.Bool("colorable", res.Colorable()),
					zap.Duration("elapsed", res.Elapsed),
				)
				if !res.Colorable() {
					fmt.Fprintf(out, "%s: not %d-colorable\n", stem, res.K)
					return nil
				}
				fmt.Fprintf(out, "%s: %d-colorable\n", stem, res.K)
				return f.draw(g, res)
			}
			a.log.Info("packing chromatic number",
				zap.String("graph", stem),
				zap.Int("chromatic", res.Chromatic),
				zap.Stringer("status", res.Status),
				zap.Duration("elapsed", res.Elapsed),
			)

			if f.report != "" {
				err = graphio.WriteFile(f.report, func(w io.Writer) error {
					return graphio.WriteColoring(w, res.Coloring, res.Chromatic)
				})
			} else {
				err = graphio.WriteColoring(out, res.Coloring, res.Chromatic)
			}
			if err != nil {
				return err
			}
			if err = f.draw(g, res); err != nil {
				return err
			}
			if !res.Optimal() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s stopped with status %s; %d is an upper bound\n",
					s.Name(), res.Status, res.Chromatic)
			}

			return nil
		},
	}
	fs := cmd.Flags()
	f.solverFlags.register(fs)
	f.graphFlags.register(fs)
	fs.IntVar(&f.feasibility, "feasibility", 0, "only decide whether k colors suffice; prints k-colorable or not k-colorable")
	fs.StringVar(&f.report, "report", "", "write the coloring report here instead of stdout")
	fs.StringVar(&f.png, "png", "", "draw the coloring to this PNG")
	fs.StringVar(&f.dot, "dot", "", "write the coloring as Graphviz to this file")

	return cmd
}

// draw writes the optional PNG and DOT renderings of res.
func (f *solveFlags) draw(g *core.Graph, res *packing.Result) error {
	if f.png != "" {
		if err := render.SavePNG(f.png, g, res.Coloring, res.Chromatic, render.Options{}); err != nil {
			return err
		}
	}
	if f.dot != "" {
		return graphio.WriteFile(f.dot, func(w io.Writer) error {
			return render.DOT(w, g, res.Coloring, res.Chromatic)
		})
	}

	return nil
}
