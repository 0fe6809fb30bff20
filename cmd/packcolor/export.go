package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/packcolor/graphio"
	"github.com/katalvlaran/packcolor/packing"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		sf          solverFlags
		gf          graphFlags
		feasibility int
		out         string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the packing-coloring model in LP format without solving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			sf.apply(cmd.Flags(), cfg)
			g, _, err := gf.load()
			if err != nil {
				return err
			}
			opts, err := packingOptions(cfg, a.log)
			if err != nil {
				return err
			}
			if feasibility > 0 {
				opts = append(opts, packing.WithFeasibility(feasibility))
			}
			f, err := packing.Formulate(g, nil, opts...)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return f.Model.WriteLP(cmd.OutOrStdout())
			}

			return graphio.WriteFile(out, func(w io.Writer) error { return f.Model.WriteLP(w) })
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&sf.bound, "bound", "n", `color bound: "n" (|V|) or "greedy"`)
	gf.register(fs)
	fs.IntVar(&feasibility, "feasibility", 0, "emit the fixed-k decision model")
	fs.StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}
