package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/packcolor/config"
)

type globalFlags struct {
	logLevel   string
	logFormat  string
	configPath string
}

// app carries what PersistentPreRunE resolves for every subcommand.
type app struct {
	flags globalFlags
	log   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "packcolor",
		Short:         "Packing colorings via integer programming",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.flags.logLevel, a.flags.logFormat)
			if err != nil {
				return err
			}
			a.log = l

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "console", "console or json")
	pf.StringVar(&a.flags.configPath, "config", "", "CUE or JSON configuration file")

	root.AddCommand(
		newRunCmd(a),
		newSolveCmd(a),
		newExportCmd(a),
		newVerifyCmd(a),
		newSolversCmd(),
	)

	return root
}

// loadConfig returns the file configuration, or the defaults without --config.
func (a *app) loadConfig() (*config.Config, error) {
	if a.flags.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(a.flags.configPath)
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	var cfg zap.Config
	switch strings.ToLower(format) {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("--log-format: unknown format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
