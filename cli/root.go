// SPDX-License-Identifier: MIT

// Package cli implements the matrixops command tree on top of cobra:
// demo replays the built-in worksheets, eval runs a YAML worksheet and
// identity prints I_n.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matrixops/config"
	"github.com/katalvlaran/matrixops/logging"
	"github.com/katalvlaran/matrixops/matrix"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Width     int
	Precision int

	cfg     *config.Config
	logger  *logging.Logger
	logCore zapcore.Core // replaces the configured sink when set
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON}

// NewRootCommand creates the root command. Flag defaults come from cfg;
// a nil cfg means config.Default().
func NewRootCommand(cfg *config.Config) *cobra.Command {
	cmd, _ := newRootCommand(cfg)
	return cmd
}

func newRootCommand(cfg *config.Config) (*cobra.Command, *RootOptions) {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := &RootOptions{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "matrixops",
		Short: "matrixops - dense matrix arithmetic",
		Long: `Dense matrix arithmetic from the command line.

Adds, subtracts, scales, transposes and multiplies small real matrices,
and computes traces and Frobenius inner products. Every operation checks
shapes first and fails with a typed error instead of truncating.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.OutputConfig.Format, "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Width, "width", cfg.OutputConfig.Width, "minimum cell width in text output")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", cfg.OutputConfig.Precision, "digits after the decimal point in text output")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewIdentityCommand(opts))

	return cmd, opts
}

// Run executes the command tree with args and returns the process exit
// code. Errors not already reported by a command go to stderr.
func Run(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCommand(cfg)
	return run(cmd, opts, args, stdout, stderr)
}

func run(cmd *cobra.Command, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	// cobra skips post-run hooks when RunE fails.
	opts.log().Sync()

	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return GetExitCode(err)
}

// setup validates the global flags and builds the logger.
func (o *RootOptions) setup() error {
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if o.Width < 0 {
		return fmt.Errorf("invalid width %d: must be >= 0", o.Width)
	}
	if o.Precision < 0 || o.Precision > matrix.MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be in [0,%d]", o.Precision, matrix.MaxPrecision)
	}

	lcfg := logging.DefaultConfig()
	if o.cfg != nil {
		lcfg = o.cfg.LoggerConfig()
	}
	if o.Verbose {
		lcfg = logging.DevelopmentConfig()
	}
	if o.logCore != nil {
		o.logger = logging.NewWithCore(o.logCore)
		return nil
	}
	logger, err := logging.New(lcfg)
	if err != nil {
		return err
	}
	o.logger = logger

	return nil
}

// log returns the configured logger, or a no-op one when a command runs
// without the root (tests build subcommands directly).
func (o *RootOptions) log() *logging.Logger {
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	return o.logger
}

// output is the effective output section: config values overridden by flags.
func (o *RootOptions) output() config.OutputConfig {
	return config.OutputConfig{
		Format:    o.Format,
		Width:     o.Width,
		Precision: o.Precision,
	}
}

// formatter builds the output formatter for cmd. setup has already
// validated the flags.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	out := o.output()

	return &OutputFormatter{
		Format:     out.Format,
		Writer:     cmd.OutOrStdout(),
		Verbose:    o.Verbose,
		FormatOpts: out.FormatOptions(),
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
