// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// EvalOutput is the JSON payload of eval.
type EvalOutput struct {
	Worksheet string   `json:"worksheet"`
	Results   []Result `json:"results"`
}

func (o EvalOutput) writeText(f *OutputFormatter) error { return f.WriteResults(o.Results) }

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "eval -f <worksheet.yaml>",
		Short: "Evaluate a YAML worksheet",
		Long: `Evaluate a YAML worksheet: named matrices plus ordered steps.

Supported ops: show, add, subtract, scale (needs scalar), transpose,
multiply, trace, frobenius, trace_of_product, identity (needs n).
A step's result can be bound with "as" and used by later steps.

Exit code 1 means a matrix operation failed; 2 means the worksheet
could not be read or is malformed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, file, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "worksheet file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runEval(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.log().Named("eval").With(zap.String("worksheet", path))

	ws, err := LoadWorksheet(path)
	if err != nil {
		return formatter.Fail("load worksheet", err, nil)
	}
	log.Debug("worksheet loaded", zap.String("name", ws.Name), zap.Int("matrices", len(ws.Matrices)), zap.Int("steps", len(ws.Steps)))

	results, err := NewEvaluator(log).Evaluate(ws)
	if err != nil {
		var partial interface{}
		if len(results) > 0 {
			partial = results
		}
		if opts.Format != "json" {
			_ = formatter.WriteResults(results)
		}
		return formatter.Fail("evaluate "+ws.Name, err, partial)
	}

	return formatter.Success(EvalOutput{Worksheet: ws.Name, Results: results})
}
