// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DemoOutput is one demo's JSON payload.
type DemoOutput struct {
	Demo    string   `json:"demo"`
	Results []Result `json:"results"`
}

// DemoOutputs is the payload of one demo run; text mode heads each demo
// with its name when more than one ran.
type DemoOutputs []DemoOutput

func (outs DemoOutputs) writeText(f *OutputFormatter) error {
	for i, out := range outs {
		if len(outs) > 1 {
			if i > 0 {
				fmt.Fprintln(f.Writer)
			}
			fmt.Fprintf(f.Writer, "== %s ==\n\n", out.Demo)
		}
		if err := f.WriteResults(out.Results); err != nil {
			return err
		}
	}
	return nil
}

// demoAll selects every demo in order.
const demoAll = "all"

func scalar(v float64) *float64 { return &v }

// Demos are the built-in worksheets, in the order "all" runs them.
var Demos = []*Worksheet{
	{
		Name:        "calculations",
		Description: "elementwise arithmetic, transpose and products",
		Matrices: map[string][][]float64{
			"A": {{2, 3, 1}, {0, -1, 4}},
			"B": {{5, -2, 0}, {3, 1, 7}},
			"C": {{1, 0}, {2, -1}, {3, 4}},
		},
		Steps: []Step{
			{Op: OpShow, Args: []string{"A"}, Label: "Matrix A"},
			{Op: OpShow, Args: []string{"B"}, Label: "Matrix B"},
			{Op: OpShow, Args: []string{"C"}, Label: "Matrix C"},
			{Op: OpAdd, Args: []string{"A", "B"}, Label: "A + B"},
			{Op: OpSubtract, Args: []string{"A", "B"}, Label: "A - B"},
			{Op: OpScale, Args: []string{"A"}, Scalar: scalar(2), Label: "2 * A"},
			{Op: OpTranspose, Args: []string{"A"}, Label: "transpose(A)"},
			{Op: OpTranspose, Args: []string{"B"}, As: "Bt", Hide: true},
			{Op: OpMultiply, Args: []string{"A", "Bt"}, Label: "A * transpose(B)"},
			{Op: OpMultiply, Args: []string{"A", "C"}, Label: "A * C"},
		},
	},
	{
		Name:        "frobenius",
		Description: "Frobenius inner product and its trace(A^T * B) form",
		Matrices: map[string][][]float64{
			"A": {{1, 2, 3}, {4, 5, 6}},
			"B": {{7, 8, 9}, {1, 0, -1}},
		},
		Steps: []Step{
			{Op: OpShow, Args: []string{"A"}, Label: "Matrix A"},
			{Op: OpShow, Args: []string{"B"}, Label: "Matrix B"},
			{Op: OpFrobenius, Args: []string{"A", "B"}, Label: "Frobenius inner product",
				Note: "1*7 + 2*8 + 3*9 + 4*1 + 5*0 + 6*-1"},
			{Op: OpTranspose, Args: []string{"A"}, As: "At", Hide: true},
			{Op: OpMultiply, Args: []string{"At", "B"}, As: "AtB", Label: "A^T * B"},
			{Op: OpTrace, Args: []string{"AtB"}, Label: "trace(A^T * B)",
				Note: "same value as the Frobenius inner product"},
		},
	},
	{
		Name:        "identity",
		Description: "the identity matrix is a two-sided multiplicative identity",
		Matrices: map[string][][]float64{
			"A": {{2, -1}, {0, 3}},
		},
		Steps: []Step{
			{Op: OpIdentity, N: 2, As: "I", Label: "Identity I"},
			{Op: OpShow, Args: []string{"A"}, Label: "Matrix A"},
			{Op: OpMultiply, Args: []string{"I", "A"}, Label: "I * A"},
			{Op: OpMultiply, Args: []string{"A", "I"}, Label: "A * I",
				Note: "I * A and A * I both give back A"},
		},
	},
}

// DemoNames lists the demo names accepted by the demo command.
func DemoNames() []string {
	names := make([]string, 0, len(Demos)+1)
	for _, ws := range Demos {
		names = append(names, ws.Name)
	}
	return append(names, demoAll)
}

// selectDemos resolves a demo name to the worksheets it runs.
func selectDemos(name string) ([]*Worksheet, error) {
	if name == demoAll {
		return Demos, nil
	}
	for _, ws := range Demos {
		if ws.Name == name {
			return []*Worksheet{ws}, nil
		}
	}
	return nil, fmt.Errorf("unknown demo %q: must be one of %s", name, strings.Join(DemoNames(), ", "))
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [calculations|frobenius|identity|all]",
		Short: "Replay the built-in demonstrations",
		Long: `Replay the built-in demonstrations with fixed matrices.

  calculations  A + B, A - B, 2 * A, transpose(A), A * transpose(B), A * C
  frobenius     <A,B>_F next to trace(A^T * B)
  identity      I * A and A * I for I = I_2

Without an argument every demo runs in turn.`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     DemoNames(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := demoAll
			if len(args) == 1 {
				name = args[0]
			}
			return runDemo(rootOpts, name, cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	log := opts.log().Named("demo")

	selected, err := selectDemos(name)
	if err != nil {
		return formatter.Fail("select demo", err, nil)
	}

	outputs := make(DemoOutputs, 0, len(selected))
	for _, ws := range selected {
		log.Debug("running demo", zap.String("demo", ws.Name))
		results, err := NewEvaluator(log).Evaluate(ws)
		if err != nil {
			return formatter.Fail("demo "+ws.Name, err, nil)
		}
		outputs = append(outputs, DemoOutput{Demo: ws.Name, Results: results})
	}

	return formatter.Success(outputs)
}
