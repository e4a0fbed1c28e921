// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixops/matrix"
)

// NewIdentityCommand creates the identity command.
func NewIdentityCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity <n>",
		Short: "Print the n x n identity matrix",
		Long: `Print the n x n identity matrix.

A negative n reads as a flag; pass it after "--" to have it checked
as a size:

  matrixops identity -- -3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentity(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runIdentity(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	n, err := strconv.Atoi(arg)
	if err != nil {
		return formatter.Fail("parse size", fmt.Errorf("%q is not an integer", arg), nil)
	}
	opts.log().Debug("identity", zap.Int("n", n))

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return formatter.Fail("identity", err, nil)
	}

	return formatter.Success(MatrixResult(fmt.Sprintf("I_%d", n), id))
}
