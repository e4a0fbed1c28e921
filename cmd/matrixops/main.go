// SPDX-License-Identifier: MIT

// Command matrixops is the command-line front end of the matrix package.
//
// Usage:
//
//	matrixops demo [calculations|frobenius|identity|all]
//	matrixops eval -f worksheet.yaml
//	matrixops identity <n>
//
// Settings are read from MATRIXOPS_* environment variables (see package
// config) and may be overridden with --format, --width and --precision.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matrixops/cli"
	"github.com/katalvlaran/matrixops/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	os.Exit(cli.Run(cfg, os.Args[1:], os.Stdout, os.Stderr))
}
