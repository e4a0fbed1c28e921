// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/katalvlaran/matrixops/config"
)

// runCLI executes the full command tree with default configuration.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = Run(config.Default(), args, &out, &errOut)

	return out.String(), errOut.String(), code
}

// assertGolden compares got with testdata/golden/<name>.golden.
// Regenerate with: go test ./cli -update
func assertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}
