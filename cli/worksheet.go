// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Worksheet is a named set of matrices plus an ordered list of steps
// evaluated against them.
//
//	name: calculations
//	matrices:
//	  A: [[2, 3, 1], [0, -1, 4]]
//	steps:
//	  - op: transpose
//	    args: [A]
//	    as: At
//	  - op: multiply
//	    args: [A, At]
//	    label: A * transpose(A)
type Worksheet struct {
	// Name identifies the worksheet in output and logs.
	Name string `yaml:"name"`

	// Description is free text; it is never evaluated.
	Description string `yaml:"description,omitempty"`

	// Matrices binds names to literal row-major grids.
	Matrices map[string][][]float64 `yaml:"matrices"`

	// Steps run in order. A step may reference any matrix bound before it.
	Steps []Step `yaml:"steps"`
}

// Step is one operation of a worksheet.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Args names the matrix operands.
	Args []string `yaml:"args,omitempty"`

	// Scalar is the factor for "scale".
	Scalar *float64 `yaml:"scalar,omitempty"`

	// N is the size for "identity".
	N int `yaml:"n,omitempty"`

	// As binds a matrix result for later steps.
	As string `yaml:"as,omitempty"`

	// Label is the display name; defaults to As, then to op(args).
	Label string `yaml:"label,omitempty"`

	// Note is printed under the result.
	Note string `yaml:"note,omitempty"`

	// Hide evaluates and binds the step without printing it.
	Hide bool `yaml:"hide,omitempty"`
}

// Worksheet operations.
const (
	OpShow           = "show"
	OpAdd            = "add"
	OpSubtract       = "subtract"
	OpScale          = "scale"
	OpTranspose      = "transpose"
	OpMultiply       = "multiply"
	OpTrace          = "trace"
	OpFrobenius      = "frobenius"
	OpTraceOfProduct = "trace_of_product"
	OpIdentity       = "identity"
)

// opArity is the number of matrix operands per op.
var opArity = map[string]int{
	OpShow:           1,
	OpAdd:            2,
	OpSubtract:       2,
	OpScale:          1,
	OpTranspose:      1,
	OpMultiply:       2,
	OpTrace:          1,
	OpFrobenius:      2,
	OpTraceOfProduct: 2,
	OpIdentity:       0,
}

// scalarOps produce a scalar that cannot be bound with As.
var scalarOps = map[string]bool{
	OpTrace:          true,
	OpFrobenius:      true,
	OpTraceOfProduct: true,
}

// ErrInvalidWorksheet is wrapped by every structural worksheet error.
var ErrInvalidWorksheet = errors.New("invalid worksheet")

// LoadWorksheet reads and parses a worksheet YAML file.
func LoadWorksheet(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet file: %w", err)
	}

	return ParseWorksheet(bytes.NewReader(data))
}

// ParseWorksheet decodes a worksheet and validates its structure.
// Unknown fields are rejected so typos such as "arg:" surface early.
func ParseWorksheet(r io.Reader) (*Worksheet, error) {
	var ws Worksheet
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&ws); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return &ws, nil
}

// Validate checks that every step names a known op with the right number
// of operands and only references matrices bound before it. Matrix
// contents are not checked here; that is the matrix package's job.
func (ws *Worksheet) Validate() error {
	if len(ws.Steps) == 0 {
		return fmt.Errorf("%w: steps list is required and must be non-empty", ErrInvalidWorksheet)
	}

	bound := make(map[string]bool, len(ws.Matrices))
	for name := range ws.Matrices {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: matrix name must be non-empty", ErrInvalidWorksheet)
		}
		bound[name] = true
	}

	for i, st := range ws.Steps {
		arity, ok := opArity[st.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: unknown op %q (want one of %s)", ErrInvalidWorksheet, i+1, st.Op, strings.Join(KnownOps(), ", "))
		}
		if len(st.Args) != arity {
			return fmt.Errorf("%w: step %d: %s takes %d argument(s), got %d", ErrInvalidWorksheet, i+1, st.Op, arity, len(st.Args))
		}
		for _, arg := range st.Args {
			if !bound[arg] {
				return fmt.Errorf("%w: step %d: %s: unknown matrix %q", ErrInvalidWorksheet, i+1, st.Op, arg)
			}
		}
		if st.Op == OpScale && st.Scalar == nil {
			return fmt.Errorf("%w: step %d: scale requires scalar", ErrInvalidWorksheet, i+1)
		}
		if st.Op != OpScale && st.Scalar != nil {
			return fmt.Errorf("%w: step %d: scalar is only valid for scale", ErrInvalidWorksheet, i+1)
		}
		if st.Op != OpIdentity && st.N != 0 {
			return fmt.Errorf("%w: step %d: n is only valid for identity", ErrInvalidWorksheet, i+1)
		}
		if st.As != "" {
			if scalarOps[st.Op] {
				return fmt.Errorf("%w: step %d: %s yields a scalar and cannot be bound to %q", ErrInvalidWorksheet, i+1, st.Op, st.As)
			}
			bound[st.As] = true
		}
	}

	return nil
}

// KnownOps lists the supported ops in sorted order.
func KnownOps() []string {
	ops := make([]string, 0, len(opArity))
	for op := range opArity {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	return ops
}

// label is the display name of a step.
func (st Step) label() string {
	switch {
	case st.Label != "":
		return st.Label
	case st.As != "":
		return st.As
	case st.Op == OpIdentity:
		return fmt.Sprintf("identity(%d)", st.N)
	case st.Op == OpScale && st.Scalar != nil:
		return fmt.Sprintf("scale(%g, %s)", *st.Scalar, strings.Join(st.Args, ", "))
	default:
		return fmt.Sprintf("%s(%s)", st.Op, strings.Join(st.Args, ", "))
	}
}
