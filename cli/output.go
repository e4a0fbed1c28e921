// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matrixops/matrix"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A matrix operation failed (shape, dimension, size...)
	ExitCommandError = 2 // Command or input error (bad flag, unreadable worksheet...)
)

// ErrCodeInput tags command and input errors in responses. Matrix
// failures use the stable matrix.ErrorKind name instead.
const ErrCodeInput = "Input"

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitCommandError if the error is not an
// ExitError: only commands raise matrix failures, and they wrap them.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// classify maps an error onto its response code and exit code.
func classify(err error) (string, int) {
	if kind := matrix.KindOf(err); kind != matrix.KindUnknown {
		return kind.String(), ExitFailure
	}
	return ErrCodeInput, ExitCommandError
}

// Result is one named value produced by a command.
type Result struct {
	Name   string      `json:"name"`
	Shape  string      `json:"shape,omitempty"`
	Matrix [][]float64 `json:"matrix,omitempty"`
	Scalar *float64    `json:"scalar,omitempty"`
	Note   string      `json:"note,omitempty"`

	dense *matrix.Dense
}

// MatrixResult wraps a matrix value.
func MatrixResult(name string, m *matrix.Dense) Result {
	return Result{
		Name:   name,
		Shape:  m.Shape().String(),
		Matrix: m.ToRows(),
		dense:  m,
	}
}

// ScalarResult wraps a scalar value.
func ScalarResult(name string, v float64) Result {
	return Result{Name: name, Scalar: &v}
}

// IsScalar reports whether r carries a scalar.
func (r Result) IsScalar() bool { return r.Scalar != nil }

// jsonFloat writes NaN and the infinities as the strings "NaN", "+Inf"
// and "-Inf"; encoding/json has no number form for them.
type jsonFloat float64

func (v jsonFloat) MarshalJSON() ([]byte, error) {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// MarshalJSON encodes r with non-finite cells and scalars as strings.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Name   string        `json:"name"`
		Shape  string        `json:"shape,omitempty"`
		Matrix [][]jsonFloat `json:"matrix,omitempty"`
		Scalar *jsonFloat    `json:"scalar,omitempty"`
		Note   string        `json:"note,omitempty"`
	}{Name: r.Name, Shape: r.Shape, Note: r.Note}

	if r.Matrix != nil {
		out.Matrix = make([][]jsonFloat, len(r.Matrix))
		for i, row := range r.Matrix {
			out.Matrix[i] = make([]jsonFloat, len(row))
			for j, v := range row {
				out.Matrix[i][j] = jsonFloat(v)
			}
		}
	}
	if r.Scalar != nil {
		v := jsonFloat(*r.Scalar)
		out.Scalar = &v
	}

	return json.Marshal(out)
}

func (r Result) writeText(f *OutputFormatter) error { return f.writeResult(r) }

// Payload is a command's output. JSON mode encodes it as the response
// data; text mode lets it print itself.
type Payload interface {
	writeText(f *OutputFormatter) error
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format     string
	Writer     io.Writer
	Verbose    bool // adds error details to text output
	FormatOpts []matrix.FormatOption
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // matrix.ErrorKind name or ErrCodeInput
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data Payload) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}

	return data.writeText(f)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and turns it into an ExitError carrying the code
// classify picks for it.
func (f *OutputFormatter) Fail(message string, err error, details interface{}) error {
	code, exit := classify(err)
	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), details)

	return WrapExitError(exit, message, err)
}

// WriteResults prints results as labelled matrix blocks and scalar lines.
func (f *OutputFormatter) WriteResults(results []Result) error {
	for _, r := range results {
		if err := f.writeResult(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) writeResult(r Result) error {
	if r.IsScalar() {
		if _, err := fmt.Fprintf(f.Writer, "%s = %s\n", r.Name, strconv.FormatFloat(*r.Scalar, 'g', -1, 64)); err != nil {
			return err
		}
		if r.Note != "" {
			fmt.Fprintf(f.Writer, "    %s\n", r.Note)
		}
		_, err := fmt.Fprintln(f.Writer)
		return err
	}

	m := r.dense
	if m == nil {
		var err error
		if m, err = matrix.NewDense(r.Matrix); err != nil {
			return err
		}
	}
	if err := matrix.Format(f.Writer, r.Name, m, f.FormatOpts...); err != nil {
		return err
	}
	if r.Note != "" {
		_, err := fmt.Fprintf(f.Writer, "    %s\n\n", r.Note)
		return err
	}
	return nil
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
