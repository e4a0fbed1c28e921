// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrixops/logging"
	"github.com/katalvlaran/matrixops/matrix"
)

// Evaluator runs worksheets against the matrix kernels.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator returns an Evaluator logging to log (nil means no logging).
func NewEvaluator(log *logging.Logger) *Evaluator {
	if log == nil {
		log = logging.NewNop()
	}
	return &Evaluator{log: log}
}

// StepError reports the step a matrix operation failed in.
type StepError struct {
	Index int // 1-based
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Evaluate validates ws, binds its matrices and runs every step in order.
// On failure it returns the results produced so far together with the
// error; matrix failures keep their sentinel for errors.Is and
// matrix.KindOf.
func (e *Evaluator) Evaluate(ws *Worksheet) ([]Result, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	env, err := e.bind(ws.Matrices)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(ws.Steps))
	for i, st := range ws.Steps {
		res, err := e.step(env, st)
		if err != nil {
			e.log.Debug("step failed", zap.Int("step", i+1), zap.String("op", st.Op), zap.Error(err))
			return results, &StepError{Index: i + 1, Op: st.Op, Err: err}
		}
		e.log.Debug("step done", zap.Int("step", i+1), zap.String("op", st.Op), zap.String("label", res.Name))
		if st.As != "" {
			env[st.As] = res.dense
		}
		if !st.Hide {
			results = append(results, res)
		}
	}

	return results, nil
}

// bind builds the worksheet matrices in name order so the first invalid
// grid reported is deterministic.
func (e *Evaluator) bind(grids map[string][][]float64) (map[string]*matrix.Dense, error) {
	names := make([]string, 0, len(grids))
	for name := range grids {
		names = append(names, name)
	}
	sort.Strings(names)

	env := make(map[string]*matrix.Dense, len(grids))
	for _, name := range names {
		d, err := matrix.NewDense(grids[name])
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		env[name] = d
		e.log.Debug("bound matrix", zap.String("name", name), zap.Stringer("shape", d.Shape()))
	}

	return env, nil
}

func (e *Evaluator) step(env map[string]*matrix.Dense, st Step) (Result, error) {
	args := make([]*matrix.Dense, len(st.Args))
	for i, name := range st.Args {
		args[i] = env[name]
	}
	label := st.label()

	var (
		m   *matrix.Dense
		v   float64
		err error
	)
	switch st.Op {
	case OpShow:
		m = args[0]
	case OpAdd:
		m, err = matrix.Add(args[0], args[1])
	case OpSubtract:
		m, err = matrix.Subtract(args[0], args[1])
	case OpScale:
		m, err = matrix.ScalarMultiply(*st.Scalar, args[0])
	case OpTranspose:
		m, err = matrix.Transpose(args[0])
	case OpMultiply:
		m, err = matrix.Multiply(args[0], args[1])
	case OpIdentity:
		m, err = matrix.NewIdentity(st.N)
	case OpTrace:
		v, err = matrix.Trace(args[0])
	case OpFrobenius:
		v, err = matrix.FrobeniusInnerProduct(args[0], args[1])
	case OpTraceOfProduct:
		v, err = matrix.TraceOfProduct(args[0], args[1])
	default:
		return Result{}, fmt.Errorf("%w: unknown op %q", ErrInvalidWorksheet, st.Op)
	}
	if err != nil {
		return Result{}, err
	}

	var res Result
	if scalarOps[st.Op] {
		res = ScalarResult(label, v)
	} else {
		res = MatrixResult(label, m)
	}
	res.Note = st.Note

	return res, nil
}
