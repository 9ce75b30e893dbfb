// Package harness executes scenarios against the vector engine and
// records every evaluated operation in the trace store. Each run builds
// the scenario's named vectors, walks its steps in order through the
// dynamic evaluator, checks expected outcomes, and appends one
// value-complete trace record per step.
package harness

import (
	"context"
	"fmt"
	"math"

	"github.com/fourvec/fourvec/internal/scenario"
	"github.com/fourvec/fourvec/internal/trace"
	"github.com/fourvec/fourvec/pkg/vector"
)

// Runner executes scenarios. A nil store runs without persistence;
// record IDs are still computed so results stay comparable across runs.
type Runner struct {
	store *trace.Store
}

// New returns a runner writing to store, which may be nil.
func New(store *trace.Store) *Runner {
	return &Runner{store: store}
}

// StepOutcome is one executed step: the record it produced, the
// record's content-addressed ID, and any expectation failures.
type StepOutcome struct {
	Index    int
	Op       string
	RecordID string
	Record   trace.Record
	Failures []string
}

// Result is one completed run. Pass is false when any step's
// expectation failed; execution errors abort the run instead.
type Result struct {
	Scenario string
	RunToken string
	Pass     bool
	Steps    []StepOutcome
}

// Run executes the scenario. Vector construction and step evaluation
// errors abort and return an error; expectation mismatches are
// collected per step and reflected in Result.Pass.
func (r *Runner) Run(ctx context.Context, s scenario.Scenario) (*Result, error) {
	vectors := make(map[string]vector.Vector, len(s.Vectors))
	for name, fields := range s.Vectors {
		v, err := vector.FromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: vector %q: %w", s.Name, name, err)
		}
		vectors[name] = v
	}

	result := &Result{Scenario: s.Name, Pass: true}
	if r.store != nil {
		token, err := r.store.BeginRun(ctx, s.Name)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		result.RunToken = token
	}

	for i, step := range s.Steps {
		operands := make([]vector.Vector, len(step.Operands))
		for j, ref := range step.Operands {
			operands[j] = vectors[ref]
		}

		out, err := vector.Eval(step.Op, operands, step.Params)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: step %d (%s): %w", s.Name, i, step.Op, err)
		}

		rec := buildRecord(step, operands, out)
		outcome := StepOutcome{Index: i, Op: step.Op, Record: rec}
		if r.store != nil {
			outcome.RecordID, err = r.store.Append(ctx, result.RunToken, int64(i), rec)
		} else {
			outcome.RecordID, err = trace.RecordID(rec)
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q: step %d (%s): %w", s.Name, i, step.Op, err)
		}

		if step.Expect != nil {
			outcome.Failures = checkExpect(step.Expect, out)
			if len(outcome.Failures) > 0 {
				result.Pass = false
			}
		}
		result.Steps = append(result.Steps, outcome)
	}
	return result, nil
}

func buildRecord(step scenario.Step, operands []vector.Vector, out vector.EvalResult) trace.Record {
	rec := trace.Record{Op: step.Op, Params: step.Params}
	for _, v := range operands {
		rec.Operands = append(rec.Operands, trace.RecordOperand(v))
	}
	switch {
	case out.Vector != nil:
		rec.Result = trace.VectorResult(*out.Vector)
	case out.Scalar != nil:
		rec.Result = trace.ScalarResult(*out.Scalar)
	case out.Bool != nil:
		rec.Result = trace.BoolResult(*out.Bool)
	}
	return rec
}

// checkExpect compares an evaluation outcome against its expectation
// and returns a message per mismatch.
func checkExpect(exp *scenario.Expect, out vector.EvalResult) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	switch {
	case exp.Scalar != nil:
		if out.Scalar == nil {
			fail("expected a scalar result, got %s", resultClass(out))
			break
		}
		if !within(*out.Scalar, *exp.Scalar, exp.Tol) {
			fail("scalar %v outside tolerance %v of expected %v", *out.Scalar, exp.Tol, *exp.Scalar)
		}
	case exp.Bool != nil:
		if out.Bool == nil {
			fail("expected a boolean result, got %s", resultClass(out))
			break
		}
		if *out.Bool != *exp.Bool {
			fail("got %v, expected %v", *out.Bool, *exp.Bool)
		}
	case len(exp.Elements) > 0 || exp.Kind != "":
		if out.Vector == nil {
			fail("expected a vector result, got %s", resultClass(out))
			break
		}
		v := *out.Vector
		if exp.Kind != "" {
			converted, err := v.ToKind(exp.Kind)
			if err != nil {
				fail("expected kind %q: %v", exp.Kind, err)
				break
			}
			v = converted
		}
		if len(exp.Elements) == 0 {
			break
		}
		got := v.Floats()
		if len(got) != len(exp.Elements) {
			fail("got %d elements, expected %d", len(got), len(exp.Elements))
			break
		}
		for i := range got {
			if !within(got[i], exp.Elements[i], exp.Tol) {
				fail("element %d: %v outside tolerance %v of expected %v", i, got[i], exp.Tol, exp.Elements[i])
			}
		}
	}
	return failures
}

func resultClass(out vector.EvalResult) string {
	switch {
	case out.Vector != nil:
		return "vector"
	case out.Scalar != nil:
		return "scalar"
	case out.Bool != nil:
		return "bool"
	}
	return "nothing"
}

// within treats NaN as equal to NaN: non-finite elements are
// intentional data here, and an expectation should be able to pin them.
func within(got, want, tol float64) bool {
	if math.IsNaN(got) && math.IsNaN(want) {
		return true
	}
	if tol == 0 {
		return got == want
	}
	return math.Abs(got-want) <= tol
}
