// Package scenario loads evaluation scenarios from CUE files. A
// scenario names a set of input vectors by their fields and a sequence
// of operation steps over them, optionally with expected outcomes; the
// harness executes steps in order and the CLI replays them against the
// trace store.
package scenario

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/fourvec/fourvec/internal/dispatch"
)

// Scenario is one named evaluation plan.
type Scenario struct {
	Name    string                        `json:"name"`
	Vectors map[string]map[string]float64 `json:"vectors"`
	Steps   []Step                        `json:"steps"`
}

// Step is one operation over named vectors. Operands reference keys of
// the scenario's vector set.
type Step struct {
	Op       string    `json:"op"`
	Operands []string  `json:"operands"`
	Params   []float64 `json:"params,omitempty"`
	Expect   *Expect   `json:"expect,omitempty"`
}

// Expect pins a step's outcome. Exactly one of Elements, Scalar or
// Bool applies; Tol widens the numeric comparison (exact when zero).
type Expect struct {
	Kind     string    `json:"kind,omitempty"`
	Elements []float64 `json:"elements,omitempty"`
	Scalar   *float64  `json:"scalar,omitempty"`
	Bool     *bool     `json:"bool,omitempty"`
	Tol      float64   `json:"tol,omitempty"`
}

// decode extracts a scenario from its CUE value.
func decode(v cue.Value) (*Scenario, error) {
	var s Scenario
	if err := v.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	return &s, nil
}

// validate checks the references and counts a decoded scenario must
// satisfy before the harness will run it.
func validate(s *Scenario) []error {
	var errs []error
	fail := func(code, format string, args ...any) {
		errs = append(errs, &LoadError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if s.Name == "" {
		fail(ErrCodeMissingName, "scenario has no name")
	}
	if len(s.Steps) == 0 {
		fail(ErrCodeNoSteps, "scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if step.Op == "" {
			fail(ErrCodeUnknownOp, "step %d has no op", i)
			continue
		}
		if _, ok := dispatch.Info(step.Op); !ok && step.Op != "boost" {
			fail(ErrCodeUnknownOp, "step %d: unknown operation %q", i, step.Op)
		}
		for _, ref := range step.Operands {
			if _, ok := s.Vectors[ref]; !ok {
				fail(ErrCodeUnknownVector, "step %d: operand %q names no scenario vector", i, ref)
			}
		}
	}
	return errs
}
