package vector

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/dispatch"
)

// EvalResult is the outcome of a dynamic evaluation: exactly one field
// is populated.
type EvalResult struct {
	Vector *Vector
	Scalar *float64
	Bool   *bool
}

// Eval applies an operation by name. This is the dynamic entry point
// used by the CLI and the scenario harness; unlike the typed methods it
// validates the operation name and the operand and parameter counts and
// returns errors for user-supplied mismatches instead of panicking.
//
// "boost" resolves to boost_p4 or boost_beta3 by the second operand's
// dimensionality, mirroring the Boost method.
func Eval(op string, operands []Vector, params []float64) (EvalResult, error) {
	if op == "boost" {
		if len(operands) != 2 {
			return EvalResult{}, fmt.Errorf("vector: operation %q wants 2 operands, got %d", op, len(operands))
		}
		if operands[1].Dim() == 4 {
			op = "boost_p4"
		} else {
			op = "boost_beta3"
		}
	}

	info, ok := dispatch.Info(op)
	if !ok {
		return EvalResult{}, fmt.Errorf("vector: unknown operation %q", op)
	}
	if len(operands) != info.Arity {
		return EvalResult{}, fmt.Errorf("vector: operation %q wants %d operands, got %d", op, info.Arity, len(operands))
	}

	dim := info.MinDim
	vs := make([]backend.Vector, len(operands))
	for i, v := range operands {
		vs[i] = v.v
		if d := v.Dim(); d > dim {
			dim = d
		}
	}
	want := info.Params
	if want < 0 {
		want = dim * dim
	}
	if len(params) != want {
		return EvalResult{}, fmt.Errorf("vector: operation %q wants %d parameters at %dD, got %d",
			op, want, dim, len(params))
	}

	out, err := dispatch.Call(op, vs, params)
	if err != nil {
		return EvalResult{}, err
	}
	switch r := out.(type) {
	case backend.Vector:
		v := wrap(r)
		return EvalResult{Vector: &v}, nil
	case float64:
		return EvalResult{Scalar: &r}, nil
	case bool:
		return EvalResult{Bool: &r}, nil
	default:
		return EvalResult{}, fmt.Errorf("vector: operation %q produced unexpected result type %T", op, out)
	}
}

// Ops lists every operation name Eval accepts, in a stable order, plus
// the "boost" alias.
func Ops() []string {
	return append(dispatch.Ops(), "boost")
}
