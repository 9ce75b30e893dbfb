package dispatch

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

// Call dispatches the named operation over the operands and
// reconstructs the result: a backend.Vector for vector-valued
// operations, or whatever the backend family's Wrap hook returns for
// scalar and boolean outputs.
//
// Operands of lower dimensionality than the operation (or each other)
// are promoted first: missing axes appear as z and t kinds with zero
// elements. Mixed backend families are a user error and come back as
// IncompatibleBackendError; an unknown operation name, a wrong operand
// or parameter count, or a table miss is a programmer error and
// panics.
func Call(op string, operands []backend.Vector, params []float64) (any, error) {
	def, ok := opIndex[op]
	if !ok {
		panic(fmt.Sprintf("dispatch: unknown operation %q", op))
	}
	if len(operands) != def.arity {
		panic(fmt.Sprintf("dispatch: operation %q wants %d operands, got %d", op, def.arity, len(operands)))
	}
	if !backend.SameFamily(operands...) {
		return nil, mixedBackendError(op, operands)
	}

	dim := def.minDim
	for _, v := range operands {
		if d := v.Signature().Dim(); d > dim {
			dim = d
		}
	}
	checkParams(def, dim, params)

	fam := operands[0].Family()
	l := fam.Lib()

	var sigs [2]coords.Signature
	elems := make([][]numeric.Elem, len(operands))
	for i, v := range operands {
		sigs[i], elems[i] = promote(l, v, dim)
	}

	e, ok := table[Key{Op: op, Sigs: sigs}]
	if !ok {
		panic(&InternalDispatchError{Op: op, Sigs: sigs[:def.arity]})
	}

	raw := e.kernel(l, elems, params)

	if e.form.out.class != outVector {
		return fam.Wrap(raw[0], len(operands)), nil
	}
	out, err := fam.New(e.out, resultFlavor(def, operands), raw)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CallVector is Call for operations known to produce a vector.
func CallVector(op string, operands []backend.Vector, params []float64) (backend.Vector, error) {
	out, err := Call(op, operands, params)
	if err != nil {
		return nil, err
	}
	return out.(backend.Vector), nil
}

func checkParams(def *opDef, dim int, params []float64) {
	want := def.params
	if want < 0 {
		want = dim * dim
	}
	if len(params) != want {
		panic(fmt.Sprintf("dispatch: operation %q wants %d parameters at %dD, got %d",
			def.name, want, dim, len(params)))
	}
}

// promote pads a vector's signature and elements up to dim. Added axes
// are z and t kinds with zero elements, which is the identity for every
// operation that can trigger promotion.
func promote(l numeric.Lib, v backend.Vector, dim int) (coords.Signature, []numeric.Elem) {
	sig := v.Signature()
	in := v.Elements()
	if sig.Dim() >= dim {
		return sig, in
	}
	out := make([]numeric.Elem, dim)
	copy(out, in)
	for i := len(in); i < dim; i++ {
		out[i] = l.Const(0)
	}
	return sig.Promote(dim), out
}

// resultFlavor propagates momentum flavor through flavor-preserving
// operations: one momentum operand is enough, so momentum + generic is
// momentum regardless of operand order.
func resultFlavor(def *opDef, operands []backend.Vector) coords.Flavor {
	if !def.flavorPreserving {
		return coords.FlavorGeneric
	}
	for _, v := range operands {
		if v.Flavor() == coords.FlavorMomentum {
			return coords.FlavorMomentum
		}
	}
	return coords.FlavorGeneric
}
