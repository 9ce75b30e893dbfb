// Package jagged is the ragged-array storage backend: each element is a
// [][]float64 whose rows may differ in length. Kernels are applied row
// by row through the dense backend's library, so per-row semantics are
// identical to the dense backend, including length-1 broadcasting
// within a row. A single-row, single-value element broadcasts against
// any row structure.
package jagged

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

type family struct{}

var theFamily backend.Family = family{}

// Family returns the jagged array backend family.
func Family() backend.Family { return theFamily }

func (family) Name() string     { return "jagged" }
func (family) Lib() numeric.Lib { return lib{} }

func (family) New(sig coords.Signature, flavor coords.Flavor, elems []numeric.Elem) (backend.Vector, error) {
	if !sig.Valid() {
		return nil, &backend.RegistrationError{
			Family: "jagged", Signature: sig, Flavor: flavor,
			Reason: "invalid signature",
		}
	}
	if len(elems) != sig.ElementCount() {
		return nil, &backend.RegistrationError{
			Family: "jagged", Signature: sig, Flavor: flavor,
			Reason: fmt.Sprintf("want %d columns, got %d", sig.ElementCount(), len(elems)),
		}
	}
	v := &Vec{sig: sig, flavor: flavor}
	for i, e := range elems {
		rows, ok := e.([][]float64)
		if !ok {
			return nil, &backend.RegistrationError{
				Family: "jagged", Signature: sig, Flavor: flavor,
				Reason: fmt.Sprintf("column %d is %T, not [][]float64", i, e),
			}
		}
		v.cols = append(v.cols, rows)
	}
	return v, nil
}

func (family) Wrap(raw numeric.Elem, operands int) any { return raw }

// Vec is a jagged-array-backed vector value.
type Vec struct {
	sig    coords.Signature
	flavor coords.Flavor
	cols   [][][]float64
}

// New constructs a jagged vector from ragged columns in fixed accessor
// order.
func New(sig coords.Signature, flavor coords.Flavor, cols ...[][]float64) (*Vec, error) {
	boxed := make([]numeric.Elem, len(cols))
	for i, c := range cols {
		boxed[i] = c
	}
	v, err := theFamily.New(sig, flavor, boxed)
	if err != nil {
		return nil, err
	}
	return v.(*Vec), nil
}

func (v *Vec) Family() backend.Family      { return theFamily }
func (v *Vec) Signature() coords.Signature { return v.sig }
func (v *Vec) Flavor() coords.Flavor       { return v.flavor }

func (v *Vec) Elements() []numeric.Elem {
	out := make([]numeric.Elem, len(v.cols))
	for i, c := range v.cols {
		out[i] = c
	}
	return out
}

// Columns returns the raw ragged columns in fixed accessor order.
func (v *Vec) Columns() [][][]float64 { return v.cols }
