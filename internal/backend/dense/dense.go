// Package dense is the array storage backend: each element is a whole
// []float64 column, and one kernel invocation processes the entire
// column. Broadcasting follows the usual array-library rule: columns
// must have equal length, except that a length-1 column broadcasts
// against any length.
package dense

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

type family struct{}

var theFamily backend.Family = family{}

// Family returns the dense array backend family.
func Family() backend.Family { return theFamily }

func (family) Name() string     { return "dense" }
func (family) Lib() numeric.Lib { return lib{} }

func (family) New(sig coords.Signature, flavor coords.Flavor, elems []numeric.Elem) (backend.Vector, error) {
	if !sig.Valid() {
		return nil, &backend.RegistrationError{
			Family: "dense", Signature: sig, Flavor: flavor,
			Reason: "invalid signature",
		}
	}
	if len(elems) != sig.ElementCount() {
		return nil, &backend.RegistrationError{
			Family: "dense", Signature: sig, Flavor: flavor,
			Reason: fmt.Sprintf("want %d columns, got %d", sig.ElementCount(), len(elems)),
		}
	}
	v := &Vec{sig: sig, flavor: flavor}
	n := -1
	for i, e := range elems {
		col, ok := e.([]float64)
		if !ok {
			return nil, &backend.RegistrationError{
				Family: "dense", Signature: sig, Flavor: flavor,
				Reason: fmt.Sprintf("column %d is %T, not []float64", i, e),
			}
		}
		if len(col) != 1 {
			if n >= 0 && len(col) != n {
				return nil, &backend.RegistrationError{
					Family: "dense", Signature: sig, Flavor: flavor,
					Reason: fmt.Sprintf("column %d has length %d, want %d", i, len(col), n),
				}
			}
			n = len(col)
		}
		v.cols = append(v.cols, col)
	}
	return v, nil
}

func (family) Wrap(raw numeric.Elem, operands int) any { return raw }

// Vec is a dense-array-backed vector value: one column per coordinate.
type Vec struct {
	sig    coords.Signature
	flavor coords.Flavor
	cols   [][]float64
}

// New constructs a dense vector from columns in fixed accessor order.
func New(sig coords.Signature, flavor coords.Flavor, cols ...[]float64) (*Vec, error) {
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

// Len returns the broadcast length of the stored columns.
func (v *Vec) Len() int {
	n := 1
	for _, c := range v.cols {
		if len(c) > n {
			n = len(c)
		}
	}
	return n
}

// Columns returns the raw columns in fixed accessor order.
func (v *Vec) Columns() [][]float64 { return v.cols }
