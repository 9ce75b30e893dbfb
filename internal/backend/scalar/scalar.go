// Package scalar is the float64 storage backend: one value per element.
// It backs the public pkg/vector API.
package scalar

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

// family is the stateless scalar backend singleton.
type family struct{}

var theFamily backend.Family = family{}

// Family returns the scalar backend family.
func Family() backend.Family { return theFamily }

func (family) Name() string     { return "scalar" }
func (family) Lib() numeric.Lib { return lib{} }

func (family) New(sig coords.Signature, flavor coords.Flavor, elems []numeric.Elem) (backend.Vector, error) {
	if !sig.Valid() {
		return nil, &backend.RegistrationError{
			Family: "scalar", Signature: sig, Flavor: flavor,
			Reason: "invalid signature",
		}
	}
	if len(elems) != sig.ElementCount() {
		return nil, &backend.RegistrationError{
			Family: "scalar", Signature: sig, Flavor: flavor,
			Reason: fmt.Sprintf("want %d elements, got %d", sig.ElementCount(), len(elems)),
		}
	}
	v := &Vec{sig: sig, flavor: flavor}
	for i, e := range elems {
		fv, ok := e.(float64)
		if !ok {
			return nil, &backend.RegistrationError{
				Family: "scalar", Signature: sig, Flavor: flavor,
				Reason: fmt.Sprintf("element %d is %T, not float64", i, e),
			}
		}
		v.elems = append(v.elems, fv)
	}
	return v, nil
}

func (family) Wrap(raw numeric.Elem, operands int) any { return raw }

// Vec is a scalar-backed vector value.
type Vec struct {
	sig    coords.Signature
	flavor coords.Flavor
	elems  []float64
}

// New constructs a scalar vector directly from float64 elements in
// fixed accessor order.
func New(sig coords.Signature, flavor coords.Flavor, elems ...float64) (*Vec, error) {
	boxed := make([]numeric.Elem, len(elems))
	for i, e := range elems {
		boxed[i] = e
	}
	v, err := theFamily.New(sig, flavor, boxed)
	if err != nil {
		return nil, err
	}
	return v.(*Vec), nil
}

// MustNew is like New but panics on error. Use when the signature and
// element count are statically known to agree.
func MustNew(sig coords.Signature, flavor coords.Flavor, elems ...float64) *Vec {
	v, err := New(sig, flavor, elems...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Vec) Family() backend.Family      { return theFamily }
func (v *Vec) Signature() coords.Signature { return v.sig }
func (v *Vec) Flavor() coords.Flavor       { return v.flavor }

func (v *Vec) Elements() []numeric.Elem {
	out := make([]numeric.Elem, len(v.elems))
	for i, e := range v.elems {
		out[i] = e
	}
	return out
}

// Floats returns the raw elements in fixed accessor order.
func (v *Vec) Floats() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)
	return out
}

// String renders the vector with its flavor-appropriate field names,
// e.g. "Vec(x=1, y=2, z=3)".
func (v *Vec) String() string {
	names := v.sig.FieldNames(v.flavor)
	s := "Vec("
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", n, v.elems[i])
	}
	return s + ")"
}
