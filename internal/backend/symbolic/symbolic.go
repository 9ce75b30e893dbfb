// Package symbolic is the expression storage backend: each element is
// an expression tree instead of a number. Kernels run over it exactly
// as over the numeric backends and produce result expressions, which
// render to strings via Expr.String. No simplification is performed;
// the trees record the computation verbatim.
package symbolic

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

type family struct{}

var theFamily backend.Family = family{}

// Family returns the symbolic backend family.
func Family() backend.Family { return theFamily }

func (family) Name() string     { return "symbolic" }
func (family) Lib() numeric.Lib { return lib{} }

func (family) New(sig coords.Signature, flavor coords.Flavor, elems []numeric.Elem) (backend.Vector, error) {
	if !sig.Valid() {
		return nil, &backend.RegistrationError{
			Family: "symbolic", Signature: sig, Flavor: flavor,
			Reason: "invalid signature",
		}
	}
	if len(elems) != sig.ElementCount() {
		return nil, &backend.RegistrationError{
			Family: "symbolic", Signature: sig, Flavor: flavor,
			Reason: fmt.Sprintf("want %d expressions, got %d", sig.ElementCount(), len(elems)),
		}
	}
	v := &Vec{sig: sig, flavor: flavor}
	for i, e := range elems {
		ex, ok := e.(*Expr)
		if !ok {
			return nil, &backend.RegistrationError{
				Family: "symbolic", Signature: sig, Flavor: flavor,
				Reason: fmt.Sprintf("element %d is %T, not *Expr", i, e),
			}
		}
		v.elems = append(v.elems, ex)
	}
	return v, nil
}

func (family) Wrap(raw numeric.Elem, operands int) any { return raw }

// Vec is a symbolic vector value: one expression per coordinate.
type Vec struct {
	sig    coords.Signature
	flavor coords.Flavor
	elems  []*Expr
}

// New constructs a symbolic vector whose elements are the signature's
// own field names as free symbols, e.g. New(sig, flavor) for xy-z gives
// (x, y, z).
func New(sig coords.Signature, flavor coords.Flavor) (*Vec, error) {
	names := sig.FieldNames(flavor)
	elems := make([]numeric.Elem, len(names))
	for i, n := range names {
		elems[i] = Symbol(n)
	}
	v, err := theFamily.New(sig, flavor, elems)
	if err != nil {
		return nil, err
	}
	return v.(*Vec), nil
}

// FromExprs constructs a symbolic vector from explicit expressions in
// fixed accessor order.
func FromExprs(sig coords.Signature, flavor coords.Flavor, elems ...*Expr) (*Vec, error) {
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

// Exprs returns the element expressions in fixed accessor order.
func (v *Vec) Exprs() []*Expr { return v.elems }

// String renders the vector as field=expression pairs.
func (v *Vec) String() string {
	names := v.sig.FieldNames(v.flavor)
	s := "Vec("
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%s", n, v.elems[i])
	}
	return s + ")"
}
