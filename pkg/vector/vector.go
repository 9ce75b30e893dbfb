// Package vector is the exported scalar-backed vector API: 2D, 3D and
// Lorentz 4D vectors in any mix of Cartesian, cylindrical, polar-angle,
// pseudorapidity and proper-time coordinates, with every operation
// dispatched over the operands' coordinate kinds.
//
// Values are immutable. Operations never convert eagerly: a polar
// vector stays polar until an operation's canonical form requires
// otherwise, and the conversion happens inside the dispatched kernel.
// Numeric domain violations (zero-length units, lightlike rapidities)
// produce NaN or Inf elements that propagate per IEEE-754; nothing in
// this package raises on them. Use IsLightlike, IsTimelike and
// IsSpacelike when a decision is needed.
package vector

import (
	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/backend/scalar"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

// Vector is a scalar-backed vector of 2, 3 or 4 components. The zero
// Vector is not usable; construct through the package functions.
type Vector struct {
	v *scalar.Vec
}

func wrap(v backend.Vector) Vector { return Vector{v: v.(*scalar.Vec)} }

func newVec(sig coords.Signature, flavor coords.Flavor, elems ...float64) Vector {
	return Vector{v: scalar.MustNew(sig, flavor, elems...)}
}

// Dim returns the dimensionality: 2, 3 or 4.
func (a Vector) Dim() int { return a.v.Signature().Dim() }

// IsMomentum reports whether the vector carries momentum field names.
func (a Vector) IsMomentum() bool { return a.v.Flavor() == coords.FlavorMomentum }

// Kind returns the hyphenated coordinate-kind names, e.g. "rhophi-eta-tau".
func (a Vector) Kind() string { return a.v.Signature().String() }

// FieldNames returns the flavor-appropriate field names in accessor order.
func (a Vector) FieldNames() []string {
	return a.v.Signature().FieldNames(a.v.Flavor())
}

// Floats returns the stored elements in accessor order.
func (a Vector) Floats() []float64 { return a.v.Floats() }

func (a Vector) String() string { return a.v.String() }

// Scalar operands never mix backend families and the table covers the
// full signature product, so dispatch failures here are programmer
// errors; the helpers convert them to panics rather than threading
// impossible error returns through the whole API.
func (a Vector) op1(name string, params ...float64) Vector {
	out, err := dispatch.CallVector(name, []backend.Vector{a.v}, params)
	if err != nil {
		panic(err)
	}
	return wrap(out)
}

func (a Vector) op2(name string, b Vector, params ...float64) Vector {
	out, err := dispatch.CallVector(name, []backend.Vector{a.v, b.v}, params)
	if err != nil {
		panic(err)
	}
	return wrap(out)
}

func (a Vector) num2(name string, b Vector, params ...float64) float64 {
	out, err := dispatch.Call(name, []backend.Vector{a.v, b.v}, params)
	if err != nil {
		panic(err)
	}
	return out.(float64)
}

func (a Vector) pred1(name string, params ...float64) bool {
	out, err := dispatch.Call(name, []backend.Vector{a.v}, params)
	if err != nil {
		panic(err)
	}
	return out.(bool)
}

func (a Vector) pred2(name string, b Vector, params ...float64) bool {
	out, err := dispatch.Call(name, []backend.Vector{a.v, b.v}, params)
	if err != nil {
		panic(err)
	}
	return out.(bool)
}
