package numeric

// Elem is one backend-owned element: a float64 for the scalar backend,
// a column for the array backends, an expression node for the symbolic
// backend. Kernels treat it as opaque.
type Elem = any

// Lib is the elementwise primitive set a backend supplies to the
// kernels. Implementations must be pure: no shared mutable state, no
// per-element control flow visible to callers, NaN/Inf propagated per
// IEEE-754 rather than raised.
//
// Boolean results (Eq, Lt, IsClose, ...) are still Elems: a bool for
// the scalar backend, a bool column for array backends.
type Lib interface {
	// Const lifts a Go float64 into a backend element.
	Const(v float64) Elem
	// Pi returns the backend's representation of pi.
	Pi() Elem

	// Arithmetic.
	Add(a, b Elem) Elem
	Sub(a, b Elem) Elem
	Mul(a, b Elem) Elem
	Div(a, b Elem) Elem
	Neg(a Elem) Elem

	// Elementwise math.
	Sqrt(a Elem) Elem
	Exp(a Elem) Elem
	Log(a Elem) Elem
	Sin(a Elem) Elem
	Cos(a Elem) Elem
	Tan(a Elem) Elem
	Asin(a Elem) Elem
	Acos(a Elem) Elem
	Atan(a Elem) Elem
	Atan2(y, x Elem) Elem
	Sinh(a Elem) Elem
	Cosh(a Elem) Elem
	Atanh(a Elem) Elem
	Abs(a Elem) Elem
	Sign(a Elem) Elem
	Copysign(mag, sgn Elem) Elem
	Maximum(a, b Elem) Elem

	// NanToNum replaces NaN with the given value, leaving infinities alone.
	NanToNum(a Elem, nan float64) Elem

	// Comparisons, returning boolean elements.
	Eq(a, b Elem) Elem
	Ne(a, b Elem) Elem
	Lt(a, b Elem) Elem
	Gt(a, b Elem) Elem
	IsClose(a, b Elem, rtol, atol float64) Elem

	// Boolean combinators over boolean elements.
	And(a, b Elem) Elem
	Or(a, b Elem) Elem
	Not(a Elem) Elem
}
