package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Kernel is one numeric implementation of an operation. It receives the
// elements of each operand in fixed accessor order (azimuthal pair,
// then longitudinal, then temporal) plus the operation's scalar
// parameters (angles, scale factors, tolerances), and returns the raw
// result elements. Parameters stay plain float64s; kernels lift them
// through lib.Const when they participate in elementwise math.
//
// A kernel may inspect element counts (the operand's dimensionality)
// but never element values. Kernels are stateless and reused verbatim
// by every synthesized dispatch entry.
type Kernel func(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem

// sq returns a*a.
func sq(l numeric.Lib, a numeric.Elem) numeric.Elem {
	return l.Mul(a, a)
}

// mag2 returns the squared spatial magnitude of Cartesian elements
// (x, y) or (x, y, z).
func mag2(l numeric.Lib, elems []numeric.Elem) numeric.Elem {
	m := l.Add(sq(l, elems[0]), sq(l, elems[1]))
	if len(elems) >= 3 {
		m = l.Add(m, sq(l, elems[2]))
	}
	return m
}

// asinh computes the inverse hyperbolic sine. The backend primitive set
// has sinh/cosh/atanh but no asinh, so it is composed here as
// copysign(log(|u| + sqrt(u²+1)), u): the |u| form keeps the negative
// branch (log(u + sqrt(u²+1)) loses precision for large negative u and
// turns u = -Inf into NaN), and copysign restores the odd symmetry.
func asinh(l numeric.Lib, u numeric.Elem) numeric.Elem {
	au := l.Abs(u)
	return l.Copysign(l.Log(l.Add(au, l.Sqrt(l.Add(sq(l, au), l.Const(1))))), u)
}
