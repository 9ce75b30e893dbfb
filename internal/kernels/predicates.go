package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Comparison and interval predicates. Equality kernels compare
// positionally, so they serve both the all-Cartesian canonical form and
// the same-temporal-kind special form: when both operands share a
// temporal kind the temporal elements are compared directly, and
// mixed-kind pairs are routed through the t conversion by the table
// builder (comparing tau reached along different paths is not
// numerically equivalent).

// Equal reports elementwise exact equality, folded with AND.
func Equal(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	out := l.Eq(a[0], b[0])
	for i := 1; i < len(a); i++ {
		out = l.And(out, l.Eq(a[i], b[i]))
	}
	return []numeric.Elem{out}
}

// NotEqual reports elementwise inequality, folded with OR.
func NotEqual(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	out := l.Ne(a[0], b[0])
	for i := 1; i < len(a); i++ {
		out = l.Or(out, l.Ne(a[i], b[i]))
	}
	return []numeric.Elem{out}
}

// IsCloseVec reports elementwise closeness under (rtol, atol)
// parameters, folded with AND.
func IsCloseVec(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	rtol, atol := params[0], params[1]
	a, b := operands[0], operands[1]
	out := l.IsClose(a[0], b[0], rtol, atol)
	for i := 1; i < len(a); i++ {
		out = l.And(out, l.IsClose(a[i], b[i], rtol, atol))
	}
	return []numeric.Elem{out}
}

// interval computes t² - (x² + y² + z²) from Cartesian 4D elements.
func interval(l numeric.Lib, a []numeric.Elem) numeric.Elem {
	return l.Sub(sq(l, a[3]), mag2(l, a[:3]))
}

// IsLightlike reports |t² - mag²| within the tolerance parameter.
// NaN intervals compare false, matching elementwise IEEE semantics.
func IsLightlike(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	iv := interval(l, operands[0])
	return []numeric.Elem{l.IsClose(iv, l.Const(0), 0, params[0])}
}

// IsTimelike reports t² > mag².
func IsTimelike(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	iv := interval(l, operands[0])
	return []numeric.Elem{l.Gt(iv, l.Const(0))}
}

// IsSpacelike reports t² < mag².
func IsSpacelike(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	iv := interval(l, operands[0])
	return []numeric.Elem{l.Lt(iv, l.Const(0))}
}
