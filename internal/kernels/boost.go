package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Boost kernels. All are canonical in Cartesian 4D layout (x, y, z, t)
// and all derive a 4x4 transform tensor that is handed to the shared
// apply4 kernel; there are no hand-unrolled boost formulas.
//
// The spatial mixing block uses bgamma = gamma²/(1+gamma) in place of
// (gamma-1)/beta², which is the same quantity without the 0/0 at
// beta = 0.

// boostMatrix builds the 4x4 boost tensor for velocity components
// (bx, by, bz) in units of c.
func boostMatrix(l numeric.Lib, bx, by, bz numeric.Elem) []numeric.Elem {
	b2 := l.Add(l.Add(sq(l, bx), sq(l, by)), sq(l, bz))
	gamma := l.Div(l.Const(1), l.Sqrt(l.Sub(l.Const(1), b2)))
	bgamma := l.Div(sq(l, gamma), l.Add(l.Const(1), gamma))

	one := l.Const(1)

	mix := func(bi, bj numeric.Elem, diag bool) numeric.Elem {
		m := l.Mul(bgamma, l.Mul(bi, bj))
		if diag {
			m = l.Add(one, m)
		}
		return m
	}
	gcol := func(bi numeric.Elem) numeric.Elem { return l.Mul(gamma, bi) }

	return []numeric.Elem{
		mix(bx, bx, true), mix(bx, by, false), mix(bx, bz, false), gcol(bx),
		mix(by, bx, false), mix(by, by, true), mix(by, bz, false), gcol(by),
		mix(bz, bx, false), mix(bz, by, false), mix(bz, bz, true), gcol(bz),
		gcol(bx), gcol(by), gcol(bz), gamma,
	}
}

// BoostBeta3 boosts the first operand by the velocity three-vector
// given as the second operand (Cartesian, in units of c).
func BoostBeta3(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, beta := operands[0], operands[1]
	m := boostMatrix(l, beta[0], beta[1], beta[2])
	return apply4(l, m, a[0], a[1], a[2], a[3])
}

// BoostP4 boosts the first operand into the rest frame direction of
// the four-momentum given as the second operand: beta = p/E componentwise.
func BoostP4(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, p := operands[0], operands[1]
	m := boostMatrix(l,
		l.Div(p[0], p[3]),
		l.Div(p[1], p[3]),
		l.Div(p[2], p[3]),
	)
	return apply4(l, m, a[0], a[1], a[2], a[3])
}

// boostAxis builds the single-axis boost tensor and applies it.
func boostAxis(l numeric.Lib, a []numeric.Elem, axis int, beta float64) []numeric.Elem {
	b := [3]numeric.Elem{l.Const(0), l.Const(0), l.Const(0)}
	b[axis] = l.Const(beta)
	m := boostMatrix(l, b[0], b[1], b[2])
	return apply4(l, m, a[0], a[1], a[2], a[3])
}

// BoostX boosts along x by the beta parameter.
func BoostX(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	return boostAxis(l, operands[0], 0, params[0])
}

// BoostY boosts along y by the beta parameter.
func BoostY(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	return boostAxis(l, operands[0], 1, params[0])
}

// BoostZ boosts along z by the beta parameter.
func BoostZ(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	return boostAxis(l, operands[0], 2, params[0])
}
