package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Matrix application kernels. Every rotation and boost kernel in this
// package constructs its matrix elementwise and delegates to one of
// the shared apply functions below, rather than hand-unrolling its own
// formula. Matrices are row-major over the component order (x, y, z, t).

// apply2(m, x, y) computes m * (x, y).
func apply2(l numeric.Lib, m []numeric.Elem, x, y numeric.Elem) []numeric.Elem {
	return []numeric.Elem{
		l.Add(l.Mul(m[0], x), l.Mul(m[1], y)),
		l.Add(l.Mul(m[2], x), l.Mul(m[3], y)),
	}
}

// apply3(m, x, y, z) computes m * (x, y, z) for a row-major 3x3 matrix.
func apply3(l numeric.Lib, m []numeric.Elem, x, y, z numeric.Elem) []numeric.Elem {
	row := func(i int) numeric.Elem {
		return l.Add(l.Add(l.Mul(m[3*i], x), l.Mul(m[3*i+1], y)), l.Mul(m[3*i+2], z))
	}
	return []numeric.Elem{row(0), row(1), row(2)}
}

// apply4(m, x, y, z, t) computes m * (x, y, z, t) for a row-major 4x4
// matrix. This is the single shared kernel every boost delegates to.
func apply4(l numeric.Lib, m []numeric.Elem, x, y, z, t numeric.Elem) []numeric.Elem {
	row := func(i int) numeric.Elem {
		s := l.Add(l.Mul(m[4*i], x), l.Mul(m[4*i+1], y))
		s = l.Add(s, l.Mul(m[4*i+2], z))
		return l.Add(s, l.Mul(m[4*i+3], t))
	}
	return []numeric.Elem{row(0), row(1), row(2), row(3)}
}

// mul3 multiplies two row-major 3x3 matrices.
func mul3(l numeric.Lib, a, b []numeric.Elem) []numeric.Elem {
	out := make([]numeric.Elem, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := l.Mul(a[3*i], b[j])
			s = l.Add(s, l.Mul(a[3*i+1], b[3+j]))
			s = l.Add(s, l.Mul(a[3*i+2], b[6+j]))
			out[3*i+j] = s
		}
	}
	return out
}

// axisMat3 builds the right-handed rotation matrix about axis 0 (x),
// 1 (y) or 2 (z) by the given angle element.
func axisMat3(l numeric.Lib, axis int, angle numeric.Elem) []numeric.Elem {
	c, s := l.Cos(angle), l.Sin(angle)
	one, zero := l.Const(1), l.Const(0)
	switch axis {
	case 0:
		return []numeric.Elem{
			one, zero, zero,
			zero, c, l.Neg(s),
			zero, s, c,
		}
	case 1:
		return []numeric.Elem{
			c, zero, s,
			zero, one, zero,
			l.Neg(s), zero, c,
		}
	default:
		return []numeric.Elem{
			c, l.Neg(s), zero,
			s, c, zero,
			zero, zero, one,
		}
	}
}

// TransformApply applies a caller-supplied matrix to the operand. The
// parameters are the row-major matrix entries: 4 for a 2D operand, 9
// for 3D, 16 for 4D. Canonical in full Cartesian layout.
func TransformApply(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	a := operands[0]
	m := make([]numeric.Elem, len(params))
	for i, p := range params {
		m[i] = l.Const(p)
	}
	switch len(a) {
	case 2:
		return apply2(l, m, a[0], a[1])
	case 3:
		return apply3(l, m, a[0], a[1], a[2])
	default:
		return apply4(l, m, a[0], a[1], a[2], a[3])
	}
}
