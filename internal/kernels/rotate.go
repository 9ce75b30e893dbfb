package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Rotation kernels. Canonical in Cartesian azimuthal (and Cartesian z
// where the rotation touches the longitudinal axis). Elements the
// rotation does not touch pass through unchanged, so a rotateZ of a 4D
// vector keeps its longitudinal and temporal elements as-is.

// RotateZ rotates the azimuthal pair by the angle parameter.
// Pass-through: everything past (x, y).
func RotateZ(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	a := operands[0]
	c, s := l.Cos(l.Const(params[0])), l.Sin(l.Const(params[0]))
	out := []numeric.Elem{
		l.Sub(l.Mul(c, a[0]), l.Mul(s, a[1])),
		l.Add(l.Mul(s, a[0]), l.Mul(c, a[1])),
	}
	return append(out, a[2:]...)
}

// RotateX rotates (y, z) by the angle parameter. Pass-through: x and
// any temporal element.
func RotateX(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	a := operands[0]
	c, s := l.Cos(l.Const(params[0])), l.Sin(l.Const(params[0]))
	out := []numeric.Elem{
		a[0],
		l.Sub(l.Mul(c, a[1]), l.Mul(s, a[2])),
		l.Add(l.Mul(s, a[1]), l.Mul(c, a[2])),
	}
	return append(out, a[3:]...)
}

// RotateY rotates (z, x) by the angle parameter. Pass-through: y and
// any temporal element.
func RotateY(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	a := operands[0]
	c, s := l.Cos(l.Const(params[0])), l.Sin(l.Const(params[0]))
	out := []numeric.Elem{
		l.Add(l.Mul(c, a[0]), l.Mul(s, a[2])),
		a[1],
		l.Sub(l.Mul(c, a[2]), l.Mul(s, a[0])),
	}
	return append(out, a[3:]...)
}

// RotateAxis rotates the first operand about the second operand (the
// axis, normalized here) by the angle parameter, via the Rodrigues
// formula v' = v cos + (k x v) sin + k (k.v)(1 - cos). A zero axis
// yields NaN elements, which propagate. Pass-through: any temporal
// element of the rotated operand.
func RotateAxis(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	v, axis := operands[0], operands[1]
	c, s := l.Cos(l.Const(params[0])), l.Sin(l.Const(params[0]))

	norm := l.Sqrt(mag2(l, axis[:3]))
	kx, ky, kz := l.Div(axis[0], norm), l.Div(axis[1], norm), l.Div(axis[2], norm)

	kdotv := l.Add(l.Add(l.Mul(kx, v[0]), l.Mul(ky, v[1])), l.Mul(kz, v[2]))
	oneMinusC := l.Sub(l.Const(1), c)

	crossX := l.Sub(l.Mul(ky, v[2]), l.Mul(kz, v[1]))
	crossY := l.Sub(l.Mul(kz, v[0]), l.Mul(kx, v[2]))
	crossZ := l.Sub(l.Mul(kx, v[1]), l.Mul(ky, v[0]))

	comp := func(vi, ki, crossi numeric.Elem) numeric.Elem {
		out := l.Mul(vi, c)
		out = l.Add(out, l.Mul(crossi, s))
		return l.Add(out, l.Mul(ki, l.Mul(kdotv, oneMinusC)))
	}

	out := []numeric.Elem{
		comp(v[0], kx, crossX),
		comp(v[1], ky, crossY),
		comp(v[2], kz, crossZ),
	}
	return append(out, v[3:]...)
}

// EulerOrders lists the twelve ROOT-compatible Euler axis orderings.
var EulerOrders = []string{
	"xzx", "xyx", "yxy", "yzy", "zyz", "zxz",
	"xzy", "xyz", "yxz", "yzx", "zyx", "zxy",
}

// eulerAxes maps an ordering name to its axis indices.
var eulerAxes = map[string][3]int{
	"xzx": {0, 2, 0}, "xyx": {0, 1, 0}, "yxy": {1, 0, 1}, "yzy": {1, 2, 1},
	"zyz": {2, 1, 2}, "zxz": {2, 0, 2}, "xzy": {0, 2, 1}, "xyz": {0, 1, 2},
	"yxz": {1, 0, 2}, "yzx": {1, 2, 0}, "zyx": {2, 1, 0}, "zxy": {2, 0, 1},
}

// RotateEuler returns the matrix-construction kernel for one Euler axis
// ordering: it builds R = R_first(alpha) * R_second(beta) * R_third(gamma)
// from the three angle parameters and delegates to the shared 3x3
// apply. One distinct kernel exists per ordering; all are canonical
// only in Cartesian (x, y, z) layout. Pass-through: any temporal
// element.
func RotateEuler(order string) Kernel {
	axes, ok := eulerAxes[order]
	if !ok {
		panic("kernels: unknown Euler ordering " + order)
	}
	return func(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
		a := operands[0]
		m := axisMat3(l, axes[0], l.Const(params[0]))
		m = mul3(l, m, axisMat3(l, axes[1], l.Const(params[1])))
		m = mul3(l, m, axisMat3(l, axes[2], l.Const(params[2])))
		out := apply3(l, m, a[0], a[1], a[2])
		return append(out, a[3:]...)
	}
}
