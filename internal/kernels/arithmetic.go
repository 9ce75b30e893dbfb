package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Add sums two operands elementwise. Canonical in Cartesian layout for
// every dimensionality: positions are (x, y, z, t), all additive.
func Add(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	out := make([]numeric.Elem, len(a))
	for i := range a {
		out[i] = l.Add(a[i], b[i])
	}
	return out
}

// Subtract computes a - b elementwise in Cartesian layout.
func Subtract(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	out := make([]numeric.Elem, len(a))
	for i := range a {
		out[i] = l.Sub(a[i], b[i])
	}
	return out
}

// Scale multiplies every element, temporal included, by the factor
// parameter.
func Scale(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
	a := operands[0]
	k := l.Const(params[0])
	out := make([]numeric.Elem, len(a))
	for i := range a {
		out[i] = l.Mul(a[i], k)
	}
	return out
}

// Dot is the canonical Cartesian inner product: Euclidean for 2D/3D,
// Minkowski (t1*t2 - x1*x2 - y1*y2 - z1*z2) for 4D.
func Dot(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	spatial := l.Mul(a[0], b[0])
	spatial = l.Add(spatial, l.Mul(a[1], b[1]))
	if len(a) >= 3 {
		spatial = l.Add(spatial, l.Mul(a[2], b[2]))
	}
	if len(a) == 4 {
		return []numeric.Elem{l.Sub(l.Mul(a[3], b[3]), spatial)}
	}
	return []numeric.Elem{spatial}
}

// DotPolar is the closed form for polar azimuthal operands, avoiding
// the detour through Cartesian: rho1*rho2*cos(phi1-phi2), plus z1*z2
// for 3D, under the Minkowski sign for 4D.
func DotPolar(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	spatial := l.Mul(l.Mul(a[0], b[0]), l.Cos(l.Sub(a[1], b[1])))
	if len(a) >= 3 {
		spatial = l.Add(spatial, l.Mul(a[2], b[2]))
	}
	if len(a) == 4 {
		return []numeric.Elem{l.Sub(l.Mul(a[3], b[3]), spatial)}
	}
	return []numeric.Elem{spatial}
}

// Unit scales the operand to unit norm: spatial magnitude for 2D/3D,
// sqrt(|Minkowski dot|) for 4D. A zero vector yields NaN elements,
// which propagate.
func Unit(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a := operands[0]
	var norm numeric.Elem
	if len(a) == 4 {
		m := mag2(l, a[:3])
		norm = l.Sqrt(l.Abs(l.Sub(sq(l, a[3]), m)))
	} else {
		norm = l.Sqrt(mag2(l, a))
	}
	out := make([]numeric.Elem, len(a))
	for i := range a {
		out[i] = l.Div(a[i], norm)
	}
	return out
}

// Cross is the 3D spatial cross product in Cartesian layout. Temporal
// elements of 4D operands are ignored; the result is always spatial.
func Cross(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	return []numeric.Elem{
		l.Sub(l.Mul(a[1], b[2]), l.Mul(a[2], b[1])),
		l.Sub(l.Mul(a[2], b[0]), l.Mul(a[0], b[2])),
		l.Sub(l.Mul(a[0], b[1]), l.Mul(a[1], b[0])),
	}
}
