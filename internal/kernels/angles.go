package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// wrapAngle maps an angle difference into (-pi, pi] without modulo,
// which the backend primitive set does not carry: atan2(sin d, cos d)
// is elementwise and array-safe.
func wrapAngle(l numeric.Lib, d numeric.Elem) numeric.Elem {
	return l.Atan2(l.Sin(d), l.Cos(d))
}

// DeltaPhi computes phi_a - phi_b wrapped into (-pi, pi]. Canonical in
// polar azimuthal layout, where phi is element 1 of each operand.
func DeltaPhi(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	d := l.Sub(operands[0][1], operands[1][1])
	return []numeric.Elem{wrapAngle(l, d)}
}

// DeltaEta computes eta_a - eta_b. Canonical with pseudorapidity
// longitudinal layout, where eta is element 2.
func DeltaEta(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	return []numeric.Elem{l.Sub(operands[0][2], operands[1][2])}
}

// DeltaRapidity computes the difference of longitudinal rapidities.
// Canonical in Cartesian 4D layout.
func DeltaRapidity(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	ya := Rapidity(l, a[2], a[3])
	yb := Rapidity(l, b[2], b[3])
	return []numeric.Elem{l.Sub(ya, yb)}
}

// DeltaR computes sqrt(deltaeta² + deltaphi²). Canonical in polar
// azimuthal + pseudorapidity layout, where both pieces are direct
// element differences.
func DeltaR(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	dphi := wrapAngle(l, l.Sub(operands[0][1], operands[1][1]))
	deta := l.Sub(operands[0][2], operands[1][2])
	return []numeric.Elem{l.Sqrt(l.Add(sq(l, deta), sq(l, dphi)))}
}

// DeltaAngle computes the opening angle between the spatial parts:
// acos(a.b / (|a||b|)). Canonical in Cartesian layout; parallel zero
// vectors yield NaN, which propagates.
func DeltaAngle(l numeric.Lib, operands [][]numeric.Elem, _ []float64) []numeric.Elem {
	a, b := operands[0], operands[1]
	sa, sb := a, b
	if len(sa) > 3 {
		sa = sa[:3]
	}
	if len(sb) > 3 {
		sb = sb[:3]
	}
	dot := l.Mul(sa[0], sb[0])
	dot = l.Add(dot, l.Mul(sa[1], sb[1]))
	if len(sa) >= 3 {
		dot = l.Add(dot, l.Mul(sa[2], sb[2]))
	}
	norm := l.Mul(l.Sqrt(mag2(l, sa)), l.Sqrt(mag2(l, sb)))
	return []numeric.Elem{l.Acos(l.Div(dot, norm))}
}
