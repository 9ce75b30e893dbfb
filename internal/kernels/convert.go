package kernels

import "github.com/fourvec/fourvec/internal/numeric"

// Conversion kernels between coordinate kinds. Each is pure and
// elementwise; chains through the Cartesian forms agree with any direct
// conversion within floating-point tolerance, which the tests pin down.
//
// Numeric contracts (fixed, do not "improve"):
//
//	rho   = sqrt(x² + y²)                >= 0
//	phi   = atan2(y, x)                  in (-pi, pi]
//	eta   = asinh(z / rho)               -> +-Inf as rho -> 0, propagates
//	theta = acos(z / sqrt(rho² + z²))    NaN at the origin, propagates
//	tau   = sqrt(|t² - x² - y² - z²|)    absolute value by convention
//
// tau carries no sign; whether the interval is spacelike or timelike is
// recovered through the predicates, never through a signed tau.

// RhoFromXY converts Cartesian azimuthal elements to rho.
func RhoFromXY(l numeric.Lib, x, y numeric.Elem) numeric.Elem {
	return l.Sqrt(l.Add(sq(l, x), sq(l, y)))
}

// PhiFromXY converts Cartesian azimuthal elements to phi in (-pi, pi].
func PhiFromXY(l numeric.Lib, x, y numeric.Elem) numeric.Elem {
	return l.Atan2(y, x)
}

// XFromRhoPhi converts polar azimuthal elements to x.
func XFromRhoPhi(l numeric.Lib, rho, phi numeric.Elem) numeric.Elem {
	return l.Mul(rho, l.Cos(phi))
}

// YFromRhoPhi converts polar azimuthal elements to y.
func YFromRhoPhi(l numeric.Lib, rho, phi numeric.Elem) numeric.Elem {
	return l.Mul(rho, l.Sin(phi))
}

// ZFromTheta converts a polar angle to z, given the transverse rho.
func ZFromTheta(l numeric.Lib, rho, theta numeric.Elem) numeric.Elem {
	return l.Div(rho, l.Tan(theta))
}

// ZFromEta converts a pseudorapidity to z, given the transverse rho.
func ZFromEta(l numeric.Lib, rho, eta numeric.Elem) numeric.Elem {
	return l.Mul(rho, l.Sinh(eta))
}

// ThetaFromZ converts z to the polar angle, given the transverse rho.
// At the origin this is acos(0/0) = NaN, which propagates.
func ThetaFromZ(l numeric.Lib, rho, z numeric.Elem) numeric.Elem {
	r := l.Sqrt(l.Add(sq(l, rho), sq(l, z)))
	return l.Acos(l.Div(z, r))
}

// EtaFromZ converts z to pseudorapidity, given the transverse rho.
// As rho -> 0 this tends to +-Inf, which propagates.
func EtaFromZ(l numeric.Lib, rho, z numeric.Elem) numeric.Elem {
	return asinh(l, l.Div(z, rho))
}

// ThetaFromEta converts pseudorapidity to the polar angle:
// theta = 2*atan(exp(-eta)).
func ThetaFromEta(l numeric.Lib, eta numeric.Elem) numeric.Elem {
	return l.Mul(l.Const(2), l.Atan(l.Exp(l.Neg(eta))))
}

// EtaFromTheta converts the polar angle to pseudorapidity:
// eta = -log(tan(theta/2)).
func EtaFromTheta(l numeric.Lib, theta numeric.Elem) numeric.Elem {
	return l.Neg(l.Log(l.Tan(l.Div(theta, l.Const(2)))))
}

// TauFromT converts coordinate time to proper time, given the squared
// spatial magnitude: tau = sqrt(|t² - mag²|). The absolute value is by
// convention; the sign of the interval is recoverable through the
// spacelike/timelike predicates.
func TauFromT(l numeric.Lib, mag2, t numeric.Elem) numeric.Elem {
	return l.Sqrt(l.Abs(l.Sub(sq(l, t), mag2)))
}

// TFromTau converts proper time to coordinate time, given the squared
// spatial magnitude: t = sqrt(tau² + mag²). Proper time is stored
// unsigned, so the reconstructed t is always the forward branch.
func TFromTau(l numeric.Lib, mag2, tau numeric.Elem) numeric.Elem {
	return l.Sqrt(l.Add(sq(l, tau), mag2))
}

// Rapidity computes the longitudinal rapidity 0.5*log((t+z)/(t-z))
// from Cartesian 4D elements. Lightlike values produce +-Inf.
func Rapidity(l numeric.Lib, z, t numeric.Elem) numeric.Elem {
	return l.Mul(l.Const(0.5), l.Log(l.Div(l.Add(t, z), l.Sub(t, z))))
}
