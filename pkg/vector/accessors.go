package vector

import (
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

// Component accessors. Each reads the stored element when the vector
// already carries the kind, and converts otherwise. Accessors for axes
// the vector does not have apply the promotion rule first (z = 0,
// t = 0), so Theta of a 2D vector is pi/2 and Tau of a 3D vector is its
// spatial magnitude; they never panic.

// axis reads element idx after promoting to dim and forcing the
// requested kind onto the axis being read; None leaves an axis at its
// stored (or promoted) kind.
func (a Vector) axis(dim, idx int, lon coords.Longitudinal, tmp coords.Temporal) float64 {
	target := a.v.Signature().Promote(dim)
	if lon != coords.LongitudinalNone {
		target.Longitudinal = lon
	}
	if tmp != coords.TemporalNone {
		target.Temporal = tmp
	}
	out, err := dispatch.Convert(a.v, target)
	if err != nil {
		panic(err)
	}
	return out.Elements()[idx].(float64)
}

func (a Vector) azAxis(idx int, az coords.Azimuthal) float64 {
	target := a.v.Signature()
	target.Azimuthal = az
	out, err := dispatch.Convert(a.v, target)
	if err != nil {
		panic(err)
	}
	return out.Elements()[idx].(float64)
}

// X returns the Cartesian azimuthal x component.
func (a Vector) X() float64 { return a.azAxis(0, coords.AzimuthalXY) }

// Y returns the Cartesian azimuthal y component.
func (a Vector) Y() float64 { return a.azAxis(1, coords.AzimuthalXY) }

// Rho returns the transverse magnitude sqrt(x² + y²).
func (a Vector) Rho() float64 { return a.azAxis(0, coords.AzimuthalRhoPhi) }

// Phi returns the azimuthal angle in (-pi, pi].
func (a Vector) Phi() float64 { return a.azAxis(1, coords.AzimuthalRhoPhi) }

// Z returns the longitudinal Cartesian component (0 for 2D vectors).
func (a Vector) Z() float64 {
	return a.axis(3, 2, coords.LongitudinalZ, coords.TemporalNone)
}

// Theta returns the polar angle (NaN at the origin).
func (a Vector) Theta() float64 {
	return a.axis(3, 2, coords.LongitudinalTheta, coords.TemporalNone)
}

// Eta returns the pseudorapidity (+-Inf on the beam axis).
func (a Vector) Eta() float64 {
	return a.axis(3, 2, coords.LongitudinalEta, coords.TemporalNone)
}

// T returns the temporal component (0 for 2D and 3D vectors).
func (a Vector) T() float64 {
	return a.axis(4, 3, coords.LongitudinalNone, coords.TemporalT)
}

// Tau returns the proper time sqrt(|t² - x² - y² - z²|).
func (a Vector) Tau() float64 {
	return a.axis(4, 3, coords.LongitudinalNone, coords.TemporalTau)
}

// Momentum aliases over the same elements.

// Px is X under momentum naming.
func (a Vector) Px() float64 { return a.X() }

// Py is Y under momentum naming.
func (a Vector) Py() float64 { return a.Y() }

// Pt is the transverse momentum, Rho under momentum naming.
func (a Vector) Pt() float64 { return a.Rho() }

// Pz is the longitudinal momentum, Z under momentum naming.
func (a Vector) Pz() float64 { return a.Z() }

// E is the energy, T under momentum naming.
func (a Vector) E() float64 { return a.T() }

// M is the invariant mass, Tau under momentum naming.
func (a Vector) M() float64 { return a.Tau() }
