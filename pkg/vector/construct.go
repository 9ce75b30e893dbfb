package vector

import (
	"github.com/fourvec/fourvec/internal/backend/scalar"
	"github.com/fourvec/fourvec/internal/coords"
)

func sig(az coords.Azimuthal, lon coords.Longitudinal, tmp coords.Temporal) coords.Signature {
	return coords.Signature{Azimuthal: az, Longitudinal: lon, Temporal: tmp}
}

// Generic constructors, one per coordinate signature. Arguments follow
// the fixed accessor order: azimuthal pair, longitudinal, temporal.

func XY(x, y float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalNone, coords.TemporalNone), coords.FlavorGeneric, x, y)
}

func RhoPhi(rho, phi float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalNone, coords.TemporalNone), coords.FlavorGeneric, rho, phi)
}

func XYZ(x, y, z float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalNone), coords.FlavorGeneric, x, y, z)
}

func XYTheta(x, y, theta float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalNone), coords.FlavorGeneric, x, y, theta)
}

func XYEta(x, y, eta float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalNone), coords.FlavorGeneric, x, y, eta)
}

func RhoPhiZ(rho, phi, z float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalNone), coords.FlavorGeneric, rho, phi, z)
}

func RhoPhiTheta(rho, phi, theta float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalNone), coords.FlavorGeneric, rho, phi, theta)
}

func RhoPhiEta(rho, phi, eta float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalNone), coords.FlavorGeneric, rho, phi, eta)
}

func XYZT(x, y, z, t float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalT), coords.FlavorGeneric, x, y, z, t)
}

func XYZTau(x, y, z, tau float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalTau), coords.FlavorGeneric, x, y, z, tau)
}

func XYThetaT(x, y, theta, t float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalT), coords.FlavorGeneric, x, y, theta, t)
}

func XYThetaTau(x, y, theta, tau float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalTau), coords.FlavorGeneric, x, y, theta, tau)
}

func XYEtaT(x, y, eta, t float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalT), coords.FlavorGeneric, x, y, eta, t)
}

func XYEtaTau(x, y, eta, tau float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalTau), coords.FlavorGeneric, x, y, eta, tau)
}

func RhoPhiZT(rho, phi, z, t float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalT), coords.FlavorGeneric, rho, phi, z, t)
}

func RhoPhiZTau(rho, phi, z, tau float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalTau), coords.FlavorGeneric, rho, phi, z, tau)
}

func RhoPhiThetaT(rho, phi, theta, t float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalT), coords.FlavorGeneric, rho, phi, theta, t)
}

func RhoPhiThetaTau(rho, phi, theta, tau float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalTau), coords.FlavorGeneric, rho, phi, theta, tau)
}

func RhoPhiEtaT(rho, phi, eta, t float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalT), coords.FlavorGeneric, rho, phi, eta, t)
}

func RhoPhiEtaTau(rho, phi, eta, tau float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalTau), coords.FlavorGeneric, rho, phi, eta, tau)
}

// Momentum constructors: the same signatures under momentum field names
// (px/py for x/y, pt for rho, pz for z, E for t, M for tau). Only the
// spellings that occur in practice get a named constructor; any other
// combination is reachable through FromFields.

func PxPy(px, py float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalNone, coords.TemporalNone), coords.FlavorMomentum, px, py)
}

func PtPhi(pt, phi float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalNone, coords.TemporalNone), coords.FlavorMomentum, pt, phi)
}

func PxPyPz(px, py, pz float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalNone), coords.FlavorMomentum, px, py, pz)
}

func PtPhiPz(pt, phi, pz float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalNone), coords.FlavorMomentum, pt, phi, pz)
}

func PtPhiTheta(pt, phi, theta float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalNone), coords.FlavorMomentum, pt, phi, theta)
}

func PtPhiEta(pt, phi, eta float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalNone), coords.FlavorMomentum, pt, phi, eta)
}

func PxPyPzE(px, py, pz, e float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalT), coords.FlavorMomentum, px, py, pz, e)
}

func PxPyPzM(px, py, pz, m float64) Vector {
	return newVec(sig(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalTau), coords.FlavorMomentum, px, py, pz, m)
}

func PtPhiEtaE(pt, phi, eta, e float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalT), coords.FlavorMomentum, pt, phi, eta, e)
}

func PtPhiEtaM(pt, phi, eta, m float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalTau), coords.FlavorMomentum, pt, phi, eta, m)
}

func PtPhiZE(pt, phi, pz, e float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalT), coords.FlavorMomentum, pt, phi, pz, e)
}

func PtPhiZM(pt, phi, pz, m float64) Vector {
	return newVec(sig(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalTau), coords.FlavorMomentum, pt, phi, pz, m)
}

// FromFields constructs a vector from named components, classifying the
// coordinate kinds through the field registry. Momentum aliases (px,
// pt, E, mass, ...) select momentum flavor. Unknown names, alias
// collisions (x alongside px) and incomplete axes come back as a
// *coords.ConfigurationError naming the offending fields.
func FromFields(fields map[string]float64) (Vector, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	ordered, s, flavor, err := coords.FieldOrder(names)
	if err != nil {
		return Vector{}, err
	}
	elems := make([]float64, len(ordered))
	for i, name := range ordered {
		elems[i] = fields[name]
	}
	v, err := scalar.New(s, flavor, elems...)
	if err != nil {
		return Vector{}, err
	}
	return Vector{v: v}, nil
}
