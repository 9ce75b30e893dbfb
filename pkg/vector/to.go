package vector

import (
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

// Coordinate-system conversions. Each returns the same point (or
// four-momentum) re-expressed under the named signature; flavor is
// preserved. Growing the dimensionality pads the new axes with zero in
// z and t kinds before converting, so e.g. ToXYZTau of a 3D vector has
// tau equal to its spatial magnitude. Shrinking drops the temporal
// axis first, then the longitudinal one.

func (a Vector) to(az coords.Azimuthal, lon coords.Longitudinal, tmp coords.Temporal) Vector {
	out, err := dispatch.Convert(a.v, sig(az, lon, tmp))
	if err != nil {
		panic(err)
	}
	return wrap(out)
}

func (a Vector) ToXY() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalNone, coords.TemporalNone)
}

func (a Vector) ToRhoPhi() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalNone, coords.TemporalNone)
}

func (a Vector) ToXYZ() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalNone)
}

func (a Vector) ToXYTheta() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalNone)
}

func (a Vector) ToXYEta() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalNone)
}

func (a Vector) ToRhoPhiZ() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalNone)
}

func (a Vector) ToRhoPhiTheta() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalNone)
}

func (a Vector) ToRhoPhiEta() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalNone)
}

func (a Vector) ToXYZT() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalT)
}

func (a Vector) ToXYZTau() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalZ, coords.TemporalTau)
}

func (a Vector) ToXYThetaT() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalT)
}

func (a Vector) ToXYThetaTau() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalTheta, coords.TemporalTau)
}

func (a Vector) ToXYEtaT() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalT)
}

func (a Vector) ToXYEtaTau() Vector {
	return a.to(coords.AzimuthalXY, coords.LongitudinalEta, coords.TemporalTau)
}

func (a Vector) ToRhoPhiZT() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalT)
}

func (a Vector) ToRhoPhiZTau() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalZ, coords.TemporalTau)
}

func (a Vector) ToRhoPhiThetaT() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalT)
}

func (a Vector) ToRhoPhiThetaTau() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalTheta, coords.TemporalTau)
}

func (a Vector) ToRhoPhiEtaT() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalT)
}

func (a Vector) ToRhoPhiEtaTau() Vector {
	return a.to(coords.AzimuthalRhoPhi, coords.LongitudinalEta, coords.TemporalTau)
}

// ToKind converts to the signature named by its hyphenated kind string,
// e.g. "rhophi-eta-tau", as rendered by Kind. Unknown names are an
// error; this is the dynamic entry point used by the CLI.
func (a Vector) ToKind(kind string) (Vector, error) {
	target, err := coords.ParseSignature(kind)
	if err != nil {
		return Vector{}, err
	}
	out, err := dispatch.Convert(a.v, target)
	if err != nil {
		return Vector{}, err
	}
	return wrap(out), nil
}

// Like reshapes to the template's dimensionality, keeping the vector's
// own kinds on the axes it already has; added axes are z and t kinds
// with zero values.
func (a Vector) Like(template Vector) Vector {
	out, err := dispatch.Like(a.v, template.v)
	if err != nil {
		panic(err)
	}
	return wrap(out)
}
