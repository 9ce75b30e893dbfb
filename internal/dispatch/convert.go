package dispatch

import (
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/kernels"
	"github.com/fourvec/fourvec/internal/numeric"
)

// conversionCost counts the axis conversions required to take an
// operand of the given signature to the requirement. "Any" axes and
// axes beyond the dimensionality cost nothing.
func conversionCost(sig coords.Signature, req axisReq, dim int) int {
	cost := 0
	if !req.azAny && req.az != sig.Azimuthal {
		cost++
	}
	if dim >= 3 && !req.lonAny && req.lon != sig.Longitudinal {
		cost++
	}
	if dim >= 4 && !req.tmpAny && req.tmp != sig.Temporal {
		cost++
	}
	return cost
}

// convertOperand rewrites operand elements from their stored kinds to
// the requirement's kinds, in accessor order. Axes the requirement
// leaves "any" pass through untouched.
//
// Intermediate quantities are always derived from the original
// elements: longitudinal conversions take rho from the stored azimuthal
// pair, and temporal conversions take the squared spatial magnitude
// from the stored azimuthal and longitudinal elements. Conversions on
// different axes therefore never observe each other's rounding.
func convertOperand(l numeric.Lib, sig coords.Signature, req axisReq, in []numeric.Elem) []numeric.Elem {
	out := make([]numeric.Elem, len(in))
	copy(out, in)

	rho := func() numeric.Elem {
		if sig.Azimuthal == coords.AzimuthalXY {
			return kernels.RhoFromXY(l, in[0], in[1])
		}
		return in[0]
	}
	z := func() numeric.Elem {
		switch sig.Longitudinal {
		case coords.LongitudinalTheta:
			return kernels.ZFromTheta(l, rho(), in[2])
		case coords.LongitudinalEta:
			return kernels.ZFromEta(l, rho(), in[2])
		default:
			return in[2]
		}
	}

	if !req.azAny && req.az != sig.Azimuthal {
		if req.az == coords.AzimuthalXY {
			out[0] = kernels.XFromRhoPhi(l, in[0], in[1])
			out[1] = kernels.YFromRhoPhi(l, in[0], in[1])
		} else {
			out[0] = kernels.RhoFromXY(l, in[0], in[1])
			out[1] = kernels.PhiFromXY(l, in[0], in[1])
		}
	}

	if len(in) >= 3 && !req.lonAny && req.lon != sig.Longitudinal {
		switch req.lon {
		case coords.LongitudinalZ:
			out[2] = z()
		case coords.LongitudinalTheta:
			if sig.Longitudinal == coords.LongitudinalEta {
				out[2] = kernels.ThetaFromEta(l, in[2])
			} else {
				out[2] = kernels.ThetaFromZ(l, rho(), in[2])
			}
		case coords.LongitudinalEta:
			if sig.Longitudinal == coords.LongitudinalTheta {
				out[2] = kernels.EtaFromTheta(l, in[2])
			} else {
				out[2] = kernels.EtaFromZ(l, rho(), in[2])
			}
		}
	}

	if len(in) == 4 && !req.tmpAny && req.tmp != sig.Temporal {
		r, zz := rho(), z()
		m2 := l.Add(l.Mul(r, r), l.Mul(zz, zz))
		if req.tmp == coords.TemporalTau {
			out[3] = kernels.TauFromT(l, m2, in[3])
		} else {
			out[3] = kernels.TFromTau(l, m2, in[3])
		}
	}

	return out
}
