package coords

import "fmt"

// Azimuthal identifies the transverse (2D) coordinate representation.
type Azimuthal uint8

const (
	// AzimuthalXY stores Cartesian components (x, y).
	AzimuthalXY Azimuthal = iota
	// AzimuthalRhoPhi stores cylindrical components (rho, phi).
	AzimuthalRhoPhi
)

// Longitudinal identifies the third spatial axis representation.
// LongitudinalNone marks a 2D vector.
type Longitudinal uint8

const (
	LongitudinalNone Longitudinal = iota
	// LongitudinalZ stores the Cartesian z component.
	LongitudinalZ
	// LongitudinalTheta stores the polar angle theta.
	LongitudinalTheta
	// LongitudinalEta stores the pseudorapidity eta.
	LongitudinalEta
)

// Temporal identifies the fourth (Lorentz) axis representation.
// TemporalNone marks a 2D or 3D vector.
type Temporal uint8

const (
	TemporalNone Temporal = iota
	// TemporalT stores coordinate time (or energy, for momentum vectors).
	TemporalT
	// TemporalTau stores proper time (or invariant mass).
	TemporalTau
)

// Flavor distinguishes generic vectors from momentum vectors.
// Flavor changes exposed field names (x vs px, t vs E) on construction
// and read; it never selects a different numeric kernel.
type Flavor uint8

const (
	FlavorGeneric Flavor = iota
	FlavorMomentum
)

// Signature is the per-operand tuple of coordinate kinds. The presence
// of the longitudinal and temporal components encodes dimensionality:
// 2D has neither, 3D has longitudinal only, 4D has both.
//
// Signature is a comparable value type so it can key the dispatch table
// directly.
type Signature struct {
	Azimuthal    Azimuthal
	Longitudinal Longitudinal
	Temporal     Temporal
}

// Dim returns the vector dimensionality encoded by the signature (2, 3 or 4).
func (s Signature) Dim() int {
	switch {
	case s.Temporal != TemporalNone:
		return 4
	case s.Longitudinal != LongitudinalNone:
		return 3
	default:
		return 2
	}
}

// Valid reports whether the signature is structurally consistent:
// a temporal kind requires a longitudinal kind.
func (s Signature) Valid() bool {
	if s.Temporal != TemporalNone && s.Longitudinal == LongitudinalNone {
		return false
	}
	return true
}

// ElementCount returns the number of raw elements a value of this
// signature owns (2, 3 or 4), in fixed accessor order: azimuthal pair,
// then longitudinal, then temporal.
func (s Signature) ElementCount() int {
	return s.Dim()
}

func (a Azimuthal) String() string {
	switch a {
	case AzimuthalXY:
		return "xy"
	case AzimuthalRhoPhi:
		return "rhophi"
	default:
		return fmt.Sprintf("azimuthal(%d)", uint8(a))
	}
}

func (l Longitudinal) String() string {
	switch l {
	case LongitudinalNone:
		return ""
	case LongitudinalZ:
		return "z"
	case LongitudinalTheta:
		return "theta"
	case LongitudinalEta:
		return "eta"
	default:
		return fmt.Sprintf("longitudinal(%d)", uint8(l))
	}
}

func (t Temporal) String() string {
	switch t {
	case TemporalNone:
		return ""
	case TemporalT:
		return "t"
	case TemporalTau:
		return "tau"
	default:
		return fmt.Sprintf("temporal(%d)", uint8(t))
	}
}

func (f Flavor) String() string {
	if f == FlavorMomentum {
		return "momentum"
	}
	return "generic"
}

// String renders a signature as the hyphenated kind names, e.g. "xy",
// "rhophi-eta", "xy-z-t". The rendering is stable and used in dispatch
// error messages and the table dump.
func (s Signature) String() string {
	out := s.Azimuthal.String()
	if s.Longitudinal != LongitudinalNone {
		out += "-" + s.Longitudinal.String()
	}
	if s.Temporal != TemporalNone {
		out += "-" + s.Temporal.String()
	}
	return out
}

// Preference orders for the dispatch table builder. Candidate canonical
// forms are tried in exactly this order; the first candidate that
// resolves fills a table slot and later candidates never overwrite it.
var (
	AzimuthalKinds    = []Azimuthal{AzimuthalXY, AzimuthalRhoPhi}
	LongitudinalKinds = []Longitudinal{LongitudinalZ, LongitudinalTheta, LongitudinalEta}
	TemporalKinds     = []Temporal{TemporalT, TemporalTau}
)

// Signatures enumerates every valid signature of the given dimensionality,
// in preference order. It returns nil for dimensions outside 2..4.
func Signatures(dim int) []Signature {
	var sigs []Signature
	switch dim {
	case 2:
		for _, az := range AzimuthalKinds {
			sigs = append(sigs, Signature{Azimuthal: az})
		}
	case 3:
		for _, az := range AzimuthalKinds {
			for _, lon := range LongitudinalKinds {
				sigs = append(sigs, Signature{Azimuthal: az, Longitudinal: lon})
			}
		}
	case 4:
		for _, az := range AzimuthalKinds {
			for _, lon := range LongitudinalKinds {
				for _, tmp := range TemporalKinds {
					sigs = append(sigs, Signature{Azimuthal: az, Longitudinal: lon, Temporal: tmp})
				}
			}
		}
	}
	return sigs
}

// AllSignatures enumerates every valid signature across all
// dimensionalities (2 + 6 + 12 = 20 signatures).
func AllSignatures() []Signature {
	var sigs []Signature
	for dim := 2; dim <= 4; dim++ {
		sigs = append(sigs, Signatures(dim)...)
	}
	return sigs
}

// Promote pads a signature up to the given dimensionality using identity
// defaults: a missing longitudinal axis becomes z, a missing temporal
// axis becomes t. The corresponding elements are padded with zeros by
// the dispatcher. Promote never reduces dimensionality.
func (s Signature) Promote(dim int) Signature {
	if dim >= 3 && s.Longitudinal == LongitudinalNone {
		s.Longitudinal = LongitudinalZ
	}
	if dim >= 4 && s.Temporal == TemporalNone {
		s.Temporal = TemporalT
	}
	return s
}

// FieldNames returns the exposed field names for the signature under the
// given flavor, in fixed accessor order.
func (s Signature) FieldNames(f Flavor) []string {
	names := make([]string, 0, 4)
	switch s.Azimuthal {
	case AzimuthalXY:
		if f == FlavorMomentum {
			names = append(names, "px", "py")
		} else {
			names = append(names, "x", "y")
		}
	case AzimuthalRhoPhi:
		if f == FlavorMomentum {
			names = append(names, "pt", "phi")
		} else {
			names = append(names, "rho", "phi")
		}
	}
	switch s.Longitudinal {
	case LongitudinalZ:
		if f == FlavorMomentum {
			names = append(names, "pz")
		} else {
			names = append(names, "z")
		}
	case LongitudinalTheta:
		names = append(names, "theta")
	case LongitudinalEta:
		names = append(names, "eta")
	}
	switch s.Temporal {
	case TemporalT:
		if f == FlavorMomentum {
			names = append(names, "E")
		} else {
			names = append(names, "t")
		}
	case TemporalTau:
		if f == FlavorMomentum {
			names = append(names, "M")
		} else {
			names = append(names, "tau")
		}
	}
	return names
}
