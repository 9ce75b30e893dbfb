package coords

import (
	"sort"
)

// slot identifies one logical coordinate, independent of spelling.
type slot uint8

const (
	slotX slot = iota
	slotY
	slotRho
	slotPhi
	slotZ
	slotTheta
	slotEta
	slotT
	slotTau
	slotCount
)

// alias maps one accepted field spelling to its coordinate slot.
// Momentum spellings set momentum=true, which decides the Flavor.
type alias struct {
	name     string
	slot     slot
	momentum bool
}

// aliasTable is the fixed, priority-ordered set of accepted field names.
// Scan order is deterministic and must not be reordered: the generic
// spelling of each axis is checked before its momentum synonyms, and
// within the temporal axis t/E/e/energy precede tau/M/m/mass.
var aliasTable = []alias{
	{"x", slotX, false},
	{"px", slotX, true},
	{"y", slotY, false},
	{"py", slotY, true},
	{"rho", slotRho, false},
	{"pt", slotRho, true},
	{"phi", slotPhi, false},
	{"z", slotZ, false},
	{"pz", slotZ, true},
	{"theta", slotTheta, false},
	{"eta", slotEta, false},
	{"t", slotT, false},
	{"E", slotT, true},
	{"e", slotT, true},
	{"energy", slotT, true},
	{"tau", slotTau, false},
	{"M", slotTau, true},
	{"m", slotTau, true},
	{"mass", slotTau, true},
}

// resolved is the outcome of mapping raw field names onto slots.
type resolved struct {
	// fields[slot] holds the field names that mapped to each slot,
	// in alias priority order.
	fields [slotCount][]string
	// momentum is true if any momentum spelling was used.
	momentum bool
}

func (r *resolved) has(s slot) bool { return len(r.fields[s]) > 0 }

// names returns all field names that landed on the given slots, sorted.
func (r *resolved) names(slots ...slot) []string {
	var out []string
	for _, s := range slots {
		out = append(out, r.fields[s]...)
	}
	sort.Strings(out)
	return out
}

// resolveFields maps field names to coordinate slots. Unknown names and
// same-slot duplicates (e.g. both x and px) are errors.
func resolveFields(fields []string) (*resolved, error) {
	r := &resolved{}
	var unknown []string

	for _, f := range fields {
		matched := false
		for _, a := range aliasTable {
			if a.name == f {
				r.fields[a.slot] = append(r.fields[a.slot], f)
				if a.momentum {
					r.momentum = true
				}
				matched = true
				break
			}
		}
		if !matched {
			unknown = append(unknown, f)
		}
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, newUnknownError(unknown)
	}

	for s := slot(0); s < slotCount; s++ {
		if len(r.fields[s]) > 1 {
			return nil, newAmbiguousError(r.names(s))
		}
	}

	return r, nil
}

// ClassifyAzimuthal determines the azimuthal kind from resolved fields.
// Exactly one complete pair is required: (x, y) or (rho, phi). A mix of
// both families is ambiguous, a partial pair is incomplete.
func (r *resolved) classifyAzimuthal() (Azimuthal, error) {
	xy := r.has(slotX) || r.has(slotY)
	rhophi := r.has(slotRho) || r.has(slotPhi)

	switch {
	case xy && rhophi:
		return 0, newAmbiguousError(r.names(slotX, slotY, slotRho, slotPhi))
	case xy:
		if !r.has(slotX) || !r.has(slotY) {
			return 0, newIncompleteError("azimuthal pair requires both x and y", r.names(slotX, slotY))
		}
		return AzimuthalXY, nil
	case rhophi:
		if !r.has(slotRho) || !r.has(slotPhi) {
			return 0, newIncompleteError("azimuthal pair requires both rho and phi", r.names(slotRho, slotPhi))
		}
		return AzimuthalRhoPhi, nil
	default:
		return 0, newIncompleteError("an azimuthal pair is required", nil)
	}
}

func (r *resolved) classifyLongitudinal() (Longitudinal, error) {
	present := 0
	for _, s := range []slot{slotZ, slotTheta, slotEta} {
		if r.has(s) {
			present++
		}
	}
	if present > 1 {
		return 0, newAmbiguousError(r.names(slotZ, slotTheta, slotEta))
	}
	switch {
	case r.has(slotZ):
		return LongitudinalZ, nil
	case r.has(slotTheta):
		return LongitudinalTheta, nil
	case r.has(slotEta):
		return LongitudinalEta, nil
	default:
		return LongitudinalNone, nil
	}
}

func (r *resolved) classifyTemporal() (Temporal, error) {
	if r.has(slotT) && r.has(slotTau) {
		return 0, newAmbiguousError(r.names(slotT, slotTau))
	}
	switch {
	case r.has(slotT):
		return TemporalT, nil
	case r.has(slotTau):
		return TemporalTau, nil
	default:
		return TemporalNone, nil
	}
}

// Classify determines the full coordinate signature and flavor from a
// set of field names. It fails with a ConfigurationError naming the
// offending fields when the names match no kind, match a kind partially,
// or match ambiguously. It never guesses.
func Classify(fields []string) (Signature, Flavor, error) {
	r, err := resolveFields(fields)
	if err != nil {
		return Signature{}, FlavorGeneric, err
	}

	az, err := r.classifyAzimuthal()
	if err != nil {
		return Signature{}, FlavorGeneric, err
	}
	lon, err := r.classifyLongitudinal()
	if err != nil {
		return Signature{}, FlavorGeneric, err
	}
	tmp, err := r.classifyTemporal()
	if err != nil {
		return Signature{}, FlavorGeneric, err
	}

	if tmp != TemporalNone && lon == LongitudinalNone {
		return Signature{}, FlavorGeneric,
			newIncompleteError("a temporal coordinate requires a longitudinal coordinate", r.names(slotT, slotTau))
	}

	flavor := FlavorGeneric
	if r.momentum {
		flavor = FlavorMomentum
	}

	return Signature{Azimuthal: az, Longitudinal: lon, Temporal: tmp}, flavor, nil
}

// FieldOrder returns the field names of fields, reordered into the fixed
// accessor order for the classified signature (azimuthal pair, then
// longitudinal, then temporal). The second return is the classified
// signature and flavor, as from Classify.
func FieldOrder(fields []string) ([]string, Signature, Flavor, error) {
	sig, flavor, err := Classify(fields)
	if err != nil {
		return nil, Signature{}, FlavorGeneric, err
	}

	r, _ := resolveFields(fields)
	ordered := make([]string, 0, len(fields))
	for _, s := range accessorSlots(sig) {
		ordered = append(ordered, r.fields[s][0])
	}
	return ordered, sig, flavor, nil
}

// accessorSlots returns the slots of a signature in accessor order.
func accessorSlots(sig Signature) []slot {
	var slots []slot
	if sig.Azimuthal == AzimuthalXY {
		slots = append(slots, slotX, slotY)
	} else {
		slots = append(slots, slotRho, slotPhi)
	}
	switch sig.Longitudinal {
	case LongitudinalZ:
		slots = append(slots, slotZ)
	case LongitudinalTheta:
		slots = append(slots, slotTheta)
	case LongitudinalEta:
		slots = append(slots, slotEta)
	}
	switch sig.Temporal {
	case TemporalT:
		slots = append(slots, slotT)
	case TemporalTau:
		slots = append(slots, slotTau)
	}
	return slots
}
