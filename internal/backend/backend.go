package backend

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

// Vector is one backend-owned vector value: a coordinate signature, a
// flavor, and the raw elements in fixed accessor order (azimuthal pair,
// then longitudinal, then temporal).
type Vector interface {
	// Family returns the backend family that owns this value.
	Family() Family

	// Signature returns the coordinate kinds of the stored elements.
	Signature() coords.Signature

	// Flavor reports whether the value uses momentum field names.
	Flavor() coords.Flavor

	// Elements returns the raw elements in fixed accessor order.
	// The slice length always equals Signature().ElementCount().
	Elements() []numeric.Elem
}

// Family is one storage backend: scalar, dense, jagged or symbolic.
// Implementations are stateless singletons; two vectors belong to the
// same family exactly when their Family() values compare equal.
type Family interface {
	// Name identifies the family in error messages ("scalar", "dense", ...).
	Name() string

	// Lib returns the elementwise math library kernels run on.
	Lib() numeric.Lib

	// New constructs a vector of the given signature and flavor from
	// elements in kernel-output order. A family must support every
	// (dimensionality, flavor) pair; failure to do so is a registration
	// bug reported via RegistrationError.
	New(sig coords.Signature, flavor coords.Flavor, elems []numeric.Elem) (Vector, error)

	// Wrap is the result hook for scalar and boolean outputs. It
	// receives the raw kernel result and the operand count and returns
	// the backend-native value handed to the caller.
	Wrap(raw numeric.Elem, operands int) any
}

// RegistrationError reports a backend that cannot construct a required
// (dimensionality, flavor) pair. This is a backend bug, not user input.
type RegistrationError struct {
	Family    string
	Signature coords.Signature
	Flavor    coords.Flavor
	Reason    string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("backend %q cannot construct %s %s vector: %s",
		e.Family, e.Flavor, e.Signature, e.Reason)
}

// SameFamily reports whether all vectors belong to one backend family.
// An empty operand list is vacuously compatible.
func SameFamily(vs ...Vector) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i].Family() != vs[0].Family() {
			return false
		}
	}
	return true
}
