package vector

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/kernels"
)

// Binary operations promote the lower-dimensional operand (missing axes
// read as zero) and carry momentum flavor through when either operand
// is momentum, independent of operand order.

// Add returns a + b.
func (a Vector) Add(b Vector) Vector { return a.op2("add", b) }

// Sub returns a - b.
func (a Vector) Sub(b Vector) Vector { return a.op2("subtract", b) }

// Scale multiplies every component, temporal included, by k.
func (a Vector) Scale(k float64) Vector { return a.op1("scale", k) }

// Neg returns the negated vector.
func (a Vector) Neg() Vector { return a.Scale(-1) }

// Dot returns the inner product: Euclidean for 2D and 3D operands,
// Minkowski (+---) when both are 4D.
func (a Vector) Dot(b Vector) float64 { return a.num2("dot", b) }

// Cross returns the spatial cross product. The result is always 3D;
// temporal components of 4D operands are ignored.
func (a Vector) Cross(b Vector) Vector { return a.op2("cross", b) }

// Unit scales to unit norm (Minkowski norm for 4D). A zero vector
// yields NaN components.
func (a Vector) Unit() Vector { return a.op1("unit") }

// Equal reports exact componentwise equality after kind alignment.
// Operands sharing a temporal kind are compared in it directly; mixed
// temporal kinds are both taken to t first.
func (a Vector) Equal(b Vector) bool { return a.pred2("equal", b) }

// NotEqual is the negation of Equal, folded componentwise.
func (a Vector) NotEqual(b Vector) bool { return a.pred2("not_equal", b) }

// IsClose reports componentwise closeness: |a-b| <= atol + rtol*|b|.
func (a Vector) IsClose(b Vector, rtol, atol float64) bool {
	return a.pred2("is_close", b, rtol, atol)
}

// RotateX rotates about the x axis by angle (3D and 4D).
func (a Vector) RotateX(angle float64) Vector { return a.op1("rotate_x", angle) }

// RotateY rotates about the y axis by angle (3D and 4D).
func (a Vector) RotateY(angle float64) Vector { return a.op1("rotate_y", angle) }

// RotateZ rotates the azimuthal plane by angle; longitudinal and
// temporal components keep their kinds and values.
func (a Vector) RotateZ(angle float64) Vector { return a.op1("rotate_z", angle) }

// RotateAxis rotates about an arbitrary axis (normalized internally) by
// angle, via the Rodrigues formula.
func (a Vector) RotateAxis(axis Vector, angle float64) Vector {
	return a.op2("rotate_axis", axis, angle)
}

// RotateEuler rotates by three Euler angles under one of the twelve
// ROOT-compatible orderings ("zxz", "xyz", ...). An unknown ordering is
// an error.
func (a Vector) RotateEuler(order string, alpha, beta, gamma float64) (Vector, error) {
	found := false
	for _, o := range kernels.EulerOrders {
		if o == order {
			found = true
			break
		}
	}
	if !found {
		return Vector{}, fmt.Errorf("vector: unknown Euler ordering %q", order)
	}
	return a.op1("rotate_euler_"+order, alpha, beta, gamma), nil
}

// Transform applies a caller-supplied row-major matrix to the Cartesian
// components: 4 entries for a 2D vector, 9 for 3D, 16 for 4D.
func (a Vector) Transform(m ...float64) Vector { return a.op1("transform_apply", m...) }

// Boost boosts a 4D vector: by the spatial velocity vector (units of c)
// when b is 2D or 3D, or toward b's direction of motion (beta = p/E
// componentwise) when b is 4D.
func (a Vector) Boost(b Vector) Vector {
	if b.Dim() == 4 {
		return a.BoostP4(b)
	}
	return a.BoostBeta3(b)
}

// BoostP4 boosts by a four-momentum: beta = p/E componentwise.
func (a Vector) BoostP4(p Vector) Vector { return a.op2("boost_p4", p) }

// BoostBeta3 boosts by a velocity three-vector in units of c.
func (a Vector) BoostBeta3(beta Vector) Vector { return a.op2("boost_beta3", beta) }

// BoostX boosts along x by beta.
func (a Vector) BoostX(beta float64) Vector { return a.op1("boost_x", beta) }

// BoostY boosts along y by beta.
func (a Vector) BoostY(beta float64) Vector { return a.op1("boost_y", beta) }

// BoostZ boosts along z by beta.
func (a Vector) BoostZ(beta float64) Vector { return a.op1("boost_z", beta) }

// DeltaPhi returns the azimuthal separation wrapped into (-pi, pi].
func (a Vector) DeltaPhi(b Vector) float64 { return a.num2("delta_phi", b) }

// DeltaEta returns the pseudorapidity separation (3D and 4D).
func (a Vector) DeltaEta(b Vector) float64 { return a.num2("delta_eta", b) }

// DeltaRapidity returns the longitudinal rapidity separation (4D).
func (a Vector) DeltaRapidity(b Vector) float64 { return a.num2("delta_rapidity", b) }

// DeltaR returns sqrt(deltaeta² + deltaphi²) (3D and 4D).
func (a Vector) DeltaR(b Vector) float64 { return a.num2("delta_r", b) }

// DeltaAngle returns the opening angle between the spatial parts.
func (a Vector) DeltaAngle(b Vector) float64 { return a.num2("delta_angle", b) }

// IsLightlike reports |t² - mag²| within tol (4D).
func (a Vector) IsLightlike(tol float64) bool { return a.pred1("is_lightlike", tol) }

// IsTimelike reports t² > mag² (4D).
func (a Vector) IsTimelike() bool { return a.pred1("is_timelike") }

// IsSpacelike reports t² < mag² (4D).
func (a Vector) IsSpacelike() bool { return a.pred1("is_spacelike") }
