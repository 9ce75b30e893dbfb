package dispatch

import (
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/kernels"
)

// outClass distinguishes the three result shapes an operation can have.
type outClass uint8

const (
	outVector outClass = iota
	outScalar
	outBool
)

// axisReq is one operand's axis requirement under a canonical form. An
// "any" axis is passed through unconverted; a required kind triggers a
// conversion when the operand's kind differs. Requirements on axes the
// operand does not have (longitudinal at 2D, temporal below 4D) are
// vacuous.
type axisReq struct {
	az     coords.Azimuthal
	azAny  bool
	lon    coords.Longitudinal
	lonAny bool
	tmp    coords.Temporal
	tmpAny bool
}

// Shared requirements, named by what they pin down.
var (
	reqCartesian    = axisReq{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, tmp: coords.TemporalT}
	reqCartesianTau = axisReq{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, tmp: coords.TemporalTau}
	reqSpatialCart  = axisReq{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, tmpAny: true}
	reqXYOnly       = axisReq{az: coords.AzimuthalXY, lonAny: true, tmpAny: true}
	reqPolarFull    = axisReq{az: coords.AzimuthalRhoPhi, lon: coords.LongitudinalZ, tmp: coords.TemporalT}
	reqPhiOnly      = axisReq{az: coords.AzimuthalRhoPhi, lonAny: true, tmpAny: true}
	reqEtaOnly      = axisReq{azAny: true, lon: coords.LongitudinalEta, tmpAny: true}
	reqPhiEta       = axisReq{az: coords.AzimuthalRhoPhi, lon: coords.LongitudinalEta, tmpAny: true}
	reqZT           = axisReq{azAny: true, lon: coords.LongitudinalZ, tmp: coords.TemporalT}
)

// outSpec describes the result of a canonical form. Pass axes take the
// first operand's (unconverted) kind; fixedDim overrides the operand
// dimensionality (cross always yields a 3D result).
type outSpec struct {
	class    outClass
	az       coords.Azimuthal
	lon      coords.Longitudinal
	lonPass  bool
	tmp      coords.Temporal
	tmpPass  bool
	fixedDim int
}

var (
	outScalarSpec  = outSpec{class: outScalar}
	outBoolSpec    = outSpec{class: outBool}
	outCartesian   = outSpec{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, tmp: coords.TemporalT}
	outSpatialCart = outSpec{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, tmpPass: true}
	outXYPass      = outSpec{az: coords.AzimuthalXY, lonPass: true, tmpPass: true}
	outCross       = outSpec{az: coords.AzimuthalXY, lon: coords.LongitudinalZ, fixedDim: 3}
)

// canonForm is one canonical kernel plus the operand layout it expects.
// The table builder wraps the kernel in whatever conversions close the
// gap between an operand tuple and the requirements.
type canonForm struct {
	name   string
	reqs   []axisReq
	out    outSpec
	kernel kernels.Kernel
}

// opDef declares one dispatchable operation: its arity, the
// dimensionalities it exists at, the scalar parameter count it consumes
// (-1 for the matrix-sized parameter block of transform_apply), whether
// it carries momentum flavor through to the result, and its canonical
// forms in preference order. The first form remains preferred under
// conversion-cost ties.
type opDef struct {
	name             string
	arity            int
	minDim, maxDim   int
	params           int
	flavorPreserving bool
	forms            []canonForm
}

func both(r axisReq) []axisReq { return []axisReq{r, r} }

var opDefs = []opDef{
	{
		name: "add", arity: 2, minDim: 2, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outCartesian, kernel: kernels.Add},
		},
	},
	{
		name: "subtract", arity: 2, minDim: 2, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outCartesian, kernel: kernels.Subtract},
		},
	},
	{
		name: "scale", arity: 1, minDim: 2, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.Scale},
		},
	},
	{
		name: "dot", arity: 2, minDim: 2, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outScalarSpec, kernel: kernels.Dot},
			{name: "polar", reqs: both(reqPolarFull), out: outScalarSpec, kernel: kernels.DotPolar},
		},
	},
	{
		name: "cross", arity: 2, minDim: 3, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqSpatialCart), out: outCross, kernel: kernels.Cross},
		},
	},
	{
		name: "unit", arity: 1, minDim: 2, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.Unit},
		},
	},
	{
		name: "rotate_z", arity: 1, minDim: 2, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian-xy", reqs: []axisReq{reqXYOnly}, out: outXYPass, kernel: kernels.RotateZ},
		},
	},
	{
		name: "rotate_x", arity: 1, minDim: 3, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqSpatialCart}, out: outSpatialCart, kernel: kernels.RotateX},
		},
	},
	{
		name: "rotate_y", arity: 1, minDim: 3, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqSpatialCart}, out: outSpatialCart, kernel: kernels.RotateY},
		},
	},
	{
		name: "rotate_axis", arity: 2, minDim: 3, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqSpatialCart), out: outSpatialCart, kernel: kernels.RotateAxis},
		},
	},
	{
		name: "boost_beta3", arity: 2, minDim: 4, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian, reqSpatialCart}, out: outCartesian, kernel: kernels.BoostBeta3},
		},
	},
	{
		name: "boost_p4", arity: 2, minDim: 4, maxDim: 4, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outCartesian, kernel: kernels.BoostP4},
		},
	},
	{
		name: "boost_x", arity: 1, minDim: 4, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.BoostX},
		},
	},
	{
		name: "boost_y", arity: 1, minDim: 4, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.BoostY},
		},
	},
	{
		name: "boost_z", arity: 1, minDim: 4, maxDim: 4, params: 1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.BoostZ},
		},
	},
	{
		name: "transform_apply", arity: 1, minDim: 2, maxDim: 4, params: -1, flavorPreserving: true,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outCartesian, kernel: kernels.TransformApply},
		},
	},
	{
		name: "delta_phi", arity: 2, minDim: 2, maxDim: 4,
		forms: []canonForm{
			{name: "polar", reqs: both(reqPhiOnly), out: outScalarSpec, kernel: kernels.DeltaPhi},
		},
	},
	{
		name: "delta_eta", arity: 2, minDim: 3, maxDim: 4,
		forms: []canonForm{
			{name: "pseudorapidity", reqs: both(reqEtaOnly), out: outScalarSpec, kernel: kernels.DeltaEta},
		},
	},
	{
		name: "delta_rapidity", arity: 2, minDim: 4, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian-zt", reqs: both(reqZT), out: outScalarSpec, kernel: kernels.DeltaRapidity},
		},
	},
	{
		name: "delta_r", arity: 2, minDim: 3, maxDim: 4,
		forms: []canonForm{
			{name: "polar-eta", reqs: both(reqPhiEta), out: outScalarSpec, kernel: kernels.DeltaR},
		},
	},
	{
		name: "delta_angle", arity: 2, minDim: 2, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqSpatialCart), out: outScalarSpec, kernel: kernels.DeltaAngle},
		},
	},
	{
		name: "equal", arity: 2, minDim: 2, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outBoolSpec, kernel: kernels.Equal},
			{name: "cartesian-tau", reqs: both(reqCartesianTau), out: outBoolSpec, kernel: kernels.Equal},
		},
	},
	{
		name: "not_equal", arity: 2, minDim: 2, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outBoolSpec, kernel: kernels.NotEqual},
			{name: "cartesian-tau", reqs: both(reqCartesianTau), out: outBoolSpec, kernel: kernels.NotEqual},
		},
	},
	{
		name: "is_close", arity: 2, minDim: 2, maxDim: 4, params: 2,
		forms: []canonForm{
			{name: "cartesian", reqs: both(reqCartesian), out: outBoolSpec, kernel: kernels.IsCloseVec},
			{name: "cartesian-tau", reqs: both(reqCartesianTau), out: outBoolSpec, kernel: kernels.IsCloseVec},
		},
	},
	{
		name: "is_lightlike", arity: 1, minDim: 4, maxDim: 4, params: 1,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outBoolSpec, kernel: kernels.IsLightlike},
		},
	},
	{
		name: "is_timelike", arity: 1, minDim: 4, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outBoolSpec, kernel: kernels.IsTimelike},
		},
	},
	{
		name: "is_spacelike", arity: 1, minDim: 4, maxDim: 4,
		forms: []canonForm{
			{name: "cartesian", reqs: []axisReq{reqCartesian}, out: outBoolSpec, kernel: kernels.IsSpacelike},
		},
	},
}

// EulerOpName returns the per-ordering operation name for an Euler
// rotation, e.g. "rotate_euler_zxz". The twelve orderings are distinct
// operations with distinct canonical kernels.
func EulerOpName(order string) string { return "rotate_euler_" + order }

// opIndex maps operation names to their definitions. It is populated by
// registerOps, which runs before the table build.
var opIndex = map[string]*opDef{}

// registerOps appends the twelve Euler rotation operations (one per
// ordering, rather than spelling them out in the literal table above)
// and indexes every operation by name.
func registerOps() {
	for _, order := range kernels.EulerOrders {
		opDefs = append(opDefs, opDef{
			name: EulerOpName(order), arity: 1, minDim: 3, maxDim: 4, params: 3, flavorPreserving: true,
			forms: []canonForm{
				{name: "cartesian", reqs: []axisReq{reqSpatialCart}, out: outSpatialCart, kernel: kernels.RotateEuler(order)},
			},
		})
	}
	for i := range opDefs {
		opIndex[opDefs[i].name] = &opDefs[i]
	}
}
