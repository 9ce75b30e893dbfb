package dispatch

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/backend"
	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/numeric"
)

// Convert rebuilds v under the target signature, preserving flavor.
// Growing the dimensionality pads the new axes with zero in z and t
// kinds before converting, so a 3D vector taken to a tau-kind 4D ends
// up with tau equal to its spatial magnitude (t = 0 is spacelike).
// Shrinking drops the temporal axis first, then the longitudinal one.
func Convert(v backend.Vector, target coords.Signature) (backend.Vector, error) {
	if !target.Valid() {
		panic(fmt.Sprintf("dispatch: conversion target %v is not a valid signature", target))
	}
	fam := v.Family()
	l := fam.Lib()

	sig, elems := v.Signature(), v.Elements()
	switch {
	case sig.Dim() < target.Dim():
		sig, elems = promote(l, v, target.Dim())
	case sig.Dim() > target.Dim():
		sig, elems = truncate(sig, elems, target.Dim())
	}

	req := axisReq{az: target.Azimuthal, lon: target.Longitudinal, tmp: target.Temporal}
	return fam.New(target, v.Flavor(), convertOperand(l, sig, req, elems))
}

// Like reshapes v to the template's dimensionality, keeping v's own
// kinds on the axes it already has. Added axes take z and t kinds with
// zero elements.
func Like(v, template backend.Vector) (backend.Vector, error) {
	dim := template.Signature().Dim()
	sig, elems := v.Signature(), v.Elements()
	switch {
	case sig.Dim() < dim:
		sig, elems = promote(v.Family().Lib(), v, dim)
	case sig.Dim() > dim:
		sig, elems = truncate(sig, elems, dim)
	default:
		return v, nil
	}
	return v.Family().New(sig, v.Flavor(), elems)
}

func truncate(sig coords.Signature, elems []numeric.Elem, dim int) (coords.Signature, []numeric.Elem) {
	if dim < 4 {
		sig.Temporal = coords.TemporalNone
	}
	if dim < 3 {
		sig.Longitudinal = coords.LongitudinalNone
	}
	return sig, elems[:dim]
}
