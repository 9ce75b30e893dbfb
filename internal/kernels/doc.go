// Package kernels holds the numeric heart of the library: the
// conversion kernels between coordinate kinds and the canonical
// operation kernels the dispatch table is built from.
//
// Every kernel is a pure function over backend elements via
// numeric.Lib. Kernels never branch on element values — elements may be
// whole arrays or symbolic expressions — and never raise on numeric
// domain violations: NaN and Inf propagate per IEEE-754, observable
// through the spacelike/timelike/lightlike predicates.
//
// Canonical kernels are written for Cartesian (x, y, z, t) element
// layouts, plus a few closed forms that are cheaper in polar
// coordinates (dot, deltaphi). All other kind combinations are reached
// by composing conversions around these kernels; the composition lives
// in internal/dispatch.
package kernels
