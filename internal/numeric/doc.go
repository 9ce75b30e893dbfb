// Package numeric defines the elementwise math contract every storage
// backend must supply.
//
// Kernels are written once against Lib and run unchanged over scalars,
// dense arrays, jagged arrays and symbolic expressions. Elements are
// opaque to the kernels: an Elem may be a float64, a whole column, a
// ragged column or an expression node, so kernels must never branch on
// element values, only on coordinate kinds.
//
// Domain violations (sqrt of a negative, atan2 at the origin) are not
// errors. They produce NaN/Inf per IEEE-754 and propagate: an array
// cannot abort mid-computation for one bad element, and the scalar path
// must behave identically to the array path.
package numeric
