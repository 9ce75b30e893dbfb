package jagged

import (
	"math"

	"github.com/fourvec/fourvec/internal/backend/dense"
	"github.com/fourvec/fourvec/internal/numeric"
)

// lib implements numeric.Lib over [][]float64 by lifting the dense
// backend's library row by row. Boolean results are [][]bool.
type lib struct{}

// inner is the dense elementwise library every row runs through.
var inner = dense.Family().Lib()

func rows(e numeric.Elem) [][]float64 { return e.([][]float64) }
func brows(e numeric.Elem) [][]bool   { return e.([][]bool) }

// rowCount resolves the broadcast row count of a binary operation:
// single-row elements (constants) broadcast against any row structure.
func rowCount(a, b int) int {
	switch {
	case a == b:
		return a
	case a == 1:
		return b
	case b == 1:
		return a
	default:
		panic("jagged: row count mismatch")
	}
}

func rowAt(r [][]float64, i int) []float64 {
	if len(r) == 1 {
		return r[0]
	}
	return r[i]
}

func lift1(a numeric.Elem, f func(numeric.Elem) numeric.Elem) numeric.Elem {
	ra := rows(a)
	out := make([][]float64, len(ra))
	for i, row := range ra {
		out[i] = f(row).([]float64)
	}
	return out
}

func lift2(a, b numeric.Elem, f func(x, y numeric.Elem) numeric.Elem) numeric.Elem {
	ra, rb := rows(a), rows(b)
	n := rowCount(len(ra), len(rb))
	out := make([][]float64, n)
	for i := range out {
		out[i] = f(rowAt(ra, i), rowAt(rb, i)).([]float64)
	}
	return out
}

func lift2b(a, b numeric.Elem, f func(x, y numeric.Elem) numeric.Elem) numeric.Elem {
	ra, rb := rows(a), rows(b)
	n := rowCount(len(ra), len(rb))
	out := make([][]bool, n)
	for i := range out {
		out[i] = f(rowAt(ra, i), rowAt(rb, i)).([]bool)
	}
	return out
}

func (lib) Const(v float64) numeric.Elem { return [][]float64{{v}} }
func (lib) Pi() numeric.Elem { return [][]float64{{math.Pi}} }

func (lib) Add(a, b numeric.Elem) numeric.Elem { return lift2(a, b, inner.Add) }
func (lib) Sub(a, b numeric.Elem) numeric.Elem { return lift2(a, b, inner.Sub) }
func (lib) Mul(a, b numeric.Elem) numeric.Elem { return lift2(a, b, inner.Mul) }
func (lib) Div(a, b numeric.Elem) numeric.Elem { return lift2(a, b, inner.Div) }
func (lib) Neg(a numeric.Elem) numeric.Elem { return lift1(a, inner.Neg) }

func (lib) Sqrt(a numeric.Elem) numeric.Elem { return lift1(a, inner.Sqrt) }
func (lib) Exp(a numeric.Elem) numeric.Elem { return lift1(a, inner.Exp) }
func (lib) Log(a numeric.Elem) numeric.Elem { return lift1(a, inner.Log) }
func (lib) Sin(a numeric.Elem) numeric.Elem { return lift1(a, inner.Sin) }
func (lib) Cos(a numeric.Elem) numeric.Elem { return lift1(a, inner.Cos) }
func (lib) Tan(a numeric.Elem) numeric.Elem { return lift1(a, inner.Tan) }
func (lib) Asin(a numeric.Elem) numeric.Elem { return lift1(a, inner.Asin) }
func (lib) Acos(a numeric.Elem) numeric.Elem { return lift1(a, inner.Acos) }
func (lib) Atan(a numeric.Elem) numeric.Elem { return lift1(a, inner.Atan) }
func (lib) Atan2(y, x numeric.Elem) numeric.Elem {
	return lift2(y, x, inner.Atan2)
}
func (lib) Sinh(a numeric.Elem) numeric.Elem { return lift1(a, inner.Sinh) }
func (lib) Cosh(a numeric.Elem) numeric.Elem { return lift1(a, inner.Cosh) }
func (lib) Atanh(a numeric.Elem) numeric.Elem { return lift1(a, inner.Atanh) }
func (lib) Abs(a numeric.Elem) numeric.Elem { return lift1(a, inner.Abs) }
func (lib) Sign(a numeric.Elem) numeric.Elem { return lift1(a, inner.Sign) }

func (lib) Copysign(mag, sgn numeric.Elem) numeric.Elem {
	return lift2(mag, sgn, inner.Copysign)
}

func (lib) Maximum(a, b numeric.Elem) numeric.Elem { return lift2(a, b, inner.Maximum) }

func (lib) NanToNum(a numeric.Elem, nan float64) numeric.Elem {
	return lift1(a, func(row numeric.Elem) numeric.Elem { return inner.NanToNum(row, nan) })
}

func (lib) Eq(a, b numeric.Elem) numeric.Elem { return lift2b(a, b, inner.Eq) }
func (lib) Ne(a, b numeric.Elem) numeric.Elem { return lift2b(a, b, inner.Ne) }
func (lib) Lt(a, b numeric.Elem) numeric.Elem { return lift2b(a, b, inner.Lt) }
func (lib) Gt(a, b numeric.Elem) numeric.Elem { return lift2b(a, b, inner.Gt) }

func (lib) IsClose(a, b numeric.Elem, rtol, atol float64) numeric.Elem {
	return lift2b(a, b, func(x, y numeric.Elem) numeric.Elem {
		return inner.IsClose(x, y, rtol, atol)
	})
}

func browAt(r [][]bool, i int) []bool {
	if len(r) == 1 {
		return r[0]
	}
	return r[i]
}

func liftBool2(a, b numeric.Elem, f func(x, y numeric.Elem) numeric.Elem) numeric.Elem {
	ra, rb := brows(a), brows(b)
	n := rowCount(len(ra), len(rb))
	out := make([][]bool, n)
	for i := range out {
		out[i] = f(browAt(ra, i), browAt(rb, i)).([]bool)
	}
	return out
}

func (lib) And(a, b numeric.Elem) numeric.Elem { return liftBool2(a, b, inner.And) }
func (lib) Or(a, b numeric.Elem) numeric.Elem { return liftBool2(a, b, inner.Or) }

func (lib) Not(a numeric.Elem) numeric.Elem {
	ra := brows(a)
	out := make([][]bool, len(ra))
	for i, row := range ra {
		out[i] = inner.Not(row).([]bool)
	}
	return out
}
