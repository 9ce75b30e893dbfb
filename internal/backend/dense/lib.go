package dense

import (
	"math"

	"github.com/fourvec/fourvec/internal/numeric"
)

// lib implements numeric.Lib over []float64 columns. Boolean results
// are []bool columns. Binary operations broadcast a length-1 column
// against any length; otherwise lengths must agree (a mismatch is a
// construction-time bug, so it panics rather than returning an error).
type lib struct{}

func col(e numeric.Elem) []float64 { return e.([]float64) }
func bcol(e numeric.Elem) []bool   { return e.([]bool) }

// broadcastLen resolves the output length of a binary operation.
func broadcastLen(a, b []float64) int {
	switch {
	case len(a) == len(b):
		return len(a)
	case len(a) == 1:
		return len(b)
	case len(b) == 1:
		return len(a)
	default:
		panic("dense: column length mismatch")
	}
}

func at(c []float64, i int) float64 {
	if len(c) == 1 {
		return c[0]
	}
	return c[i]
}

func map1(a numeric.Elem, f func(float64) float64) numeric.Elem {
	ca := col(a)
	out := make([]float64, len(ca))
	for i, v := range ca {
		out[i] = f(v)
	}
	return out
}

func map2(a, b numeric.Elem, f func(x, y float64) float64) numeric.Elem {
	ca, cb := col(a), col(b)
	n := broadcastLen(ca, cb)
	out := make([]float64, n)
	for i := range out {
		out[i] = f(at(ca, i), at(cb, i))
	}
	return out
}

func cmp2(a, b numeric.Elem, f func(x, y float64) bool) numeric.Elem {
	ca, cb := col(a), col(b)
	n := broadcastLen(ca, cb)
	out := make([]bool, n)
	for i := range out {
		out[i] = f(at(ca, i), at(cb, i))
	}
	return out
}

func (lib) Const(v float64) numeric.Elem { return []float64{v} }
func (lib) Pi() numeric.Elem { return []float64{math.Pi} }

func (lib) Add(a, b numeric.Elem) numeric.Elem {
	return map2(a, b, func(x, y float64) float64 { return x + y })
}
func (lib) Sub(a, b numeric.Elem) numeric.Elem {
	return map2(a, b, func(x, y float64) float64 { return x - y })
}
func (lib) Mul(a, b numeric.Elem) numeric.Elem {
	return map2(a, b, func(x, y float64) float64 { return x * y })
}
func (lib) Div(a, b numeric.Elem) numeric.Elem {
	return map2(a, b, func(x, y float64) float64 { return x / y })
}
func (lib) Neg(a numeric.Elem) numeric.Elem {
	return map1(a, func(x float64) float64 { return -x })
}

func (lib) Sqrt(a numeric.Elem) numeric.Elem { return map1(a, math.Sqrt) }
func (lib) Exp(a numeric.Elem) numeric.Elem { return map1(a, math.Exp) }
func (lib) Log(a numeric.Elem) numeric.Elem { return map1(a, math.Log) }
func (lib) Sin(a numeric.Elem) numeric.Elem { return map1(a, math.Sin) }
func (lib) Cos(a numeric.Elem) numeric.Elem { return map1(a, math.Cos) }
func (lib) Tan(a numeric.Elem) numeric.Elem { return map1(a, math.Tan) }
func (lib) Asin(a numeric.Elem) numeric.Elem { return map1(a, math.Asin) }
func (lib) Acos(a numeric.Elem) numeric.Elem { return map1(a, math.Acos) }
func (lib) Atan(a numeric.Elem) numeric.Elem { return map1(a, math.Atan) }
func (lib) Atan2(y, x numeric.Elem) numeric.Elem {
	return map2(y, x, math.Atan2)
}
func (lib) Sinh(a numeric.Elem) numeric.Elem { return map1(a, math.Sinh) }
func (lib) Cosh(a numeric.Elem) numeric.Elem { return map1(a, math.Cosh) }
func (lib) Atanh(a numeric.Elem) numeric.Elem { return map1(a, math.Atanh) }
func (lib) Abs(a numeric.Elem) numeric.Elem { return map1(a, math.Abs) }

func (lib) Sign(a numeric.Elem) numeric.Elem {
	return map1(a, func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return x
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

func (lib) Copysign(mag, sgn numeric.Elem) numeric.Elem {
	return map2(mag, sgn, math.Copysign)
}

func (lib) Maximum(a, b numeric.Elem) numeric.Elem { return map2(a, b, math.Max) }

func (lib) NanToNum(a numeric.Elem, nan float64) numeric.Elem {
	return map1(a, func(x float64) float64 {
		if math.IsNaN(x) {
			return nan
		}
		return x
	})
}

func (lib) Eq(a, b numeric.Elem) numeric.Elem {
	return cmp2(a, b, func(x, y float64) bool { return x == y })
}
func (lib) Ne(a, b numeric.Elem) numeric.Elem {
	return cmp2(a, b, func(x, y float64) bool { return x != y })
}
func (lib) Lt(a, b numeric.Elem) numeric.Elem {
	return cmp2(a, b, func(x, y float64) bool { return x < y })
}
func (lib) Gt(a, b numeric.Elem) numeric.Elem {
	return cmp2(a, b, func(x, y float64) bool { return x > y })
}

func (lib) IsClose(a, b numeric.Elem, rtol, atol float64) numeric.Elem {
	return cmp2(a, b, func(x, y float64) bool {
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			return x == y
		}
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
}

func boolBroadcastLen(a, b []bool) int {
	switch {
	case len(a) == len(b):
		return len(a)
	case len(a) == 1:
		return len(b)
	case len(b) == 1:
		return len(a)
	default:
		panic("dense: column length mismatch")
	}
}

func atb(c []bool, i int) bool {
	if len(c) == 1 {
		return c[0]
	}
	return c[i]
}

func (lib) And(a, b numeric.Elem) numeric.Elem {
	ca, cb := bcol(a), bcol(b)
	out := make([]bool, boolBroadcastLen(ca, cb))
	for i := range out {
		out[i] = atb(ca, i) && atb(cb, i)
	}
	return out
}

func (lib) Or(a, b numeric.Elem) numeric.Elem {
	ca, cb := bcol(a), bcol(b)
	out := make([]bool, boolBroadcastLen(ca, cb))
	for i := range out {
		out[i] = atb(ca, i) || atb(cb, i)
	}
	return out
}

func (lib) Not(a numeric.Elem) numeric.Elem {
	ca := bcol(a)
	out := make([]bool, len(ca))
	for i, v := range ca {
		out[i] = !v
	}
	return out
}
