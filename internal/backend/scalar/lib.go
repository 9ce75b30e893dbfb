package scalar

import (
	"math"

	"github.com/fourvec/fourvec/internal/numeric"
)

// lib implements numeric.Lib over plain float64 elements. Boolean
// results are plain bools.
type lib struct{}

func f(e numeric.Elem) float64 { return e.(float64) }
func b(e numeric.Elem) bool    { return e.(bool) }

func (lib) Const(v float64) numeric.Elem { return v }
func (lib) Pi() numeric.Elem { return math.Pi }

func (lib) Add(a, b numeric.Elem) numeric.Elem { return f(a) + f(b) }
func (lib) Sub(a, b numeric.Elem) numeric.Elem { return f(a) - f(b) }
func (lib) Mul(a, b numeric.Elem) numeric.Elem { return f(a) * f(b) }
func (lib) Div(a, b numeric.Elem) numeric.Elem { return f(a) / f(b) }
func (lib) Neg(a numeric.Elem) numeric.Elem { return -f(a) }

func (lib) Sqrt(a numeric.Elem) numeric.Elem { return math.Sqrt(f(a)) }
func (lib) Exp(a numeric.Elem) numeric.Elem { return math.Exp(f(a)) }
func (lib) Log(a numeric.Elem) numeric.Elem { return math.Log(f(a)) }
func (lib) Sin(a numeric.Elem) numeric.Elem { return math.Sin(f(a)) }
func (lib) Cos(a numeric.Elem) numeric.Elem { return math.Cos(f(a)) }
func (lib) Tan(a numeric.Elem) numeric.Elem { return math.Tan(f(a)) }
func (lib) Asin(a numeric.Elem) numeric.Elem { return math.Asin(f(a)) }
func (lib) Acos(a numeric.Elem) numeric.Elem { return math.Acos(f(a)) }
func (lib) Atan(a numeric.Elem) numeric.Elem { return math.Atan(f(a)) }
func (lib) Atan2(y, x numeric.Elem) numeric.Elem { return math.Atan2(f(y), f(x)) }
func (lib) Sinh(a numeric.Elem) numeric.Elem { return math.Sinh(f(a)) }
func (lib) Cosh(a numeric.Elem) numeric.Elem { return math.Cosh(f(a)) }
func (lib) Atanh(a numeric.Elem) numeric.Elem { return math.Atanh(f(a)) }
func (lib) Abs(a numeric.Elem) numeric.Elem { return math.Abs(f(a)) }

func (lib) Sign(a numeric.Elem) numeric.Elem { return sign(f(a)) }

func (lib) Copysign(mag, sgn numeric.Elem) numeric.Elem {
	return math.Copysign(f(mag), f(sgn))
}

func (lib) Maximum(a, b numeric.Elem) numeric.Elem { return math.Max(f(a), f(b)) }

func (lib) NanToNum(a numeric.Elem, nan float64) numeric.Elem {
	if math.IsNaN(f(a)) {
		return nan
	}
	return a
}

func (lib) Eq(a, b numeric.Elem) numeric.Elem { return f(a) == f(b) }
func (lib) Ne(a, b numeric.Elem) numeric.Elem { return f(a) != f(b) }
func (lib) Lt(a, b numeric.Elem) numeric.Elem { return f(a) < f(b) }
func (lib) Gt(a, b numeric.Elem) numeric.Elem { return f(a) > f(b) }

func (lib) IsClose(a, b numeric.Elem, rtol, atol float64) numeric.Elem {
	return isClose(f(a), f(b), rtol, atol)
}

func (lib) And(a, b numeric.Elem) numeric.Elem { return b2(a) && b2(b) }
func (lib) Or(a, b numeric.Elem) numeric.Elem { return b2(a) || b2(b) }
func (lib) Not(a numeric.Elem) numeric.Elem { return !b2(a) }

func b2(e numeric.Elem) bool { return b(e) }

// sign returns -1, 0 or +1, propagating NaN.
func sign(x float64) float64 {
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
}

// isClose mirrors the usual array-library closeness test:
// |a-b| <= atol + rtol*|b|, with equal infinities considered close.
func isClose(a, b, rtol, atol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
