package symbolic

import "github.com/fourvec/fourvec/internal/numeric"

// lib implements numeric.Lib by building expression nodes. Boolean
// results are expressions too (comparison and logical nodes).
type lib struct{}

func ex(e numeric.Elem) *Expr { return e.(*Expr) }

func (lib) Const(v float64) numeric.Elem { return Const(v) }
func (lib) Pi() numeric.Elem             { return Symbol("pi") }

func (lib) Add(a, b numeric.Elem) numeric.Elem { return Infix("+", ex(a), ex(b)) }
func (lib) Sub(a, b numeric.Elem) numeric.Elem { return Infix("-", ex(a), ex(b)) }
func (lib) Mul(a, b numeric.Elem) numeric.Elem { return Infix("*", ex(a), ex(b)) }
func (lib) Div(a, b numeric.Elem) numeric.Elem { return Infix("/", ex(a), ex(b)) }
func (lib) Neg(a numeric.Elem) numeric.Elem    { return Call("neg", ex(a)) }

func (lib) Sqrt(a numeric.Elem) numeric.Elem     { return Call("sqrt", ex(a)) }
func (lib) Exp(a numeric.Elem) numeric.Elem      { return Call("exp", ex(a)) }
func (lib) Log(a numeric.Elem) numeric.Elem      { return Call("log", ex(a)) }
func (lib) Sin(a numeric.Elem) numeric.Elem      { return Call("sin", ex(a)) }
func (lib) Cos(a numeric.Elem) numeric.Elem      { return Call("cos", ex(a)) }
func (lib) Tan(a numeric.Elem) numeric.Elem      { return Call("tan", ex(a)) }
func (lib) Asin(a numeric.Elem) numeric.Elem     { return Call("asin", ex(a)) }
func (lib) Acos(a numeric.Elem) numeric.Elem     { return Call("acos", ex(a)) }
func (lib) Atan(a numeric.Elem) numeric.Elem     { return Call("atan", ex(a)) }
func (lib) Atan2(y, x numeric.Elem) numeric.Elem { return Call("atan2", ex(y), ex(x)) }
func (lib) Sinh(a numeric.Elem) numeric.Elem     { return Call("sinh", ex(a)) }
func (lib) Cosh(a numeric.Elem) numeric.Elem     { return Call("cosh", ex(a)) }
func (lib) Atanh(a numeric.Elem) numeric.Elem    { return Call("atanh", ex(a)) }
func (lib) Abs(a numeric.Elem) numeric.Elem      { return Call("abs", ex(a)) }
func (lib) Sign(a numeric.Elem) numeric.Elem     { return Call("sign", ex(a)) }

func (lib) Copysign(mag, sgn numeric.Elem) numeric.Elem {
	return Call("copysign", ex(mag), ex(sgn))
}

func (lib) Maximum(a, b numeric.Elem) numeric.Elem { return Call("max", ex(a), ex(b)) }

func (lib) NanToNum(a numeric.Elem, nan float64) numeric.Elem {
	return Call("nan_to_num", ex(a), Const(nan))
}

func (lib) Eq(a, b numeric.Elem) numeric.Elem { return Infix("==", ex(a), ex(b)) }
func (lib) Ne(a, b numeric.Elem) numeric.Elem { return Infix("!=", ex(a), ex(b)) }
func (lib) Lt(a, b numeric.Elem) numeric.Elem { return Infix("<", ex(a), ex(b)) }
func (lib) Gt(a, b numeric.Elem) numeric.Elem { return Infix(">", ex(a), ex(b)) }

func (lib) IsClose(a, b numeric.Elem, rtol, atol float64) numeric.Elem {
	return Call("isclose", ex(a), ex(b), Const(rtol), Const(atol))
}

func (lib) And(a, b numeric.Elem) numeric.Elem { return Infix("&&", ex(a), ex(b)) }
func (lib) Or(a, b numeric.Elem) numeric.Elem  { return Infix("||", ex(a), ex(b)) }
func (lib) Not(a numeric.Elem) numeric.Elem    { return Call("not", ex(a)) }
