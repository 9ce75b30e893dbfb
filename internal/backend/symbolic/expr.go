package symbolic

import (
	"strconv"
	"strings"
)

// exprKind discriminates expression nodes.
type exprKind uint8

const (
	kindConst exprKind = iota
	kindSymbol
	kindCall  // fn(args...)
	kindInfix // (a op b)
)

// Expr is one immutable expression-tree node. Expressions are built by
// the symbolic numeric.Lib and rendered with String; they are never
// evaluated or simplified here.
type Expr struct {
	kind  exprKind
	value float64 // kindConst
	name  string  // kindSymbol, kindCall fn name, kindInfix operator
	args  []*Expr
}

// Symbol returns a free-variable expression.
func Symbol(name string) *Expr {
	return &Expr{kind: kindSymbol, name: name}
}

// Const returns a literal expression.
func Const(v float64) *Expr {
	return &Expr{kind: kindConst, value: v}
}

// Call returns a function-application expression.
func Call(fn string, args ...*Expr) *Expr {
	return &Expr{kind: kindCall, name: fn, args: args}
}

// Infix returns a binary-operator expression.
func Infix(op string, a, b *Expr) *Expr {
	return &Expr{kind: kindInfix, name: op, args: []*Expr{a, b}}
}

// String renders the expression with full parenthesization of infix
// nodes, so the rendering is unambiguous without precedence rules.
func (e *Expr) String() string {
	switch e.kind {
	case kindConst:
		return strconv.FormatFloat(e.value, 'g', -1, 64)
	case kindSymbol:
		return e.name
	case kindCall:
		parts := make([]string, len(e.args))
		for i, a := range e.args {
			parts[i] = a.String()
		}
		return e.name + "(" + strings.Join(parts, ", ") + ")"
	case kindInfix:
		return "(" + e.args[0].String() + " " + e.name + " " + e.args[1].String() + ")"
	default:
		return "?"
	}
}
