package trace

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/fourvec/fourvec/pkg/vector"
)

// Operand is one vector operand as recorded: its coordinate kinds,
// flavor and stored elements in accessor order.
type Operand struct {
	Kind     string    `json:"kind"`
	Momentum bool      `json:"momentum"`
	Elements []float64 `json:"elements"`
}

// Result is the outcome of one operation. Exactly one of Vector,
// Scalar or Bool is populated, per Class.
type Result struct {
	Class  string   `json:"class"` // "vector", "scalar" or "bool"
	Vector *Operand `json:"vector,omitempty"`
	Scalar *float64 `json:"scalar,omitempty"`
	Bool   *bool    `json:"bool,omitempty"`
}

// Record is one evaluated operation: what was asked, over what, and
// what came out. Records are value-complete — replaying one needs no
// context beyond the record itself.
type Record struct {
	Op       string    `json:"op"`
	Operands []Operand `json:"operands"`
	Params   []float64 `json:"params,omitempty"`
	Result   Result    `json:"result"`
}

// RecordOperand captures a vector value.
func RecordOperand(v vector.Vector) Operand {
	return Operand{Kind: v.Kind(), Momentum: v.IsMomentum(), Elements: v.Floats()}
}

// VectorResult wraps a vector outcome.
func VectorResult(v vector.Vector) Result {
	op := RecordOperand(v)
	return Result{Class: "vector", Vector: &op}
}

// ScalarResult wraps a scalar outcome.
func ScalarResult(f float64) Result { return Result{Class: "scalar", Scalar: &f} }

// BoolResult wraps a boolean outcome.
func BoolResult(b bool) Result { return Result{Class: "bool", Bool: &b} }

// elemValue lifts one element into a canonical-JSON value. NaN and the
// infinities are intentional data in this domain but JSON numbers
// cannot carry them, so non-finite elements become string tokens.
func elemValue(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return f
	}
}

func elemsValue(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = elemValue(f)
	}
	return out
}

func (o Operand) canonicalValue() map[string]any {
	return map[string]any{
		"kind":     o.Kind,
		"momentum": o.Momentum,
		"elements": elemsValue(o.Elements),
	}
}

// canonicalValue renders the record as the plain value tree hashed by
// RecordID. Optional fields are omitted rather than nulled; canonical
// JSON forbids null.
func (r Record) canonicalValue() map[string]any {
	operands := make([]any, len(r.Operands))
	for i, o := range r.Operands {
		operands[i] = o.canonicalValue()
	}
	obj := map[string]any{
		"op":       r.Op,
		"operands": operands,
		"class":    r.Result.Class,
	}
	if len(r.Params) > 0 {
		obj["params"] = elemsValue(r.Params)
	}
	switch {
	case r.Result.Vector != nil:
		obj["result"] = r.Result.Vector.canonicalValue()
	case r.Result.Scalar != nil:
		obj["result"] = elemValue(*r.Result.Scalar)
	case r.Result.Bool != nil:
		obj["result"] = *r.Result.Bool
	}
	return obj
}

// CanonicalJSON renders the record in its hashed form. This is the
// payload persisted by the store and replayed for verification.
func (r Record) CanonicalJSON() ([]byte, error) {
	return MarshalCanonical(r.canonicalValue())
}

// ParseRecord decodes a record from its persisted payload.
func ParseRecord(payload []byte) (Record, error) {
	var raw struct {
		Op       string            `json:"op"`
		Operands []json.RawMessage `json:"operands"`
		Params   []any             `json:"params"`
		Class    string            `json:"class"`
		Result   json.RawMessage   `json:"result"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}

	rec := Record{Op: raw.Op, Result: Result{Class: raw.Class}}
	for i, ob := range raw.Operands {
		op, err := parseOperand(ob)
		if err != nil {
			return Record{}, fmt.Errorf("operand %d: %w", i, err)
		}
		rec.Operands = append(rec.Operands, op)
	}
	for i, p := range raw.Params {
		f, err := parseElem(p)
		if err != nil {
			return Record{}, fmt.Errorf("param %d: %w", i, err)
		}
		rec.Params = append(rec.Params, f)
	}

	switch raw.Class {
	case "vector":
		op, err := parseOperand(raw.Result)
		if err != nil {
			return Record{}, fmt.Errorf("result: %w", err)
		}
		rec.Result.Vector = &op
	case "scalar":
		var v any
		if err := json.Unmarshal(raw.Result, &v); err != nil {
			return Record{}, fmt.Errorf("result: %w", err)
		}
		f, err := parseElem(v)
		if err != nil {
			return Record{}, fmt.Errorf("result: %w", err)
		}
		rec.Result.Scalar = &f
	case "bool":
		var b bool
		if err := json.Unmarshal(raw.Result, &b); err != nil {
			return Record{}, fmt.Errorf("result: %w", err)
		}
		rec.Result.Bool = &b
	default:
		return Record{}, fmt.Errorf("parse record: unknown result class %q", raw.Class)
	}
	return rec, nil
}

func parseOperand(payload []byte) (Operand, error) {
	var raw struct {
		Kind     string `json:"kind"`
		Momentum bool   `json:"momentum"`
		Elements []any  `json:"elements"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Operand{}, err
	}
	op := Operand{Kind: raw.Kind, Momentum: raw.Momentum}
	for i, e := range raw.Elements {
		f, err := parseElem(e)
		if err != nil {
			return Operand{}, fmt.Errorf("element %d: %w", i, err)
		}
		op.Elements = append(op.Elements, f)
	}
	return op, nil
}

// parseElem inverts elemValue: numbers pass through, the three
// non-finite string tokens come back as their float values.
func parseElem(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		switch val {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f, nil
		}
		return 0, fmt.Errorf("unrecognized element token %q", val)
	default:
		return 0, fmt.Errorf("unrecognized element type %T", v)
	}
}
