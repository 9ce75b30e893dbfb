package dispatch

import (
	"fmt"

	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/kernels"
	"github.com/fourvec/fourvec/internal/numeric"
)

// Key identifies one dispatch table slot. Arity-1 operations leave
// Sigs[1] at its zero value; keys are only ever compared within one
// operation, so the zero slot cannot collide.
type Key struct {
	Op   string
	Sigs [2]coords.Signature
}

// Entry is one resolved table slot: the synthesized kernel and the
// result signature the reconstructor builds from its raw output.
type Entry struct {
	op     *opDef
	form   *canonForm
	kernel kernels.Kernel
	out    coords.Signature
	cost   int
}

// table is populated once, below, and read-only afterwards.
var table map[Key]*Entry

func init() {
	registerOps()
	table = buildTable()
}

// buildTable walks every operation over every signature tuple of every
// dimensionality the operation exists at and fills the slot with the
// cheapest canonical form, wrapped in the conversions that close the
// gap. Ties on conversion count resolve to the earliest declared form,
// which is what keeps Cartesian preferred over polar, z over theta over
// eta, and t over tau. Each slot is visited exactly once, so the first
// fill is the only fill.
func buildTable() map[Key]*Entry {
	t := make(map[Key]*Entry)
	for i := range opDefs {
		op := &opDefs[i]
		for dim := op.minDim; dim <= op.maxDim; dim++ {
			sigs := coords.Signatures(dim)
			if op.arity == 1 {
				for _, s := range sigs {
					fill(t, op, dim, [2]coords.Signature{s})
				}
				continue
			}
			for _, s0 := range sigs {
				for _, s1 := range sigs {
					fill(t, op, dim, [2]coords.Signature{s0, s1})
				}
			}
		}
	}
	return t
}

func fill(t map[Key]*Entry, op *opDef, dim int, sigs [2]coords.Signature) {
	var best *canonForm
	bestCost := 0
	for fi := range op.forms {
		f := &op.forms[fi]
		cost := 0
		for oi := 0; oi < op.arity; oi++ {
			cost += conversionCost(sigs[oi], f.reqs[oi], dim)
		}
		if best == nil || cost < bestCost {
			best, bestCost = f, cost
		}
	}
	if best == nil {
		panic(fmt.Sprintf("dispatch: operation %q declares no canonical form", op.name))
	}

	e := &Entry{op: op, form: best, cost: bestCost}
	e.kernel = synthesize(op, best, bestCost, sigs)
	if best.out.class == outVector {
		e.out = resolveOut(best.out, dim, sigs[0])
	}
	t[Key{Op: op.name, Sigs: sigs}] = e
}

// synthesize wraps the canonical kernel in per-operand conversions.
// Zero-cost slots keep the canonical kernel itself, so the diagonal of
// the table carries no wrapper indirection.
func synthesize(op *opDef, f *canonForm, cost int, sigs [2]coords.Signature) kernels.Kernel {
	if cost == 0 {
		return f.kernel
	}
	return func(l numeric.Lib, operands [][]numeric.Elem, params []float64) []numeric.Elem {
		conv := make([][]numeric.Elem, len(operands))
		for i := range operands {
			conv[i] = convertOperand(l, sigs[i], f.reqs[i], operands[i])
		}
		return f.kernel(l, conv, params)
	}
}

// resolveOut fixes the result signature at build time. Pass axes take
// the first operand's stored kind, which the conversions left alone.
func resolveOut(spec outSpec, dim int, sig0 coords.Signature) coords.Signature {
	d := dim
	if spec.fixedDim != 0 {
		d = spec.fixedDim
	}
	out := coords.Signature{Azimuthal: spec.az}
	if d >= 3 {
		if spec.lonPass {
			out.Longitudinal = sig0.Longitudinal
		} else {
			out.Longitudinal = spec.lon
		}
	}
	if d >= 4 {
		if spec.tmpPass {
			out.Temporal = sig0.Temporal
		} else {
			out.Temporal = spec.tmp
		}
	}
	return out
}

// EntryInfo is one dispatch-table row in dump form, consumed by the
// table subcommand and pinned by a golden test.
type EntryInfo struct {
	Op          string   `json:"op" yaml:"op"`
	Operands    []string `json:"operands" yaml:"operands"`
	Form        string   `json:"form" yaml:"form"`
	Conversions int      `json:"conversions" yaml:"conversions"`
	Result      string   `json:"result" yaml:"result"`
}

// Entries dumps the full table in deterministic order: operations in
// declaration order, dimensionalities ascending, signatures in
// preference order.
func Entries() []EntryInfo {
	var infos []EntryInfo
	emit := func(op *opDef, sigs [2]coords.Signature) {
		e := table[Key{Op: op.name, Sigs: sigs}]
		info := EntryInfo{
			Op:          op.name,
			Form:        e.form.name,
			Conversions: e.cost,
		}
		for oi := 0; oi < op.arity; oi++ {
			info.Operands = append(info.Operands, sigs[oi].String())
		}
		switch e.form.out.class {
		case outScalar:
			info.Result = "scalar"
		case outBool:
			info.Result = "bool"
		default:
			info.Result = e.out.String()
		}
		infos = append(infos, info)
	}
	for i := range opDefs {
		op := &opDefs[i]
		for dim := op.minDim; dim <= op.maxDim; dim++ {
			sigs := coords.Signatures(dim)
			if op.arity == 1 {
				for _, s := range sigs {
					emit(op, [2]coords.Signature{s})
				}
				continue
			}
			for _, s0 := range sigs {
				for _, s1 := range sigs {
					emit(op, [2]coords.Signature{s0, s1})
				}
			}
		}
	}
	return infos
}
