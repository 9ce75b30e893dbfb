package dispatch

// OpInfo describes one operation for dynamic callers (the CLI and the
// scenario harness), which must validate user-supplied operand and
// parameter counts before Call, since Call treats a mismatch as a
// programmer error and panics.
type OpInfo struct {
	Name   string
	Arity  int
	Params int // -1: matrix-sized, dim*dim entries
	MinDim int
	MaxDim int
}

// Info returns the operation's description, or false for names outside
// the fixed operation set.
func Info(op string) (OpInfo, bool) {
	def, ok := opIndex[op]
	if !ok {
		return OpInfo{}, false
	}
	return OpInfo{
		Name:   def.name,
		Arity:  def.arity,
		Params: def.params,
		MinDim: def.minDim,
		MaxDim: def.maxDim,
	}, true
}

// Ops lists every operation name in declaration order.
func Ops() []string {
	out := make([]string, len(opDefs))
	for i := range opDefs {
		out[i] = opDefs[i].name
	}
	return out
}
