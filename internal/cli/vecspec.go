package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fourvec/fourvec/pkg/vector"
)

// parseVectorSpec builds a vector from a "field=value,..." flag, e.g.
// "x=3,y=4" or "pt=2,phi=0.5,eta=1.1,mass=0.14". Field names carry the
// coordinate kinds and the flavor, exactly as in scenario files.
func parseVectorSpec(spec string) (vector.Vector, error) {
	fields := make(map[string]float64)
	for _, part := range strings.Split(spec, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return vector.Vector{}, fmt.Errorf("malformed field %q: want name=value", part)
		}
		name := strings.TrimSpace(kv[0])
		val, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("field %q: %w", name, err)
		}
		fields[name] = val
	}
	return vector.FromFields(fields)
}

// VectorOutput is the serialized form of a vector value.
type VectorOutput struct {
	Kind     string    `json:"kind"`
	Momentum bool      `json:"momentum"`
	Elements []float64 `json:"elements"`
}

func vectorOutput(v vector.Vector) VectorOutput {
	return VectorOutput{Kind: v.Kind(), Momentum: v.IsMomentum(), Elements: v.Floats()}
}
