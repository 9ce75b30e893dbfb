package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fourvec/fourvec/pkg/vector"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Vectors []string
	Params  []float64
}

// EvalOutput is the result of one evaluated operation.
type EvalOutput struct {
	Op     string        `json:"op"`
	Class  string        `json:"class"`
	Vector *VectorOutput `json:"vector,omitempty"`
	Scalar *float64      `json:"scalar,omitempty"`
	Bool   *bool         `json:"bool,omitempty"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op>",
		Short: "Evaluate one operation over vector literals",
		Long: `Evaluate a single operation over vectors given as field=value lists.

Field names select the coordinate kinds and flavor, the same way
scenario files do: {x, y} is a generic planar vector, {pt, phi, eta,
mass} a four-momentum in polar coordinates.

Examples:
  fourvec eval add --vec x=3,y=4 --vec x=5,y=12
  fourvec eval dot --vec x=1,y=0,z=0 --vec rho=2,phi=1.57,eta=0
  fourvec eval rotate_z --vec x=1,y=0 --param 1.5707963
  fourvec eval boost --vec px=0,py=0,pz=3,E=5 --vec x=0,y=0,z=-0.6`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Vectors, "vec", nil, "operand vector as field=value list (repeatable)")
	cmd.Flags().Float64SliceVar(&opts.Params, "param", nil, "numeric parameter (repeatable)")

	return cmd
}

func runEval(opts *EvalOptions, op string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	operands := make([]vector.Vector, len(opts.Vectors))
	for i, spec := range opts.Vectors {
		v, err := parseVectorSpec(spec)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("operand %d", i), err)
		}
		operands[i] = v
		formatter.VerboseLog("operand %d: %s", i, v)
	}

	res, err := vector.Eval(op, operands, opts.Params)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("evaluating %s", op), err)
	}

	out := EvalOutput{Op: op}
	switch {
	case res.Vector != nil:
		out.Class = "vector"
		vo := vectorOutput(*res.Vector)
		out.Vector = &vo
	case res.Scalar != nil:
		out.Class = "scalar"
		out.Scalar = res.Scalar
	case res.Bool != nil:
		out.Class = "bool"
		out.Bool = res.Bool
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}
	switch out.Class {
	case "vector":
		fmt.Fprintln(cmd.OutOrStdout(), res.Vector.String())
	case "scalar":
		fmt.Fprintln(cmd.OutOrStdout(), formatFloat(*res.Scalar))
	case "bool":
		fmt.Fprintln(cmd.OutOrStdout(), *res.Bool)
	}
	return nil
}

// formatFloat renders scalars in shortest round-tripping form,
// matching the trace record rendering.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
