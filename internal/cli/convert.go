package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Vector string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <kind>",
		Short: "Convert a vector to another coordinate kind",
		Long: `Convert a vector literal to the named coordinate kind.

Kinds are hyphenated axis names: "xy", "rhophi-eta", "xy-z-t",
"rhophi-eta-tau", and so on. Conversion across dimensionalities
follows the promotion rule: missing axes appear as zero, a grown tau
carries the spatial magnitude.

Examples:
  fourvec convert rhophi --vec x=3,y=4
  fourvec convert xy-z-t --vec pt=2,phi=0.5,eta=1.1,mass=0.14`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Vector, "vec", "", "vector as field=value list (required)")
	_ = cmd.MarkFlagRequired("vec")

	return cmd
}

func runConvert(opts *ConvertOptions, kind string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	v, err := parseVectorSpec(opts.Vector)
	if err != nil {
		return WrapExitError(ExitCommandError, "parsing vector", err)
	}
	formatter.VerboseLog("input: %s", v)

	converted, err := v.ToKind(kind)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("converting to %q", kind), err)
	}

	if opts.Format == "json" {
		return formatter.Success(vectorOutput(converted))
	}
	fmt.Fprintln(cmd.OutOrStdout(), converted.String())
	return nil
}
