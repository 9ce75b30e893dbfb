package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fourvec/fourvec/internal/coords"
	"github.com/fourvec/fourvec/internal/dispatch"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Op  string
	Dim int
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Dump the dispatch table",
		Long: `Dump the dispatch table: for every operation and operand signature
tuple, the canonical form that serves it, how many operand conversions
the slot performs, and the result.

Examples:
  fourvec table --op dot --dim 2
  fourvec table --op boost_p4 --format json
  fourvec table | wc -l`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", "", "filter to one operation")
	cmd.Flags().IntVar(&opts.Dim, "dim", 0, "filter to one dimensionality (2, 3 or 4)")

	return cmd
}

func runTable(opts *TableOptions, cmd *cobra.Command) error {
	if opts.Op != "" {
		if _, ok := dispatch.Info(opts.Op); !ok {
			return NewExitError(ExitCommandError, fmt.Sprintf("unknown operation %q", opts.Op))
		}
	}
	if opts.Dim != 0 && (opts.Dim < 2 || opts.Dim > 4) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid dimensionality %d: want 2, 3 or 4", opts.Dim))
	}

	var entries []dispatch.EntryInfo
	for _, e := range dispatch.Entries() {
		if opts.Op != "" && e.Op != opts.Op {
			continue
		}
		if opts.Dim != 0 && entryDim(e) != opts.Dim {
			continue
		}
		entries = append(entries, e)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(entries)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tOPERANDS\tFORM\tCONVERSIONS\tRESULT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			e.Op, strings.Join(e.Operands, " "), e.Form, e.Conversions, e.Result)
	}
	return w.Flush()
}

// entryDim reads the slot's dimensionality off its first operand kind.
func entryDim(e dispatch.EntryInfo) int {
	sig, err := coords.ParseSignature(e.Operands[0])
	if err != nil {
		return 0
	}
	return sig.Dim()
}
