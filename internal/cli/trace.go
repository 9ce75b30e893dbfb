package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fourvec/fourvec/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	RunToken string
	Verify   bool
}

// RunSummary is one stored run in listing form.
type RunSummary struct {
	Token     string `json:"token"`
	Scenario  string `json:"scenario"`
	CreatedAt string `json:"created_at"`
}

// RecordSummary is one stored record in listing form.
type RecordSummary struct {
	Seq      int64  `json:"seq"`
	Op       string `json:"op"`
	RecordID string `json:"record_id"`
	Class    string `json:"class"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect the trace store",
		Long: `Inspect stored runs and their records.

Without --run, lists all runs newest first. With --run, lists that
run's records in sequence order. With --verify, re-hashes every stored
payload against its record ID and fails if any record was tampered
with.

Examples:
  fourvec trace --db ./trace.db
  fourvec trace --db ./trace.db --run 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  fourvec trace --db ./trace.db --run 1b4e28ba-... --verify`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceCmd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to trace database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunToken, "run", "", "run token to inspect")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "verify record integrity (requires --run)")

	return cmd
}

func runTraceCmd(opts *TraceOptions, cmd *cobra.Command) error {
	if opts.Verify && opts.RunToken == "" {
		return NewExitError(ExitCommandError, "--verify requires --run")
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := trace.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening trace database", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.RunToken == "" {
		return listRuns(ctx, store, formatter, cmd)
	}
	if opts.Verify {
		return verifyRun(ctx, store, opts.RunToken, formatter)
	}
	return listRecords(ctx, store, opts.RunToken, formatter, cmd)
}

func listRuns(ctx context.Context, store *trace.Store, formatter *OutputFormatter, cmd *cobra.Command) error {
	runs, err := store.Runs(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing runs", err)
	}

	summaries := make([]RunSummary, len(runs))
	for i, r := range runs {
		summaries[i] = RunSummary{
			Token:     r.Token,
			Scenario:  r.Scenario,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(summaries)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tSCENARIO\tCREATED")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Token, s.Scenario, s.CreatedAt)
	}
	return w.Flush()
}

func listRecords(ctx context.Context, store *trace.Store, token string, formatter *OutputFormatter, cmd *cobra.Command) error {
	records, err := store.Records(ctx, token)
	if err != nil {
		return WrapExitError(ExitCommandError, "listing records", err)
	}
	if len(records) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no records for run %q", token))
	}

	summaries := make([]RecordSummary, len(records))
	for i, r := range records {
		summaries[i] = RecordSummary{
			Seq:      r.Seq,
			Op:       r.Record.Op,
			RecordID: r.RecordID,
			Class:    r.Record.Result.Class,
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(summaries)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tOP\tCLASS\tRECORD")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Seq, s.Op, s.Class, s.RecordID)
	}
	return w.Flush()
}

func verifyRun(ctx context.Context, store *trace.Store, token string, formatter *OutputFormatter) error {
	mismatched, err := store.Verify(ctx, token)
	if err != nil {
		return WrapExitError(ExitCommandError, "verifying run", err)
	}
	if len(mismatched) > 0 {
		formatter.Error("E001", fmt.Sprintf("%d records failed verification", len(mismatched)), strings.Join(mismatched, ", "))
		return NewExitError(ExitFailure, fmt.Sprintf("run %q is not intact", token))
	}
	return formatter.Success(fmt.Sprintf("run %q verified", token))
}
