package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fourvec/fourvec/internal/harness"
	"github.com/fourvec/fourvec/internal/scenario"
	"github.com/fourvec/fourvec/internal/trace"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database   string
	CollectAll bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario-dir>",
		Short: "Run scenarios from CUE files",
		Long: `Load every scenario from the CUE package in the directory, execute
their steps in order, check expected outcomes, and report per step.

With --db, every evaluated operation is appended to the trace store as
a content-addressed record; inspect stored runs with "fourvec trace".

Exit code 1 means at least one scenario's expectations failed.

Examples:
  fourvec run ./scenarios
  fourvec run --db ./trace.db ./scenarios
  fourvec run --collect-all ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to trace database (optional)")
	cmd.Flags().BoolVar(&opts.CollectAll, "collect-all", false, "report all loading errors instead of stopping at the first")

	return cmd
}

func runScenarios(opts *RunOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	mode := scenario.LoadModeFailFast
	if opts.CollectAll {
		mode = scenario.LoadModeCollectAll
	}
	loaded, loadErrs := scenario.LoadDir(dir, mode)
	if len(loadErrs) > 0 {
		for _, err := range loadErrs {
			if le, ok := err.(*scenario.LoadError); ok {
				formatter.Error(le.Code, le.Message, nil)
			} else {
				formatter.Error(scenario.ErrCodeGeneric, err.Error(), nil)
			}
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("loading scenarios from %s failed", dir))
	}
	formatter.VerboseLog("loaded %d scenarios from %d files", len(loaded.Scenarios), loaded.FileCount)

	var store *trace.Store
	if opts.Database != "" {
		var err error
		store, err = trace.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "opening trace database", err)
		}
		defer store.Close()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := harness.New(store)
	var reports []harness.Report
	failed := 0
	for _, s := range loaded.Scenarios {
		res, err := runner.Run(ctx, s)
		if err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("running scenario %q", s.Name), err)
		}
		if !res.Pass {
			failed++
		}
		reports = append(reports, harness.NewReport(res))
	}

	if opts.Format == "json" {
		if err := formatter.Success(reports); err != nil {
			return err
		}
	} else {
		for _, rep := range reports {
			if err := rep.WriteYAML(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", failed, len(loaded.Scenarios)))
	}
	return nil
}
