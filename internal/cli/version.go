package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// VersionInfo is the version payload for JSON output.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Version: Version, GoVersion: runtime.Version()}
			if rootOpts.Format == "json" {
				formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return formatter.Success(info)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fourvec %s (%s)\n", info.Version, info.GoVersion)
			return nil
		},
	}
}
