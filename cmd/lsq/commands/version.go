package commands

import (
	"github.com/spf13/cobra"
)

// userAgent is sent with every request made by the CLI.
var userAgent = "lsq/dev"

// SetUserAgent derives the User-Agent header from the build version.
func SetUserAgent(version string) {
	userAgent = "lsq/" + version
}

// VersionInfo describes the build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the lsq CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return renderProperties(cmd.OutOrStdout(), info, []property{
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
			})
		},
	}
}
