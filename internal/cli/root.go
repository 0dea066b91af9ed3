package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/branding"
	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates and inspects filesystem links: hard links
(file-to-file), symbolic links (file or directory, cross-volume), and
directory junctions (directory-to-directory, same-volume reparse points).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the update banner for commands that print machine-readable
		// output or already talk about versions.
		name := cmd.Name()
		if name == "version" || name == "inspect" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
