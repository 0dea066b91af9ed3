package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/branding"
	"github.com/linkshell-labs/linkshell/internal/updater"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionCheck {
			return checkLatest(cmd)
		}

		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}

func checkLatest(cmd *cobra.Command) error {
	u := updater.New(buildVersion)
	release, err := u.CheckLatestVersion()
	if err != nil {
		return fmt.Errorf("checking latest release: %w", err)
	}

	available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
	if err != nil {
		// Unparseable local version (e.g. "dev"): just report the latest.
		fmt.Fprintf(cmd.OutOrStdout(), "Latest release: %s (%s)\n", release.Version, release.HTMLURL)
		return nil
	}

	if available {
		fmt.Fprintf(cmd.OutOrStdout(), "Update available: %s -> %s\n%s\n",
			buildVersion, release.Version, release.HTMLURL)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is up to date.\n", branding.CLIName(), buildVersion)
	}
	return nil
}
