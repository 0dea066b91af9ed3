package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/branding"
	"github.com/linkshell-labs/linkshell/internal/shellmenu"
)

var integrateNoElevate bool

func init() {
	integrateCmd.PersistentFlags().BoolVar(&integrateNoElevate, "no-elevate", false, "Fail instead of relaunching elevated when privilege is missing")
	integrateCmd.AddCommand(integrateAddCmd)
	integrateCmd.AddCommand(integrateRemoveCmd)
	integrateCmd.AddCommand(integrateStatusCmd)
	rootCmd.AddCommand(integrateCmd)
}

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Manage the file-manager context-menu entry",
	Long: branding.DisplayName() + ` can add itself to the file manager's right-click menu for
files and directories. The menu entry opens the interactive form with the
selected path pre-filled. Registry writes require elevation.`,
}

var integrateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add the context-menu entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		relaunched, err := ensureElevated(cmd, integrateNoElevate)
		if err != nil {
			return err
		}
		if relaunched {
			return nil
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolving executable path: %w", err)
		}
		if err := shellmenu.Install(exe); err != nil {
			return fmt.Errorf("installing context-menu entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Context-menu entry installed.")
		return nil
	},
}

var integrateRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the context-menu entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		relaunched, err := ensureElevated(cmd, integrateNoElevate)
		if err != nil {
			return err
		}
		if relaunched {
			return nil
		}

		if err := shellmenu.Uninstall(); err != nil {
			return fmt.Errorf("removing context-menu entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Context-menu entry removed.")
		return nil
	},
}

var integrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the context-menu entry is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		installed, err := shellmenu.Installed()
		if err != nil {
			return fmt.Errorf("checking context-menu entry: %w", err)
		}
		if installed {
			fmt.Fprintln(cmd.OutOrStdout(), "Context-menu entry is installed.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Context-menu entry is not installed.")
		}
		return nil
	},
}
