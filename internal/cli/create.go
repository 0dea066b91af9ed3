package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/label"
	"github.com/linkshell-labs/linkshell/internal/link"
)

var createNoElevate bool

func init() {
	createCmd.Flags().BoolVar(&createNoElevate, "no-elevate", false, "Fail instead of relaunching elevated when privilege is missing")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <type> <source> <target>",
	Short: "Create a link headlessly",
	Long: `Create a link of the given type from source to target without prompting.

Types:
  hardlink   second directory entry for a file (file-only, same volume)
  symlink    symbolic link to a file or directory (may cross volumes)
  junction   directory junction (directory-only, same volume, Windows)

Example:
  linkshell create hardlink C:\data\report.txt C:\links\report_hl.txt
  linkshell create junction C:\data\shared C:\links\shared`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := link.ParseKind(args[0])
		if err != nil {
			return err
		}
		source, target := args[1], args[2]

		// Symbolic links and junctions may need elevation on the host OS.
		if kind == link.SymLink || kind == link.Junction {
			relaunched, err := ensureElevated(cmd, createNoElevate)
			if err != nil {
				return err
			}
			if relaunched {
				return nil
			}
		}

		if err := link.Create(kind, source, target); err != nil {
			if errors.Is(err, link.ErrInsufficientPrivilege) {
				return fmt.Errorf("%w (rerun from an elevated prompt, or enable Developer Mode for symlinks)", err)
			}
			return err
		}

		p := label.Printer(config.Get(config.KeyLanguage))
		fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("Created %s: %s", label.Kind(p, kind), target))
		return nil
	},
}
