package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/elevate"
	"github.com/linkshell-labs/linkshell/internal/shellmenu"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for link-creation capabilities",
	Long: `Report what this host supports: symbolic link creation without
elevation, junction availability, current elevation state, config directory,
and context-menu integration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctorChecks(cmd.OutOrStdout())
		return nil
	},
}

func runDoctorChecks(w io.Writer) {
	fmt.Fprintln(w, "Environment check:")

	// Config directory.
	if _, err := os.Stat(config.Dir()); err == nil {
		fmt.Fprintf(w, "  [ OK ] config directory %s exists\n", config.Dir())
	} else {
		fmt.Fprintf(w, "  [ -- ] config directory %s not yet created\n", config.Dir())
	}

	// Elevation state.
	if elevate.IsElevated() {
		fmt.Fprintln(w, "  [ OK ] running elevated")
	} else if elevate.Supported() {
		fmt.Fprintln(w, "  [ -- ] not elevated; symlink/junction creation may relaunch")
	} else {
		fmt.Fprintln(w, "  [ OK ] not elevated (no elevation needed on this platform)")
	}

	// Symlink capability, probed with a throwaway link.
	if symlinkProbe() {
		fmt.Fprintln(w, "  [ OK ] symbolic links can be created by this process")
	} else {
		fmt.Fprintln(w, "  [MISS] symbolic link creation failed (needs Developer Mode or elevation)")
	}

	// Junction availability.
	if runtime.GOOS == "windows" {
		fmt.Fprintln(w, "  [ OK ] directory junctions available")
	} else {
		fmt.Fprintf(w, "  [ -- ] directory junctions unavailable on %s\n", runtime.GOOS)
	}

	// Context-menu integration.
	if installed, err := shellmenu.Installed(); err != nil {
		fmt.Fprintf(w, "  [MISS] context-menu check failed: %v\n", err)
	} else if installed {
		fmt.Fprintln(w, "  [ OK ] context-menu entry installed")
	} else {
		fmt.Fprintln(w, "  [ -- ] context-menu entry not installed")
	}
}

// symlinkProbe attempts a temporary symlink to learn whether the process
// can create symbolic links at all.
func symlinkProbe() bool {
	dir, err := os.MkdirTemp("", "linkshell-probe-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	probe := filepath.Join(dir, "probe")
	if err := os.Symlink(dir, probe); err != nil {
		return false
	}
	return true
}
