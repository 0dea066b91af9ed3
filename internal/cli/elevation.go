package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/elevate"
)

// ensureElevated is phase 1 of the two-phase startup for privileged
// operations. If the platform gates the operation behind elevation and this
// process lacks it, the same executable is relaunched with the same
// arguments under an elevation request and true is returned — the caller
// prints nothing further and exits. Auto-relaunch can be switched off with
// the elevate.auto config key, in which case the operation proceeds and any
// privilege failure surfaces normally.
func ensureElevated(cmd *cobra.Command, noElevate bool) (relaunched bool, err error) {
	if !elevate.Supported() || elevate.IsElevated() {
		return false, nil
	}
	if noElevate || !config.GetBool(config.KeyAutoElevate) {
		return false, nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Elevation required; relaunching with an elevation request...")
	if err := elevate.Relaunch(os.Args[1:]); err != nil {
		return false, fmt.Errorf("relaunching elevated: %w", err)
	}
	return true, nil
}
