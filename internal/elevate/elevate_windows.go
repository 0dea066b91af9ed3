//go:build windows

package elevate

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Supported reports whether this platform has an elevation request
// mechanism.
func Supported() bool {
	return true
}

// Relaunch starts the current executable again with the given arguments
// under a UAC elevation prompt ("runas"). It returns once the new process
// has been started; the caller is expected to exit without doing anything
// else.
func Relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(quoteArgs(args))
	if err != nil {
		return err
	}

	err = windows.ShellExecute(0, verb, file, params, nil, windows.SW_NORMAL)
	if err != nil {
		return fmt.Errorf("requesting elevation: %w", err)
	}
	return nil
}

// quoteArgs joins arguments into a single command line, quoting the ones
// that need it the way the Windows command-line parser expects.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = syscall.EscapeArg(a)
	}
	return strings.Join(quoted, " ")
}
