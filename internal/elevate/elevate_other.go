//go:build !windows

package elevate

import "os"

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// Supported reports whether this platform has an elevation request
// mechanism. Link creation on POSIX systems does not need one.
func Supported() bool {
	return false
}

// Relaunch is not available here; callers fall back to reporting the
// privilege failure.
func Relaunch(args []string) error {
	return ErrUnsupported
}
