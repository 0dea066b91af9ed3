package link

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by creation and classification. Callers match
// them with errors.Is to decide on recovery (e.g., relaunching elevated).
var (
	// ErrNotAFile means a hard link was requested for a non-regular-file source.
	ErrNotAFile = errors.New("source is not a regular file")
	// ErrNotADirectory means a junction was requested for a non-directory source.
	ErrNotADirectory = errors.New("source is not a directory")
	// ErrPathNotFound means the given path does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrInsufficientPrivilege means the OS refused the operation for lack of
	// privilege. On Windows, symbolic links need Developer Mode or elevation.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	// ErrUnsupported means the operation is not available on this platform.
	ErrUnsupported = errors.New("not supported on this platform")
)

// OSError wraps a failure reported by the underlying OS call so the message
// names the failed operation, the path, and the OS-reported reason.
type OSError struct {
	Op   string // "create hardlink", "create symlink", "create junction", "query reparse point"
	Path string
	Err  error
}

func (e *OSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OSError) Unwrap() error {
	return e.Err
}

// osErr builds an OSError, passing privilege failures through as
// ErrInsufficientPrivilege so callers can trigger an elevated relaunch.
func osErr(op, path string, err error) error {
	if isPrivilegeError(err) {
		return fmt.Errorf("%s %s: %w", op, path, ErrInsufficientPrivilege)
	}
	return &OSError{Op: op, Path: path, Err: err}
}
