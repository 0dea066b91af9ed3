//go:build !windows

package link

import (
	"fmt"
	"os"
	"syscall"
)

// Symbolic links need no special privilege on POSIX systems; privilege
// failures there are plain permission errors (OSError).
func isPrivilegeError(err error) bool {
	return false
}

func createJunction(source, target string) error {
	return fmt.Errorf("create junction %s: %w", target, ErrUnsupported)
}

// classifyReparse is only reached for paths with the symlink mode bit set;
// without reparse points there is nothing further to distinguish.
func classifyReparse(path string) Kind {
	return SymLink
}

func isJunction(path string) bool {
	return false
}

func junctionTarget(path string) (string, error) {
	return "", fmt.Errorf("query reparse point %s: %w", path, ErrUnsupported)
}

// linkCount returns the inode link count.
func linkCount(path string) (uint32, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("stat %s: %w", path, ErrUnsupported)
	}
	return uint32(st.Nlink), nil
}

// HardLinkNames requires a sibling-name enumeration the OS does not expose
// here; hard links on POSIX are found by scanning for matching inodes,
// which is out of scope for a single-path query.
func HardLinkNames(path string) ([]string, error) {
	return nil, fmt.Errorf("list hardlink names %s: %w", path, ErrUnsupported)
}
