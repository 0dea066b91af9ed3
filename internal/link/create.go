package link

import (
	"fmt"
	"os"
)

// Create dispatches to the creator matching kind.
func Create(kind Kind, source, target string) error {
	switch kind {
	case HardLink:
		return CreateHardLink(source, target)
	case SymLink:
		return CreateSymLink(source, target)
	case Junction:
		return CreateJunction(source, target)
	default:
		return fmt.Errorf("cannot create link of kind %q", kind)
	}
}

// CreateHardLink creates a second directory entry at target for the file at
// source. Hard links are file-only: a directory source fails with
// ErrNotAFile. The call is not idempotent — an existing target fails and is
// left unmodified.
func CreateHardLink(source, target string) error {
	fi, err := os.Stat(source)
	if os.IsNotExist(err) {
		return fmt.Errorf("create hardlink %s: %w", source, ErrPathNotFound)
	}
	if err != nil {
		return osErr("create hardlink", source, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("create hardlink %s: %w", source, ErrNotAFile)
	}

	if err := os.Link(source, target); err != nil {
		return osErr("create hardlink", target, err)
	}
	return nil
}

// CreateSymLink creates a symbolic link at target pointing to source. The
// link subtype (file vs directory) follows from what source is on disk; the
// OS primitive handles that distinction once the source has been stat'ed.
// On Windows this needs Developer Mode or elevation and otherwise fails with
// ErrInsufficientPrivilege.
func CreateSymLink(source, target string) error {
	if _, err := os.Stat(source); os.IsNotExist(err) {
		return fmt.Errorf("create symlink %s: %w", source, ErrPathNotFound)
	}

	if err := os.Symlink(source, target); err != nil {
		return osErr("create symlink", target, err)
	}
	return nil
}

// CreateJunction creates a directory junction at target redirecting to the
// directory at source. Junctions are directory-only and same-volume: a file
// source fails with ErrNotADirectory and a cross-volume target fails with an
// OS error. Only available on Windows.
func CreateJunction(source, target string) error {
	fi, err := os.Stat(source)
	if os.IsNotExist(err) {
		return fmt.Errorf("create junction %s: %w", source, ErrPathNotFound)
	}
	if err != nil {
		return osErr("create junction", source, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("create junction %s: %w", source, ErrNotADirectory)
	}

	return createJunction(source, target)
}
