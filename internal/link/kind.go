package link

import "fmt"

// Kind identifies what sort of link a path is, or which sort to create.
type Kind int

const (
	// None means the path is not any kind of link.
	None Kind = iota
	// HardLink is a second directory entry for the same file content.
	// File-only, same-volume.
	HardLink
	// SymLink is a stored path string the OS transparently redirects to.
	// May target a file or a directory, may cross volumes.
	SymLink
	// Junction is a directory-only reparse point that redirects traversal
	// to another directory on the same volume.
	Junction
)

// String returns the canonical command-line name for the kind.
func (k Kind) String() string {
	switch k {
	case HardLink:
		return "hardlink"
	case SymLink:
		return "symlink"
	case Junction:
		return "junction"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// ParseKind converts a command-line name into a Kind. Only creatable kinds
// are accepted; "none" is not a valid input.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hardlink":
		return HardLink, nil
	case "symlink":
		return SymLink, nil
	case "junction":
		return Junction, nil
	default:
		return None, fmt.Errorf("unknown link type %q (expected hardlink, symlink, or junction)", s)
	}
}
