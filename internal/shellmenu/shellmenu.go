package shellmenu

import (
	"errors"
	"fmt"

	"github.com/linkshell-labs/linkshell/internal/branding"
)

// ErrUnsupported means context-menu integration is not available on this
// platform.
var ErrUnsupported = errors.New("context-menu integration not supported on this platform")

// classRoots are the HKCR subtrees that receive a menu entry: one for files
// of any type, one for directories.
var classRoots = []string{`*`, `Directory`}

// menuKeyPath returns the shell key for a class root, e.g.
// `*\shell\LinkShell`.
func menuKeyPath(classRoot string) string {
	return classRoot + `\shell\` + branding.MenuKey()
}

// commandLine builds the command the file manager runs for a selected path.
// The selection lands in the interactive form as the pre-filled source.
func commandLine(exePath string) string {
	return fmt.Sprintf(`"%s" form --source "%%1"`, exePath)
}
