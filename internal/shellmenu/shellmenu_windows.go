//go:build windows

package shellmenu

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/linkshell-labs/linkshell/internal/branding"
)

// Install writes the context-menu entries for files and directories. The
// menu command invokes exePath with the selected path pre-filled into the
// interactive form.
func Install(exePath string) error {
	for _, root := range classRoots {
		if err := installEntry(root, exePath); err != nil {
			// Roll back entries written so far.
			_ = Uninstall()
			return err
		}
	}
	return nil
}

func installEntry(classRoot, exePath string) error {
	keyPath := menuKeyPath(classRoot)

	k, _, err := registry.CreateKey(registry.CLASSES_ROOT, keyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating registry key %s: %w", keyPath, err)
	}
	defer k.Close()

	if err := k.SetStringValue("", branding.DisplayName()); err != nil {
		return fmt.Errorf("setting menu label for %s: %w", keyPath, err)
	}
	if err := k.SetStringValue("Icon", exePath); err != nil {
		return fmt.Errorf("setting menu icon for %s: %w", keyPath, err)
	}

	cmdPath := keyPath + `\command`
	ck, _, err := registry.CreateKey(registry.CLASSES_ROOT, cmdPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("creating registry key %s: %w", cmdPath, err)
	}
	defer ck.Close()

	if err := ck.SetStringValue("", commandLine(exePath)); err != nil {
		return fmt.Errorf("setting menu command for %s: %w", cmdPath, err)
	}
	return nil
}

// Uninstall removes the context-menu entries. Missing keys are not an
// error so uninstall is safe to repeat.
func Uninstall() error {
	var firstErr error
	for _, root := range classRoots {
		keyPath := menuKeyPath(root)
		for _, p := range []string{keyPath + `\command`, keyPath} {
			if err := registry.DeleteKey(registry.CLASSES_ROOT, p); err != nil && err != registry.ErrNotExist && firstErr == nil {
				firstErr = fmt.Errorf("deleting registry key %s: %w", p, err)
			}
		}
	}
	return firstErr
}

// Installed reports whether the file entry is present.
func Installed() (bool, error) {
	k, err := registry.OpenKey(registry.CLASSES_ROOT, menuKeyPath(`*`), registry.QUERY_VALUE)
	if err == registry.ErrNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening registry key: %w", err)
	}
	k.Close()
	return true, nil
}
