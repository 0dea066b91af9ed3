//go:build !windows

package shellmenu

// Install is unavailable without a Windows registry.
func Install(exePath string) error {
	return ErrUnsupported
}

// Uninstall is unavailable without a Windows registry.
func Uninstall() error {
	return ErrUnsupported
}

// Installed always reports false here.
func Installed() (bool, error) {
	return false, nil
}
