// Package shellmenu manages the optional file-manager context-menu entry.
// On Windows it writes command keys under HKEY_CLASSES_ROOT for files and
// directories so the host file manager can hand a selected path to the
// interactive form. Writing HKCR requires elevation. Other platforms report
// ErrUnsupported.
package shellmenu
