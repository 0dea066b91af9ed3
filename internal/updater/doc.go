// Package updater checks GitHub for newer LinkShell releases. It compares
// the running build against the latest release tag with semver, caches the
// result on disk, and prints a non-blocking banner at startup when an
// update exists. Installing the newer binary is left to however the tool
// was installed; nothing here replaces files.
package updater
