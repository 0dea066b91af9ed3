// Package link creates and classifies filesystem links: hard links
// (file-to-file), symbolic links (file or directory), and directory
// junctions (directory-to-directory reparse points on Windows).
//
// Creation and classification are stateless, synchronous operations against
// the filesystem. Junction support requires Windows; on other platforms the
// junction operations return ErrUnsupported while hard links and symbolic
// links use the POSIX equivalents.
package link
