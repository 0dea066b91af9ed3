package link

import (
	"fmt"
	"os"
	"path/filepath"
)

// Classify determines whether path is a hard link, symbolic link, or
// directory junction. A nonexistent path fails with ErrPathNotFound; any
// path whose metadata cannot be confidently read classifies as None rather
// than failing, since an arbitrary path legitimately may not be a link.
func Classify(path string) (Kind, error) {
	fi, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return None, fmt.Errorf("classify %s: %w", path, ErrPathNotFound)
	}
	if err != nil {
		return None, nil
	}

	// The symlink mode bit covers both symbolic links and, on Windows,
	// name-surrogate reparse points such as junctions. The platform hook
	// reads the reparse tag to tell them apart.
	if fi.Mode()&os.ModeSymlink != 0 {
		return classifyReparse(path), nil
	}

	if fi.IsDir() {
		if isJunction(path) {
			return Junction, nil
		}
		return None, nil
	}

	if fi.Mode().IsRegular() {
		if n, err := linkCount(path); err == nil && n > 1 {
			return HardLink, nil
		}
	}

	return None, nil
}

// ResolveTarget returns the recorded target of a link of the given kind.
// Hard links have no single target (all names are equal); the result is
// empty for HardLink and None. Junction targets are read from the reparse
// point's substitute name with the NT device prefix stripped.
func ResolveTarget(path string, kind Kind) (string, error) {
	switch kind {
	case SymLink:
		target, err := os.Readlink(path)
		if err != nil {
			return "", osErr("read symlink", path, err)
		}
		return target, nil
	case Junction:
		return junctionTarget(path)
	default:
		return "", nil
	}
}

// Info describes a classified path for display.
type Info struct {
	Path         string
	Kind         Kind
	Target       string
	TargetExists bool
}

// Inspect classifies path and, for symlinks and junctions, resolves the
// recorded target and checks whether it currently exists on disk. Relative
// symlink targets are resolved against the link's parent directory.
func Inspect(path string) (*Info, error) {
	kind, err := Classify(path)
	if err != nil {
		return nil, err
	}

	info := &Info{Path: path, Kind: kind}
	if kind == SymLink || kind == Junction {
		target, err := ResolveTarget(path, kind)
		if err != nil {
			// Target resolution is best effort; the classification stands.
			return info, nil
		}
		info.Target = target
		info.TargetExists = targetExists(path, target)
	}
	return info, nil
}

func targetExists(linkPath, target string) bool {
	if target == "" {
		return false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(linkPath), target)
	}
	_, err := os.Stat(target)
	return err == nil
}
