package link

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestClassifyPlainFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plain.txt")
	writeFile(t, path, "nothing special")

	kind, err := Classify(path)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != None {
		t.Errorf("Classify(plain file) = %v, want None", kind)
	}
}

func TestClassifyPlainDirectory(t *testing.T) {
	tmp := t.TempDir()

	kind, err := Classify(tmp)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if kind != None {
		t.Errorf("Classify(plain directory) = %v, want None", kind)
	}
}

func TestClassifyMissingPath(t *testing.T) {
	tmp := t.TempDir()

	_, err := Classify(filepath.Join(tmp, "missing"))
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Classify(missing) = %v, want ErrPathNotFound", err)
	}
}

func TestResolveTargetForNone(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plain.txt")
	writeFile(t, path, "x")

	target, err := ResolveTarget(path, None)
	if err != nil {
		t.Fatalf("ResolveTarget: %v", err)
	}
	if target != "" {
		t.Errorf("ResolveTarget for None = %q, want empty", target)
	}
}

func TestInspectSymlink(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "target.txt")
	lnk := filepath.Join(tmp, "lnk")
	writeFile(t, source, "x")

	err := CreateSymLink(source, lnk)
	skipIfNoSymlinks(t, err)
	if err != nil {
		t.Fatalf("CreateSymLink: %v", err)
	}

	info, err := Inspect(lnk)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Kind != SymLink {
		t.Errorf("Kind = %v, want SymLink", info.Kind)
	}
	if info.Target != source {
		t.Errorf("Target = %q, want %q", info.Target, source)
	}
	if !info.TargetExists {
		t.Error("TargetExists = false, want true")
	}

	// The target existence flag tracks the filesystem.
	if err := os.Remove(source); err != nil {
		t.Fatal(err)
	}
	info, err = Inspect(lnk)
	if err != nil {
		t.Fatalf("Inspect after remove: %v", err)
	}
	if info.Kind != SymLink {
		t.Errorf("Kind after remove = %v, want SymLink", info.Kind)
	}
	if info.TargetExists {
		t.Error("TargetExists = true for a dangling link, want false")
	}
}

func TestInspectRelativeSymlinkTarget(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "target.txt"), "x")
	lnk := filepath.Join(tmp, "lnk")

	// Relative target, resolved against the link's parent directory.
	if err := os.Symlink("target.txt", lnk); err != nil {
		if runtime.GOOS == "windows" {
			t.Skipf("symlink creation not permitted: %v", err)
		}
		t.Fatal(err)
	}

	info, err := Inspect(lnk)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Target != "target.txt" {
		t.Errorf("Target = %q, want %q", info.Target, "target.txt")
	}
	if !info.TargetExists {
		t.Error("TargetExists = false, want true for relative target in same directory")
	}
}

func TestInspectPlainPathHasNoTarget(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plain.txt")
	writeFile(t, path, "x")

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Kind != None {
		t.Errorf("Kind = %v, want None", info.Kind)
	}
	if info.Target != "" || info.TargetExists {
		t.Errorf("plain path reported target %q (exists=%v), want none", info.Target, info.TargetExists)
	}
}
