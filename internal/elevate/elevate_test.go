package elevate

import (
	"errors"
	"runtime"
	"testing"
)

func TestRelaunchUnsupportedOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relaunch is supported on Windows")
	}

	if Supported() {
		t.Error("Supported = true off Windows")
	}
	if err := Relaunch([]string{"create", "symlink", "a", "b"}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Relaunch = %v, want ErrUnsupported", err)
	}
}
