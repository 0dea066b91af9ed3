package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/linkshell-labs/linkshell/internal/link"
)

func TestRunForm(t *testing.T) {
	in := strings.NewReader("1\n/data/report.txt\n/links/report_hl.txt\n")
	var out bytes.Buffer

	req, err := runForm(in, &out, "")
	if err != nil {
		t.Fatalf("runForm: %v", err)
	}
	if req.Kind != link.HardLink {
		t.Errorf("Kind = %v, want HardLink", req.Kind)
	}
	if req.Source != "/data/report.txt" {
		t.Errorf("Source = %q", req.Source)
	}
	if req.Target != "/links/report_hl.txt" {
		t.Errorf("Target = %q", req.Target)
	}
}

func TestRunFormUsesPrefilledSource(t *testing.T) {
	// Empty source input keeps the pre-filled value from the context menu.
	in := strings.NewReader("2\n\n/links/shared_sl\n")
	var out bytes.Buffer

	req, err := runForm(in, &out, "/data/shared")
	if err != nil {
		t.Fatalf("runForm: %v", err)
	}
	if req.Kind != link.SymLink {
		t.Errorf("Kind = %v, want SymLink", req.Kind)
	}
	if req.Source != "/data/shared" {
		t.Errorf("Source = %q, want pre-filled value", req.Source)
	}
}

func TestSelectFromListRejectsBadInput(t *testing.T) {
	items := []string{"a", "b", "c"}

	for _, input := range []string{"0\n", "4\n", "x\n", "\n"} {
		reader := bufio.NewReader(strings.NewReader(input))
		var out bytes.Buffer
		if _, err := selectFromList(reader, &out, "Pick:", items); err == nil {
			t.Errorf("selectFromList accepted %q", strings.TrimSpace(input))
		}
	}
}

func TestPromptPathRequiresValue(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer

	if _, err := promptPath(reader, &out, "Target path", ""); err == nil {
		t.Error("promptPath accepted empty input with no default")
	}
}

func TestDoctorChecksReport(t *testing.T) {
	var out bytes.Buffer
	runDoctorChecks(&out)

	report := out.String()
	if !strings.Contains(report, "Environment check:") {
		t.Errorf("doctor output missing header:\n%s", report)
	}
	if !strings.Contains(report, "symbolic link") {
		t.Errorf("doctor output missing symlink check:\n%s", report)
	}
}
