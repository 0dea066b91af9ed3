package label

import (
	"testing"

	"github.com/linkshell-labs/linkshell/internal/link"
)

func TestKindLabelsEnglish(t *testing.T) {
	p := Printer("en")

	tests := []struct {
		kind link.Kind
		want string
	}{
		{link.HardLink, "Hard link (files only)"},
		{link.SymLink, "Symbolic link"},
		{link.Junction, "Directory junction (directories only)"},
		{link.None, "Not a link"},
	}

	for _, tt := range tests {
		if got := Kind(p, tt.kind); got != tt.want {
			t.Errorf("Kind(en, %v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindLabelsChinese(t *testing.T) {
	p := Printer("zh-CN")

	tests := []struct {
		kind link.Kind
		want string
	}{
		{link.HardLink, "硬链接（仅文件）"},
		{link.SymLink, "符号链接"},
		{link.Junction, "目录联接（仅目录）"},
		{link.None, "不是链接"},
	}

	for _, tt := range tests {
		if got := Kind(p, tt.kind); got != tt.want {
			t.Errorf("Kind(zh-CN, %v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"", "fr", "klingon"} {
		p := Printer(lang)
		if got := Kind(p, link.SymLink); got != "Symbolic link" {
			t.Errorf("Kind(%q, SymLink) = %q, want English fallback", lang, got)
		}
	}
}

func TestYesNo(t *testing.T) {
	en := Printer("en")
	if got := YesNo(en, true); got != "yes" {
		t.Errorf("YesNo(en, true) = %q", got)
	}
	if got := YesNo(en, false); got != "no" {
		t.Errorf("YesNo(en, false) = %q", got)
	}

	zh := Printer("zh-CN")
	if got := YesNo(zh, true); got != "是" {
		t.Errorf("YesNo(zh, true) = %q", got)
	}
	if got := YesNo(zh, false); got != "否" {
		t.Errorf("YesNo(zh, false) = %q", got)
	}
}
