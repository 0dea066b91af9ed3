// Package label provides localized display strings for link kinds and the
// inspect report. English is the fallback; Simplified Chinese is the other
// shipped catalog. The language comes from the `language` config key or the
// LINKSHELL_LANG environment override.
package label

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/linkshell-labs/linkshell/internal/link"
)

// supported lists shipped catalogs, English first as the fallback.
var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

func init() {
	for _, entry := range []struct {
		key, zh string
	}{
		{"Hard link (files only)", "硬链接（仅文件）"},
		{"Symbolic link", "符号链接"},
		{"Directory junction (directories only)", "目录联接（仅目录）"},
		{"Not a link", "不是链接"},
		{"Path: %s", "路径: %s"},
		{"Kind: %s", "类型: %s"},
		{"Target: %s", "目标: %s"},
		{"Target exists: %s", "目标存在: %s"},
		{"yes", "是"},
		{"no", "否"},
		{"Created %s: %s", "成功创建%s: %s"},
	} {
		// English keys are their own message.
		if err := message.SetString(language.English, entry.key, entry.key); err != nil {
			panic(err)
		}
		if err := message.SetString(language.SimplifiedChinese, entry.key, entry.zh); err != nil {
			panic(err)
		}
	}
}

// Printer returns a message printer for the best-matching shipped catalog.
// Unknown or empty language strings match English.
func Printer(lang string) *message.Printer {
	tag, _ := language.MatchStrings(matcher, lang)
	return message.NewPrinter(tag)
}

// Kind returns the localized label for a link kind.
func Kind(p *message.Printer, k link.Kind) string {
	switch k {
	case link.HardLink:
		return p.Sprintf("Hard link (files only)")
	case link.SymLink:
		return p.Sprintf("Symbolic link")
	case link.Junction:
		return p.Sprintf("Directory junction (directories only)")
	default:
		return p.Sprintf("Not a link")
	}
}

// YesNo returns the localized word for a boolean.
func YesNo(p *message.Printer, v bool) string {
	if v {
		return p.Sprintf("yes")
	}
	return p.Sprintf("no")
}
