package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/label"
	"github.com/linkshell-labs/linkshell/internal/link"
)

var (
	inspectFormat string
	inspectLang   string
)

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format: text or yaml")
	inspectCmd.Flags().StringVar(&inspectLang, "lang", "", "Label language (defaults to the language config key)")
	rootCmd.AddCommand(inspectCmd)
}

// inspectReport is the machine-readable shape of an inspection.
type inspectReport struct {
	Path         string   `yaml:"path"`
	Kind         string   `yaml:"kind"`
	Target       string   `yaml:"target,omitempty"`
	TargetExists *bool    `yaml:"target_exists,omitempty"`
	Names        []string `yaml:"names,omitempty"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Classify a path as a link and resolve its target",
	Long: `Determine whether a path is a hard link, symbolic link, or directory
junction. For symbolic links and junctions the recorded target is resolved
and checked for existence; for hard links the sibling names are listed where
the OS exposes them. A path that is none of these is reported as not a link.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		info, err := link.Inspect(path)
		if err != nil {
			if errors.Is(err, link.ErrPathNotFound) {
				return fmt.Errorf("path does not exist: %s", path)
			}
			return err
		}

		// Sibling names are a best-effort extra for hard links.
		var names []string
		if info.Kind == link.HardLink {
			names, _ = link.HardLinkNames(path)
		}

		if inspectFormat == "yaml" {
			report := inspectReport{
				Path:  info.Path,
				Kind:  info.Kind.String(),
				Names: names,
			}
			if info.Target != "" {
				report.Target = info.Target
				report.TargetExists = &info.TargetExists
			}
			out, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("marshaling report: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		}

		lang := inspectLang
		if lang == "" {
			lang = config.Get(config.KeyLanguage)
		}
		p := label.Printer(lang)

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, p.Sprintf("Path: %s", info.Path))
		fmt.Fprintln(w, p.Sprintf("Kind: %s", label.Kind(p, info.Kind)))
		if info.Target != "" {
			fmt.Fprintln(w, p.Sprintf("Target: %s", info.Target))
			fmt.Fprintln(w, p.Sprintf("Target exists: %s", label.YesNo(p, info.TargetExists)))
		}
		for _, n := range names {
			fmt.Fprintf(w, "  %s\n", n)
		}
		return nil
	},
}
