package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linkshell-labs/linkshell/internal/config"
	"github.com/linkshell-labs/linkshell/internal/label"
	"github.com/linkshell-labs/linkshell/internal/link"
)

var (
	formSource    string
	formNoElevate bool
)

func init() {
	formCmd.Flags().StringVar(&formSource, "source", "", "Pre-fill the source path (used by the context-menu entry)")
	formCmd.Flags().BoolVar(&formNoElevate, "no-elevate", false, "Fail instead of relaunching elevated when privilege is missing")
	rootCmd.AddCommand(formCmd)
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Collect link parameters interactively and create the link",
	Long: `Walk through link type, source path, and target path with prompts, then
create the link. This is the mode the file-manager context-menu entry lands
in, with the selected path pre-filled as the source.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := runForm(cmd.InOrStdin(), cmd.ErrOrStderr(), formSource)
		if err != nil {
			return err
		}

		if req.Kind == link.SymLink || req.Kind == link.Junction {
			relaunched, err := ensureElevated(cmd, formNoElevate)
			if err != nil {
				return err
			}
			if relaunched {
				return nil
			}
		}

		if err := link.Create(req.Kind, req.Source, req.Target); err != nil {
			if errors.Is(err, link.ErrInsufficientPrivilege) {
				return fmt.Errorf("%w (rerun from an elevated prompt, or enable Developer Mode for symlinks)", err)
			}
			return err
		}

		p := label.Printer(config.Get(config.KeyLanguage))
		fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("Created %s: %s", label.Kind(p, req.Kind), req.Target))
		return nil
	},
}

// formRequest holds the selections made during the interactive form.
type formRequest struct {
	Kind   link.Kind
	Source string
	Target string
}

// runForm walks the user through kind, source, and target selection using
// numbered menus and prompts on r/w. prefill, when non-empty, becomes the
// source default.
func runForm(r io.Reader, w io.Writer, prefill string) (*formRequest, error) {
	reader := bufio.NewReader(r)
	p := label.Printer(config.Get(config.KeyLanguage))

	kinds := []link.Kind{link.HardLink, link.SymLink, link.Junction}
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = label.Kind(p, k)
	}

	idx, err := selectFromList(reader, w, "Select link type:", labels)
	if err != nil {
		return nil, err
	}

	source, err := promptPath(reader, w, "Source path", prefill)
	if err != nil {
		return nil, err
	}

	target, err := promptPath(reader, w, "Target path", "")
	if err != nil {
		return nil, err
	}

	return &formRequest{Kind: kinds[idx], Source: source, Target: target}, nil
}

// selectFromList prints a numbered menu and returns the chosen index.
func selectFromList(reader *bufio.Reader, w io.Writer, title string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(w, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number (1-%d): ", len(items))

	input, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("reading selection: %w", err)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > len(items) {
		return 0, fmt.Errorf("invalid selection %q: enter a number between 1 and %d", strings.TrimSpace(input), len(items))
	}
	return choice - 1, nil
}

// promptPath asks for a path, offering def as the default when non-empty.
func promptPath(reader *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "\n%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(w, "\n%s: ", prompt)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(prompt), err)
	}

	path := strings.TrimSpace(input)
	if path == "" {
		path = def
	}
	if path == "" {
		return "", fmt.Errorf("%s is required", strings.ToLower(prompt))
	}
	return path, nil
}
