package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
	"github.com/alexisbeaulieu97/sonora/pkg/diff"
)

type diffOptions struct {
	stat bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Compare two themes",
		Long: `Compare two themes field by field.

Each argument is either the name of a preset or the path to a theme file.`,
		Example: `  sonora diff Default "Ocean Deep"
  sonora diff Default ./my-theme.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Print only the number of changed lines")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, from, to string, opts *diffOptions) error {
	app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	before, err := resolveTheme(app.Catalog, from)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %q", from), err, presetSuggestion(app.Catalog, from))
	}
	after, err := resolveTheme(app.Catalog, to)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("resolving %q", to), err, presetSuggestion(app.Catalog, to))
	}

	beforeDoc, err := encodeTheme(before)
	if err != nil {
		return newCommandError("diff", "encoding "+from, err, "")
	}
	afterDoc, err := encodeTheme(after)
	if err != nil {
		return newCommandError("diff", "encoding "+to, err, "")
	}

	out := cmd.OutOrStdout()
	if opts.stat {
		added, removed := diff.Stats(beforeDoc, afterDoc)
		fmt.Fprintf(out, "%d insertions(+), %d deletions(-)\n", added, removed)
		return nil
	}

	unified := diff.Unified(beforeDoc, afterDoc, from, to)
	if unified == "" {
		fmt.Fprintln(out, "Themes are identical.")
		return nil
	}
	fmt.Fprint(out, unified)
	return nil
}

// resolveTheme treats ref as a file path when such a file exists and as a
// preset name otherwise.
func resolveTheme(catalog *domain.Catalog, ref string) (domain.ThemeConfig, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		f, err := os.Open(ref)
		if err != nil {
			return domain.ThemeConfig{}, err
		}
		defer f.Close()
		return presets.DecodeTheme(f, ref)
	}

	preset, ok := catalog.Lookup(ref)
	if !ok {
		return domain.ThemeConfig{}, domain.NewError(domain.ErrCodeNotFound, "preset not found", nil, map[string]interface{}{"preset": ref})
	}
	return preset, nil
}

func encodeTheme(cfg domain.ThemeConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := presets.EncodeTheme(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
