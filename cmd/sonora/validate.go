package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/validation"
)

type validateOptions struct {
	catalog bool
}

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check theme files for unknown fields and out-of-range values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.catalog, "catalog", false, "Treat each file as a presets catalog")

	return cmd
}

func runValidate(cmd *cobra.Command, paths []string, opts *validateOptions) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range paths {
		issues, err := validateFile(path, opts.catalog)
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "✗ %s\n  %v\n", path, err)
		case len(issues) > 0:
			failed++
			fmt.Fprintf(out, "✗ %s\n", path)
			for _, issue := range issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
		default:
			fmt.Fprintf(out, "✓ %s\n", path)
		}
	}

	if failed > 0 {
		return newCommandError("validate", fmt.Sprintf("%d of %d files", failed, len(paths)), fmt.Errorf("validation failed"), "Fix the reported fields and run the command again.")
	}
	return nil
}

func validateFile(path string, catalog bool) ([]validation.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if catalog {
		// Load validates every entry and reports the first failure.
		_, err := presets.Load(f, path)
		return nil, err
	}

	cfg, err := presets.DecodeTheme(f, path)
	if err != nil {
		return nil, err
	}
	return validation.NewThemeValidator().Issues(cfg), nil
}
