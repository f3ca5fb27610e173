package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apptheme "github.com/alexisbeaulieu97/sonora/internal/application/theme"
	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatCSS  = "css"
)

type showOptions struct {
	preset       string
	assignments  []string
	addColors    []string
	removeColors []int
	format       string
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the theme after applying a preset and edits",
		Long: `Print the resulting theme as YAML, JSON or CSS custom properties.

Edits are applied in order: --preset, then --set assignments, then
--remove-color and finally --add-color.`,
		Example: `  sonora show --preset "Ocean Deep"
  sonora show --set background.hueShift=180 --set palette.primary=#FF0000
  sonora show --preset "Royal Purple" --format css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset to start from (default from configuration)")
	cmd.Flags().StringArrayVar(&opts.assignments, "set", nil, "Assign a field, e.g. background.hueShift=180 (repeatable)")
	cmd.Flags().StringArrayVar(&opts.addColors, "add-color", nil, "Append a fluid colour (repeatable)")
	cmd.Flags().IntSliceVar(&opts.removeColors, "remove-color", nil, "Remove the fluid colour at index (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "o", formatYAML, "Output format: yaml, json or css")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions) error {
	format := strings.ToLower(opts.format)
	switch format {
	case formatYAML, formatJSON, formatCSS:
	default:
		return newCommandError("show", "selecting output format", fmt.Errorf("unsupported format %q", opts.format), "Use --format yaml, json or css.")
	}

	edits := make([]apptheme.FieldEdit, 0, len(opts.assignments))
	for _, expr := range opts.assignments {
		edit, err := apptheme.ParseAssignment(expr)
		if err != nil {
			return newCommandError("show", fmt.Sprintf("parsing %q", expr), err, "Use group.field=value, e.g. palette.primary=#5227FF.")
		}
		edits = append(edits, edit)
	}

	app, err := newAppContext(cmd, rootFlags, appOptions{preset: opts.preset})
	if err != nil {
		return err
	}
	defer app.Close()
	ctx, _ := app.CommandContext("command.show")

	sink := style.NewMemorySink()
	detach, err := app.AttachSurfaces(ctx, sink)
	if err != nil {
		return newCommandError("show", "attaching style surface", err, "")
	}
	defer detach()

	if err := applyEdits(ctx, app, edits, opts); err != nil {
		return err
	}

	return renderTheme(cmd.OutOrStdout(), format, app.Editor.Current(), sink)
}

func applyEdits(ctx context.Context, app *AppContext, edits []apptheme.FieldEdit, opts *showOptions) error {
	editor := app.Editor

	for i, edit := range edits {
		if err := edit.Apply(ctx, editor); err != nil {
			return newCommandError("show", fmt.Sprintf("applying %q", opts.assignments[i]), err, "Strict mode rejects out-of-range values; run without --strict to keep them.")
		}
	}
	for _, index := range opts.removeColors {
		if !editor.RemoveColor(ctx, index) {
			count := len(editor.Simulation().Colors)
			return newCommandError("show", fmt.Sprintf("removing colour %d", index), errors.New("colour cannot be removed"), fmt.Sprintf("The theme has %d colours; indexes start at 0 and at least %d must remain.", count, domain.MinSimulationColors))
		}
	}
	for _, color := range opts.addColors {
		if !editor.AddColor(ctx, color) {
			return newCommandError("show", fmt.Sprintf("adding colour %q", color), errors.New("colour list is full"), fmt.Sprintf("A theme holds at most %d fluid colours.", domain.MaxSimulationColors))
		}
	}
	return nil
}

func renderTheme(w io.Writer, format string, cfg domain.ThemeConfig, sink *style.MemorySink) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case formatCSS:
		return style.WriteCSS(w, style.RootSelector, sink.Variables())
	default:
		return presets.EncodeTheme(w, cfg)
	}
}
