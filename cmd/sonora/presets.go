package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/style"
)

type presetsOptions struct {
	jsonOutput bool
}

func newPresetsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:     "presets",
		Aliases: []string{"list"},
		Short:   "List the available theme presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPresets(cmd *cobra.Command, rootFlags *rootFlags, opts *presetsOptions) error {
	app, err := newAppContext(cmd, rootFlags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	if opts.jsonOutput {
		return renderPresetsJSON(cmd, app.Catalog)
	}
	return renderPresetsTable(cmd, app.Catalog)
}

func renderPresetsTable(cmd *cobra.Command, catalog *domain.Catalog) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tDEFAULT\tPRIMARY\tCOLORS\tDESCRIPTION")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, preset := range catalog.List() {
		marker := ""
		if preset.Name == catalog.DefaultName() {
			marker = defaultMarker(useUnicode)
		}

		primary := preset.Palette.Primary
		if useUnicode {
			primary = swatchFor(preset) + " " + primary
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n",
			preset.Name,
			marker,
			primary,
			len(preset.Simulation.Colors),
			valueOrFallback(preset.Description, "(no description)"),
		)
	}

	return writer.Flush()
}

type presetJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Default     bool     `json:"default"`
	Primary     string   `json:"primary"`
	Colors      []string `json:"colors"`
}

type presetsJSONPayload struct {
	Version string       `json:"version"`
	Default string       `json:"default"`
	Count   int          `json:"count"`
	Presets []presetJSON `json:"presets"`
}

func renderPresetsJSON(cmd *cobra.Command, catalog *domain.Catalog) error {
	list := catalog.List()
	payload := presetsJSONPayload{
		Version: "1.0",
		Default: catalog.DefaultName(),
		Count:   len(list),
		Presets: make([]presetJSON, len(list)),
	}

	for i, preset := range list {
		payload.Presets[i] = presetJSON{
			Name:        preset.Name,
			Description: preset.Description,
			Default:     preset.Name == catalog.DefaultName(),
			Primary:     preset.Palette.Primary,
			Colors:      preset.Simulation.Colors,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func defaultMarker(useUnicode bool) string {
	if useUnicode {
		return "✓"
	}
	return "yes"
}

func swatchFor(preset domain.ThemeConfig) string {
	backdrop, _, err := style.ParseColor(preset.Palette.Background)
	if err != nil {
		backdrop = colorful.Color{}
	}
	return style.Swatch(preset.Palette.Primary, backdrop)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
