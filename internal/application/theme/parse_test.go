package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
)

func TestParseAssignment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		expr  string
		group domain.Group
		field string
		value interface{}
	}{
		{expr: "background.hueShift=180", group: domain.GroupBackground, field: "hueShift", value: 180.0},
		{expr: "background.baseColor1 = #0077BE", group: domain.GroupBackground, field: "baseColor1", value: "#0077BE"},
		{expr: "simulation.iterationsPoisson=16", group: domain.GroupSimulation, field: "iterationsPoisson", value: 16},
		{expr: "simulation.BFECC=false", group: domain.GroupSimulation, field: "BFECC", value: false},
		{expr: "simulation.colors=#fff, rgba(1, 2, 3, 0.5),#000", group: domain.GroupSimulation, field: "colors", value: []string{"#fff", "rgba(1, 2, 3, 0.5)", "#000"}},
		{expr: "palette.textSecondary=rgba(255, 255, 255, 0.7)", group: domain.GroupPalette, field: "textSecondary", value: "rgba(255, 255, 255, 0.7)"},
	}

	for _, tc := range cases {
		edit, err := ParseAssignment(tc.expr)
		require.NoError(t, err, tc.expr)
		require.Equal(t, tc.group, edit.Group, tc.expr)
		require.Equal(t, tc.field, edit.Field(), tc.expr)

		var value interface{}
		switch edit.Group {
		case domain.GroupBackground:
			value = edit.Background.Value()
		case domain.GroupSimulation:
			value = edit.Simulation.Value()
		case domain.GroupPalette:
			value = edit.Palette.Value()
		}
		require.Equal(t, tc.value, value, tc.expr)
	}
}

func TestParseAssignmentErrors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"background.hueShift",
		"hueShift=3",
		"lighting.level=1",
		"background.glow=1",
		"background.hueShift=lots",
		"simulation.iterationsViscous=1.5",
		"simulation.autoDemo=maybe",
		"palette.primaryColor=#fff",
		"background.hueShift=NaN",
		"background.speed=+Inf",
		"simulation.dt=-inf",
	} {
		_, err := ParseAssignment(expr)
		require.Error(t, err, expr)
		require.True(t, domain.HasCode(err, domain.ErrCodeValidation), expr)
	}
}

func TestFieldNamesCoverEveryField(t *testing.T) {
	t.Parallel()

	require.Len(t, FieldNames(domain.GroupBackground), 10)
	require.Len(t, FieldNames(domain.GroupSimulation), 17)
	require.Len(t, FieldNames(domain.GroupPalette), 11)

	for _, group := range domain.Groups() {
		for _, field := range FieldNames(group) {
			_, err := ParseUpdate(group.String()+"."+field, sampleRaw(field))
			require.NoError(t, err, field)
		}
	}
}

func TestFieldEditApply(t *testing.T) {
	t.Parallel()

	editor := NewEditor(presets.Builtin(), nil, nil)
	ctx := context.Background()

	for _, expr := range []string{
		"background.verticalPosition=-25",
		"simulation.autoDemo=false",
		"palette.accent=#FFD60A",
	} {
		edit, err := ParseAssignment(expr)
		require.NoError(t, err)
		require.NoError(t, edit.Apply(ctx, editor))
	}

	current := editor.Current()
	require.Equal(t, -25.0, current.Background.VerticalPosition)
	require.False(t, current.Simulation.AutoDemo)
	require.Equal(t, "#FFD60A", current.Palette.Accent)
}

func sampleRaw(field string) string {
	switch field {
	case "isViscous", "BFECC", "isBounce", "autoDemo":
		return "true"
	case "iterationsViscous", "iterationsPoisson":
		return "4"
	default:
		return "1"
	}
}

func TestFieldValuesRoundTrip(t *testing.T) {
	t.Parallel()

	ocean, ok := presets.Builtin().Lookup("Ocean Deep")
	require.True(t, ok)

	editor := NewEditor(presets.Builtin(), nil, nil)
	ctx := context.Background()
	for _, group := range domain.Groups() {
		values := FieldValues(ocean, group)
		require.Len(t, values, len(FieldNames(group)))
		for field, raw := range values {
			edit, err := ParseUpdate(group.String()+"."+field, raw)
			require.NoError(t, err, field)
			require.NoError(t, edit.Apply(ctx, editor))
		}
	}

	current := editor.Current()
	require.Equal(t, ocean.Background, current.Background)
	require.True(t, ocean.Simulation.Equal(current.Simulation))
	require.Equal(t, ocean.Palette, current.Palette)

	require.Equal(t, "0.012", FieldValues(ocean, domain.GroupSimulation)["dt"])
	require.Equal(t, "#0077BE, #00B4D8, #48CAE4", FieldValues(ocean, domain.GroupSimulation)["colors"])
	require.Equal(t, "true", FieldValues(ocean, domain.GroupSimulation)["BFECC"])
}

func TestNonFiniteValuesNeverReachTheStore(t *testing.T) {
	t.Parallel()

	editor, publisher := newTestEditor(t)
	ctx := context.Background()
	before := editor.Background()

	for _, expr := range []string{"background.hueShift=NaN", "background.hueShift=Inf"} {
		_, err := ParseAssignment(expr)
		require.ErrorContains(t, err, "finite", expr)
	}
	require.Equal(t, before, editor.Background())

	require.NoError(t, editor.UpdatePalette(ctx, domain.SetPaletteColor(domain.PalettePrimary, "#000000")))
	changes := publisher.changes()
	require.Len(t, changes, 1)
	require.Equal(t, []string{"palette"}, changes[0].Change.Groups.Names())
}
