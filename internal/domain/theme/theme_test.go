package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTheme(name string) ThemeConfig {
	return ThemeConfig{
		Name:        name,
		Description: name + " description",
		Background: Background{
			BaseColor1:       "#5227FF",
			BaseColor2:       "#FF9FFC",
			Speed:            0.5,
			ResolutionScale:  1,
			VerticalPosition: 0,
		},
		Simulation: Simulation{
			MouseForce:        20,
			CursorSize:        100,
			Viscous:           30,
			IterationsViscous: 32,
			IterationsPoisson: 32,
			Dt:                0.014,
			BFECC:             true,
			Resolution:        0.5,
			Colors:            []string{"#5227FF", "#FF9FFC", "#B19EEF"},
			AutoDemo:          true,
			AutoSpeed:         0.5,
			AutoIntensity:     2.2,
			TakeoverDuration:  0.25,
			AutoResumeDelay:   1000,
			AutoRampDuration:  0.6,
		},
		Palette: Palette{
			Primary:       "#5227FF",
			Secondary:     "#FF9FFC",
			Accent:        "#B19EEF",
			Background:    "rgba(15, 15, 25, 0.95)",
			Surface:       "rgba(255, 255, 255, 0.05)",
			Text:          "#ffffff",
			TextSecondary: "rgba(255, 255, 255, 0.7)",
			Border:        "rgba(255, 255, 255, 0.1)",
			Success:       "#4ade80",
			Warning:       "#fbbf24",
			Error:         "#ef4444",
		},
	}
}

func TestCloneDoesNotShareColors(t *testing.T) {
	t.Parallel()

	original := sampleTheme("a")
	clone := original.Clone()
	clone.Simulation.Colors[0] = "#000000"

	require.Equal(t, "#5227FF", original.Simulation.Colors[0])
	require.False(t, original.Equal(clone))
}

func TestEqualComparesEveryGroup(t *testing.T) {
	t.Parallel()

	a := sampleTheme("a")
	require.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b.Palette.Error = "#000000"
	require.False(t, a.Equal(b))

	c := a.Clone()
	c.Simulation.Colors = append(c.Simulation.Colors, "#FFFFFF")
	require.False(t, a.Equal(c))

	d := a.Clone()
	d.Background.HueShift = 1
	require.False(t, a.Equal(d))
}

func TestGroupString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "background", GroupBackground.String())
	require.Equal(t, "simulation", GroupSimulation.String())
	require.Equal(t, "palette", GroupPalette.String())
	require.Equal(t, "unknown", Group(9).String())
}

func TestPaletteKeysMapToStableVariables(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"primary":       "--theme-primary",
		"secondary":     "--theme-secondary",
		"accent":        "--theme-accent",
		"background":    "--theme-background",
		"surface":       "--theme-surface",
		"text":          "--theme-text",
		"textSecondary": "--theme-text-secondary",
		"border":        "--theme-border",
		"success":       "--theme-success",
		"warning":       "--theme-warning",
		"error":         "--theme-error",
	}

	keys := PaletteKeys()
	require.Len(t, keys, 11)
	for _, key := range keys {
		require.Equal(t, want[key.String()], key.StyleVariable())
		parsed, ok := ParsePaletteKey(key.String())
		require.True(t, ok)
		require.Equal(t, key, parsed)
	}

	_, ok := ParsePaletteKey("shadow")
	require.False(t, ok)
	require.Empty(t, PaletteKey(42).StyleVariable())
}

func TestPaletteVariablesAreVerbatim(t *testing.T) {
	t.Parallel()

	p := sampleTheme("a").Palette
	vars := p.Variables()

	require.Len(t, vars, 11)
	require.Equal(t, "rgba(15, 15, 25, 0.95)", vars["--theme-background"])
	require.Equal(t, "rgba(255, 255, 255, 0.7)", vars["--theme-text-secondary"])
	require.Equal(t, "#ef4444", vars["--theme-error"])
}
