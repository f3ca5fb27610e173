package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
)

func TestDiffCommand_TwoPresets(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "diff", "Default", "Ocean Deep")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- Default\n+++ Ocean Deep\n")
	require.Contains(t, stdout, "-name: Default")
	require.Contains(t, stdout, "+name: Ocean Deep")
	require.Contains(t, stdout, "+  hueShift: 180")
}

func TestDiffCommand_IdenticalThemes(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "diff", "Default", "Default")
	require.NoError(t, err)
	require.Equal(t, "Themes are identical.\n", stdout)
}

func TestDiffCommand_PresetAgainstFile(t *testing.T) {
	t.Parallel()

	theme, ok := presets.Builtin().Lookup("Default")
	require.True(t, ok)
	theme.Background.Speed = 2

	var buf bytes.Buffer
	require.NoError(t, presets.EncodeTheme(&buf, theme))
	path := writeFile(t, "theme.yaml", buf.String())

	stdout, _, err := executeCommand(t, "", "diff", "Default", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "-  speed: 0.5")
	require.Contains(t, stdout, "+  speed: 2")

	stdout, _, err = executeCommand(t, "", "diff", "--stat", "Default", path)
	require.NoError(t, err)
	require.Equal(t, "1 insertions(+), 1 deletions(-)\n", stdout)
}

func TestDiffCommand_UnknownReference(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "diff", "Default", "Sunset")
	require.Error(t, err)
	require.Contains(t, err.Error(), `resolving "Sunset"`)
}
