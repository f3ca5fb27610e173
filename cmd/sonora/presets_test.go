package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsCommand_TableOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "presets")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "DESCRIPTION")
	require.Contains(t, stdout, "Ocean Deep")
	require.Contains(t, stdout, "Royal Purple")
	// Buffers are not terminals, so the ASCII marker and plain colours are used.
	require.Contains(t, stdout, "yes")
	require.Contains(t, stdout, "#0077BE")
}

func TestPresetsCommand_JSONOutput(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "presets", "--json")
	require.NoError(t, err)

	var payload presetsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, "Default", payload.Default)
	require.Equal(t, 3, payload.Count)
	require.Equal(t, "Default", payload.Presets[0].Name)
	require.True(t, payload.Presets[0].Default)
	require.False(t, payload.Presets[1].Default)
	require.Equal(t, []string{"#5227FF", "#FF9FFC", "#B19EEF"}, payload.Presets[0].Colors)
}

func TestPresetsCommand_CustomCatalog(t *testing.T) {
	t.Parallel()

	catalog := writeFile(t, "presets.yaml", `default: Mono
presets:
  - name: Mono
    description: Greyscale
    background:
      baseColor1: "#000000"
      baseColor2: "#ffffff"
      resolutionScale: 1
    simulation:
      iterationsViscous: 1
      iterationsPoisson: 1
      dt: 0.01
      resolution: 0.5
      colors: ["#808080"]
    palette:
      primary: "#ffffff"
      secondary: "#cccccc"
      accent: "#999999"
      background: "#000000"
      surface: "#111111"
      text: "#ffffff"
      textSecondary: "#aaaaaa"
      border: "#333333"
      success: "#00ff00"
      warning: "#ffff00"
      error: "#ff0000"
`)

	stdout, _, err := executeCommand(t, "log:\n  level: error\ntheme:\n  presets_file: "+catalog+"\n", "presets", "--json")
	require.NoError(t, err)

	var payload presetsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 1, payload.Count)
	require.Equal(t, "Mono", payload.Default)
}

func TestPresetsCommand_BrokenCatalog(t *testing.T) {
	t.Parallel()

	catalog := writeFile(t, "presets.yaml", "presets:\n  - name: Broken\n    shine: 11\n")

	_, _, err := executeCommand(t, "log:\n  level: error\ntheme:\n  presets_file: "+catalog+"\n", "presets")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading presets")
}
