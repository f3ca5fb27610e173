package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
)

func decodeShowJSON(t *testing.T, stdout string) domain.ThemeConfig {
	t.Helper()
	var cfg domain.ThemeConfig
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	return cfg
}

func TestShowCommand_DefaultYAML(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "name: Default")
	require.Contains(t, stdout, "palette:")
	require.Contains(t, stdout, "#5227FF")
}

func TestShowCommand_PresetAsCSS(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show", "--preset", "Ocean Deep", "--format", "css")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ":root {\n"))
	require.Contains(t, stdout, "  --theme-primary: #0077BE;\n")
	require.Contains(t, stdout, "--theme-text-secondary:")
	require.Equal(t, 11, strings.Count(stdout, "--theme-"))
}

func TestShowCommand_SetAssignments(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show",
		"--set", "background.hueShift=180",
		"--set", "palette.primary=#FF0000",
		"--set", "simulation.BFECC=false",
		"--format", "json",
	)
	require.NoError(t, err)

	cfg := decodeShowJSON(t, stdout)
	require.Equal(t, "Default", cfg.Name)
	require.Equal(t, 180.0, cfg.Background.HueShift)
	require.Equal(t, "#FF0000", cfg.Palette.Primary)
	require.False(t, cfg.Simulation.BFECC)
}

func TestShowCommand_CSSFollowsPaletteEdits(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show", "--set", "palette.accent=rgb(1, 2, 3)", "--format", "css")
	require.NoError(t, err)
	require.Contains(t, stdout, "--theme-accent: rgb(1, 2, 3);")
}

func TestShowCommand_OutOfRangeKeptVerbatim(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show", "--set", "background.hueShift=720", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, 720.0, decodeShowJSON(t, stdout).Background.HueShift)
}

func TestShowCommand_StrictRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "--strict", "show", "--set", "background.hueShift=720")
	require.Error(t, err)
	require.Contains(t, err.Error(), "background.hueShift=720")
	require.Contains(t, err.Error(), "Strict mode")
}

func TestShowCommand_StrictFromConfig(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "log:\n  level: error\ntheme:\n  strict: true\n", "show", "--set", "palette.primary=notacolor")
	require.Error(t, err)

	stdout, _, err := executeCommand(t, "log:\n  level: error\ntheme:\n  strict: true\n", "--strict=false", "show", "--set", "palette.primary=notacolor", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, "notacolor", decodeShowJSON(t, stdout).Palette.Primary)
}

func TestShowCommand_ColourEdits(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "", "show",
		"--remove-color", "0",
		"--add-color", "#123456",
		"--format", "json",
	)
	require.NoError(t, err)
	require.Equal(t, []string{"#FF9FFC", "#B19EEF", "#123456"}, decodeShowJSON(t, stdout).Simulation.Colors)
}

func TestShowCommand_CannotRemoveLastColour(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "show",
		"--remove-color", "0",
		"--remove-color", "0",
		"--remove-color", "0",
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "removing colour 0")
	require.Contains(t, err.Error(), "at least 1 must remain")
}

func TestShowCommand_CannotExceedMaxColours(t *testing.T) {
	t.Parallel()

	args := []string{"show"}
	for i := 0; i < 6; i++ {
		args = append(args, "--add-color", "#000000")
	}
	_, _, err := executeCommand(t, "", args...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most 8 fluid colours")
}

func TestShowCommand_UnknownPreset(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "show", "--preset", "ocean deep")
	require.Error(t, err)
	require.Contains(t, err.Error(), `applying preset "ocean deep"`)
	require.Contains(t, err.Error(), `Did you mean "Ocean Deep"?`)
	require.Contains(t, err.Error(), "Available presets: Default, Ocean Deep, Royal Purple")
}

func TestShowCommand_InitialPresetFromConfig(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "log:\n  level: error\ntheme:\n  initial_preset: Royal Purple\n", "show", "--format", "json")
	require.NoError(t, err)
	require.Equal(t, "Royal Purple", decodeShowJSON(t, stdout).Name)
}

func TestShowCommand_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "show", "--format", "toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")

	_, _, err = executeCommand(t, "", "show", "--set", "background.hueShift")
	require.Error(t, err)
	require.Contains(t, err.Error(), "group.field=value")

	_, _, err = executeCommand(t, "", "show", "--set", "background.hueShift=warm")
	require.Error(t, err)
}

func TestShowCommand_LogsAsJSON(t *testing.T) {
	t.Parallel()

	_, stderr, err := executeCommand(t, "log:\n  level: info\n  format: json\n", "show", "--preset", "Ocean Deep")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"preset applied"`)
	require.Contains(t, stderr, `"correlation_id"`)
}

func TestShowCommand_LogsToFile(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "sonora.log")
	_, stderr, err := executeCommand(t, "log:\n  level: info\n  format: json\n", "--log-file", logPath, "show", "--preset", "Royal Purple")
	require.NoError(t, err)
	require.NotContains(t, stderr, "preset applied")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"preset":"Royal Purple"`)
}

func TestSimilarPresets(t *testing.T) {
	t.Parallel()

	names := []string{"Default", "Ocean Deep", "Royal Purple"}
	require.Equal(t, []string{"Royal Purple"}, similarPresets(names, "purple"))
	require.Equal(t, []string{"Ocean Deep"}, similarPresets(names, "OCEAN"))
	require.Empty(t, similarPresets(names, "zzz"))
	require.Empty(t, similarPresets(names, " "))
}

func TestRootCommand_RejectsBadLogFlags(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "", "--log-format", "xml", "show")
	require.Error(t, err)
	require.Contains(t, err.Error(), "validating options")
}
