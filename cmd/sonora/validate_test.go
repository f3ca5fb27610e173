package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/presets"
)

func encodedPreset(t *testing.T, name string, edit func(*bytes.Buffer)) string {
	t.Helper()
	theme, ok := presets.Builtin().Lookup(name)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, presets.EncodeTheme(&buf, theme))
	if edit != nil {
		edit(&buf)
	}
	return buf.String()
}

func TestValidateCommand_ValidTheme(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "ocean.yaml", encodedPreset(t, "Ocean Deep", nil))

	stdout, _, err := executeCommand(t, "", "validate", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "✓ "+path)
}

func TestValidateCommand_ReportsEveryIssue(t *testing.T) {
	t.Parallel()

	doc := encodedPreset(t, "Default", func(buf *bytes.Buffer) {
		replaced := bytes.Replace(buf.Bytes(), []byte("hueShift: 0"), []byte("hueShift: 400"), 1)
		replaced = bytes.Replace(replaced, []byte("dt: 0.014"), []byte("dt: 0"), 1)
		buf.Reset()
		buf.Write(replaced)
	})
	bad := writeFile(t, "bad.yaml", doc)
	good := writeFile(t, "good.yaml", encodedPreset(t, "Default", nil))

	stdout, _, err := executeCommand(t, "", "validate", good, bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 files")
	require.Contains(t, stdout, "✓ "+good)
	require.Contains(t, stdout, "✗ "+bad)
	require.Contains(t, stdout, "background.hueShift: must be at most 360")
	require.Contains(t, stdout, "simulation.dt")
}

func TestValidateCommand_UnknownField(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "typo.yaml", "name: Typo\nbackgrund: {}\n")

	stdout, _, err := executeCommand(t, "", "validate", path)
	require.Error(t, err)
	require.Contains(t, stdout, "✗ "+path)
	require.Contains(t, stdout, "backgrund")
}

func TestValidateCommand_Catalog(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "catalog.yaml", "presets:\n  - name: Empty\n")

	stdout, _, err := executeCommand(t, "", "validate", "--catalog", path)
	require.Error(t, err)
	require.Contains(t, stdout, "✗ "+path)
}
