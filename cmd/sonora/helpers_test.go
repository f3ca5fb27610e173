package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command against a throwaway configuration
// file so the user's own settings never leak into tests.
func executeCommand(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()

	if configYAML == "" {
		configYAML = "log:\n  level: error\n"
	}
	configPath := writeFile(t, "config.yaml", configYAML)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
