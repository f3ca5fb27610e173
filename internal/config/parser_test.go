package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	sonoraerrors "github.com/alexisbeaulieu97/sonora/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg AppConfig, err error)
	}{
		{
			name: "full document is parsed",
			contents: `log:
  level: debug
  format: json
theme:
  initial_preset: Ocean Deep
  strict: true
api:
  base_url: https://api.example.com
  token_env: MY_TOKEN
`,
			assert: func(t *testing.T, cfg AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, "json", cfg.Log.Format)
				require.Equal(t, "Ocean Deep", cfg.Theme.InitialPreset)
				require.True(t, cfg.Theme.Strict)
				require.Equal(t, "https://api.example.com", cfg.API.BaseURL)
				require.Equal(t, "MY_TOKEN", cfg.API.TokenEnv)
			},
		},
		{
			name:     "partial document keeps defaults",
			contents: "theme:\n  strict: true\n",
			assert: func(t *testing.T, cfg AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, DefaultLogLevel, cfg.Log.Level)
				require.Equal(t, DefaultLogFormat, cfg.Log.Format)
				require.Equal(t, DefaultTokenEnv, cfg.API.TokenEnv)
				require.True(t, cfg.Theme.Strict)
			},
		},
		{
			name:     "empty document yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "unknown keys are rejected with a line",
			contents: "log:\n  level: info\n  colour: true\n",
			assert: func(t *testing.T, _ AppConfig, err error) {
				var parseErr *sonoraerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "invalid format is a validation error",
			contents: "log:\n  format: xml\n",
			assert: func(t *testing.T, _ AppConfig, err error) {
				var validationErr *sonoraerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.format", validationErr.Field)
			},
		},
		{
			name:     "invalid url is a validation error",
			contents: "api:\n  base_url: not a url\n",
			assert: func(t *testing.T, _ AppConfig, err error) {
				var validationErr *sonoraerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "api.base_url", validationErr.Field)
			},
		},
		{
			name:     "log file rotation settings",
			contents: "log:\n  file: /var/log/sonora.log\n  max_size_mb: 5\n  max_backups: 2\n",
			assert: func(t *testing.T, cfg AppConfig, err error) {
				require.NoError(t, err)
				require.Equal(t, "/var/log/sonora.log", cfg.Log.File)
				require.Equal(t, 5, cfg.Log.MaxSizeMB)
				require.Equal(t, 2, cfg.Log.MaxBackups)
			},
		},
		{
			name:     "negative backups are rejected",
			contents: "log:\n  max_backups: -1\n",
			assert: func(t *testing.T, _ AppConfig, err error) {
				var validationErr *sonoraerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.max_backups", validationErr.Field)
			},
		},
		{
			name:     "token variable name is checked",
			contents: "api:\n  token_env: 1-bad\n",
			assert: func(t *testing.T, _ AppConfig, err error) {
				var validationErr *sonoraerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "api.token_env", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse(strings.NewReader(tc.contents), "config.yaml")
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(path, false)
	var parseErr *sonoraerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestOverridesTakePrecedence(t *testing.T) {
	t.Parallel()

	strict := false
	base := Default()
	base.Theme.Strict = true
	base.Theme.InitialPreset = "Royal Purple"

	got := Overrides{LogFormat: "json", LogFile: "/tmp/sonora.log", Strict: &strict}.Apply(base)
	require.Equal(t, "json", got.Log.Format)
	require.Equal(t, "/tmp/sonora.log", got.Log.File)
	require.Equal(t, DefaultLogLevel, got.Log.Level)
	require.False(t, got.Theme.Strict)
	require.Equal(t, "Royal Purple", got.Theme.InitialPreset)

	require.Equal(t, base, Overrides{}.Apply(base))
}

func TestDefaultPathEndsWithSonora(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, filepath.Join("sonora", "config.yaml")))
}
