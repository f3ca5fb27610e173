package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/validation"
	sonoraerrors "github.com/alexisbeaulieu97/sonora/pkg/errors"
)

var (
	yamlLineRegex   = regexp.MustCompile(`line (\d+)`)
	envNamePattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	errNoConfigHome = errors.New("cannot determine user configuration directory")
)

// DefaultPath returns $XDG_CONFIG_HOME/sonora/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errNoConfigHome, err)
	}
	return filepath.Join(dir, "sonora", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields Default when
// optional is true.
func Load(path string, optional bool) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return AppConfig{}, sonoraerrors.NewParseError(path, 0, err)
	}
	return Parse(bytes.NewReader(data), path)
}

// Parse decodes a configuration document over the defaults and validates it.
func Parse(r io.Reader, source string) (AppConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AppConfig{}, sonoraerrors.NewParseError(source, extractLine(err), err)
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints and the token variable name.
func Validate(cfg AppConfig) error {
	if err := validation.Struct(&cfg); err != nil {
		return err
	}
	if cfg.API.TokenEnv != "" && !envNamePattern.MatchString(cfg.API.TokenEnv) {
		return sonoraerrors.NewValidationError("api.token_env", fmt.Sprintf("%q is not a valid environment variable name", cfg.API.TokenEnv), nil)
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
