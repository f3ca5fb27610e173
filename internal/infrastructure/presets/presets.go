// Package presets loads the built-in theme catalog and theme documents
// written in the same YAML layout.
package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/infrastructure/validation"
	sonoraerrors "github.com/alexisbeaulieu97/sonora/pkg/errors"
)

//go:embed presets.yaml
var builtinYAML []byte

const builtinSource = "presets.yaml"

var (
	builtinOnce    sync.Once
	builtinCatalog *domain.Catalog
	builtinErr     error

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

type document struct {
	Default string               `yaml:"default"`
	Presets []domain.ThemeConfig `yaml:"presets"`
}

// Builtin returns the embedded catalog. The embedded file ships with the
// binary, so a decode failure is a programming error and panics.
func Builtin() *domain.Catalog {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = Load(bytes.NewReader(builtinYAML), builtinSource)
	})
	if builtinErr != nil {
		panic(fmt.Sprintf("presets: embedded catalog is invalid: %v", builtinErr))
	}
	return builtinCatalog
}

// Load decodes a catalog document. Unknown keys are rejected and every
// entry must pass theme validation. When the document names no default,
// the first entry is used.
func Load(r io.Reader, source string) (*domain.Catalog, error) {
	var doc document
	if err := decodeStrict(r, &doc); err != nil {
		return nil, sonoraerrors.NewParseError(source, extractLine(err), err)
	}

	validator := validation.NewThemeValidator()
	for i, entry := range doc.Presets {
		if err := validator.ValidateTheme(entry); err != nil {
			return nil, fmt.Errorf("%s: preset %d (%q): %w", source, i, entry.Name, err)
		}
	}

	defaultName := doc.Default
	if defaultName == "" && len(doc.Presets) > 0 {
		defaultName = doc.Presets[0].Name
	}
	return domain.NewCatalog(doc.Presets, defaultName)
}

// DecodeTheme reads a single theme document. Fields are not validated here;
// callers decide whether to run the validator.
func DecodeTheme(r io.Reader, source string) (domain.ThemeConfig, error) {
	var cfg domain.ThemeConfig
	if err := decodeStrict(r, &cfg); err != nil {
		return domain.ThemeConfig{}, sonoraerrors.NewParseError(source, extractLine(err), err)
	}
	return cfg, nil
}

// EncodeTheme writes cfg in the catalog's YAML layout.
func EncodeTheme(w io.Writer, cfg domain.ThemeConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode theme %q: %w", cfg.Name, err)
	}
	return enc.Close()
}

func decodeStrict(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("document is empty")
		}
		return err
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
