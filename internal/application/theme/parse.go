package theme

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
)

// FieldEdit is a parsed "group.field" assignment. Exactly one of the update
// fields is set, matching Group.
type FieldEdit struct {
	Group      domain.Group
	Background domain.BackgroundUpdate
	Simulation domain.SimulationUpdate
	Palette    domain.PaletteUpdate
}

// Field returns the serialised field name of the wrapped update.
func (f FieldEdit) Field() string {
	switch f.Group {
	case domain.GroupBackground:
		return f.Background.Field()
	case domain.GroupSimulation:
		return f.Simulation.Field()
	default:
		return f.Palette.Field()
	}
}

// Apply routes the edit to the matching editor operation.
func (f FieldEdit) Apply(ctx context.Context, e *Editor) error {
	switch f.Group {
	case domain.GroupBackground:
		return e.UpdateBackground(ctx, f.Background)
	case domain.GroupSimulation:
		return e.UpdateSimulation(ctx, f.Simulation)
	default:
		return e.UpdatePalette(ctx, f.Palette)
	}
}

var (
	backgroundStrings = map[string]func(string) domain.BackgroundUpdate{
		"baseColor1": domain.SetBaseColor1,
		"baseColor2": domain.SetBaseColor2,
	}
	backgroundFloats = map[string]func(float64) domain.BackgroundUpdate{
		"hueShift":          domain.SetHueShift,
		"noiseIntensity":    domain.SetNoiseIntensity,
		"scanlineIntensity": domain.SetScanlineIntensity,
		"speed":             domain.SetSpeed,
		"scanlineFrequency": domain.SetScanlineFrequency,
		"warpAmount":        domain.SetWarpAmount,
		"resolutionScale":   domain.SetResolutionScale,
		"verticalPosition":  domain.SetVerticalPosition,
	}
	simulationFloats = map[string]func(float64) domain.SimulationUpdate{
		"mouseForce":       domain.SetMouseForce,
		"cursorSize":       domain.SetCursorSize,
		"viscous":          domain.SetViscous,
		"dt":               domain.SetDt,
		"resolution":       domain.SetResolution,
		"autoSpeed":        domain.SetAutoSpeed,
		"autoIntensity":    domain.SetAutoIntensity,
		"takeoverDuration": domain.SetTakeoverDuration,
		"autoResumeDelay":  domain.SetAutoResumeDelay,
		"autoRampDuration": domain.SetAutoRampDuration,
	}
	simulationInts = map[string]func(int) domain.SimulationUpdate{
		"iterationsViscous": domain.SetIterationsViscous,
		"iterationsPoisson": domain.SetIterationsPoisson,
	}
	simulationBools = map[string]func(bool) domain.SimulationUpdate{
		"isViscous": domain.SetIsViscous,
		"BFECC":     domain.SetBFECC,
		"isBounce":  domain.SetIsBounce,
		"autoDemo":  domain.SetAutoDemo,
	}
)

// FieldNames lists the serialised field names of a group, sorted.
func FieldNames(group domain.Group) []string {
	var names []string
	switch group {
	case domain.GroupBackground:
		names = append(keysOf(backgroundStrings), keysOf(backgroundFloats)...)
	case domain.GroupSimulation:
		names = append(keysOf(simulationFloats), keysOf(simulationInts)...)
		names = append(names, keysOf(simulationBools)...)
		names = append(names, "colors")
	case domain.GroupPalette:
		for _, key := range domain.PaletteKeys() {
			names = append(names, key.String())
		}
	}
	sort.Strings(names)
	return names
}

// ParseAssignment parses "group.field=value".
func ParseAssignment(expr string) (FieldEdit, error) {
	path, raw, ok := strings.Cut(expr, "=")
	if !ok {
		return FieldEdit{}, domain.NewError(domain.ErrCodeValidation, "assignment must have the form group.field=value", nil, map[string]interface{}{"expression": expr})
	}
	return ParseUpdate(strings.TrimSpace(path), strings.TrimSpace(raw))
}

// ParseUpdate converts a "group.field" path and a raw value into a typed
// edit. The simulation colour list is given comma-separated.
func ParseUpdate(path, raw string) (FieldEdit, error) {
	groupName, field, ok := strings.Cut(path, ".")
	if !ok || field == "" {
		return FieldEdit{}, domain.NewError(domain.ErrCodeValidation, "field path must have the form group.field", nil, map[string]interface{}{"path": path})
	}

	switch groupName {
	case domain.GroupBackground.String():
		if set, ok := backgroundStrings[field]; ok {
			return FieldEdit{Group: domain.GroupBackground, Background: set(raw)}, nil
		}
		if set, ok := backgroundFloats[field]; ok {
			v, err := parseFinite(raw)
			if err != nil {
				return FieldEdit{}, invalidValue(path, raw, err)
			}
			return FieldEdit{Group: domain.GroupBackground, Background: set(v)}, nil
		}
	case domain.GroupSimulation.String():
		if set, ok := simulationFloats[field]; ok {
			v, err := parseFinite(raw)
			if err != nil {
				return FieldEdit{}, invalidValue(path, raw, err)
			}
			return FieldEdit{Group: domain.GroupSimulation, Simulation: set(v)}, nil
		}
		if set, ok := simulationInts[field]; ok {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return FieldEdit{}, invalidValue(path, raw, err)
			}
			return FieldEdit{Group: domain.GroupSimulation, Simulation: set(v)}, nil
		}
		if set, ok := simulationBools[field]; ok {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return FieldEdit{}, invalidValue(path, raw, err)
			}
			return FieldEdit{Group: domain.GroupSimulation, Simulation: set(v)}, nil
		}
		if field == "colors" {
			return FieldEdit{Group: domain.GroupSimulation, Simulation: domain.SetColors(splitColors(raw))}, nil
		}
	case domain.GroupPalette.String():
		if key, ok := domain.ParsePaletteKey(field); ok {
			return FieldEdit{Group: domain.GroupPalette, Palette: domain.SetPaletteColor(key, raw)}, nil
		}
	default:
		return FieldEdit{}, domain.NewError(domain.ErrCodeValidation, "unknown group", nil, map[string]interface{}{"group": groupName})
	}

	return FieldEdit{}, domain.NewError(domain.ErrCodeValidation, "unknown field", nil, map[string]interface{}{"path": path})
}

// parseFinite rejects NaN and infinities, which would never compare equal
// to themselves once stored.
func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

var errNotFinite = errors.New("value must be a finite number")

func invalidValue(path, raw string, cause error) error {
	return domain.NewError(domain.ErrCodeValidation, fmt.Sprintf("invalid value %q for %s", raw, path), cause, map[string]interface{}{"path": path})
}

// splitColors splits on commas outside parentheses so rgba(...) values
// survive intact.
func splitColors(raw string) []string {
	var (
		out   []string
		depth int
		start int
	)
	flush := func(end int) {
		if trimmed := strings.TrimSpace(raw[start:end]); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	for i, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(raw))
	return out
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
