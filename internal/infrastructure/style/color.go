package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbFunc = regexp.MustCompile(`^rgba?\(([^)]*)\)$`)
	hslFunc = regexp.MustCompile(`^hsla?\(([^)]*)\)$`)
)

// ParseColor decodes a CSS colour literal into its colour and alpha.
func ParseColor(value string) (colorful.Color, float64, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "#"):
		return parseHex(value)
	case rgbFunc.MatchString(value):
		parts := splitArgs(rgbFunc.FindStringSubmatch(value)[1])
		if len(parts) != 3 && len(parts) != 4 {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: expected 3 or 4 components", value)
		}
		var channels [3]float64
		for i := 0; i < 3; i++ {
			c, err := parseChannel(parts[i], 255)
			if err != nil {
				return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
			}
			channels[i] = c
		}
		alpha, err := parseAlpha(parts)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		return colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, alpha, nil
	case hslFunc.MatchString(value):
		parts := splitArgs(hslFunc.FindStringSubmatch(value)[1])
		if len(parts) != 3 && len(parts) != 4 {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: expected 3 or 4 components", value)
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		s, err := parseChannel(parts[1], 100)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		l, err := parseChannel(parts[2], 100)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		alpha, err := parseAlpha(parts)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		return colorful.Hsl(h, s, l), alpha, nil
	default:
		return colorful.Color{}, 0, fmt.Errorf("unsupported colour %q", value)
	}
}

// Flatten composites value over backdrop and returns an opaque hex colour
// a terminal can display.
func Flatten(value string, backdrop colorful.Color) (string, error) {
	c, alpha, err := ParseColor(value)
	if err != nil {
		return "", err
	}
	if alpha < 1 {
		c = backdrop.BlendRgb(c, alpha)
	}
	return c.Clamped().Hex(), nil
}

func parseHex(value string) (colorful.Color, float64, error) {
	digits := strings.TrimPrefix(value, "#")
	alpha := 1.0
	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(strings.Repeat(digits[3:], 2), 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		alpha = float64(a) / 255
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("colour %q: %w", value, err)
	}
	return c, alpha, nil
}

func splitArgs(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseChannel maps an absolute or percentage component to [0,1].
func parseChannel(raw string, scale float64) (float64, error) {
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return v / scale, nil
}

func parseAlpha(parts []string) (float64, error) {
	if len(parts) < 4 {
		return 1, nil
	}
	return parseChannel(parts[3], 1)
}
