package theme

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
)

// FieldValues renders every field of one group as text keyed by its
// serialised name. The output round-trips through ParseUpdate.
func FieldValues(cfg domain.ThemeConfig, group domain.Group) map[string]string {
	var v reflect.Value
	switch group {
	case domain.GroupBackground:
		v = reflect.ValueOf(cfg.Background)
	case domain.GroupSimulation:
		v = reflect.ValueOf(cfg.Simulation)
	case domain.GroupPalette:
		v = reflect.ValueOf(cfg.Palette)
	default:
		return nil
	}

	out := make(map[string]string, v.NumField())
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		out[name] = formatValue(v.Field(i))
	}
	return out
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v.Interface())
	}
}
