package logging

import (
	"context"
	"sort"

	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

func contextExtras(ctx context.Context, layer string) map[string]interface{} {
	extras := map[string]interface{}{
		"layer": layer,
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		extras["correlation_id"] = id
	}
	return extras
}

func appendFields(base, additions []interface{}) []interface{} {
	next := make([]interface{}, 0, len(base)+len(additions))
	next = append(next, base...)
	return append(next, additions...)
}

// mergeFields flattens key/value lists into one list where later keys win
// but keep the position of their first occurrence. Extras are appended in
// key order and skipped when empty.
func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0)

	addPair := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				continue
			}
			addPair(key, values[i+1])
		}
	}

	process(base)
	process(additions)

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		addPair(key, extras[key])
	}

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}
