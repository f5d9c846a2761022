// internal/adapters/out/firestore/helpers_fs.go
package firestore

import (
	"strings"
	"time"
)

// Loose-typed accessors for snap.Data() parsing. Documents written by
// older clients may carry numbers as int64 or float64 and timestamps in a
// couple of shapes; missing fields default at this boundary.

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		s := strings.TrimSpace(asString(e))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// asIntMap parses a size-label -> count map, flooring counts at 0.
func asIntMap(v any) map[string]int {
	raw, ok := v.(map[string]any)
	if !ok {
		return map[string]int{}
	}
	out := make(map[string]int, len(raw))
	for k, e := range raw {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		n := asInt(e)
		if n < 0 {
			n = 0
		}
		out[k] = n
	}
	return out
}
