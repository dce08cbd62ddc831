package utils

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseQueryList handles both repeated and comma-separated query params,
// trimming entries and dropping blanks.
// Example:
//
//	?debrisTypes=Concrete,Wood         → ["Concrete","Wood"]
//	?debrisTypes=Concrete&debrisTypes=Wood → ["Concrete","Wood"]
func ParseQueryList(q url.Values, key string) []string {
	values := q[key]
	if len(values) == 0 {
		return nil
	}

	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// QueryFloat parses key as a float, returning fallback when it is absent.
func QueryFloat(q url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// QueryInt parses key as an int, returning fallback when it is absent.
func QueryInt(q url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
