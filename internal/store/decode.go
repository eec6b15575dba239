package store

import "time"

// Typed getters for untyped document payloads. Feature packages decode raw
// documents through these so that every absent or mistyped field falls back
// to one documented default, in one place.

func GetString(doc Document, key, fallback string) string {
	if v, ok := doc[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func GetInt(doc Document, key string, fallback int64) int64 {
	switch v := doc[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return fallback
	}
}

func GetFloat(doc Document, key string, fallback float64) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return fallback
	}
}

func GetBool(doc Document, key string, fallback bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return fallback
}

func GetTime(doc Document, key string, fallback time.Time) time.Time {
	if v, ok := doc[key].(time.Time); ok {
		return v
	}
	return fallback
}

func GetStringSlice(doc Document, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func GetDocSlice(doc Document, key string) []Document {
	raw, ok := doc[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Document, 0, len(raw))
	for _, item := range raw {
		if d, ok := item.(map[string]any); ok {
			out = append(out, d)
		}
	}
	return out
}
