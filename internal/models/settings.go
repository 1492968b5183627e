package models

// Settings is an immutable mapping from parameter name to value for one
// environment configuration. Values are numeric, string, or boolean. Entries
// are defined when the sweep is built and never mutated afterwards.
type Settings map[string]any

// Int returns the named parameter as an int.
func (s Settings) Int(key string) (int, bool) {
	switch v := s[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// IntOr returns the named parameter as an int, or def if absent.
func (s Settings) IntOr(key string, def int) int {
	if v, ok := s.Int(key); ok {
		return v
	}
	return def
}

// Float returns the named parameter as a float64.
func (s Settings) Float(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// FloatOr returns the named parameter as a float64, or def if absent.
func (s Settings) FloatOr(key string, def float64) float64 {
	if v, ok := s.Float(key); ok {
		return v
	}
	return def
}

// Clone returns a copy of the settings map so callers can hand out entries
// without exposing the registry's backing storage to mutation.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
