package util

import (
	"fmt"
	"strings"
	"time"
)

// ParseCount converts a count string (e.g., "10k", "2.5m") to an integer.
// If the string is empty, it returns 0.
func ParseCount(count string) (int, error) {
	count = strings.TrimSpace(count)
	if count == "" {
		return 0, nil
	}

	var value float64
	var unit string

	n, err := fmt.Sscanf(count, "%f%s", &value, &unit)

	if err != nil && n == 0 {
		return 0, fmt.Errorf("invalid count value: %s", count)
	}

	if n == 1 {
		return int(value), nil
	}

	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "K":
		return int(value * 1e3), nil
	case "M":
		return int(value * 1e6), nil
	case "B":
		return int(value * 1e9), nil
	default:
		return 0, fmt.Errorf("unknown count unit: %s", unit)
	}
}

// ParseTimeout parses a duration string (e.g., "500ms", "10s"). A bare number
// is taken as seconds. An empty string returns 0.
func ParseTimeout(timeout string) (time.Duration, error) {
	timeout = strings.TrimSpace(timeout)
	if timeout == "" {
		return 0, nil
	}

	if d, err := time.ParseDuration(timeout); err == nil {
		return d, nil
	}

	var seconds float64
	if _, err := fmt.Sscanf(timeout, "%f", &seconds); err != nil {
		return 0, fmt.Errorf("invalid timeout value: %s", timeout)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
