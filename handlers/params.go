package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// stringParam pulls a required string parameter out of the session bag.
func stringParam(params map[string]any, key string) (string, error) {
	raw, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("parameter %q must be a non-empty string", key)
	}
	return s, nil
}

// passengersParam reads pasajeros, tolerating the shapes Dialogflow sends:
// JSON number, numeric string, or absent (one passenger).
func passengersParam(params map[string]any) (int, error) {
	raw, ok := params["pasajeros"]
	if !ok || raw == nil {
		return 1, nil
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("parameter \"pasajeros\" is not a number: %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("parameter \"pasajeros\" has unsupported type %T", raw)
	}
}
