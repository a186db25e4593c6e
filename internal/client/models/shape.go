package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformed means the bytes are not JSON at all.
	ErrMalformed = errors.New("malformed json")
	// ErrShape means the JSON is well formed but does not match the contract.
	ErrShape = errors.New("unexpected shape")
)

// object decodes data and requires a JSON object at the top level.
func object(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return asObject(v)
}

func asObject(v any) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: want object, got %T", ErrShape, v)
	}
	return obj, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	s, ok := obj[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string", ErrShape, key)
	}
	return s, nil
}

func stringFields(obj map[string]any, keys ...string) ([]string, error) {
	out := make([]string, len(keys))
	for i, k := range keys {
		s, err := stringField(obj, k)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func arrayField(obj map[string]any, key string) ([]any, error) {
	arr, ok := obj[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q must be an array", ErrShape, key)
	}
	return arr, nil
}

func timeField(obj map[string]any, key string) (time.Time, error) {
	s, err := stringField(obj, key)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %q is not a timestamp", ErrShape, key)
	}
	return ts, nil
}

func errShapef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrShape}, args...)...)
}
