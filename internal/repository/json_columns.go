package repository

import "encoding/json"

// marshalList stores a slice as a JSON array; nil becomes "[]".
func marshalList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalList parses a JSON array column; empty and "null" yield an empty slice.
func unmarshalList[T any](s string) ([]T, error) {
	out := []T{}
	if s == "" || s == "null" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}
