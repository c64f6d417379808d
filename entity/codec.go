package entity

import (
	"bytes"
	"encoding/json"

	"github.com/kbukum/gogskit/errors"
)

// Parse decodes a single JSON object into a new T.
func Parse[T any](data []byte) (*T, error) {
	if data == nil {
		return nil, errors.Parse("json is null", nil)
	}
	if isBlank(data) {
		return nil, nil
	}
	var v *T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Parse("unable to parse json", err)
	}
	return v, nil
}

// TryParse is Parse without the error. ok is false exactly when Parse
// would have failed; an empty payload yields (nil, true).
func TryParse[T any](data []byte) (*T, bool) {
	v, err := Parse[T](data)
	if err != nil {
		return nil, false
	}
	return v, true
}

// ParseArray decodes a JSON array into a slice of T, preserving order.
func ParseArray[T any](data []byte) ([]T, error) {
	if data == nil {
		return nil, errors.Parse("json is null", nil)
	}
	if isBlank(data) {
		return nil, nil
	}
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Parse("unable to parse json array", err)
	}
	return v, nil
}

// TryParseArray is ParseArray without the error.
func TryParseArray[T any](data []byte) ([]T, bool) {
	v, err := ParseArray[T](data)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Serialize encodes v as JSON using its json tags.
func Serialize(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Parse("unable to serialize entity", err)
	}
	return data, nil
}

// SerializeIndent is Serialize with two-space indentation, for display.
func SerializeIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Parse("unable to serialize entity", err)
	}
	return data, nil
}

// isBlank reports whether data holds nothing but JSON whitespace.
func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
