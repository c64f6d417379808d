package entity

import "encoding/json"

// DataEnvelope wraps a successful search-style payload: {"ok": true, "data": ...}.
// The ok discriminant is fixed; it is written on serialize and ignored on parse.
type DataEnvelope[T any] struct {
	Data T `json:"data"`
}

// OK always reports true.
func (DataEnvelope[T]) OK() bool { return true }

// MarshalJSON emits the ok discriminant alongside data.
func (e DataEnvelope[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OK   bool `json:"ok"`
		Data T    `json:"data"`
	}{true, e.Data})
}

// ErrorEnvelope is the body the server sends with a failed JSON response:
// {"ok": false, "error": "..."}.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// OK always reports false.
func (ErrorEnvelope) OK() bool { return false }

// MarshalJSON emits the ok discriminant alongside error.
func (e ErrorEnvelope) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}{false, e.Error})
}
