package logger

import (
	"time"
)

// Field keys used in log entries.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldMethod    = "method"
	FieldURI       = "uri"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldErrorCode = "error_code"
	FieldDuration  = "duration_ms"
)

// Fields builds a field map from alternating key-value pairs. Pairs with a
// non-string key and a trailing key without value are dropped.
//
//	log.Info("token created", logger.Fields("name", "gogsctl"))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// CallFields describes one API call. uri must already be free of secrets.
func CallFields(operation, method, uri string, elapsed time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: operation,
		FieldMethod:    method,
		FieldURI:       uri,
		FieldDuration:  elapsed.Milliseconds(),
	}
}

// MergeWithError adds an error field to fields, allocating it when nil.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
