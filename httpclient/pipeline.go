package httpclient

import (
	"context"
	"net/http"
)

// Stage wraps a round tripper with one concern of the request pipeline.
type Stage func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip calls f(req).
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain composes stages into one. The first stage is the outermost:
// Chain(a, b, c)(rt) == a(b(c(rt))). Nil stages are skipped.
func Chain(stages ...Stage) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		for i := len(stages) - 1; i >= 0; i-- {
			if stages[i] != nil {
				next = stages[i](next)
			}
		}
		return next
	}
}

type operationKey struct{}

// WithOperation labels ctx with the logical operation name of a call
// (for example "users.get"). Logging, tracing and metrics stages use it
// instead of the request path.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

// OperationFromContext returns the operation name set by WithOperation.
func OperationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok {
		return op
	}
	return ""
}
