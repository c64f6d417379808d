package httpclient

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/observability"
)

// TracingStage wraps each call in a client span named
// "{serviceName}.{operation}" and injects the trace context into the
// outgoing headers with the global propagator.
func TracingStage(serviceName string) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			op := OperationFromContext(req.Context())
			if op == "" {
				op = req.Method
			}
			spanName := op
			if serviceName != "" {
				spanName = serviceName + "." + op
			}

			ctx, span := observability.StartSpan(req.Context(), spanName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String(observability.AttrOperation, op),
					attribute.String(observability.AttrMethod, req.Method),
					attribute.String(observability.AttrURL, redactedURI(req.URL)),
					attribute.String(observability.AttrServerHost, req.URL.Host),
				),
			)
			defer span.End()
			if id := req.Header.Get(requestIDHeader); id != "" {
				span.SetAttributes(attribute.String(observability.AttrRequestID, id))
			}

			r := req.Clone(ctx)
			otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

			resp, err := next.RoundTrip(r)
			if err != nil {
				if e, ok := errors.AsError(err); ok {
					span.SetAttributes(attribute.String(observability.AttrErrorCode, e.Code.String()))
					if e.StatusCode > 0 {
						span.SetAttributes(attribute.Int(observability.AttrStatusCode, e.StatusCode))
					}
				}
				observability.SetSpanError(span, err)
				return nil, err
			}
			span.SetAttributes(attribute.Int(observability.AttrStatusCode, resp.StatusCode))
			return resp, nil
		})
	}
}
