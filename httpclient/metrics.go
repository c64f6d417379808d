package httpclient

import (
	"net/http"
	"time"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/observability"
)

// MetricsStage records call count, duration, in-flight calls and failures
// by error code on m.
func MetricsStage(m *observability.ClientMetrics) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		if m == nil {
			return next
		}
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			ctx := req.Context()
			op := OperationFromContext(ctx)
			start := time.Now()
			m.RecordStart(ctx)

			resp, err := next.RoundTrip(req)
			if err != nil {
				status, code := 0, errors.ErrCodeRequest
				if e, ok := errors.AsError(err); ok {
					status, code = e.StatusCode, e.Code
				}
				m.RecordEnd(ctx, op, req.Method, status, time.Since(start))
				m.RecordError(ctx, op, code.String())
				return nil, err
			}
			m.RecordEnd(ctx, op, req.Method, resp.StatusCode, time.Since(start))
			return resp, nil
		})
	}
}
