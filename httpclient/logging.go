package httpclient

import (
	"net/http"
	"time"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/logger"
)

// LoggingStage logs each call: operation, method, URI, status and duration.
// Successful calls log at debug, failures at warn.
func LoggingStage(log *logger.Logger) Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		if log == nil {
			return next
		}
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			fields := logger.CallFields(OperationFromContext(req.Context()), req.Method, redactedURI(req.URL), time.Since(start))
			l := log.WithContext(req.Context())

			if err != nil {
				if e, ok := errors.AsError(err); ok {
					fields[logger.FieldErrorCode] = e.Code.String()
					if e.StatusCode > 0 {
						fields[logger.FieldStatus] = e.StatusCode
					}
				}
				l.Warn("gogs call failed", logger.MergeWithError(fields, err))
				return nil, err
			}

			fields[logger.FieldStatus] = resp.StatusCode
			l.Debug("gogs call ok", fields)
			return resp, nil
		})
	}
}
