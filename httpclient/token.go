package httpclient

import (
	"net/http"
	"strings"
)

const tokenParam = "token"

// TokenStage prepends token=<escaped token> to the query of requests sent to
// host. Requests to any other host, such as a redirect target elsewhere, and
// requests already carrying a token parameter pass through untouched. An empty
// host matches every request. The incoming request is cloned, never modified.
func TokenStage(token, host string) Stage {
	param := tokenParam + "=" + EscapeDataString(token)
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if host != "" && !strings.EqualFold(req.URL.Host, host) {
				return next.RoundTrip(req)
			}
			if hasTokenParam(req.URL.RawQuery) {
				return next.RoundTrip(req)
			}
			r := req.Clone(req.Context())
			if req.URL.RawQuery != "" {
				r.URL.RawQuery = param + "&" + req.URL.RawQuery
			} else {
				r.URL.RawQuery = param
			}
			return next.RoundTrip(r)
		})
	}
}

func hasTokenParam(rawQuery string) bool {
	for _, part := range strings.Split(rawQuery, "&") {
		if part == tokenParam || strings.HasPrefix(part, tokenParam+"=") {
			return true
		}
	}
	return false
}
