package httpclient

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/kbukum/gogskit/entity"
	"github.com/kbukum/gogskit/errors"
)

// NormalizeStage turns every failed call into an *errors.Error.
//
// A transport failure becomes a request error carrying the URI and cause.
// A non-2xx response is drained and classified by status; when the body is
// JSON, the server's error envelope supplies the message.
func NormalizeStage() Stage {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			uri := redactedURI(req.URL)

			resp, err := next.RoundTrip(req)
			if err != nil {
				return nil, errors.RequestFailed(uri, err)
			}
			if resp == nil {
				return nil, errors.NoResponse(uri)
			}
			if resp.StatusCode >= 200 && resp.StatusCode < 300 || isRedirect(resp) {
				return resp, nil
			}

			var body []byte
			var readErr error
			if resp.Body != nil {
				body, readErr = io.ReadAll(resp.Body)
				_ = resp.Body.Close()
			}

			message := reasonPhrase(resp)
			if len(body) > 0 && isJSON(resp.Header.Get("Content-Type")) {
				if env, ok := entity.TryParse[entity.ErrorEnvelope](body); ok && env != nil && env.Error != "" {
					message = env.Error
				}
			}

			e := errors.FromStatus(resp.StatusCode, message).WithRequestURI(uri)
			if readErr == nil {
				e.WithBody(string(body))
			}
			return nil, e
		})
	}
}

// isRedirect reports whether http.Client will follow resp. Redirects are
// followed above the transport, so they must pass through untouched.
func isRedirect(resp *http.Response) bool {
	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return resp.Header.Get("Location") != ""
	}
	return false
}

func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if s := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); s != "" {
		return s
	}
	if s := http.StatusText(resp.StatusCode); s != "" {
		return s
	}
	return "response status code does not indicate success: " + code
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
