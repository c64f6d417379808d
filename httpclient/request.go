package httpclient

import (
	"net/http"
	"net/url"
)

// Request describes one call to the Gogs API.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// Path is relative to the client's base URL, e.g. "users/search".
	Path string
	// Query are ordered query-string parameters.
	Query []QueryParam
	// Body is the encoded request body, or nil.
	Body []byte
	// ContentType is sent when Body is set.
	ContentType string
	// Operation names the call for logs, spans and metrics, e.g. "users.get".
	Operation string
}

// Response is a successful (2xx) response with its body fully read.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body. It is empty, not nil, when the server
	// sent no content.
	Body []byte
	// RequestURI is the URI the call was made to, without credentials.
	RequestURI *url.URL
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
