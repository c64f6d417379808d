package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/gogskit/entity"
	"github.com/kbukum/gogskit/testutil/fixtures"
)

// APIPath is the path prefix the fake server serves the API under.
const APIPath = "/gogs/api/v1"

// Response is a canned reply.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// RecordedRequest is a request received by the fake server.
type RecordedRequest struct {
	Method string
	// URI is the request path relative to APIPath plus the query without
	// the token parameter, e.g. "users/search?q=temp&limit=3".
	URI    string
	Header http.Header
	Body   string
	// Token is the value of the token query parameter, if any.
	Token string
	// RawQuery is the query exactly as received.
	RawQuery string
}

// Form parses Body as URL-encoded form data.
func (r RecordedRequest) Form() url.Values {
	v, _ := url.ParseQuery(r.Body)
	return v
}

// Server is a fake Gogs API. Responses are registered per method and
// relative request URI; every request is recorded. Unregistered requests
// get the default response, or 501 with an error envelope naming the route.
type Server struct {
	srv       *httptest.Server
	mu        sync.Mutex
	responses map[string]Response
	fallback  *Response
	requests  []RecordedRequest
}

// NewServer starts a fake Gogs API server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{responses: make(map[string]Response)}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Any(APIPath+"/*path", s.handle)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, entity.ErrorEnvelope{Error: "outside " + APIPath})
	})

	s.srv = httptest.NewServer(engine)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the API base URL, e.g. "http://127.0.0.1:1234/gogs/api/v1".
func (s *Server) URL() string { return s.srv.URL + APIPath }

// SetResponse registers a reply for method and the relative URI.
func (s *Server) SetResponse(method, uri string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[routeKey(method, uri)] = resp
}

// SetJSON registers a 200 JSON reply.
func (s *Server) SetJSON(method, uri, body string) {
	s.SetResponse(method, uri, Response{Status: http.StatusOK, ContentType: "application/json; charset=UTF-8", Body: body})
}

// SetFixture registers a 200 reply with the named fixture as body.
func (s *Server) SetFixture(t testing.TB, method, uri, name string) {
	t.Helper()
	s.SetJSON(method, uri, fixtures.MustRead(t, name))
}

// SetStatus registers an empty reply with status.
func (s *Server) SetStatus(method, uri string, status int) {
	s.SetResponse(method, uri, Response{Status: status})
}

// SetError registers a JSON error envelope reply, as Gogs sends on failure.
func (s *Server) SetError(method, uri string, status int, message string) {
	body, _ := entity.Serialize(entity.ErrorEnvelope{Error: message})
	s.SetResponse(method, uri, Response{Status: status, ContentType: "application/json; charset=UTF-8", Body: string(body)})
}

// SetDefaultResponse sets the reply for unregistered requests.
func (s *Server) SetDefaultResponse(resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = &resp
}

// Reset clears all responses and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = make(map[string]Response)
	s.fallback = nil
	s.requests = nil
}

// Requests returns a copy of all recorded requests in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if none arrived.
func (s *Server) LastRequest(t testing.TB) RecordedRequest {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("testutil: no request received")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) handle(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	uri, token := relativeURI(c.Param("path"), c.Request.URL.RawQuery)
	rec := RecordedRequest{
		Method:   c.Request.Method,
		URI:      uri,
		Header:   c.Request.Header.Clone(),
		Body:     string(body),
		Token:    token,
		RawQuery: c.Request.URL.RawQuery,
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	resp, ok := s.responses[routeKey(rec.Method, uri)]
	if !ok && s.fallback != nil {
		resp, ok = *s.fallback, true
	}
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotImplemented, entity.ErrorEnvelope{
			Error: fmt.Sprintf("no response registered for %s %s", rec.Method, uri),
		})
		return
	}
	if resp.Body == "" {
		c.Status(resp.Status)
		return
	}
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(resp.Status, contentType, []byte(resp.Body))
}

func routeKey(method, uri string) string {
	return strings.ToUpper(method) + " " + strings.TrimLeft(uri, "/")
}

// relativeURI strips the leading token parameter from the query and joins
// the rest onto path.
func relativeURI(path, rawQuery string) (uri, token string) {
	path = strings.TrimLeft(path, "/")
	var rest []string
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		if v, ok := strings.CutPrefix(part, "token="); ok && token == "" {
			token, _ = url.QueryUnescape(v)
			continue
		}
		rest = append(rest, part)
	}
	if len(rest) == 0 {
		return path, token
	}
	return path + "?" + strings.Join(rest, "&"), token
}
