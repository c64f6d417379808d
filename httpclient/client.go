package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/logger"
)

const requestIDHeader = "X-Request-Id"

// Client is the Gogs API client context: it owns the normalized base URL,
// the credential provider and the User-Agent, and assembles a fresh
// request pipeline for every call. A Client holds no mutable state and is
// safe for concurrent use.
type Client struct {
	config    Config
	baseURL   *url.URL
	userAgent UserAgent
	provider  credentials.Provider
	transport func() http.RoundTripper
	stages    []Stage
	log       *logger.Logger
}

// New creates a new client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	ua, err := cfg.UserAgent.Build()
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:    cfg,
		baseURL:   base,
		userAgent: ua,
		transport: cfg.Transport,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		factory, err := newTransportFactory(cfg)
		if err != nil {
			return nil, err
		}
		c.transport = factory
	}
	return c, nil
}

// BaseURL returns a copy of the normalized base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// UserAgent returns the User-Agent sent with every call.
func (c *Client) UserAgent() UserAgent { return c.userAgent }

// Logger returns the client logger. It is a no-op logger unless WithLogger was used.
func (c *Client) Logger() *logger.Logger { return c.log }

// RequestURI builds the absolute URI of relativePath under the base URL.
func (c *Client) RequestURI(relativePath string, params ...QueryParam) *url.URL {
	return BuildURI(c.baseURL, relativePath, params)
}

// Do performs one call. A non-2xx status, a transport failure or a failed
// credential lookup is returned as an *errors.Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	uri := c.RequestURI(req.Path, req.Query...)

	creds, err := credentials.Resolve(ctx, c.provider)
	if err != nil {
		return nil, errors.RequestFailed(uri.String(), err)
	}

	base := c.transport()
	defer closeIdle(base)
	pipeline := Chain(append(append([]Stage{}, c.stages...), stagesFor(creds, c.baseURL.Host)...)...)(base)

	operation := req.Operation
	if operation == "" {
		operation = req.Method
	}
	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(WithOperation(ctx, operation), requestID)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, uri.String(), body)
	if err != nil {
		return nil, errors.RequestFailed(uri.String(), err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent.String())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.Body != nil && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	applyAuth(httpReq, creds)

	hc := &http.Client{Transport: pipeline, Timeout: c.config.Timeout}
	resp, err := hc.Do(httpReq)
	if err != nil {
		if e, ok := errors.AsError(err); ok {
			return nil, e
		}
		return nil, errors.RequestFailed(uri.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.RequestFailed(uri.String(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.FromStatus(resp.StatusCode, reasonPhrase(resp)).
			WithRequestURI(uri.String()).WithBody(string(data))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
		RequestURI: uri,
	}, nil
}
