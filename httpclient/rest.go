package httpclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kbukum/gogskit/entity"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithQuery appends ordered query parameters to the request.
func WithQuery(params ...QueryParam) RequestOption {
	return func(r *Request) {
		r.Query = append(r.Query, params...)
	}
}

// Named sets the operation name of the request.
func Named(operation string) RequestOption {
	return func(r *Request) {
		r.Operation = operation
	}
}

// Get performs a GET request and decodes the JSON object response into T.
// An empty body yields nil.
func Get[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (*T, error) {
	resp, err := c.Do(ctx, newRequest(http.MethodGet, path, opts))
	if err != nil {
		return nil, err
	}
	return entity.Parse[T](resp.Body)
}

// GetArray performs a GET request and decodes the JSON array response.
// An empty body or a JSON null yields nil.
func GetArray[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) ([]T, error) {
	resp, err := c.Do(ctx, newRequest(http.MethodGet, path, opts))
	if err != nil {
		return nil, err
	}
	return entity.ParseArray[T](resp.Body)
}

// Post sends body as JSON with POST and decodes the response into T.
func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*T, error) {
	return sendTyped[T](c, ctx, http.MethodPost, path, body, opts)
}

// Put sends body as JSON with PUT and decodes the response into T.
func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*T, error) {
	return sendTyped[T](c, ctx, http.MethodPut, path, body, opts)
}

// Patch sends body as JSON with PATCH and decodes the response into T.
func Patch[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*T, error) {
	return sendTyped[T](c, ctx, http.MethodPatch, path, body, opts)
}

// PostForm sends form URL-encoded with POST and decodes the response into T.
func PostForm[T any](c *Client, ctx context.Context, path string, form url.Values, opts ...RequestOption) (*T, error) {
	req := newRequest(http.MethodPost, path, opts)
	req.Body = []byte(form.Encode())
	req.ContentType = contentTypeForm
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return entity.Parse[T](resp.Body)
}

// Send performs a request whose response body is ignored, such as DELETE or
// a membership PUT. A nil body sends no content.
func Send(c *Client, ctx context.Context, method, path string, body any, opts ...RequestOption) error {
	req := newRequest(method, path, opts)
	if err := setJSONBody(&req, body); err != nil {
		return err
	}
	_, err := c.Do(ctx, req)
	return err
}

func sendTyped[T any](c *Client, ctx context.Context, method, path string, body any, opts []RequestOption) (*T, error) {
	req := newRequest(method, path, opts)
	if err := setJSONBody(&req, body); err != nil {
		return nil, err
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return entity.Parse[T](resp.Body)
}

func newRequest(method, path string, opts []RequestOption) Request {
	req := Request{Method: method, Path: path}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

func setJSONBody(req *Request, body any) error {
	if body == nil {
		return nil
	}
	data, err := entity.Serialize(body)
	if err != nil {
		return err
	}
	req.Body = data
	req.ContentType = contentTypeJSON
	return nil
}
