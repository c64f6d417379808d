package gogs

import (
	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/validation"
)

// Client is the entry point to the Gogs API. It is safe for concurrent use.
type Client struct {
	// User covers the authenticated user.
	User *UserClient
	// Users reads users and manages their tokens.
	Users *UsersClient
	// Orgs reads and edits organizations.
	Orgs *OrgsClient
	// Admin performs site administration.
	Admin *AdminClient

	http *httpclient.Client
}

// New creates a client for the API at cfg.BaseURL.
//
//	client, err := gogs.New(httpclient.Config{BaseURL: "https://try.gogs.io/api/v1"},
//	    httpclient.WithStaticCredentials(credentials.Token(token)))
func New(cfg httpclient.Config, opts ...httpclient.Option) (*Client, error) {
	hc, err := httpclient.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithHTTPClient(hc), nil
}

// NewWithHTTPClient wraps an existing client context.
func NewWithHTTPClient(hc *httpclient.Client) *Client {
	return &Client{
		User:  &UserClient{c: hc},
		Users: &UsersClient{c: hc},
		Orgs:  &OrgsClient{c: hc},
		Admin: &AdminClient{c: hc},
		http:  hc,
	}
}

// HTTPClient returns the underlying client context.
func (c *Client) HTTPClient() *httpclient.Client { return c.http }

// requireName rejects names that are blank or would not survive as a single
// path segment.
func requireName(field, value string) error {
	return validation.Name(field, value)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
