package credentials

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenSourceProvider yields token credentials from an oauth2.TokenSource,
// refreshing the token when the source reports it expired.
type TokenSourceProvider struct {
	ts oauth2.TokenSource
}

// NewTokenSourceProvider wraps ts so a valid token is reused until it expires.
func NewTokenSourceProvider(ts oauth2.TokenSource) *TokenSourceProvider {
	return &TokenSourceProvider{ts: oauth2.ReuseTokenSource(nil, ts)}
}

// Credentials implements Provider.
func (p *TokenSourceProvider) Credentials(context.Context) (*Credentials, error) {
	tok, err := p.ts.Token()
	if err != nil {
		return nil, fmt.Errorf("credentials: token source: %w", err)
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, nil
	}
	c := Token(tok.AccessToken)
	return &c, nil
}
