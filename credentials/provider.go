package credentials

import "context"

// Provider supplies the credentials for one outgoing call.
// A nil result with a nil error means anonymous.
type Provider interface {
	Credentials(ctx context.Context) (*Credentials, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (*Credentials, error)

// Credentials calls f.
func (f ProviderFunc) Credentials(ctx context.Context) (*Credentials, error) { return f(ctx) }

type staticProvider struct {
	c Credentials
}

// Static returns a provider that always yields c.
func Static(c Credentials) Provider { return staticProvider{c: c} }

func (p staticProvider) Credentials(context.Context) (*Credentials, error) {
	c := p.c
	return &c, nil
}

// Resolve asks p for credentials, treating a nil provider or a nil result as anonymous.
func Resolve(ctx context.Context, p Provider) (Credentials, error) {
	if p == nil {
		return Anonymous(), nil
	}
	c, err := p.Credentials(ctx)
	if err != nil {
		return Anonymous(), err
	}
	if c == nil {
		return Anonymous(), nil
	}
	return *c, nil
}
