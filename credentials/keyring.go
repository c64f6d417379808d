package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the keyring service name used when none is configured.
const DefaultKeyringService = "gogskit"

// KeyringProvider reads an access token from the operating system keyring.
// A missing entry yields anonymous.
type KeyringProvider struct {
	service string
	user    string
}

// NewKeyringProvider creates a provider for the entry (service, user).
func NewKeyringProvider(service, user string) *KeyringProvider {
	if service == "" {
		service = DefaultKeyringService
	}
	return &KeyringProvider{service: service, user: user}
}

// Credentials implements Provider.
func (p *KeyringProvider) Credentials(context.Context) (*Credentials, error) {
	tok, err := keyring.Get(p.service, p.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("credentials: keyring get %s/%s: %w", p.service, p.user, err)
	}
	if tok == "" {
		return nil, nil
	}
	c := Token(tok)
	return &c, nil
}

// StoreToken saves token in the keyring entry.
func (p *KeyringProvider) StoreToken(token string) error {
	if err := keyring.Set(p.service, p.user, token); err != nil {
		return fmt.Errorf("credentials: keyring set %s/%s: %w", p.service, p.user, err)
	}
	return nil
}

// DeleteToken removes the keyring entry. Removing a missing entry is not an error.
func (p *KeyringProvider) DeleteToken() error {
	if err := keyring.Delete(p.service, p.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("credentials: keyring delete %s/%s: %w", p.service, p.user, err)
	}
	return nil
}
