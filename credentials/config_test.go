package credentials

import (
	"context"
	"testing"

	"github.com/kbukum/gogskit/errors"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{Token: "t"}
	cfg.ApplyDefaults()
	if cfg.Source != SourceStatic {
		t.Errorf("expected static source, got %q", cfg.Source)
	}
	if cfg.Type != "token" {
		t.Errorf("expected inferred token type, got %q", cfg.Type)
	}
	if cfg.Keyring.Service != DefaultKeyringService {
		t.Errorf("expected default keyring service, got %q", cfg.Keyring.Service)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anonymous", Config{}, false},
		{"password", Config{Type: "password", Username: "a"}, false},
		{"password without user", Config{Type: "password"}, true},
		{"token without token", Config{Type: "token"}, true},
		{"redis without key", Config{Source: "redis"}, true},
		{"consul with key", Config{Source: "consul", Key: "gogs/creds"}, false},
		{"keyring", Config{Source: "keyring"}, false},
		{"unknown source", Config{Source: "vault"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.ApplyDefaults()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
			if err != nil && !errors.IsConfigurationError(err) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestFromConfig_Static(t *testing.T) {
	p, err := FromConfig(Config{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := Resolve(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Type() != TypePassword || c.Identifier() != "alice" {
		t.Errorf("unexpected credentials %v", c)
	}
}

func TestFromConfig_Backends(t *testing.T) {
	p, err := FromConfig(Config{Source: "redis", Key: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RedisProvider); !ok {
		t.Errorf("expected *RedisProvider, got %T", p)
	}
	p, err = FromConfig(Config{Source: "consul", Key: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*ConsulProvider); !ok {
		t.Errorf("expected *ConsulProvider, got %T", p)
	}
	p, err = FromConfig(Config{Source: "keyring"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*KeyringProvider); !ok {
		t.Errorf("expected *KeyringProvider, got %T", p)
	}
	if _, err := FromConfig(Config{Source: "redis"}); err == nil {
		t.Error("expected validation error")
	}
}
