package credentials

import (
	"context"
	"fmt"

	consulapi "github.com/hashicorp/consul/api"

	"github.com/kbukum/gogskit/entity"
)

// ConsulProvider reads credentials from a Consul KV entry holding a JSON
// encoded Stored value. A missing or empty entry yields anonymous.
type ConsulProvider struct {
	kv  *consulapi.KV
	key string
}

// NewConsulProvider creates a provider reading key from the client's KV store.
func NewConsulProvider(client *consulapi.Client, key string) *ConsulProvider {
	return &ConsulProvider{kv: client.KV(), key: key}
}

// Credentials implements Provider.
func (p *ConsulProvider) Credentials(ctx context.Context) (*Credentials, error) {
	pair, _, err := p.kv.Get(p.key, (&consulapi.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("credentials: consul get %s: %w", p.key, err)
	}
	if pair == nil || len(pair.Value) == 0 {
		return nil, nil
	}
	s, err := entity.Parse[Stored](pair.Value)
	if err != nil {
		return nil, fmt.Errorf("credentials: consul decode %s: %w", p.key, err)
	}
	if s == nil {
		return nil, nil
	}
	return s.Credentials()
}

// Store writes c to the KV entry.
func (p *ConsulProvider) Store(ctx context.Context, c Credentials) error {
	data, err := entity.Serialize(ToStored(c))
	if err != nil {
		return err
	}
	_, err = p.kv.Put(&consulapi.KVPair{Key: p.key, Value: data}, (&consulapi.WriteOptions{}).WithContext(ctx))
	if err != nil {
		return fmt.Errorf("credentials: consul put %s: %w", p.key, err)
	}
	return nil
}
