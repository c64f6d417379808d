package credentials

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// RedisProvider reads credentials from a Redis hash with the fields
// type, username, password and token. A missing key yields anonymous.
type RedisProvider struct {
	rdb goredis.Cmdable
	key string
}

// NewRedisProvider creates a provider reading the hash at key.
func NewRedisProvider(rdb goredis.Cmdable, key string) *RedisProvider {
	return &RedisProvider{rdb: rdb, key: key}
}

// Credentials implements Provider.
func (p *RedisProvider) Credentials(ctx context.Context) (*Credentials, error) {
	cmd := p.rdb.HGetAll(ctx, p.key)
	vals, err := cmd.Result()
	if err != nil {
		return nil, fmt.Errorf("credentials: redis hgetall %s: %w", p.key, err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	var s Stored
	if err := cmd.Scan(&s); err != nil {
		return nil, fmt.Errorf("credentials: redis scan %s: %w", p.key, err)
	}
	return s.Credentials()
}

// Store replaces the hash at key with c.
func (p *RedisProvider) Store(ctx context.Context, c Credentials) error {
	s := ToStored(c)
	_, err := p.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, p.key)
		pipe.HSet(ctx, p.key,
			"type", s.Type,
			"username", s.Username,
			"password", s.Password,
			"token", s.Token,
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("credentials: redis store %s: %w", p.key, err)
	}
	return nil
}
