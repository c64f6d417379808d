package credentials

import (
	"fmt"
	"strings"

	consulapi "github.com/hashicorp/consul/api"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kbukum/gogskit/errors"
)

// Credential sources.
const (
	SourceStatic  = "static"
	SourceRedis   = "redis"
	SourceConsul  = "consul"
	SourceKeyring = "keyring"
)

// Config selects and configures a credentials provider.
type Config struct {
	// Source is one of static, redis, consul or keyring (default: static).
	Source string `yaml:"source" mapstructure:"source"`

	// Type is anonymous, password or token for the static source.
	Type string `yaml:"type" mapstructure:"type"`

	// Username and Password are used by static password credentials.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// Token is used by static token credentials.
	Token string `yaml:"token" mapstructure:"token"`

	// Key is the Redis hash or Consul KV key holding the credentials.
	Key string `yaml:"key" mapstructure:"key"`

	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
	Consul  ConsulConfig  `yaml:"consul" mapstructure:"consul"`
	Keyring KeyringConfig `yaml:"keyring" mapstructure:"keyring"`
}

// RedisConfig holds the connection settings for the redis source.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

// ConsulConfig holds the connection settings for the consul source.
type ConsulConfig struct {
	Address    string `yaml:"address" mapstructure:"address"`
	Scheme     string `yaml:"scheme" mapstructure:"scheme"`
	Datacenter string `yaml:"datacenter" mapstructure:"datacenter"`
	Token      string `yaml:"token" mapstructure:"token"`
}

// KeyringConfig names the keyring entry for the keyring source.
type KeyringConfig struct {
	Service string `yaml:"service" mapstructure:"service"`
	User    string `yaml:"user" mapstructure:"user"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source == "" {
		c.Source = SourceStatic
	}
	if c.Source == SourceStatic && c.Type == "" {
		switch {
		case c.Token != "":
			c.Type = TypeToken.String()
		case c.Username != "":
			c.Type = TypePassword.String()
		}
	}
	if c.Source == SourceRedis && c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Source == SourceConsul && c.Consul.Address == "" {
		c.Consul.Address = "localhost:8500"
	}
	if c.Keyring.Service == "" {
		c.Keyring.Service = DefaultKeyringService
	}
	if c.Keyring.User == "" {
		c.Keyring.User = "default"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceStatic:
		typ, err := ParseType(c.Type)
		if err != nil {
			return err
		}
		if typ == TypePassword && c.Username == "" {
			return errors.Configuration("credentials: username is required for password credentials")
		}
		if typ == TypeToken && c.Token == "" {
			return errors.Configuration("credentials: token is required for token credentials")
		}
	case SourceRedis, SourceConsul:
		if c.Key == "" {
			return errors.Configuration(fmt.Sprintf("credentials: key is required for the %s source", c.Source))
		}
	case SourceKeyring:
	default:
		return errors.Configuration(fmt.Sprintf("credentials: unknown source %q", c.Source))
	}
	return nil
}

// FromConfig builds the provider described by cfg.
func FromConfig(cfg Config) (Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Source {
	case SourceRedis:
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisProvider(rdb, cfg.Key), nil
	case SourceConsul:
		client, err := consulapi.NewClient(&consulapi.Config{
			Address:    cfg.Consul.Address,
			Scheme:     cfg.Consul.Scheme,
			Datacenter: cfg.Consul.Datacenter,
			Token:      cfg.Consul.Token,
		})
		if err != nil {
			return nil, errors.Configuration("credentials: consul client").WithCause(err)
		}
		return NewConsulProvider(client, cfg.Key), nil
	case SourceKeyring:
		return NewKeyringProvider(cfg.Keyring.Service, cfg.Keyring.User), nil
	}
	typ, _ := ParseType(cfg.Type)
	switch typ {
	case TypePassword:
		return Static(Password(cfg.Username, cfg.Password)), nil
	case TypeToken:
		return Static(Token(cfg.Token)), nil
	default:
		return Static(Anonymous()), nil
	}
}
