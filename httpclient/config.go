package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/security"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the Gogs API client.
type Config struct {
	// BaseURL is the Gogs API root, e.g. "https://try.gogs.io/api/v1".
	// It must be absolute; a trailing "/" is added when missing.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds a whole call including reading the body. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent configures the User-Agent header. Empty selects GogsKit/<version>.
	UserAgent UserAgentConfig `yaml:"user_agent" mapstructure:"user_agent"`

	// TLS configures the transport for self-hosted servers.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Proxy is an explicit proxy URL. Empty uses HTTP_PROXY/HTTPS_PROXY/NO_PROXY.
	Proxy string `yaml:"proxy" mapstructure:"proxy"`

	// NoProxy lists hosts that bypass Proxy (same syntax as NO_PROXY).
	NoProxy string `yaml:"no_proxy" mapstructure:"no_proxy"`

	// Transport creates the base transport of one call. A fresh transport is
	// requested for every call and its idle connections are closed afterwards.
	// Nil uses a cloned http.DefaultTransport with the TLS and proxy settings.
	Transport func() http.RoundTripper `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, err := NormalizeBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return errors.Configuration("timeout must be positive")
	}
	if _, err := c.UserAgent.Build(); err != nil {
		return err
	}
	if c.Proxy != "" {
		if u, err := url.Parse(c.Proxy); err != nil || u.Host == "" {
			return errors.Configuration("proxy is not a valid URL: " + c.Proxy)
		}
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
