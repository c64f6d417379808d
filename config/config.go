package config

import (
	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/logger"
	"github.com/kbukum/gogskit/observability"
)

// Config is the full configuration of a gogskit application.
//
// Example config.yml:
//
//	api:
//	  base_url: https://try.gogs.io/api/v1
//	  timeout: 10s
//	auth:
//	  type: token
//	  token: ${GOGS_AUTH_TOKEN}
//	logging:
//	  level: info
type Config struct {
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Gogs          httpclient.Config    `yaml:"api" mapstructure:"api"`
	Auth          credentials.Config   `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies default values to every section.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Gogs.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates every section. Failures are configuration errors
// naming the section.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return sectionError("logging", err)
	}
	if err := c.Gogs.Validate(); err != nil {
		return sectionError("api", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return sectionError("auth", err)
	}
	if c.Observability.Enabled {
		if err := c.Observability.Validate(); err != nil {
			return sectionError("observability", err)
		}
	}
	return nil
}

func sectionError(section string, err error) error {
	msg := err.Error()
	if e, ok := errors.AsError(err); ok {
		msg = e.Message
	}
	return errors.Configuration("config." + section + ": " + msg).WithCause(err)
}
