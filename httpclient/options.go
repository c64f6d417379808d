package httpclient

import (
	"net/http"

	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/logger"
	"github.com/kbukum/gogskit/observability"
)

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the provider asked for credentials on every call.
// Without it every call is anonymous.
func WithCredentials(p credentials.Provider) Option {
	return func(c *Client) { c.provider = p }
}

// WithStaticCredentials is WithCredentials(credentials.Static(creds)).
func WithStaticCredentials(creds credentials.Credentials) Option {
	return WithCredentials(credentials.Static(creds))
}

// WithTransport overrides Config.Transport.
func WithTransport(factory func() http.RoundTripper) Option {
	return func(c *Client) { c.transport = factory }
}

// WithLogger installs log and adds a LoggingStage.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		if log == nil {
			return
		}
		c.log = log
		c.stages = append(c.stages, LoggingStage(log))
	}
}

// WithTracing adds a TracingStage.
func WithTracing(serviceName string) Option {
	return func(c *Client) { c.stages = append(c.stages, TracingStage(serviceName)) }
}

// WithMetrics adds a MetricsStage recording on m.
func WithMetrics(m *observability.ClientMetrics) Option {
	return func(c *Client) { c.stages = append(c.stages, MetricsStage(m)) }
}

// WithStages adds custom stages. Stages run in the order their options
// were given, outside token injection and failure normalization.
func WithStages(stages ...Stage) Option {
	return func(c *Client) { c.stages = append(c.stages, stages...) }
}
