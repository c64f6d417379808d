package httpclient

import (
	"strings"
	"unicode"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/version"
)

// DefaultProductName is the product name of the default User-Agent.
const DefaultProductName = "GogsKit"

// UserAgent is an immutable User-Agent header value made of at most one
// product token and an optional comment, e.g. "CERN-LineMode/2.15 (comment)".
type UserAgent struct {
	value string
}

// NewUserAgent builds a User-Agent from its parts. It fails when all parts
// are empty or when name or version contain whitespace.
func NewUserAgent(name, productVersion, comment string) (UserAgent, error) {
	if name == "" && productVersion == "" && comment == "" {
		return UserAgent{}, errors.Configuration("user agent must have at least one non-empty part")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return UserAgent{}, errors.Configuration("user agent product name cannot contain a space: \"" + name + "\"")
	}
	if strings.IndexFunc(productVersion, unicode.IsSpace) >= 0 {
		return UserAgent{}, errors.Configuration("user agent product version cannot contain a space: \"" + productVersion + "\"")
	}

	var b strings.Builder
	b.WriteString(name)
	if productVersion != "" {
		b.WriteByte('/')
		b.WriteString(productVersion)
	}
	if comment != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		b.WriteString(comment)
		b.WriteByte(')')
	}
	return UserAgent{value: b.String()}, nil
}

// DefaultUserAgent returns "GogsKit/<module version>".
func DefaultUserAgent() UserAgent {
	ua, err := NewUserAgent(DefaultProductName, version.GetShortVersion(), "")
	if err != nil {
		return UserAgent{value: DefaultProductName}
	}
	return ua
}

// String returns the header value.
func (u UserAgent) String() string { return u.value }

// IsZero reports whether u was never built.
func (u UserAgent) IsZero() bool { return u.value == "" }

// UserAgentConfig is the configurable form of a UserAgent. All fields empty
// selects DefaultUserAgent.
type UserAgentConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Comment string `yaml:"comment" mapstructure:"comment"`
}

// Build returns the configured User-Agent.
func (c UserAgentConfig) Build() (UserAgent, error) {
	if c.Name == "" && c.Version == "" && c.Comment == "" {
		return DefaultUserAgent(), nil
	}
	return NewUserAgent(c.Name, c.Version, c.Comment)
}
