package credentials

import (
	"fmt"
	"strings"

	"github.com/kbukum/gogskit/errors"
)

// Type identifies the shape of a Credentials value.
type Type int

const (
	// TypeAnonymous sends no authentication.
	TypeAnonymous Type = iota
	// TypePassword authenticates with HTTP basic auth.
	TypePassword
	// TypeToken authenticates with an access token query parameter.
	TypeToken
)

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case TypePassword:
		return "password"
	case TypeToken:
		return "token"
	default:
		return "anonymous"
	}
}

// ParseType parses a type name. The empty string is anonymous.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "anonymous", "none":
		return TypeAnonymous, nil
	case "password", "basic":
		return TypePassword, nil
	case "token":
		return TypeToken, nil
	default:
		return TypeAnonymous, errors.Configuration(fmt.Sprintf("unknown credentials type %q", s))
	}
}

// Credentials is an immutable authentication value.
// The zero value is anonymous.
type Credentials struct {
	typ        Type
	identifier string
	secret     string
}

// Anonymous returns credentials that send no authentication.
func Anonymous() Credentials { return Credentials{} }

// Password returns basic auth credentials.
func Password(username, password string) Credentials {
	return Credentials{typ: TypePassword, identifier: username, secret: password}
}

// Token returns access token credentials.
func Token(token string) Credentials {
	return Credentials{typ: TypeToken, secret: token}
}

// Type returns the credentials shape.
func (c Credentials) Type() Type { return c.typ }

// Identifier returns the username for password credentials, otherwise "".
func (c Credentials) Identifier() string { return c.identifier }

// Secret returns the password or token, or "" for anonymous credentials.
func (c Credentials) Secret() string { return c.secret }

// IsAnonymous reports whether c sends no authentication.
func (c Credentials) IsAnonymous() bool { return c.typ == TypeAnonymous }

// Masked returns the secret with all but its last four characters hidden.
func (c Credentials) Masked() string {
	if len(c.secret) <= 4 {
		return strings.Repeat("*", len(c.secret))
	}
	return "..." + c.secret[len(c.secret)-4:]
}

// String describes the credentials without revealing the secret.
func (c Credentials) String() string {
	switch c.typ {
	case TypePassword:
		return fmt.Sprintf("password(%s:%s)", c.identifier, c.Masked())
	case TypeToken:
		return fmt.Sprintf("token(%s)", c.Masked())
	default:
		return "anonymous"
	}
}
