package credentials

import "github.com/kbukum/gogskit/errors"

// Stored is the serialized form of Credentials used by the external stores.
type Stored struct {
	Type     string `json:"type" redis:"type"`
	Username string `json:"username,omitempty" redis:"username"`
	Password string `json:"password,omitempty" redis:"password"`
	Token    string `json:"token,omitempty" redis:"token"`
}

// ToStored converts c to its stored form.
func ToStored(c Credentials) Stored {
	s := Stored{Type: c.Type().String()}
	switch c.Type() {
	case TypePassword:
		s.Username, s.Password = c.Identifier(), c.Secret()
	case TypeToken:
		s.Token = c.Secret()
	}
	return s
}

// Credentials converts s back to a Credentials value. An empty type is
// inferred from which fields are set.
func (s Stored) Credentials() (*Credentials, error) {
	typ, err := ParseType(s.Type)
	if err != nil {
		return nil, err
	}
	if s.Type == "" {
		switch {
		case s.Token != "":
			typ = TypeToken
		case s.Username != "":
			typ = TypePassword
		}
	}
	var c Credentials
	switch typ {
	case TypePassword:
		if s.Username == "" {
			return nil, errors.Configuration("stored password credentials have no username")
		}
		c = Password(s.Username, s.Password)
	case TypeToken:
		if s.Token == "" {
			return nil, errors.Configuration("stored token credentials have no token")
		}
		c = Token(s.Token)
	default:
		c = Anonymous()
	}
	return &c, nil
}
