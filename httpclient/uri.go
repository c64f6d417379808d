package httpclient

import (
	"net/url"
	"strings"

	"github.com/kbukum/gogskit/errors"
)

// QueryParam is one ordered query-string pair. An empty Value renders the
// key alone.
type QueryParam struct {
	Key   string
	Value string
}

// Param is shorthand for QueryParam{Key: key, Value: value}.
func Param(key, value string) QueryParam {
	return QueryParam{Key: key, Value: value}
}

// NormalizeBaseURL parses raw and ensures it is absolute and ends with "/".
func NormalizeBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.Configuration("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Configuration("base URL is not a valid URI: " + raw).WithCause(err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Configuration("base URL is not an absolute URI: " + raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u, nil
}

// BuildURI joins relativePath onto base and appends params in order.
// The base is not modified.
func BuildURI(base *url.URL, relativePath string, params []QueryParam) *url.URL {
	u := *base
	if u.User != nil {
		user := *u.User
		u.User = &user
	}
	if relativePath != "" {
		u.Path = strings.TrimRight(base.Path, "/") + "/" + strings.TrimLeft(relativePath, "/")
		u.RawPath = ""
	}

	if len(params) > 0 {
		var b strings.Builder
		b.WriteString(base.RawQuery)
		for _, p := range params {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(EscapeDataString(p.Key))
			if p.Value != "" {
				b.WriteByte('=')
				b.WriteString(EscapeDataString(p.Value))
			}
		}
		u.RawQuery = b.String()
	}
	return &u
}

// EscapeDataString percent-encodes every byte of s outside the RFC 3986
// unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~").
func EscapeDataString(s string) string {
	const hex = "0123456789ABCDEF"
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hex[c>>4], hex[c&0x0f])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// redactedURI renders u with any token query value masked.
func redactedURI(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.RawQuery == "" || !strings.Contains(u.RawQuery, tokenParam+"=") {
		return u.String()
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		if strings.HasPrefix(part, tokenParam+"=") {
			parts[i] = tokenParam + "=" + redacted
		}
	}
	c := *u
	c.RawQuery = strings.Join(parts, "&")
	return c.String()
}

const redacted = "REDACTED"
