// Package fixtures embeds sample Gogs API payloads used by tests.
package fixtures

import (
	"embed"
	"fmt"
	"testing"
)

//go:embed *.json
var files embed.FS

// Read returns the fixture called name, e.g. "user.json".
func Read(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("fixtures: no fixture named %q: %w", name, err)
	}
	return string(data), nil
}

// MustRead is Read that fails the test on a missing fixture.
func MustRead(t testing.TB, name string) string {
	t.Helper()
	s, err := Read(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
