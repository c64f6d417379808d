// Package version exposes build information for gogskit. The short version
// is the product version of the default User-Agent.
//
// Values are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/gogskit/version.Version=1.0.0"
package version
