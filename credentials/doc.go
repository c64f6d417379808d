// Package credentials models how the client authenticates and where it gets
// that information from.
//
// A Credentials value is one of three shapes: anonymous, password (basic
// auth) or token. A Provider is asked for credentials once per outgoing call,
// so rotating the value behind a provider takes effect on the next call.
// Providers backed by Redis, Consul KV, an oauth2.TokenSource and the OS
// keyring are included.
package credentials
