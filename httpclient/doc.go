// Package httpclient is the Gogs API client context.
//
// A Client owns the normalized base URL, the credential provider and the
// User-Agent. Every call asks the provider for credentials and assembles a
// fresh pipeline of Stages around a fresh base transport:
//
//	[observability stages] -> [token] -> normalize -> base transport
//
// The normalize stage turns transport failures and non-2xx responses into
// *errors.Error values. The token stage prepends token=<secret> to the
// query and only runs for token credentials; password credentials set a
// Basic Authorization header instead.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://try.gogs.io/api/v1",
//	}, httpclient.WithStaticCredentials(credentials.Token("abc")))
//
//	user, err := httpclient.Get[User](client, ctx, "users/unknwon")
package httpclient
