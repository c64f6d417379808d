// Package testutil provides a fake Gogs API server for tests.
//
// The server answers canned responses registered per method and request
// URI relative to the API root, records every request it receives, and
// strips the token query parameter before matching so the same
// registrations work for every credential type.
//
//	srv := testutil.NewServer(t)
//	srv.SetFixture(t, http.MethodGet, "users/test", "user.json")
//
//	client, _ := gogs.New(httpclient.Config{BaseURL: srv.URL()})
//	user, err := client.Users.Get(ctx, "test")
//
// Fixtures live in the fixtures subpackage.
package testutil
