// Package gogs is a client for the Gogs REST API (v1).
//
// A Client groups the resource clients User, Users, Orgs and Admin over a
// shared httpclient.Client. Every call resolves credentials, sends one
// request and returns either a typed result or an *errors.Error:
//
//	client, err := gogs.New(httpclient.Config{BaseURL: "https://try.gogs.io/api/v1"})
//	if err != nil {
//	    return err
//	}
//	users, err := client.Users.Search(ctx, "temp", 10)
//	if errors.IsNotFound(err) {
//	    ...
//	}
//
// Collection results are never nil; an empty answer yields an empty slice.
package gogs
