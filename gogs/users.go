package gogs

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kbukum/gogskit/entity"
	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/validation"
)

// UsersClient reads users and manages their access tokens.
type UsersClient struct {
	c *httpclient.Client
}

// Search finds users whose name matches query. An empty query returns an
// empty result without calling the server. limit is sent only when positive.
func (u *UsersClient) Search(ctx context.Context, query string, limit int) ([]UserResult, error) {
	if query == "" {
		return []UserResult{}, nil
	}
	params := []httpclient.QueryParam{httpclient.Param("q", query)}
	if limit > 0 {
		params = append(params, httpclient.Param("limit", strconv.Itoa(limit)))
	}

	env, err := httpclient.Get[entity.DataEnvelope[[]UserResult]](u.c, ctx, "users/search",
		httpclient.WithQuery(params...), httpclient.Named("users.search"))
	if err != nil {
		return nil, err
	}
	if env == nil {
		return []UserResult{}, nil
	}
	return orEmpty(env.Data), nil
}

// Get returns the user with the given username.
func (u *UsersClient) Get(ctx context.Context, username string) (*UserResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	return httpclient.Get[UserResult](u.c, ctx, "users/"+username, httpclient.Named("users.get"))
}

// GetTokens returns the access tokens of a user. The server only answers
// for the authenticated user, with password credentials.
func (u *UsersClient) GetTokens(ctx context.Context, username string) ([]TokenResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	tokens, err := httpclient.GetArray[TokenResult](u.c, ctx, "users/"+username+"/tokens", httpclient.Named("users.tokens"))
	return orEmpty(tokens), err
}

// maxTokenNameLength is the column width Gogs stores token names in.
const maxTokenNameLength = 255

// CreateToken creates an access token called name for a user.
func (u *UsersClient) CreateToken(ctx context.Context, username, name string) (*TokenResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	if err := validation.New().
		Required("name", name).
		MaxLength("name", name, maxTokenNameLength).
		Validate(); err != nil {
		return nil, err
	}
	return httpclient.PostForm[TokenResult](u.c, ctx, "users/"+username+"/tokens",
		url.Values{"name": {name}}, httpclient.Named("users.create_token"))
}

// GetKeys returns the public SSH keys of a user.
func (u *UsersClient) GetKeys(ctx context.Context, username string) ([]KeyResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	keys, err := httpclient.GetArray[KeyResult](u.c, ctx, "users/"+username+"/keys", httpclient.Named("users.keys"))
	return orEmpty(keys), err
}

// GetFollowers returns the followers of a user.
func (u *UsersClient) GetFollowers(ctx context.Context, username string) ([]UserResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	users, err := httpclient.GetArray[UserResult](u.c, ctx, "users/"+username+"/followers", httpclient.Named("users.followers"))
	return orEmpty(users), err
}

// GetOrganizations returns the organizations a user belongs to.
func (u *UsersClient) GetOrganizations(ctx context.Context, username string) ([]OrganizationResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	orgs, err := httpclient.GetArray[OrganizationResult](u.c, ctx, "users/"+username+"/orgs", httpclient.Named("users.orgs"))
	return orEmpty(orgs), err
}
