package gogs

import (
	"context"

	"github.com/kbukum/gogskit/httpclient"
)

// UserClient covers the authenticated user.
type UserClient struct {
	c *httpclient.Client
}

// GetOrganizations returns the organizations of the authenticated user.
func (u *UserClient) GetOrganizations(ctx context.Context) ([]OrganizationResult, error) {
	orgs, err := httpclient.GetArray[OrganizationResult](u.c, ctx, "user/orgs", httpclient.Named("user.orgs"))
	return orEmpty(orgs), err
}
