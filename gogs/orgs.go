package gogs

import (
	"context"

	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/validation"
)

// OrgsClient reads and edits organizations.
type OrgsClient struct {
	c *httpclient.Client
}

// Get returns the organization called name.
func (o *OrgsClient) Get(ctx context.Context, name string) (*OrganizationResult, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	return httpclient.Get[OrganizationResult](o.c, ctx, "orgs/"+name, httpclient.Named("orgs.get"))
}

// GetTeams returns the teams of an organization.
func (o *OrgsClient) GetTeams(ctx context.Context, name string) ([]TeamResult, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	teams, err := httpclient.GetArray[TeamResult](o.c, ctx, "orgs/"+name+"/teams", httpclient.Named("orgs.teams"))
	return orEmpty(teams), err
}

// Edit updates an organization and returns it.
func (o *OrgsClient) Edit(ctx context.Context, name string, opt *EditOrgOption) (*OrganizationResult, error) {
	if err := requireName("name", name); err != nil {
		return nil, err
	}
	if err := validation.Validate(opt); err != nil {
		return nil, err
	}
	return httpclient.Patch[OrganizationResult](o.c, ctx, "orgs/"+name, opt, httpclient.Named("orgs.edit"))
}
