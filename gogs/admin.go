package gogs

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/validation"
)

// AdminClient performs site administration. All calls need site admin
// credentials.
type AdminClient struct {
	c *httpclient.Client
}

// CreateUser creates a user.
func (a *AdminClient) CreateUser(ctx context.Context, opt *CreateUserOption) (*UserResult, error) {
	if err := validation.Validate(opt); err != nil {
		return nil, err
	}
	return httpclient.Post[UserResult](a.c, ctx, "admin/users", opt, httpclient.Named("admin.create_user"))
}

// EditUser updates a user.
func (a *AdminClient) EditUser(ctx context.Context, username string, opt *EditUserOption) (*UserResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	if err := validation.Validate(opt); err != nil {
		return nil, err
	}
	return httpclient.Put[UserResult](a.c, ctx, "admin/users/"+username, opt, httpclient.Named("admin.edit_user"))
}

// DeleteUser deletes a user.
func (a *AdminClient) DeleteUser(ctx context.Context, username string) error {
	if err := requireName("username", username); err != nil {
		return err
	}
	return httpclient.Send(a.c, ctx, http.MethodDelete, "admin/users/"+username, nil, httpclient.Named("admin.delete_user"))
}

// CreateOrg creates an organization owned by username.
func (a *AdminClient) CreateOrg(ctx context.Context, username string, opt *CreateOrgOption) (*OrganizationResult, error) {
	if err := requireName("username", username); err != nil {
		return nil, err
	}
	if err := validation.Validate(opt); err != nil {
		return nil, err
	}
	return httpclient.Post[OrganizationResult](a.c, ctx, "admin/"+username+"/orgs", opt, httpclient.Named("admin.create_org"))
}

// CreateTeam creates a team in an organization. A 422 answer is reported
// as an already-exists error: Gogs sends it both for a duplicate name and,
// on some versions, for any second team of an organization.
func (a *AdminClient) CreateTeam(ctx context.Context, org string, opt *CreateTeamOption) (*TeamResult, error) {
	if err := requireName("org", org); err != nil {
		return nil, err
	}
	if err := validation.Validate(opt); err != nil {
		return nil, err
	}

	team, err := httpclient.Post[TeamResult](a.c, ctx, "admin/orgs/"+org+"/teams", opt, httpclient.Named("admin.create_team"))
	if err != nil {
		if e, ok := errors.AsError(err); ok && e.StatusCode == http.StatusUnprocessableEntity {
			return nil, errors.AlreadyExists(fmt.Sprintf(
				"The team with name %q already exists, or there's a bug in your version of GOGS that doesn't allow you to create a second team for an organization.",
				opt.Name,
			)).WithRequestURI(e.RequestURI).WithBody(e.Body).WithCause(err)
		}
		return nil, err
	}
	return team, nil
}

// AddTeamMember adds username to a team. Adding an existing member is a no-op.
func (a *AdminClient) AddTeamMember(ctx context.Context, teamID int64, username string) error {
	path, err := teamMemberPath(teamID, username)
	if err != nil {
		return err
	}
	return httpclient.Send(a.c, ctx, http.MethodPut, path, nil, httpclient.Named("admin.add_team_member"))
}

// RemoveTeamMember removes username from a team.
func (a *AdminClient) RemoveTeamMember(ctx context.Context, teamID int64, username string) error {
	path, err := teamMemberPath(teamID, username)
	if err != nil {
		return err
	}
	return httpclient.Send(a.c, ctx, http.MethodDelete, path, nil, httpclient.Named("admin.remove_team_member"))
}

func teamMemberPath(teamID int64, username string) (string, error) {
	if err := validation.New().
		Positive("team_id", teamID).
		Name("username", username).
		Validate(); err != nil {
		return "", err
	}
	return "admin/teams/" + strconv.FormatInt(teamID, 10) + "/members/" + username, nil
}
