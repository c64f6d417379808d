package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kbukum/gogskit/gogs"
)

func newAdminCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Site administration (needs admin credentials)",
	}
	cmd.AddCommand(
		newCreateUserCommand(a),
		newEditUserCommand(a),
		newCreateOrgCommand(a),
		newCreateTeamCommand(a),
		&cobra.Command{
			Use:   "delete-user USERNAME",
			Short: "Delete a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.gogs(cmd)
				if err != nil {
					return err
				}
				return c.Admin.DeleteUser(cmd.Context(), args[0])
			},
		},
		teamMemberCommand(a, "add-member TEAM_ID USERNAME", "Add a user to a team", (*gogs.AdminClient).AddTeamMember),
		teamMemberCommand(a, "remove-member TEAM_ID USERNAME", "Remove a user from a team", (*gogs.AdminClient).RemoveTeamMember),
	)
	return cmd
}

func newCreateUserCommand(a *app) *cobra.Command {
	var opt gogs.CreateUserOption
	cmd := &cobra.Command{
		Use:   "create-user USERNAME",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			opt.Username = args[0]
			user, err := c.Admin.CreateUser(cmd.Context(), &opt)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), user)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.Email, "email", "", "Email address (required)")
	f.StringVar(&opt.FullName, "full-name", "", "Full name")
	f.StringVar(&opt.Password, "password", "", "Initial password")
	f.StringVar(&opt.LoginName, "login-name", "", "Login name for an external authentication source")
	f.BoolVar(&opt.SendNotify, "notify", false, "Send a registration email")
	return cmd
}

func newEditUserCommand(a *app) *cobra.Command {
	var (
		opt                  gogs.EditUserOption
		active, admin        bool
		gitHook, importLocal bool
		maxRepos             int
	)
	cmd := &cobra.Command{
		Use:   "edit-user USERNAME",
		Short: "Edit a user; flags that are not given are left unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			opt.Active = changed(f, "active", active)
			opt.Admin = changed(f, "admin", admin)
			opt.AllowGitHook = changed(f, "allow-git-hook", gitHook)
			opt.AllowImportLocal = changed(f, "allow-import-local", importLocal)
			opt.MaxRepoCreation = changed(f, "max-repo-creation", maxRepos)

			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			user, err := c.Admin.EditUser(cmd.Context(), args[0], &opt)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), user)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.Email, "email", "", "Email address")
	f.StringVar(&opt.FullName, "full-name", "", "Full name")
	f.StringVar(&opt.Password, "password", "", "New password")
	f.StringVar(&opt.LoginName, "login-name", "", "Login name for an external authentication source")
	f.StringVar(&opt.Website, "website", "", "Website")
	f.StringVar(&opt.Location, "location", "", "Location")
	f.BoolVar(&active, "active", false, "Mark the account active")
	f.BoolVar(&admin, "admin", false, "Grant site administration")
	f.BoolVar(&gitHook, "allow-git-hook", false, "Allow editing git hooks")
	f.BoolVar(&importLocal, "allow-import-local", false, "Allow importing local repositories")
	f.IntVar(&maxRepos, "max-repo-creation", -1, "Repository limit, -1 for the site default")
	return cmd
}

// changed returns &v when the flag was given on the command line, nil otherwise.
func changed[T any](f *pflag.FlagSet, name string, v T) *T {
	if !f.Changed(name) {
		return nil
	}
	return &v
}

func newCreateOrgCommand(a *app) *cobra.Command {
	var opt gogs.CreateOrgOption
	cmd := &cobra.Command{
		Use:   "create-org OWNER NAME",
		Short: "Create an organization owned by a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			opt.Username = args[1]
			org, err := c.Admin.CreateOrg(cmd.Context(), args[0], &opt)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), org)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.FullName, "full-name", "", "Display name")
	f.StringVar(&opt.Description, "description", "", "Description")
	f.StringVar(&opt.Website, "website", "", "Website")
	f.StringVar(&opt.Location, "location", "", "Location")
	return cmd
}

func newCreateTeamCommand(a *app) *cobra.Command {
	var opt gogs.CreateTeamOption
	cmd := &cobra.Command{
		Use:   "create-team ORG NAME",
		Short: "Create a team in an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			opt.Name = args[1]
			team, err := c.Admin.CreateTeam(cmd.Context(), args[0], &opt)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), team)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.Description, "description", "", "Description")
	f.StringVar(&opt.Permission, "permission", gogs.PermissionRead, "Permission: read, write or admin")
	return cmd
}

type memberFunc func(a *gogs.AdminClient, ctx context.Context, teamID int64, username string) error

func teamMemberCommand(a *app, use, short string, fn memberFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := parseTeamID(args[0])
			if err != nil {
				return err
			}
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			return fn(c.Admin, cmd.Context(), teamID, args[1])
		},
	}
}
