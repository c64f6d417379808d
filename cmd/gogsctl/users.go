package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/gogs"
)

func newUsersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Read users and manage their access tokens",
	}

	var limit int
	search := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			users, err := c.Users.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), users)
		},
	}
	search.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results (server default when 0)")

	cmd.AddCommand(
		search,
		nameQuery(a, "get USERNAME", "Show a user", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Users.Get(cmd.Context(), name)
		}),
		nameQuery(a, "keys USERNAME", "List the public SSH keys of a user", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Users.GetKeys(cmd.Context(), name)
		}),
		nameQuery(a, "tokens USERNAME", "List the access tokens of a user (needs --user)", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Users.GetTokens(cmd.Context(), name)
		}),
		nameQuery(a, "followers USERNAME", "List the followers of a user", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Users.GetFollowers(cmd.Context(), name)
		}),
		nameQuery(a, "orgs USERNAME", "List the organizations of a user", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Users.GetOrganizations(cmd.Context(), name)
		}),
		&cobra.Command{
			Use:   "create-token USERNAME NAME",
			Short: "Create an access token (needs --user)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.gogs(cmd)
				if err != nil {
					return err
				}
				token, err := c.Users.CreateToken(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.printResult(cmd.OutOrStdout(), token)
			},
		},
	)
	return cmd
}

func newUserCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Commands for the authenticated user",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "orgs",
		Short: "List your organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			orgs, err := c.User.GetOrganizations(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), orgs)
		},
	})
	return cmd
}

func newOrgsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgs",
		Short: "Read organizations",
	}
	cmd.AddCommand(
		nameQuery(a, "get NAME", "Show an organization", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Orgs.Get(cmd.Context(), name)
		}),
		nameQuery(a, "teams NAME", "List the teams of an organization", func(cmd *cobra.Command, c *gogs.Client, name string) (any, error) {
			return c.Orgs.GetTeams(cmd.Context(), name)
		}),
		newEditOrgCommand(a),
	)
	return cmd
}

func newEditOrgCommand(a *app) *cobra.Command {
	var opt gogs.EditOrgOption
	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Edit an organization (needs owner rights)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			org, err := c.Orgs.Edit(cmd.Context(), args[0], &opt)
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

// nameQuery builds a command taking one name and printing what fetch returns.
func nameQuery(a *app, use, short string, fetch func(*cobra.Command, *gogs.Client, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.gogs(cmd)
			if err != nil {
				return err
			}
			v, err := fetch(cmd, c, args[0])
			if err != nil {
				return err
			}
			return a.printResult(cmd.OutOrStdout(), v)
		},
	}
}

func parseTeamID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgument("team_id", "must be a number, got "+s)
	}
	return id, nil
}
