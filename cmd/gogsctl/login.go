package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
)

const defaultTokenName = "gogsctl"

func newLoginCommand(a *app) *cobra.Command {
	var tokenName string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create an access token and store it in the system keyring",
		Long: `Create an access token with basic authentication and store it in the
system keyring. Later commands use the stored token when no other
credentials are configured.

The password is prompted for, or read from standard input when it is not
a terminal:

  echo "$PASSWORD" | gogsctl login --user alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username := a.cfg.Auth.Username
			if username == "" {
				return errors.InvalidArgument("user", "login needs --user")
			}
			password := a.cfg.Auth.Password
			if password == "" {
				pw, err := readPassword(cmd, fmt.Sprintf("Password for %s: ", username))
				if err != nil {
					return err
				}
				password = pw
			}

			c, err := a.newClient(credentials.Static(credentials.Password(username, password)))
			if err != nil {
				return err
			}
			token, err := c.Users.CreateToken(cmd.Context(), username, tokenName)
			if err != nil {
				return err
			}
			if err := a.keyring().StoreToken(token.Sha1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Logged in as %s, token %q stored in the keyring\n", username, token.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenName, "token-name", defaultTokenName, "Name of the created access token")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token from the system keyring",
		Long: `Remove the stored access token from the system keyring. The token
itself stays valid on the server until it is deleted there.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.keyring().DeleteToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Logged out")
			return nil
		},
	}
}
