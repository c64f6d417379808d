package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kbukum/gogskit/config"
	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
	"github.com/kbukum/gogskit/gogs"
	"github.com/kbukum/gogskit/httpclient"
	"github.com/kbukum/gogskit/logger"
	"github.com/kbukum/gogskit/observability"
)

const (
	appName = "gogsctl"

	// annotationNoConfig marks commands that run without loading the configuration.
	annotationNoConfig = "gogsctl/no-config"
)

type rootFlags struct {
	configFile string
	envFile    string
	url        string
	token      string
	user       string
	output     string
	logLevel   string
}

// app carries the state shared by all commands of one invocation.
type app struct {
	flags    rootFlags
	cfg      *config.Config
	log      *logger.Logger
	shutdown observability.ShutdownFunc
	client   *gogs.Client
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Command line client for the Gogs API",
		Long: `gogsctl talks to a Gogs server through its REST API.

The server and credentials come from a config file, GOGS_* environment
variables or the flags below, in increasing order of precedence. After
'gogsctl login' the stored access token is used when no other credentials
are configured.

Examples:
  gogsctl --url https://try.gogs.io/api/v1 users search unknwon
  gogsctl orgs teams gogs --output yaml
  gogsctl admin add-member 3 alice`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoConfig] == "true" {
				return nil
			}
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.configFile, "config", "", "Path to config file (default: ./gogsctl.yml or ~/.config/gogsctl/config.yml)")
	f.StringVar(&a.flags.envFile, "env-file", "", "Path to a .env file")
	f.StringVar(&a.flags.url, "url", "", "Gogs API base URL, e.g. https://try.gogs.io/api/v1")
	f.StringVar(&a.flags.token, "token", "", "Access token")
	f.StringVarP(&a.flags.user, "user", "u", "", "Username for basic authentication (password from GOGS_AUTH_PASSWORD or prompt)")
	f.StringVarP(&a.flags.output, "output", "o", outputJSON, "Output format: json or yaml")
	f.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(newUsersCommand(a))
	cmd.AddCommand(newUserCommand(a))
	cmd.AddCommand(newOrgsCommand(a))
	cmd.AddCommand(newAdminCommand(a))
	cmd.AddCommand(newLoginCommand(a))
	cmd.AddCommand(newLogoutCommand(a))
	cmd.AddCommand(newVersionCommand(a))

	return cmd
}

// setup loads the configuration, applying the flags on top of it, and
// starts logging and telemetry.
func (a *app) setup(ctx context.Context) error {
	if err := validateOutput(a.flags.output); err != nil {
		return err
	}

	opts := []config.LoaderOption{
		config.WithName(appName),
		config.WithOverride(a.applyFlags),
	}
	if a.flags.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.flags.configFile))
	}
	if a.flags.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.flags.envFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(&cfg.Logging, appName)

	shutdown, err := observability.Setup(ctx, cfg.Observability, a.log.WithComponent("observability"))
	if err != nil {
		return err
	}
	a.shutdown = shutdown
	return nil
}

func (a *app) applyFlags(cfg *config.Config) {
	if a.flags.url != "" {
		cfg.Gogs.BaseURL = a.flags.url
	}
	if a.flags.logLevel != "" {
		cfg.Logging.Level = a.flags.logLevel
	}
	switch {
	case a.flags.token != "":
		cfg.Auth = credentials.Config{
			Source:  credentials.SourceStatic,
			Type:    credentials.TypeToken.String(),
			Token:   a.flags.token,
			Keyring: cfg.Auth.Keyring,
		}
	case a.flags.user != "":
		cfg.Auth = credentials.Config{
			Source:   credentials.SourceStatic,
			Type:     credentials.TypePassword.String(),
			Username: a.flags.user,
			Password: cfg.Auth.Password,
			Keyring:  cfg.Auth.Keyring,
		}
	}
}

// gogs returns the API client, building it on first use.
func (a *app) gogs(cmd *cobra.Command) (*gogs.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	provider, err := a.provider(cmd)
	if err != nil {
		return nil, err
	}
	c, err := a.newClient(provider)
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

// newClient builds a client for the configured server with provider.
func (a *app) newClient(provider credentials.Provider) (*gogs.Client, error) {
	opts := []httpclient.Option{
		httpclient.WithCredentials(provider),
		httpclient.WithLogger(a.log),
	}
	if a.cfg.Observability.Enabled {
		m, err := observability.NewClientMetrics(observability.Meter(appName))
		if err != nil {
			return nil, err
		}
		opts = append(opts,
			httpclient.WithTracing(a.cfg.Observability.ServiceName),
			httpclient.WithMetrics(m),
		)
	}
	return gogs.New(a.cfg.Gogs, opts...)
}

// provider resolves where credentials come from. Anonymous static
// configuration falls back to the token stored by login.
func (a *app) provider(cmd *cobra.Command) (credentials.Provider, error) {
	auth := a.cfg.Auth
	if auth.Source != credentials.SourceStatic {
		return credentials.FromConfig(auth)
	}
	typ, err := credentials.ParseType(auth.Type)
	if err != nil {
		return nil, err
	}
	switch typ {
	case credentials.TypeAnonymous:
		return a.keyring(), nil
	case credentials.TypePassword:
		if auth.Password == "" {
			pw, err := readPassword(cmd, fmt.Sprintf("Password for %s: ", auth.Username))
			if err != nil {
				return nil, err
			}
			auth.Password = pw
		}
	}
	return credentials.FromConfig(auth)
}

func (a *app) keyring() *credentials.KeyringProvider {
	return credentials.NewKeyringProvider(a.cfg.Auth.Keyring.Service, a.cfg.Auth.Keyring.User)
}

// readPassword prompts on the terminal with echo disabled, or reads one
// line from the command input when it is not a terminal.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.InvalidArgument("password", "cannot read from terminal").WithCause(err)
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.InvalidArgument("password", "cannot read from input").WithCause(err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.InvalidArgument("password", "must not be empty")
	}
	return pw, nil
}
