package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/kbukum/gogskit/credentials"
	"github.com/kbukum/gogskit/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

type mockFS struct {
	files     map[string]bool
	env       map[string]string
	configDir string
	t         *testing.T
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }

func (m *mockFS) LoadEnv(string) error {
	for k, v := range m.env {
		m.t.Setenv(k, v)
	}
	return nil
}

func (m *mockFS) UserConfigDir() (string, error) { return m.configDir, nil }

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
api:
  base_url: https://try.gogs.io/api/v1
  timeout: 5s
  user_agent:
    name: gogsctl
    version: "1.2"
auth:
  type: token
  token: abc
logging:
  level: debug
  format: json
`)

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gogs.BaseURL != "https://try.gogs.io/api/v1" {
		t.Errorf("base url = %q", cfg.Gogs.BaseURL)
	}
	if cfg.Gogs.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Gogs.Timeout)
	}
	if cfg.Gogs.UserAgent.Name != "gogsctl" || cfg.Gogs.UserAgent.Version != "1.2" {
		t.Errorf("user agent = %+v", cfg.Gogs.UserAgent)
	}
	if cfg.Auth.Source != credentials.SourceStatic || cfg.Auth.Token != "abc" {
		t.Errorf("auth = %+v", cfg.Auth)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", `
api:
  base_url: https://try.gogs.io/api/v1
`)
	t.Setenv("GOGS_API_BASE_URL", "https://git.example.com/api/v1")
	t.Setenv("GOGS_API_TIMEOUT", "45s")
	t.Setenv("GOGS_API_USER_AGENT_NAME", "ci-bot")
	t.Setenv("GOGS_AUTH_TOKEN", "from-env")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gogs.BaseURL != "https://git.example.com/api/v1" {
		t.Errorf("base url = %q", cfg.Gogs.BaseURL)
	}
	if cfg.Gogs.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.Gogs.Timeout)
	}
	if cfg.Gogs.UserAgent.Name != "ci-bot" {
		t.Errorf("user agent name = %q", cfg.Gogs.UserAgent.Name)
	}
	if cfg.Auth.Token != "from-env" || cfg.Auth.Type != credentials.TypeToken.String() {
		t.Errorf("auth = %+v", cfg.Auth)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	fs := &mockFS{
		t:     t,
		files: map[string]bool{".env": true},
		env:   map[string]string{"GOGS_API_BASE_URL": "https://localhost:3000/api/v1"},
	}

	cfg, err := Load(WithFileSystem(fs))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gogs.BaseURL != "https://localhost:3000/api/v1" {
		t.Errorf("base url = %q", cfg.Gogs.BaseURL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOGS_API_BASE_URL", "https://try.gogs.io/api/v1")

	cfg, err := Load(WithFileSystem(&mockFS{t: t}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gogs.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Gogs.Timeout)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	if cfg.Auth.Source != credentials.SourceStatic {
		t.Errorf("auth source = %q", cfg.Auth.Source)
	}
}

func TestLoad_MissingBaseURL(t *testing.T) {
	_, err := Load(WithFileSystem(&mockFS{t: t}))
	if !errors.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	e, _ := errors.AsError(err)
	if want := "config.api: "; len(e.Message) < len(want) || e.Message[:len(want)] != want {
		t.Errorf("message = %q", e.Message)
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	path := writeFile(t, "config.yml", "api: [unclosed")
	_, err := Load(WithConfigFile(path))
	if !errors.IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestValidate_Sections(t *testing.T) {
	base := func() Config {
		cfg := Config{}
		cfg.Gogs.BaseURL = "https://try.gogs.io/api/v1"
		cfg.ApplyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"relative base url", func(c *Config) { c.Gogs.BaseURL = "api/v1" }},
		{"token without value", func(c *Config) { c.Auth.Type = "token" }},
		{"bad sample rate", func(c *Config) {
			c.Observability.Enabled = true
			c.Observability.SampleRate = 2
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.IsConfigurationError(err) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolver_SearchOrder(t *testing.T) {
	fs := &mockFS{
		t:         t,
		configDir: "/home/me/.config",
		files: map[string]bool{
			filepath.Join("/home/me/.config", "gogsctl", "config.yml"): true,
			".env.gogsctl": true,
			".env":         true,
		},
	}
	files := (&Resolver{FileSystem: fs}).ResolveFiles(LoaderConfig{Name: "gogsctl"})
	if files.ConfigFile != "/home/me/.config/gogsctl/config.yml" {
		t.Errorf("config file = %q", files.ConfigFile)
	}
	if files.EnvFile != ".env.gogsctl" {
		t.Errorf("env file = %q", files.EnvFile)
	}

	fs.files["./gogsctl.yml"] = true
	files = (&Resolver{FileSystem: fs}).ResolveFiles(LoaderConfig{Name: "gogsctl", EnvFile: "custom.env"})
	if files.ConfigFile != "./gogsctl.yml" {
		t.Errorf("config file = %q", files.ConfigFile)
	}
	if files.EnvFile != "custom.env" {
		t.Errorf("explicit env file should win, got %q", files.EnvFile)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"TOKEN", []string{"token"}},
		{"AUTH_TOKEN", []string{"auth_token", "auth.token"}},
		{"API_USER_AGENT_NAME", []string{"api.user_agent.name", "api.user.agent.name", "api_user_agent_name"}},
	}
	for _, tt := range tests {
		got := generateEnvKeyVariants(tt.key)
		for _, w := range tt.want {
			if !slices.Contains(got, w) {
				t.Errorf("%s: missing variant %q in %v", tt.key, w, got)
			}
		}
	}

	long := generateEnvKeyVariants("A_B_C_D_E_F_G_H")
	if !slices.Contains(long, "a.b.c.d.e.f.g.h") || !slices.Contains(long, "a.b_c_d_e_f_g_h") {
		t.Errorf("unexpected long variants %v", long)
	}
}

func TestBindEnvVars_IgnoresOtherPrefixes(t *testing.T) {
	lc := LoaderConfig{}
	WithName("svc")(&lc)
	WithEnvFile("/path/.env")(&lc)
	WithConfigFile("/path/config.yml")(&lc)
	if lc.Name != "svc" || lc.EnvFile != "/path/.env" || lc.ConfigFile != "/path/config.yml" {
		t.Errorf("options not applied: %+v", lc)
	}

	var cfg Config
	fs := &mockFS{t: t}
	t.Setenv("HOME_API_BASE_URL", "https://wrong.example.com")
	if err := loadFromResolvedFiles(&cfg, ResolvedFiles{}, fs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gogs.BaseURL != "" {
		t.Errorf("base url = %q", cfg.Gogs.BaseURL)
	}
}

func TestLoad_Override(t *testing.T) {
	t.Setenv("GOGS_API_BASE_URL", "https://try.gogs.io/api/v1")

	cfg, err := Load(
		WithFileSystem(&mockFS{t: t}),
		WithOverride(func(c *Config) { c.Gogs.BaseURL = "https://flag.example.com/api/v1" }),
		WithOverride(func(c *Config) { c.Auth.Token = "flag-token" }),
	)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gogs.BaseURL != "https://flag.example.com/api/v1" {
		t.Errorf("base url = %q", cfg.Gogs.BaseURL)
	}
	if cfg.Auth.Type != credentials.TypeToken.String() {
		t.Errorf("defaults should run after overrides, type = %q", cfg.Auth.Type)
	}
}
