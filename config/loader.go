package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/gogskit/errors"
)

// EnvPrefix is the prefix of environment variables read by Load.
// GOGS_API_BASE_URL sets api.base_url, GOGS_AUTH_TOKEN sets auth.token.
const EnvPrefix = "GOGS_"

// DefaultName is the application name used to search for files.
const DefaultName = "gogsctl"

// FileSystem abstracts the file operations of the loader.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserConfigDir() (string, error)
}

// RealFileSystem implements FileSystem on the local disk.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (RealFileSystem) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

// Resolver finds config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns the explicit paths of opts, searching for the ones
// not given.
func (r *Resolver) ResolveFiles(opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.firstExisting(r.configSearchPaths(opts.Name))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.firstExisting([]string{".env." + opts.Name, ".env"})
	}
	return resolved
}

func (r *Resolver) configSearchPaths(name string) []string {
	paths := []string{
		"./" + name + ".yml",
		"./" + name + ".yaml",
		"./config.yml",
		"./config/config.yml",
	}
	if dir, err := r.FileSystem.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths,
			filepath.Join(dir, name, "config.yml"),
			filepath.Join(dir, name, "config.yaml"),
		)
	}
	return paths
}

func (r *Resolver) firstExisting(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	Name       string
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
	Overrides  []func(*Config)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithName sets the application name used to search for files.
func WithName(name string) LoaderOption {
	return func(lc *LoaderConfig) { lc.Name = name }
}

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithOverride registers fn to run on the loaded values before defaults
// and validation, e.g. to apply command line flags.
func WithOverride(fn func(*Config)) LoaderOption {
	return func(lc *LoaderConfig) { lc.Overrides = append(lc.Overrides, fn) }
}

// Load reads the configuration: the YAML file first, then the .env file,
// then GOGS_* environment variables, each overriding the previous one.
// Defaults are applied and the result is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	lc := LoaderConfig{Name: DefaultName}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	files := (&Resolver{FileSystem: lc.FileSystem}).ResolveFiles(lc)

	var cfg Config
	if err := loadFromResolvedFiles(&cfg, files, lc.FileSystem); err != nil {
		return nil, err
	}
	for _, fn := range lc.Overrides {
		fn(&cfg)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFromResolvedFiles(cfg *Config, files ResolvedFiles, fs FileSystem) error {
	v := viper.New()

	if files.ConfigFile != "" && fs.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Configuration("config: cannot read " + files.ConfigFile).WithCause(err)
		}
	}

	// .env values never override variables already set in the environment.
	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return errors.Configuration("config: cannot read " + files.EnvFile).WithCause(err)
		}
	}
	bindEnvVars(v, os.Environ())

	if err := v.Unmarshal(cfg); err != nil {
		return errors.Configuration("config: cannot decode configuration").WithCause(err)
	}
	return nil
}

// bindEnvVars sets every GOGS_* variable of environ under all the nested
// keys its name can stand for.
func bindEnvVars(v *viper.Viper, environ []string) {
	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok || name == "" {
			continue
		}
		for _, variant := range generateEnvKeyVariants(name) {
			v.Set(variant, value)
		}
	}
}

// maxExpandedParts bounds the exhaustive expansion; longer names fall back
// to the progressive split patterns.
const maxExpandedParts = 6

// generateEnvKeyVariants returns the keys an env name can stand for.
// Examples:
//
//	API_BASE_URL        -> [api_base_url, api.base.url, api.base_url, ...]
//	API_USER_AGENT_NAME -> [..., api.user_agent.name, ...]
func generateEnvKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	if len(parts) <= maxExpandedParts {
		// Every gap between two parts is either a "." or a "_".
		gaps := len(parts) - 1
		variants := make([]string, 0, 1<<gaps)
		for mask := 0; mask < 1<<gaps; mask++ {
			var b strings.Builder
			b.WriteString(parts[0])
			for i := 1; i < len(parts); i++ {
				if mask&(1<<(i-1)) != 0 {
					b.WriteByte('.')
				} else {
					b.WriteByte('_')
				}
				b.WriteString(parts[i])
			}
			variants = append(variants, b.String())
		}
		return variants
	}

	variants := []string{lowerKey, strings.ReplaceAll(lowerKey, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
		variants = append(variants, strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "."))
	}
	return removeDuplicates(variants)
}

func removeDuplicates(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
