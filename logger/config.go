package logger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/gogskit/errors"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	validFormats = []string{"json", "console", "text", FormatPretty}
	validOutputs = []string{"stderr", "stdout", "discard", "none"}
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values. The library default is warn so
// that only failed calls are reported.
func (c *Config) ApplyDefaults() {
	c.Level = strings.ToLower(c.Level)
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate checks the level, format and output names.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Level) {
		return errors.Configuration(fmt.Sprintf("logging.level must be one of %v (got: %s)", validLevels, c.Level))
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Format)) {
		return errors.Configuration(fmt.Sprintf("logging.format must be one of %v (got: %s)", validFormats, c.Format))
	}
	if c.Output != "" && !slices.Contains(validOutputs, strings.ToLower(c.Output)) {
		return errors.Configuration(fmt.Sprintf("logging.output must be one of %v (got: %s)", validOutputs, c.Output))
	}
	return nil
}
