// Package config loads the setops configuration file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"itertools/internal/logging"
	"itertools/value"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the settings that flags may override.
type Config struct {
	// Policy is "strict" or "coercive".
	Policy string `yaml:"policy"`
	// Format of the result document: "yaml" or "json".
	Format string `yaml:"format"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// SortOutput orders results by canonical key before writing.
	SortOutput bool `yaml:"sort_output"`
	// Limit caps the number of result values; 0 means unlimited.
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy:   value.Strict.String(),
		Format:   FormatYAML,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected and an
// empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field and normalises case.
func (c *Config) Validate() error {
	if _, err := value.ParsePolicy(c.Policy); err != nil {
		return errors.Wrap(err, "config: policy")
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatYAML && c.Format != FormatJSON {
		return errors.Errorf("config: format must be %q or %q, got %q", FormatYAML, FormatJSON, c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log_level")
	}
	if c.Limit < 0 {
		return errors.Errorf("config: limit must not be negative, got %d", c.Limit)
	}
	return nil
}
