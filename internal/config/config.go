// Package config reads the loader configuration file.
package config

import (
	"os"
	"strings"

	"github.com/invopop/yaml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/simpak/internal/loader"
)

// Config describes which paksets to load and how.
type Config struct {
	// Pakset is the directory of the base pakset.
	Pakset string `json:"pakset"`
	// Addons is an optional directory loaded after the pakset.
	Addons string `json:"addons,omitempty"`
	// Recursive descends into subdirectories.
	Recursive bool `json:"recursive,omitempty"`
	// Bootstrap files are loaded before all others.
	Bootstrap []string `json:"bootstrap,omitempty"`
	// Extensions select the pak files of a directory.
	Extensions []string `json:"extensions,omitempty"`
	// Prefetch is the number of files read in parallel.
	Prefetch int `json:"prefetch,omitempty"`
	// SkipBroken skips unreadable files instead of failing.
	SkipBroken bool `json:"skip_broken,omitempty"`
	// LogLevel is a logrus level name.
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Bootstrap:  append([]string(nil), loader.DefaultBootstrap...),
		Extensions: append([]string(nil), loader.DefaultExtensions...),
		Prefetch:   loader.DefaultPrefetch,
		LogLevel:   logrus.InfoLevel.String(),
	}
}

// Read reads a YAML or JSON file over the defaults.
func Read(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	return Parse(raw)
}

// Parse decodes raw over the defaults.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Pakset) == "" {
		return errors.New("pakset directory is required")
	}
	if c.Prefetch < 0 {
		return errors.Errorf("prefetch must not be negative, got %d", c.Prefetch)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level. Empty means info.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.Wrap(err, "log_level")
	}

	return lvl, nil
}

// Options converts the configuration to loader options.
func (c Config) Options(log logrus.FieldLogger) loader.Options {
	return loader.Options{
		Log:        log,
		Extensions: c.Extensions,
		Recursive:  c.Recursive,
		Bootstrap:  c.Bootstrap,
		Prefetch:   c.Prefetch,
		SkipBroken: c.SkipBroken,
	}
}

// Encode renders the configuration as YAML.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
