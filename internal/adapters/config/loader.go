// Package config provides the configuration loader for extrepo.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file and an optional dotenv file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration from path. With an empty path the default config file in the
// working directory is used when present, and the built-in defaults otherwise.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigFile
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			// Decoding into the defaults keeps every value the file leaves out.
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid yaml"), "path", path))
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// No config file; defaults apply.
	default:
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := l.loadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFile exports variables from a dotenv file without overriding the process environment.
func (l *Loader) loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat env file"), "path", path)
	}
	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to load env file"), "path", path)
	}
	l.logger.Info("Loaded environment from " + path)
	return nil
}
