package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Loader handles loading configuration from defaults and the environment
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables (cleanenv, via the env tags)
// 3. Validate the result
func (l *Loader) Load() (*Config, error) {
	if err := cleanenv.ReadEnv(l.config); err != nil {
		return nil, err
	}

	// The storage directory default needs the home directory, which a
	// struct tag cannot express.
	if l.config.Storage.Dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		l.config.Storage.Dir = filepath.Join(homeDir, ".caio-audit")
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}
