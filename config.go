package nexo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	// DataDir is the directory holding the persisted collections. Defaults
	// to ~/.nexo when unset.
	DataDir string `env:"NEXO_DATA_DIR"`
	// AdminEmail and AdminPassword are the built-in admin console
	// credentials, on top of any directory user with the admin role.
	AdminEmail    string `env:"NEXO_ADMIN_EMAIL" envDefault:"admin@nexo.com"`
	AdminPassword string `env:"NEXO_ADMIN_PASSWORD" envDefault:"admin123"`
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `env:"NEXO_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("could not resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".nexo")
	}
	return cfg, nil
}
