package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the client.
type Config struct {
	// APIBaseURL selects the backend origin.
	APIBaseURL string `env:"BANK_API_URL" envDefault:"http://localhost:8080"`
	// Home is the config directory; empty means $HOME/.bankctl.
	Home string `env:"BANKCTL_HOME"`
	// Passphrase, when set, seals the credentials file at rest.
	Passphrase string `env:"BANKCTL_PASSPHRASE"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP is optional; defaults to http.DefaultClient.
	HTTP *http.Client `env:"-"`
}

// LoadConfig reads configuration from the environment, loading a local .env
// file first when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".bankctl")
	}
	return cfg, nil
}
