package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full server configuration. Values come from defaults,
// then an optional YAML file, then PORTFOLIO_* environment overrides.
type Config struct {
	Addr        string `koanf:"addr"`
	FeedAddr    string `koanf:"feed_addr"`
	CatalogPath string `koanf:"catalog_path"`
	AssetsDir   string `koanf:"assets_dir"`
	Development bool   `koanf:"development"`

	Auth AuthConfig `koanf:"auth"`
}

// AuthConfig configures editor JWTs for the maintenance API.
type AuthConfig struct {
	JWTSecret   string        `koanf:"jwt_secret"`
	JWTIssuer   string        `koanf:"jwt_issuer"`
	JWTDuration time.Duration `koanf:"jwt_duration"`
}

func Default() *Config {
	return &Config{
		Addr:        ":8080",
		FeedAddr:    ":7070",
		CatalogPath: "data/catalog.json",
		AssetsDir:   "assets",
		Auth: AuthConfig{
			// dev default (change for demo / production)
			JWTSecret:   "dev-secret-change-me",
			JWTIssuer:   "portfoliohub",
			JWTDuration: 24 * time.Hour,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_ADDR -> addr,
// PORTFOLIO_AUTH_JWT_SECRET -> auth.jwt_secret, ...).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
		return strings.Replace(s, "auth_", "auth.", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
