package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// AuthConfig holds token signing and password hashing parameters.
type AuthConfig struct {
	Secret               string `yaml:"secret"`
	TokenExpireMinutes   int    `yaml:"token_expire_minutes"`
	BcryptCost           int    `yaml:"bcrypt_cost"`
	TokenCacheTTLSeconds int    `yaml:"token_cache_ttl_seconds"`
}

// DatabaseConfig holds the document store configuration.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	if cfg.Auth.Secret == "" {
		log.Printf("auth.secret is not set; using an insecure development secret")
		cfg.Auth.Secret = "CHANGEME-insecure-development-secret"
	}
	if cfg.Auth.TokenExpireMinutes <= 0 {
		cfg.Auth.TokenExpireMinutes = 30
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.TokenCacheTTLSeconds <= 0 {
		cfg.Auth.TokenCacheTTLSeconds = 60
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "./database.json"
	}

	return &cfg, nil
}
