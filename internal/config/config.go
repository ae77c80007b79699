// Package config loads the site configuration from an optional YAML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mtmuztaba/portfolio/internal/nav"
)

// Config holds every setting the server reads. Environment variables win
// over the YAML file, which wins over the defaults.
type Config struct {
	// Port is the HTTP listen port (PORT).
	Port int `yaml:"port"`

	// ContentDir holds the content JSON files (CONTENT_DIR). Empty means the
	// embedded default content.
	ContentDir string `yaml:"content_dir"`

	// AssetDir is served under AssetPrefix (ASSET_DIR).
	AssetDir    string `yaml:"asset_dir"`
	AssetPrefix string `yaml:"asset_prefix"`

	// DatabasePath is the SQLite file (DATABASE_PATH).
	DatabasePath string `yaml:"database_path"`

	// NavThreshold is the scroll offset past which the floating nav shows
	// (NAV_THRESHOLD).
	NavThreshold float64 `yaml:"nav_threshold"`

	// SiteURL is the public base URL, used by the PDF export (SITE_URL).
	SiteURL string `yaml:"site_url"`

	AdminUsername     string `yaml:"admin_username"`
	AdminPasswordHash string `yaml:"admin_password_hash"`
	// AdminPassword is a plaintext fallback for development only.
	AdminPassword string `yaml:"-"`
	JWTSecret     string `yaml:"-"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Port:          8080,
		AssetDir:      "./public/projects",
		AssetPrefix:   "/projects",
		DatabasePath:  "portfolio.db",
		NavThreshold:  nav.DefaultThreshold,
		SiteURL:       "http://localhost:8080",
		AdminUsername: "admin",
	}
}

// Load builds the configuration. path may be empty.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	if v := os.Getenv("NAV_THRESHOLD"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid NAV_THRESHOLD: %v", err)
		}
		c.NavThreshold = t
	}

	strs := []struct {
		env  string
		dest *string
	}{
		{"CONTENT_DIR", &c.ContentDir},
		{"ASSET_DIR", &c.AssetDir},
		{"DATABASE_PATH", &c.DatabasePath},
		{"SITE_URL", &c.SiteURL},
		{"ADMIN_USERNAME", &c.AdminUsername},
		{"ADMIN_PASSWORD_HASH", &c.AdminPasswordHash},
		{"ADMIN_PASSWORD", &c.AdminPassword},
		{"JWT_SECRET", &c.JWTSecret},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dest = v
		}
	}
	return nil
}

// Validate checks value ranges and paths.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.NavThreshold < 0 {
		return fmt.Errorf("config error: nav_threshold must be non-negative")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("config error: JWT_SECRET must be at least 32 bytes")
	}
	if _, err := os.Stat(c.AssetDir); os.IsNotExist(err) {
		return fmt.Errorf("config error: asset directory not found: %s", c.AssetDir)
	}
	if c.ContentDir != "" {
		if _, err := os.Stat(c.ContentDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: content directory not found: %s", c.ContentDir)
		}
	}
	return nil
}
