package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "NAV_THRESHOLD", "CONTENT_DIR", "ASSET_DIR", "DATABASE_PATH"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, float64(300), cfg.NavThreshold)
	assert.Equal(t, "/projects", cfg.AssetPrefix)
	assert.Empty(t, cfg.ContentDir)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
nav_threshold: 450
database_path: /var/lib/portfolio/site.db
`), 0o644))

	clearEnv(t)
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, float64(450), cfg.NavThreshold)
	assert.Equal(t, "/var/lib/portfolio/site.db", cfg.DatabasePath)
	assert.Equal(t, "./public/projects", cfg.AssetDir)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("NAV_THRESHOLD", "high")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		c := Defaults()
		c.AssetDir = t.TempDir()
		return c
	}

	c := valid()
	assert.NoError(t, c.Validate())

	c = valid()
	c.NavThreshold = -1
	assert.Error(t, c.Validate())

	c = valid()
	c.JWTSecret = "short"
	assert.Error(t, c.Validate())

	c = valid()
	c.AssetDir = filepath.Join(t.TempDir(), "missing")
	assert.Error(t, c.Validate())

	c = valid()
	c.Port = 0
	assert.Error(t, c.Validate())
}
