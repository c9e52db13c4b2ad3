package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVVAULT_DB_PATH", "/tmp/custom/vault.db")
	t.Setenv("ENVVAULT_HOME", "/tmp/fakehome")

	cfg := Load()

	assert.Equal(t, "/tmp/custom/vault.db", cfg.DBPath)
	assert.Equal(t, "/tmp/fakehome", cfg.HomeDir)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVVAULT_DB_PATH", "")
	t.Setenv("ENVVAULT_HOME", "")

	cfg := Load()

	assert.Equal(t, DBFileName, filepath.Base(cfg.DBPath))
	assert.NotEmpty(t, cfg.HomeDir)
}
