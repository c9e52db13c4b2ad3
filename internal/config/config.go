// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/Okramjimmy/EnvVault/internal/paths"
)

// DBFileName is the vault database file under the data directory.
const DBFileName = "vault.db"

// Config holds the resolved filesystem locations for the vault. Paths are
// decided once at startup and threaded into the engines, never re-resolved
// per call.
type Config struct {
	DBPath  string
	HomeDir string
}

// Load reads configuration from environment variables, falling back to
// platform defaults. ENVVAULT_DB_PATH overrides the database location and
// ENVVAULT_HOME overrides the home directory used for the dotfile and
// shell profiles. Load never fails; the resolvers only degrade.
func Load() *Config {
	dbPath := filepath.Join(paths.DataDir(), DBFileName)
	if v, ok := os.LookupEnv("ENVVAULT_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	home := paths.HomeDir()
	if v, ok := os.LookupEnv("ENVVAULT_HOME"); ok && v != "" {
		home = v
	}

	return &Config{DBPath: dbPath, HomeDir: home}
}
