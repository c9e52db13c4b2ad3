// Package paths resolves the platform filesystem locations EnvVault
// writes to. Resolution degrades instead of failing: callers always get a
// usable path back.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appDirName identifies the application under the platform data home.
const appDirName = "EnvVault"

// DataDir returns a writable directory for the vault database, creating it
// if absent. When the platform location cannot be prepared it falls back
// to the current directory rather than returning an error.
func DataDir() string {
	dir := filepath.Join(xdg.DataHome, appDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "."
	}
	return dir
}

// HomeDir returns the user home directory, or "." when it cannot be
// resolved. Dotfile names are joined onto the result either way.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
