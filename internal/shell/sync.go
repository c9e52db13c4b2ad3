// Package shell materializes secrets into a shell-sourced dotfile and
// keeps shell profile files pointed at it.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Okramjimmy/EnvVault/internal/domain/model"
	"github.com/Okramjimmy/EnvVault/internal/envfile"
)

// DotfileName is the shell-sourced file holding one export per secret.
const DotfileName = ".envvault"

// sourceBlock is appended verbatim to a profile that does not yet source
// the dotfile.
const sourceBlock = "\n# EnvVault secrets\n[ -f ~/.envvault ] && source ~/.envvault\n"

// profileNames are patched in this order; missing files are left alone.
var profileNames = []string{".zshrc", ".bashrc", ".bash_profile"}

// sourcedForms are the sourcing spellings that count as already installed.
var sourcedForms = []string{"source ~/.envvault", ". ~/.envvault"}

// Syncer writes the dotfile under a fixed home directory and patches the
// profiles next to it. The home path is injected at construction, not
// re-resolved per call.
type Syncer struct {
	home string
}

// NewSyncer creates a Syncer rooted at the given home directory.
func NewSyncer(home string) *Syncer {
	return &Syncer{home: home}
}

// DotfilePath returns the dotfile location. Path arithmetic only, no I/O.
func (s *Syncer) DotfilePath() string {
	return filepath.Join(s.home, DotfileName)
}

// Sync overwrites the dotfile with one export statement per secret, then
// appends the sourcing block to each existing profile that lacks one.
// Only the dotfile write is fatal; profile patching is best-effort and
// idempotent.
func (s *Syncer) Sync(secrets []model.Secret) error {
	lines := make([]string, 0, len(secrets))
	for _, sec := range secrets {
		lines = append(lines, envfile.ExportStatement(sec.Key, sec.Value))
	}
	content := strings.Join(lines, "\n")

	if err := os.WriteFile(s.DotfilePath(), []byte(content), 0o600); err != nil {
		return fmt.Errorf("write dotfile: %w", err)
	}

	for _, name := range profileNames {
		s.patchProfile(filepath.Join(s.home, name))
	}

	return nil
}

// patchProfile appends the sourcing block unless the profile is missing,
// unreadable, or already sources the dotfile. Failures are swallowed so a
// broken profile never blocks the others.
func (s *Syncer) patchProfile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	for _, form := range sourcedForms {
		if strings.Contains(string(content), form) {
			return
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(sourceBlock)
}
