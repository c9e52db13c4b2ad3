// Package application implements the vault operations over the storage
// port. Every operation here reports a real, distinguishable error; the
// api driving adapter narrows them to the coarse outward contract.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Okramjimmy/EnvVault/internal/domain/model"
	"github.com/Okramjimmy/EnvVault/internal/domain/port/driven"
	"github.com/Okramjimmy/EnvVault/internal/envfile"
	"github.com/Okramjimmy/EnvVault/internal/shell"
)

// ErrEmptyKey is returned when an add names no key.
var ErrEmptyKey = errors.New("secret key must not be empty")

// Service composes the secret store, env codec, and shell syncer into the
// vault operation surface.
type Service struct {
	store  driven.SecretStore
	syncer *shell.Syncer
	log    *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(store driven.SecretStore, syncer *shell.Syncer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, syncer: syncer, log: log}
}

// Init sets up the storage schema. Idempotent.
func (s *Service) Init(ctx context.Context) error {
	return s.store.Init(ctx)
}

// Add inserts the key or replaces its value.
func (s *Service) Add(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.store.Upsert(ctx, key, value)
}

// Update replaces the value of the secret with the given id.
func (s *Service) Update(ctx context.Context, id int64, value string) error {
	return s.store.UpdateValue(ctx, id, value)
}

// Delete removes the secret with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// GetFull returns the raw, unmasked value for the given id. This is the
// single masked-bypass read in the system.
func (s *Service) GetFull(ctx context.Context, id int64) (string, error) {
	return s.store.GetValue(ctx, id)
}

// List returns up to 50 masked summaries, key ascending.
func (s *Service) List(ctx context.Context) ([]model.SecretSummary, error) {
	return s.store.List(ctx)
}

// Search returns up to 20 masked summaries matching the query, key ascending.
func (s *Service) Search(ctx context.Context, query string) ([]model.SecretSummary, error) {
	return s.store.Search(ctx, query)
}

// ImportEnv decodes env text and upserts each entry in input order. The
// returned count covers entries whose store write succeeded; a failed
// write skips that entry and the import carries on.
func (s *Service) ImportEnv(ctx context.Context, text string) int {
	imported := 0
	for _, e := range envfile.Parse(text) {
		if err := s.store.Upsert(ctx, e.Key, e.Value); err != nil {
			s.log.Warn("import: skipping entry", "key", e.Key, "error", err)
			continue
		}
		imported++
	}
	return imported
}

// ExportEnv renders the whole vault as env text, key ascending, no cap.
func (s *Service) ExportEnv(ctx context.Context) (string, error) {
	secrets, err := s.store.All(ctx)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	entries := make([]envfile.Entry, 0, len(secrets))
	for _, sec := range secrets {
		entries = append(entries, envfile.Entry{Key: sec.Key, Value: sec.Value})
	}
	return envfile.Encode(entries), nil
}

// SyncToShell publishes every secret into the shell dotfile and patches
// the shell profiles to source it.
func (s *Service) SyncToShell(ctx context.Context) error {
	secrets, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return s.syncer.Sync(secrets)
}

// DotfilePath returns the shell dotfile location for display.
func (s *Service) DotfilePath() string {
	return s.syncer.DotfilePath()
}
