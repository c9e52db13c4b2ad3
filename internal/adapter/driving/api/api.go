// Package api exposes the outward vault surface with its coarse failure
// contract: every error collapses to false, an empty list, or an absent
// value. The collapsed cause is logged here, the last place it is visible.
package api

import (
	"context"
	"log/slog"

	"github.com/Okramjimmy/EnvVault/internal/application"
	"github.com/Okramjimmy/EnvVault/internal/domain/model"
)

// API adapts the application service to the boolean/optional contract the
// host caller consumes. Operations are synchronous and context-free.
type API struct {
	svc *application.Service
	log *slog.Logger
}

// New creates an API over the given service. A nil logger falls back to
// slog.Default.
func New(svc *application.Service, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{svc: svc, log: log}
}

// Init sets up the storage schema. Idempotent.
func (a *API) Init() bool {
	if err := a.svc.Init(context.Background()); err != nil {
		a.log.Error("init failed", "error", err)
		return false
	}
	return true
}

// Add inserts or replaces the secret with the given key.
func (a *API) Add(key, value string) bool {
	if err := a.svc.Add(context.Background(), key, value); err != nil {
		a.log.Error("add failed", "key", key, "error", err)
		return false
	}
	return true
}

// Update replaces the value of the secret with the given id.
func (a *API) Update(id int64, value string) bool {
	if err := a.svc.Update(context.Background(), id, value); err != nil {
		a.log.Error("update failed", "id", id, "error", err)
		return false
	}
	return true
}

// Delete removes the secret with the given id.
func (a *API) Delete(id int64) bool {
	if err := a.svc.Delete(context.Background(), id); err != nil {
		a.log.Error("delete failed", "id", id, "error", err)
		return false
	}
	return true
}

// GetFull returns the raw value for the given id. The second return is
// false when the secret is absent or the store failed; callers cannot tell
// which.
func (a *API) GetFull(id int64) (string, bool) {
	val, err := a.svc.GetFull(context.Background(), id)
	if err != nil {
		a.log.Error("get full failed", "id", id, "error", err)
		return "", false
	}
	return val, true
}

// ListAll returns up to 50 masked summaries, or an empty list on failure.
func (a *API) ListAll() []model.SecretSummary {
	summaries, err := a.svc.List(context.Background())
	if err != nil {
		a.log.Error("list failed", "error", err)
		return []model.SecretSummary{}
	}
	return summaries
}

// Search returns up to 20 masked summaries matching the query, or an
// empty list on failure.
func (a *API) Search(query string) []model.SecretSummary {
	summaries, err := a.svc.Search(context.Background(), query)
	if err != nil {
		a.log.Error("search failed", "query", query, "error", err)
		return []model.SecretSummary{}
	}
	return summaries
}

// ImportFromEnvText imports env text and returns how many entries were
// written.
func (a *API) ImportFromEnvText(text string) int {
	return a.svc.ImportEnv(context.Background(), text)
}

// ExportToEnvText renders the whole vault as env text, or "" on failure.
func (a *API) ExportToEnvText() string {
	out, err := a.svc.ExportEnv(context.Background())
	if err != nil {
		a.log.Error("export failed", "error", err)
		return ""
	}
	return out
}

// SyncToShell publishes the vault into the shell dotfile and profiles.
func (a *API) SyncToShell() bool {
	if err := a.svc.SyncToShell(context.Background()); err != nil {
		a.log.Error("shell sync failed", "error", err)
		return false
	}
	return true
}

// EnvvaultFilePath returns the dotfile path for display.
func (a *API) EnvvaultFilePath() string {
	return a.svc.DotfilePath()
}
