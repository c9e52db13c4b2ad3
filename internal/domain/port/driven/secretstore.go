package driven

import (
	"context"
	"errors"

	"github.com/Okramjimmy/EnvVault/internal/domain/model"
)

// ErrNotFound is returned by SecretStore operations that target an id with
// no matching record.
var ErrNotFound = errors.New("secret not found")

// SecretStore defines the driven port for secret persistence.
//
// List and Search return masked summaries only; raw values cross this
// boundary solely through GetValue and All. Value-at-rest encryption, when
// it arrives, belongs behind this interface, not in front of it.
type SecretStore interface {
	// Init creates the schema if absent. Safe to call repeatedly.
	Init(ctx context.Context) error

	// Upsert inserts the key or replaces its value, refreshing updated_at.
	// At most one record per key exists at any time.
	Upsert(ctx context.Context, key, value string) error

	// UpdateValue replaces the value of the record with the given id and
	// refreshes updated_at. Returns ErrNotFound when no record has that id.
	UpdateValue(ctx context.Context, id int64, value string) error

	// Delete removes the record with the given id permanently. Ids are
	// never reused. Returns ErrNotFound when no record has that id.
	Delete(ctx context.Context, id int64) error

	// GetValue returns the raw, unmasked value for the given id.
	// Returns ErrNotFound when no record has that id.
	GetValue(ctx context.Context, id int64) (string, error)

	// List returns up to 50 summaries ordered by key ascending.
	List(ctx context.Context) ([]model.SecretSummary, error)

	// Search returns up to 20 summaries whose key contains query as a
	// case-insensitive substring, ordered by key ascending.
	Search(ctx context.Context, query string) ([]model.SecretSummary, error)

	// All returns every secret with its raw value, ordered by key
	// ascending. Export and shell sync are the only intended consumers.
	All(ctx context.Context) ([]model.Secret, error)
}
