package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Okramjimmy/EnvVault/internal/domain/model"
	"github.com/Okramjimmy/EnvVault/internal/domain/port/driven"
)

// Result caps for display queries. Full-set reads (All) are uncapped.
const (
	listLimit   = 50
	searchLimit = 20
)

// Compile-time interface satisfaction check.
var _ driven.SecretStore = (*SecretRepo)(nil)

// SecretRepo is the SQLite implementation of the SecretStore port. Values
// pass through a ValueCodec on write and read; masking happens at row-scan
// time so raw values never leave List or Search.
type SecretRepo struct {
	db    *DB
	codec ValueCodec
}

// NewSecretRepo creates a SecretRepo backed by the given DB. A nil codec
// means cleartext storage.
func NewSecretRepo(db *DB, codec ValueCodec) *SecretRepo {
	if codec == nil {
		codec = PlaintextCodec{}
	}
	return &SecretRepo{db: db, codec: codec}
}

// Init creates the secrets schema if absent. Idempotent.
func (r *SecretRepo) Init(ctx context.Context) error {
	if err := RunMigrations(r.db.Writer); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Upsert inserts the key or replaces its value, refreshing updated_at.
// The REPLACE path deletes and re-inserts, so the record keeps exactly one
// live row per key without a separate existence check.
func (r *SecretRepo) Upsert(ctx context.Context, key, value string) error {
	stored, err := r.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode value for %q: %w", key, err)
	}

	const query = `INSERT OR REPLACE INTO secrets (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`
	if _, err := r.db.Writer.ExecContext(ctx, query, key, stored); err != nil {
		return fmt.Errorf("upsert secret %q: %w", key, err)
	}
	return nil
}

// UpdateValue replaces the value of the record with the given id.
func (r *SecretRepo) UpdateValue(ctx context.Context, id int64, value string) error {
	stored, err := r.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode value for id %d: %w", id, err)
	}

	const query = `UPDATE secrets SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.Writer.ExecContext(ctx, query, stored, id)
	if err != nil {
		return fmt.Errorf("update secret %d: %w", id, err)
	}
	return requireRowMatched(res, id)
}

// Delete removes the record with the given id. Ids are assigned by
// AUTOINCREMENT and are never reused after deletion.
func (r *SecretRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM secrets WHERE id = ?`
	res, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete secret %d: %w", id, err)
	}
	return requireRowMatched(res, id)
}

// GetValue returns the raw, unmasked value for the given id.
func (r *SecretRepo) GetValue(ctx context.Context, id int64) (string, error) {
	const query = `SELECT value FROM secrets WHERE id = ?`
	var stored string
	err := r.db.Reader.QueryRowContext(ctx, query, id).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return "", driven.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get secret %d: %w", id, err)
	}

	value, err := r.codec.Decode(stored)
	if err != nil {
		return "", fmt.Errorf("decode secret %d: %w", id, err)
	}
	return value, nil
}

// List returns up to 50 masked summaries ordered by key ascending.
func (r *SecretRepo) List(ctx context.Context) ([]model.SecretSummary, error) {
	const query = `SELECT id, key, value FROM secrets ORDER BY key ASC LIMIT ?`
	return r.querySummaries(ctx, query, listLimit)
}

// Search returns up to 20 masked summaries whose key contains query as a
// case-insensitive substring, ordered by key ascending.
func (r *SecretRepo) Search(ctx context.Context, query string) ([]model.SecretSummary, error) {
	const q = `SELECT id, key, value FROM secrets WHERE key LIKE ? COLLATE NOCASE ORDER BY key ASC LIMIT ?`
	return r.querySummaries(ctx, q, "%"+query+"%", searchLimit)
}

// All returns every secret with its raw value, ordered by key ascending.
func (r *SecretRepo) All(ctx context.Context) ([]model.Secret, error) {
	const query = `SELECT id, key, value, created_at, updated_at FROM secrets ORDER BY key ASC`
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load all secrets: %w", err)
	}
	defer rows.Close()

	var secrets []model.Secret
	for rows.Next() {
		var s model.Secret
		var stored, createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.Key, &stored, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan secret: %w", err)
		}

		s.Value, err = r.codec.Decode(stored)
		if err != nil {
			return nil, fmt.Errorf("decode secret %q: %w", s.Key, err)
		}
		s.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %q: %w", s.Key, err)
		}
		s.UpdatedAt, err = parseTime(updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at for %q: %w", s.Key, err)
		}

		secrets = append(secrets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate secrets: %w", err)
	}

	return secrets, nil
}

// querySummaries runs a display query and masks every value at scan time.
func (r *SecretRepo) querySummaries(ctx context.Context, query string, args ...any) ([]model.SecretSummary, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query secrets: %w", err)
	}
	defer rows.Close()

	var summaries []model.SecretSummary
	for rows.Next() {
		var sum model.SecretSummary
		var stored string
		if err := rows.Scan(&sum.ID, &sum.Key, &stored); err != nil {
			return nil, fmt.Errorf("scan secret summary: %w", err)
		}

		value, err := r.codec.Decode(stored)
		if err != nil {
			return nil, fmt.Errorf("decode secret %q: %w", sum.Key, err)
		}
		sum.MaskedValue = model.Mask(value)

		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate secret summaries: %w", err)
	}

	return summaries, nil
}

// requireRowMatched maps a zero-row write to ErrNotFound so the layers
// above can tell "no such id" apart from storage faults, even though the
// outward boundary collapses both.
func requireRowMatched(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for secret %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("secret %d: %w", id, driven.ErrNotFound)
	}
	return nil
}

// parseTime handles the timestamp formats SQLite emits for
// CURRENT_TIMESTAMP defaults.
func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
