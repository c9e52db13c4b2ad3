package model

import (
	"strings"
	"time"
)

// Secret is a stored environment secret. Value holds the raw cleartext
// content and must never leave the storage layer through list or search
// responses; only an explicit full-value fetch may expose it.
type Secret struct {
	ID        int64
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecretSummary is the display-safe projection of a Secret. The value is
// replaced by its masked form before the record leaves the storage adapter.
type SecretSummary struct {
	ID          int64
	Key         string
	MaskedValue string
}

// Summary returns the display-safe projection of s.
func (s Secret) Summary() SecretSummary {
	return SecretSummary{ID: s.ID, Key: s.Key, MaskedValue: Mask(s.Value)}
}

// Mask redacts a secret value for display. Values of 8 bytes or fewer are
// replaced entirely by asterisks; longer values keep their first and last
// four bytes around a "..." separator, which can never overlap. Lengths are
// byte-based: env-var material is effectively ASCII.
func Mask(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + "..." + value[len(value)-4:]
}
