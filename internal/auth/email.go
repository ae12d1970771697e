package auth

import (
	"context"
	"strings"
)

// NormalizeEmail canonicalizes an email address: trimmed and lowercased.
// Idempotent; an empty input yields the empty string.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailAvailable reports whether the address can still be registered.
// Blank addresses are never available. The answer can race with a concurrent
// registration; the unique constraint on users.email settles it at insert.
func IsEmailAvailable(ctx context.Context, store Store, email string) (bool, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return false, nil
	}
	exists, err := store.EmailExists(ctx, normalized)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
