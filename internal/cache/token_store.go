package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

const (
	// Reset tokens: password_reset:{user_id} -> token
	keyPasswordReset = "password_reset:%s"

	// TTLPasswordReset bounds how long a reset token stays valid.
	TTLPasswordReset = time.Hour
)

// TokenStore is an ephemeral key-value store with per-entry expiry. The
// credential reset flow keeps at most one live token per user in it.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PasswordResetKey builds the cache key holding a user's reset token.
func PasswordResetKey(userID string) string {
	return fmt.Sprintf(keyPasswordReset, userID)
}
