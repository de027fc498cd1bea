package repository

import (
	"context"
	"time"
)

// TokenRepository tracks revoked access tokens so logout takes effect
// before the token expires on its own.
type TokenRepository interface {
	// Revoke marks a token ID (jti) as revoked for the remaining token lifetime.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether a token ID has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
