package auth

import (
	"context"
	"time"
)

// RefreshToken is a stored refresh token with request metadata for auditing
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
}

// IsRevoked reports whether the token has been revoked
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired reports whether the token is past its expiry
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// RefreshTokenRepository defines the interface for refresh token persistence
type RefreshTokenRepository interface {
	// Create stores a new refresh token
	Create(ctx context.Context, token RefreshToken) (RefreshToken, error)

	// GetByToken retrieves a stored token by its opaque value
	GetByToken(ctx context.Context, token string) (RefreshToken, error)

	// Revoke marks a token revoked
	Revoke(ctx context.Context, id string) error

	// RevokeAllForUser revokes every live token belonging to a user
	RevokeAllForUser(ctx context.Context, userID string) error
}
