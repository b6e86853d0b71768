package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/auth"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

// NewRefreshTokenRepository creates a new refresh token repository instance
func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token auth.RefreshToken) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, token, expires_at, revoked_at, ip_address, user_agent, created_at
	`

	var created auth.RefreshToken
	err := q.QueryRow(ctx, query,
		token.UserID, token.Token, token.ExpiresAt, token.IPAddress, token.UserAgent,
	).Scan(
		&created.ID, &created.UserID, &created.Token, &created.ExpiresAt,
		&created.RevokedAt, &created.IPAddress, &created.UserAgent, &created.CreatedAt,
	)
	if err != nil {
		return auth.RefreshToken{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return created, nil
}

// GetByToken implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, expires_at, revoked_at, ip_address, user_agent, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var stored auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&stored.ID, &stored.UserID, &stored.Token, &stored.ExpiresAt,
		&stored.RevokedAt, &stored.IPAddress, &stored.UserAgent, &stored.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return stored, auth.ErrInvalidToken
		}
		return stored, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return stored, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return auth.ErrRefreshTokenRevoked
	}

	return nil
}

// RevokeAllForUser implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`

	if _, err := q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke user refresh tokens: %w", err)
	}

	return nil
}
