package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/invitation"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository instance
func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO team_invitations (
			team_id, email, token, otp_code, expires_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, team_id, email, token, otp_code, expires_at, used_at,
				  created_by, created_at, updated_at
	`

	var created invitation.Invitation
	err := q.QueryRow(ctx, query,
		inv.TeamID, inv.Email, inv.Token, inv.OTPCode, inv.ExpiresAt, inv.CreatedBy,
	).Scan(
		&created.ID, &created.TeamID, &created.Email, &created.Token, &created.OTPCode,
		&created.ExpiresAt, &created.UsedAt, &created.CreatedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return invitation.Invitation{}, invitation.ErrDuplicateToken
		}
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return created, nil
}

// GetValidByToken implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetValidByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ti.id, ti.team_id, ti.email, ti.token, ti.otp_code, ti.expires_at,
			   ti.used_at, ti.created_by, ti.created_at, ti.updated_at,
			   t.name AS team_name
		FROM team_invitations ti
		JOIN teams t ON t.id = ti.team_id
		WHERE ti.token = $1 AND ti.used_at IS NULL AND ti.expires_at > NOW()
	`

	return r.scanOne(ctx, q, query, token)
}

// GetValidByEmailAndOTP implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) GetValidByEmailAndOTP(ctx context.Context, email, otp string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ti.id, ti.team_id, ti.email, ti.token, ti.otp_code, ti.expires_at,
			   ti.used_at, ti.created_by, ti.created_at, ti.updated_at,
			   t.name AS team_name
		FROM team_invitations ti
		JOIN teams t ON t.id = ti.team_id
		WHERE ti.otp_code = $1 AND ti.email = $2
		  AND ti.used_at IS NULL AND ti.expires_at > NOW()
		ORDER BY ti.created_at DESC
		LIMIT 1
	`

	return r.scanOne(ctx, q, query, otp, email)
}

func (r *invitationRepositoryImpl) scanOne(ctx context.Context, q database.Querier, query string, args ...interface{}) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := q.QueryRow(ctx, query, args...).Scan(
		&inv.ID, &inv.TeamID, &inv.Email, &inv.Token, &inv.OTPCode, &inv.ExpiresAt,
		&inv.UsedAt, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.TeamName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Missing, expired and used all collapse into the same error so
			// callers cannot probe invitation state.
			return inv, invitation.ErrInvitationNotFound
		}
		return inv, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// MarkUsed implements invitation.InvitationRepository.
func (r *invitationRepositoryImpl) MarkUsed(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// The WHERE clause re-checks validity so that two concurrent acceptances
	// of the same invitation cannot both succeed.
	query := `
		UPDATE team_invitations
		SET used_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND used_at IS NULL AND expires_at > NOW()
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to mark invitation as used: %w", err)
	}

	return nil
}
