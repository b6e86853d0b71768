package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, password_hash, role, status, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, password_hash, role, status,
				  oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Status, u.OAuthProvider, u.OAuthProviderID,
	).Scan(
		&created.ID, &created.Name, &created.Email, &created.PasswordHash,
		&created.Role, &created.Status, &created.OAuthProvider, &created.OAuthProviderID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, status,
			   oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return u, user.ErrUserNotFound
		}
		return u, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, status,
			   oauth_provider, oauth_provider_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return u, user.ErrUserNotFound
		}
		return u, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListByTeam implements user.UserRepository.
func (r *userRepositoryImpl) ListByTeam(ctx context.Context, teamID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.status,
			   u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at,
			   tu.joined_at
		FROM users u
		JOIN team_user tu ON tu.user_id = u.id
		WHERE tu.team_id = $1
		ORDER BY u.name ASC
	`

	rows, err := q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
			&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt,
			&u.JoinedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4, role = $5, status = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, password_hash, role, status,
				  oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Status,
	).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.PasswordHash,
		&updated.Role, &updated.Status, &updated.OAuthProvider, &updated.OAuthProviderID,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// UpdateStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateStatus(ctx context.Context, id string, status user.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
