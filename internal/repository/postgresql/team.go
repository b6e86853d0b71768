package postgresql

import (
	"context"
	"fmt"

	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teamRepositoryImpl struct {
	db *database.DB
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// Create implements team.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (name, description, address, phone, website, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, address, phone, website, created_by, created_at, updated_at
	`

	var created team.Team
	err := q.QueryRow(ctx, query,
		t.Name, t.Description, t.Address, t.Phone, t.Website, t.CreatedBy,
	).Scan(
		&created.ID, &created.Name, &created.Description, &created.Address,
		&created.Phone, &created.Website, &created.CreatedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	return created, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.description, t.address, t.phone, t.website,
			   t.created_by, t.created_at, t.updated_at,
			   COUNT(tu.user_id) AS member_count
		FROM teams t
		LEFT JOIN team_user tu ON tu.team_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	var t team.Team
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Address, &t.Phone, &t.Website,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return t, team.ErrTeamNotFound
		}
		return t, fmt.Errorf("failed to get team: %w", err)
	}

	return t, nil
}

// List implements team.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.description, t.address, t.phone, t.website,
			   t.created_by, t.created_at, t.updated_at,
			   COUNT(tu.user_id) AS member_count
		FROM teams t
		LEFT JOIN team_user tu ON tu.team_id = t.id
		GROUP BY t.id
		ORDER BY t.name ASC
	`

	return r.scanTeams(ctx, q, query)
}

// ListByUser implements team.TeamRepository.
func (r *teamRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.description, t.address, t.phone, t.website,
			   t.created_by, t.created_at, t.updated_at,
			   (SELECT COUNT(*) FROM team_user c WHERE c.team_id = t.id) AS member_count
		FROM teams t
		JOIN team_user tu ON tu.team_id = t.id
		WHERE tu.user_id = $1
		ORDER BY tu.joined_at ASC
	`

	return r.scanTeams(ctx, q, query, userID)
}

func (r *teamRepositoryImpl) scanTeams(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]team.Team, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := []team.Team{}
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Address, &t.Phone, &t.Website,
			&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// Update implements team.TeamRepository.
func (r *teamRepositoryImpl) Update(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = $2, description = $3, address = $4, phone = $5, website = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, address, phone, website, created_by, created_at, updated_at
	`

	var updated team.Team
	err := q.QueryRow(ctx, query,
		t.ID, t.Name, t.Description, t.Address, t.Phone, t.Website,
	).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.Address,
		&updated.Phone, &updated.Website, &updated.CreatedBy,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to update team: %w", err)
	}

	return updated, nil
}

// Delete implements team.TeamRepository.
func (r *teamRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}

// AddMember implements team.TeamRepository.
func (r *teamRepositoryImpl) AddMember(ctx context.Context, teamID, userID string) error {
	q := GetQuerier(ctx, r.db)

	// ON CONFLICT DO NOTHING makes re-attachment idempotent
	query := `
		INSERT INTO team_user (team_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (team_id, user_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, teamID, userID); err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}

	return nil
}

// IsMember implements team.TeamRepository.
func (r *teamRepositoryImpl) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM team_user WHERE team_id = $1 AND user_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check team membership: %w", err)
	}

	return exists, nil
}
