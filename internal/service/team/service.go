package team

import (
	"context"

	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/crewlabs/crew-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type teamServiceImpl struct {
	teamRepo team.TeamRepository
	db       *database.DB
}

// NewTeamService creates a new team service instance
func NewTeamService(teamRepo team.TeamRepository, db *database.DB) team.TeamService {
	return &teamServiceImpl{teamRepo: teamRepo, db: db}
}

// Browse implements team.TeamService.
func (s *teamServiceImpl) Browse(ctx context.Context) ([]team.Response, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(teams), nil
}

// MyTeams implements team.TeamService.
func (s *teamServiceImpl) MyTeams(ctx context.Context, userID string) ([]team.Response, error) {
	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(teams), nil
}

func toResponses(teams []team.Team) []team.Response {
	responses := make([]team.Response, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, team.ToResponse(t))
	}
	return responses
}

// Create implements team.TeamService.
func (s *teamServiceImpl) Create(ctx context.Context, creatorID string, req team.CreateRequest) (team.Response, error) {
	if err := req.Validate(); err != nil {
		return team.Response{}, err
	}

	var created team.Team
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.teamRepo.Create(txCtx, team.Team{
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			Website:     req.Website,
			CreatedBy:   &creatorID,
		})
		if err != nil {
			return err
		}

		// The creator is always the team's first member
		return s.teamRepo.AddMember(txCtx, created.ID, creatorID)
	})
	if err != nil {
		return team.Response{}, err
	}

	created.MemberCount = 1
	return team.ToResponse(created), nil
}

// Get implements team.TeamService.
func (s *teamServiceImpl) Get(ctx context.Context, id string) (team.Response, error) {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Response{}, err
	}
	return team.ToResponse(t), nil
}

// Update implements team.TeamService.
func (s *teamServiceImpl) Update(ctx context.Context, id string, req team.UpdateRequest) (team.Response, error) {
	if err := req.Validate(); err != nil {
		return team.Response{}, err
	}

	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Response{}, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.Address != nil {
		t.Address = req.Address
	}
	if req.Phone != nil {
		t.Phone = req.Phone
	}
	if req.Website != nil {
		t.Website = req.Website
	}

	updated, err := s.teamRepo.Update(ctx, t)
	if err != nil {
		return team.Response{}, err
	}

	updated.MemberCount = t.MemberCount
	return team.ToResponse(updated), nil
}

// Delete implements team.TeamService.
func (s *teamServiceImpl) Delete(ctx context.Context, id string) error {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if t.MemberCount > 0 {
		return team.ErrTeamHasMembers
	}

	return s.teamRepo.Delete(ctx, id)
}

// Join implements team.TeamService.
func (s *teamServiceImpl) Join(ctx context.Context, teamID, userID string) (team.Response, error) {
	t, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Response{}, err
	}

	isMember, err := s.teamRepo.IsMember(ctx, teamID, userID)
	if err != nil {
		return team.Response{}, err
	}
	if isMember {
		return team.Response{}, team.ErrAlreadyMember
	}

	if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
		return team.Response{}, err
	}

	t.MemberCount++
	return team.ToResponse(t), nil
}

// Switch implements team.TeamService.
func (s *teamServiceImpl) Switch(ctx context.Context, userID string, teamID *string) (*team.Response, error) {
	if teamID == nil {
		return nil, nil
	}

	t, err := s.teamRepo.GetByID(ctx, *teamID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.teamRepo.IsMember(ctx, *teamID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, team.ErrNotMember
	}

	resp := team.ToResponse(t)
	return &resp, nil
}
