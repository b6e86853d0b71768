package user

import (
	"context"
	"errors"
	"strings"

	"github.com/crewlabs/crew-backend-go/internal/domain/invitation"
	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/crewlabs/crew-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	userRepo          user.UserRepository
	teamRepo          team.TeamRepository
	invitationService invitation.InvitationService
	db                *database.DB
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo user.UserRepository,
	teamRepo team.TeamRepository,
	invitationService invitation.InvitationService,
	db *database.DB,
) user.UserService {
	return &userServiceImpl{
		userRepo:          userRepo,
		teamRepo:          teamRepo,
		invitationService: invitationService,
		db:                db,
	}
}

// List implements user.UserService.
func (s *userServiceImpl) List(ctx context.Context, teamID string) ([]user.Response, error) {
	users, err := s.userRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Create implements user.UserService.
func (s *userServiceImpl) Create(ctx context.Context, teamID string, req user.CreateRequest) (user.Response, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Response{}, err
	}
	hashStr := string(hash)

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}
	status := user.StatusActive
	if req.Status != "" {
		status = user.Status(req.Status)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.userRepo.Create(txCtx, user.User{
			Name:         req.Name,
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: &hashStr,
			Role:         role,
			Status:       status,
		})
		if err != nil {
			return err
		}

		return s.teamRepo.AddMember(txCtx, teamID, created.ID)
	})
	if err != nil {
		return user.Response{}, err
	}

	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *userServiceImpl) Update(ctx context.Context, id string, req user.UpdateRequest) (user.Response, error) {
	if err := req.Validate(); err != nil {
		return user.Response{}, err
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.Response{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.Status != nil {
		u.Status = user.Status(*req.Status)
	}

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return user.Response{}, err
	}

	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *userServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

// SendMagicLinkInvite implements user.UserService.
func (s *userServiceImpl) SendMagicLinkInvite(ctx context.Context, actor *user.User, teamID string, req user.MagicLinkInviteRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Provision a pending account when the email is unknown so the invitee
	// already exists once they authenticate and accept.
	_, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		_, err = s.userRepo.Create(ctx, user.User{
			Name:   email,
			Email:  email,
			Role:   user.RoleEmployee,
			Status: user.StatusPending,
		})
	}
	if err != nil {
		return err
	}

	_, err = s.invitationService.Issue(ctx, actor, invitation.IssueRequest{
		TeamID: teamID,
		Email:  email,
		Method: invitation.MethodMagicLink,
	})
	return err
}
