package invitation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/crewlabs/crew-backend-go/internal/domain/invitation"
	"github.com/crewlabs/crew-backend-go/internal/domain/notification"
	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/crewlabs/crew-backend-go/internal/pkg/mailer"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
	"github.com/crewlabs/crew-backend-go/internal/pkg/token"
	"github.com/crewlabs/crew-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// maxTokenAttempts bounds the retry loop on token collision. With 36 bytes of
// entropy a single retry is already vanishingly unlikely.
const maxTokenAttempts = 5

type invitationServiceImpl struct {
	invitationRepo   invitation.InvitationRepository
	teamRepo         team.TeamRepository
	userRepo         user.UserRepository
	notificationRepo notification.NotificationRepository
	db               *database.DB
	mailer           mailer.Mailer
	baseURL          string
}

// NewInvitationService creates a new invitation service instance
func NewInvitationService(
	invitationRepo invitation.InvitationRepository,
	teamRepo team.TeamRepository,
	userRepo user.UserRepository,
	notificationRepo notification.NotificationRepository,
	db *database.DB,
	m mailer.Mailer,
	baseURL string,
) invitation.InvitationService {
	return &invitationServiceImpl{
		invitationRepo:   invitationRepo,
		teamRepo:         teamRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		db:               db,
		mailer:           m,
		baseURL:          baseURL,
	}
}

// Issue implements invitation.InvitationService.
func (s *invitationServiceImpl) Issue(ctx context.Context, actor *user.User, req invitation.IssueRequest) (invitation.IssueResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.IssueResponse{}, err
	}

	if !actor.CanInvite() {
		return invitation.IssueResponse{}, invitation.ErrInviteNotAllowed
	}

	t, err := s.teamRepo.GetByID(ctx, req.TeamID)
	if err != nil {
		return invitation.IssueResponse{}, err
	}

	isMember, err := s.teamRepo.IsMember(ctx, t.ID, actor.ID)
	if err != nil {
		return invitation.IssueResponse{}, err
	}
	if !isMember {
		return invitation.IssueResponse{}, team.ErrNotMember
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var otpCode *string
	if req.Method.WantsOTP() {
		code, err := token.GenerateOTP()
		if err != nil {
			return invitation.IssueResponse{}, fmt.Errorf("failed to generate otp: %w", err)
		}
		otpCode = &code
	}

	created, err := s.createWithFreshToken(ctx, invitation.Invitation{
		TeamID:    t.ID,
		Email:     email,
		OTPCode:   otpCode,
		CreatedBy: &actor.ID,
	})
	if err != nil {
		return invitation.IssueResponse{}, err
	}

	resp := invitation.IssueResponse{
		ID:        created.ID,
		TeamID:    created.TeamID,
		Email:     created.Email,
		Token:     created.Token,
		HasOTP:    created.HasOTP(),
		ExpiresAt: created.ExpiresAt.Format(time.RFC3339),
	}

	// Delivery runs after the record is committed and never fails the request:
	// the invitation is already redeemable.
	msg := mailer.InvitationMessage{
		TeamName:  t.Name,
		ExpiresAt: created.ExpiresAt,
	}
	if req.Method.WantsMagicLink() {
		msg.MagicLink = s.magicLink(created.Token)
	}
	if otpCode != nil {
		msg.OTPCode = *otpCode
	}
	if err := s.mailer.SendInvitation(created.Email, msg); err != nil {
		slog.Error("Invitation email delivery failed", "invitation_id", created.ID, "error", err)
		resp.DeliveryWarning = "invitation created but the email could not be delivered"
	}

	s.notify(ctx, notification.Notification{
		TeamID:   t.ID,
		SenderID: &actor.ID,
		Type:     notification.TypeInvitationSent,
		Title:    "Invitation sent",
		Message:  fmt.Sprintf("%s invited %s to join %s", actor.Name, created.Email, t.Name),
	})

	return resp, nil
}

// createWithFreshToken generates a token and inserts the row, regenerating on
// the off chance of a unique collision.
func (s *invitationServiceImpl) createWithFreshToken(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	inv.ExpiresAt = time.Now().Add(invitation.TTL)

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		tok, err := token.Generate(token.InviteTokenBytes)
		if err != nil {
			return invitation.Invitation{}, fmt.Errorf("failed to generate invitation token: %w", err)
		}
		inv.Token = tok

		created, err := s.invitationRepo.Create(ctx, inv)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, invitation.ErrDuplicateToken) {
			return invitation.Invitation{}, err
		}
	}

	return invitation.Invitation{}, invitation.ErrTokenGeneration
}

// AcceptByToken implements invitation.InvitationService.
func (s *invitationServiceImpl) AcceptByToken(ctx context.Context, sess *session.Session, identity *user.User, tok string) (invitation.AcceptResponse, error) {
	inv, err := s.invitationRepo.GetValidByToken(ctx, tok)
	if err != nil {
		return invitation.AcceptResponse{}, err
	}
	return s.resolve(ctx, sess, identity, inv)
}

// Accept implements invitation.InvitationService.
func (s *invitationServiceImpl) Accept(ctx context.Context, sess *session.Session, identity *user.User, req invitation.AcceptRequest) (invitation.AcceptResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.AcceptResponse{}, err
	}

	var (
		inv invitation.Invitation
		err error
	)
	if req.Token != "" {
		inv, err = s.invitationRepo.GetValidByToken(ctx, req.Token)
	} else {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		inv, err = s.invitationRepo.GetValidByEmailAndOTP(ctx, email, req.OTPCode)
	}
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	return s.resolve(ctx, sess, identity, inv)
}

// resolve is the single acceptance state machine shared by both entry paths.
func (s *invitationServiceImpl) resolve(ctx context.Context, sess *session.Session, identity *user.User, inv invitation.Invitation) (invitation.AcceptResponse, error) {
	if identity == nil {
		// Park the token in the session so acceptance resumes after login.
		if sess != nil {
			sess.Put(session.KeyInvitationToken, inv.Token)
		}
		return invitation.AcceptResponse{
			Status:          invitation.OutcomeLoginRequired,
			InvitationToken: inv.Token,
		}, nil
	}

	if !strings.EqualFold(identity.Email, inv.Email) {
		return invitation.AcceptResponse{}, invitation.ErrEmailMismatch
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// MarkUsed re-checks validity under the transaction; a concurrent
		// acceptance that lost the race fails here and rolls back.
		if err := s.invitationRepo.MarkUsed(txCtx, inv.ID); err != nil {
			return err
		}

		if identity.IsPending() {
			if err := s.userRepo.UpdateStatus(txCtx, identity.ID, user.StatusActive); err != nil {
				return err
			}
		}

		return s.teamRepo.AddMember(txCtx, inv.TeamID, identity.ID)
	})
	if err != nil {
		return invitation.AcceptResponse{}, err
	}

	if sess != nil {
		sess.Put(session.KeyCurrentTeamID, inv.TeamID)
		sess.Delete(session.KeyInvitationToken)
	}

	s.notify(ctx, notification.Notification{
		TeamID:  inv.TeamID,
		Type:    notification.TypeMemberJoined,
		Title:   "New team member",
		Message: fmt.Sprintf("%s joined %s", identity.Name, inv.TeamName),
	})

	return invitation.AcceptResponse{
		Status:   invitation.OutcomeAccepted,
		TeamID:   inv.TeamID,
		TeamName: inv.TeamName,
	}, nil
}

// notify creates a feed entry best-effort; a failure is logged and dropped.
func (s *invitationServiceImpl) notify(ctx context.Context, n notification.Notification) {
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		slog.Error("Failed to create notification", "team_id", n.TeamID, "type", n.Type, "error", err)
	}
}

func (s *invitationServiceImpl) magicLink(tok string) string {
	return fmt.Sprintf("%s/api/v1/invitations/accept/%s", strings.TrimRight(s.baseURL, "/"), tok)
}
