package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crewlabs/crew-backend-go/internal/domain/auth"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const oauthProviderGoogle = "google"

type authServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

// Register implements auth.AuthService.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	hashStr := string(hash)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		// A pending account provisioned by a magic-link invite is claimed by
		// setting its password. Anything else is a duplicate registration.
		if !existing.IsPending() || existing.PasswordHash != nil {
			return auth.TokenResponse{}, user.ErrEmailExists
		}
		existing.Name = req.Name
		existing.PasswordHash = &hashStr
		existing.Status = user.StatusActive
		claimed, err := s.userRepo.Update(ctx, existing)
		if err != nil {
			return auth.TokenResponse{}, err
		}
		return s.issueTokens(ctx, claimed, track)

	case errors.Is(err, user.ErrUserNotFound):
		created, err := s.userRepo.Create(ctx, user.User{
			Name:         req.Name,
			Email:        email,
			PasswordHash: &hashStr,
			Role:         user.RoleEmployee,
			Status:       user.StatusActive,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
		return s.issueTokens(ctx, created, track)

	default:
		return auth.TokenResponse{}, err
	}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if u.Status == user.StatusSuspended || u.Status == user.StatusTerminated {
		return auth.TokenResponse{}, auth.ErrAccountSuspended
	}

	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u, track)
}

// LoginWithGoogle implements auth.AuthService.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, email, googleID, name string, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	provider := oauthProviderGoogle

	u, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		u, err = s.userRepo.Create(ctx, user.User{
			Name:            name,
			Email:           email,
			Role:            user.RoleEmployee,
			Status:          user.StatusActive,
			OAuthProvider:   &provider,
			OAuthProviderID: &googleID,
		})
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if u.Status == user.StatusSuspended || u.Status == user.StatusTerminated {
		return auth.TokenResponse{}, auth.ErrAccountSuspended
	}

	// Signing in with Google also claims a pending invited account
	if u.IsPending() {
		u.Status = user.StatusActive
		if u, err = s.userRepo.Update(ctx, u); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.issueTokens(ctx, u, track)
}

// RefreshToken implements auth.AuthService.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.IsRevoked() {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if stored.IsExpired() {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	u, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the presented token is dead once a new pair is issued
	if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return auth.TokenResponse{}, err
	}
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(ctx, u, track)
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	if !stored.IsRevoked() {
		if err := s.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
			return err
		}
	}
	s.jwtService.RevokeToken(refreshToken)

	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	stored := auth.RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}
	if track.IPAddress != "" {
		stored.IPAddress = &track.IPAddress
	}
	if track.UserAgent != "" {
		stored.UserAgent = &track.UserAgent
	}
	if _, err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
