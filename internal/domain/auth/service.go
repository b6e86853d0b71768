package auth

import "context"

// AuthService defines the interface for authentication business logic
type AuthService interface {
	// Register creates an account with a hashed password. A pending account
	// provisioned by a magic-link invite is claimed by setting its password.
	Register(ctx context.Context, req RegisterRequest, track SessionTrackingRequest) (TokenResponse, error)

	// Login authenticates with email+password
	Login(ctx context.Context, req LoginRequest, track SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle signs in (or signs up) a Google account
	LoginWithGoogle(ctx context.Context, email, googleID, name string, track SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates the refresh token and issues a new access token
	RefreshToken(ctx context.Context, refreshToken string, track SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
