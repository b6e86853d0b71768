package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/auth"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/crewlabs/crew-backend-go/internal/pkg/jwt"
	"github.com/crewlabs/crew-backend-go/internal/pkg/oauth"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := registerReq.Validate(); err != nil {
		slog.Error("Register validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Register(r.Context(), registerReq, trackingFromRequest(r))
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	a.setRefreshCookie(w, tokenResponse)
	slog.Info("User registered successfully")
	response.Created(w, "User registered successfully", registerData(tokenResponse, r))
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, trackingFromRequest(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	a.setRefreshCookie(w, tokenResponse)
	slog.Info("User logged in successfully")
	response.SuccessWithMessage(w, "User logged in successfully", registerData(tokenResponse, r))
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state, err := a.googleService.GenerateState()
	if err != nil {
		slog.Error("LoginWithGoogle state error", "error", err)
		response.InternalServerError(w, "Could not start OAuth flow")
		return
	}

	if sess := session.FromContext(r.Context()); sess != nil {
		sess.Put("oauth_state", state)
	}

	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")

	sess := session.FromContext(r.Context())
	if sess == nil {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}
	expectedState, _ := sess.Get("oauth_state")
	if state == "" || state != expectedState {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}
	sess.Delete("oauth_state")

	oauthToken, err := a.googleService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("OAuthCallbackGoogle exchange error", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	account, err := a.googleService.FetchUser(r.Context(), oauthToken)
	if err != nil {
		slog.Error("OAuthCallbackGoogle userinfo error", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), account.Email, account.GoogleID, account.Name, trackingFromRequest(r))
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResponse)
	slog.Info("User logged in with Google successfully")
	response.SuccessWithMessage(w, "User logged in successfully", registerData(tokenResponse, r))
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), cookie.Value, trackingFromRequest(r))
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResponse)
	response.SuccessWithMessage(w, "Token refreshed successfully", registerData(tokenResponse, r))
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err == nil {
		if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("Logout service error", "error", err)
		}
	}

	// Expire the cookie either way
	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	if sess := session.FromContext(r.Context()); sess != nil {
		sess.Delete(session.KeyCurrentTeamID)
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

func (a *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, tokenResponse auth.TokenResponse) {
	cookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, cookie)
}

func trackingFromRequest(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

// registerData wraps the token response together with the pending invitation
// token, if the session is holding one, so the client can resume acceptance
// right after authenticating.
func registerData(tokenResponse auth.TokenResponse, r *http.Request) map[string]interface{} {
	data := map[string]interface{}{
		"access_token":            tokenResponse.AccessToken,
		"access_token_expires_in": tokenResponse.AccessTokenExpiresIn,
	}
	if sess := session.FromContext(r.Context()); sess != nil {
		if tok, ok := sess.Get(session.KeyInvitationToken); ok && tok != "" {
			data["invitation_token"] = tok
		}
	}
	return data
}
