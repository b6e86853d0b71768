package middleware

import (
	"context"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/auth"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Identity resolves the authenticated user from the access token claims and
// attaches it to the request context. It is deliberately lenient: requests
// without a valid token pass through with no identity, which is how the
// public invitation acceptance routes distinguish visitors from members.
// Pair with AuthRequired on routes that must reject anonymous callers.
func Identity(userRepo user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				next.ServeHTTP(w, r)
				return
			}

			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, &u)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromContext returns the authenticated user, or nil for anonymous
// requests.
func IdentityFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(identityKey{}).(*user.User)
	return u
}
