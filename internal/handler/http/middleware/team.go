package middleware

import (
	"context"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/domain/team"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/response"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
)

// RequireTeam rejects requests whose session has no current team selected.
// Team-scoped routes sit behind this so handlers can read the team id
// unconditionally.
func RequireTeam(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentTeamID(r.Context()) == "" {
			response.HandleError(w, team.ErrNoTeamSelected)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CurrentTeamID returns the session's current team id, or "" when no team is
// selected.
func CurrentTeamID(ctx context.Context) string {
	sess := session.FromContext(ctx)
	if sess == nil {
		return ""
	}
	teamID, _ := sess.Get(session.KeyCurrentTeamID)
	return teamID
}
