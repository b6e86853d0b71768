package middleware

import (
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
)

const sessionCookieName = "crew_session"

// Sessions attaches a server-side session to every request, starting one and
// setting the cookie when the client has none.
func Sessions(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(sessionCookieName); err == nil {
				sess = store.Get(cookie.Value)
			}

			if sess == nil {
				sess = store.Start()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := session.WithContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
