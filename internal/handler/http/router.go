package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/crewlabs/crew-backend-go/internal/config"
	"github.com/crewlabs/crew-backend-go/internal/domain/user"
	"github.com/crewlabs/crew-backend-go/internal/handler/http/middleware"
	"github.com/crewlabs/crew-backend-go/internal/pkg/jwt"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Config              *config.Config
	JWTService          jwt.Service
	SessionStore        *session.Store
	UserRepo            user.UserRepository
	AuthHandler         AuthHandler
	TeamHandler         TeamHandler
	UserHandler         UserHandler
	InvitationHandler   InvitationHandler
	ScheduleHandler     ScheduleHandler
	NotificationHandler NotificationHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crew-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Sessions(deps.SessionStore))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", deps.AuthHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				})
			})
		})

		// Public acceptance entry paths. The verifier runs so an access token
		// resolves to an identity, but anonymous visitors pass through and get
		// login_required instead of a 401.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.Identity(deps.UserRepo))
			r.Use(middleware.RateLimit(1, 10))

			r.Get("/invitations/accept/{token}", deps.InvitationHandler.AcceptByToken)
			r.Post("/invitations/accept", deps.InvitationHandler.Accept)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
			r.Use(middleware.Identity(deps.UserRepo))

			r.Route("/invitations", func(r chi.Router) {
				r.With(middleware.RequireAdmin).Post("/", deps.InvitationHandler.Issue)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", deps.TeamHandler.Browse)
				r.Post("/", deps.TeamHandler.Create)
				r.Get("/my", deps.TeamHandler.MyTeams)
				r.Get("/current", deps.TeamHandler.Current)
				r.Post("/switch", deps.TeamHandler.Switch)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deps.TeamHandler.Get)
					r.Post("/join", deps.TeamHandler.Join)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Put("/", deps.TeamHandler.Update)
						r.Delete("/", deps.TeamHandler.Delete)
					})
				})
			})

			r.Get("/users/me", deps.UserHandler.Me)

			// Team-scoped routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireTeam)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", deps.UserHandler.List)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", deps.UserHandler.Create)
						r.Post("/magic-link-invite", deps.UserHandler.SendMagicLinkInvite)
						r.Put("/{id}", deps.UserHandler.Update)
						r.Delete("/{id}", deps.UserHandler.Delete)
					})
				})

				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", deps.ScheduleHandler.List)
					r.Get("/my", deps.ScheduleHandler.MySchedule)

					// Admin or HR only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManagement)
						r.Post("/", deps.ScheduleHandler.Create)
						r.Put("/{id}", deps.ScheduleHandler.Update)
						r.Delete("/{id}", deps.ScheduleHandler.Delete)
					})
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", deps.NotificationHandler.Feed)
					r.With(middleware.RequireManagement).Post("/", deps.NotificationHandler.Create)
					r.Post("/read-all", deps.NotificationHandler.MarkAllRead)
					r.Post("/bulk-read", deps.NotificationHandler.BulkMarkRead)
					r.Post("/bulk-unread", deps.NotificationHandler.BulkMarkUnread)
					r.Post("/{id}/read", deps.NotificationHandler.MarkRead)
					r.Post("/{id}/unread", deps.NotificationHandler.MarkUnread)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
