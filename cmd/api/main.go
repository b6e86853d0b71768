package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/crewlabs/crew-backend-go/internal/config"
	appHTTP "github.com/crewlabs/crew-backend-go/internal/handler/http"
	"github.com/crewlabs/crew-backend-go/internal/pkg/database"
	"github.com/crewlabs/crew-backend-go/internal/pkg/jwt"
	"github.com/crewlabs/crew-backend-go/internal/pkg/mailer"
	"github.com/crewlabs/crew-backend-go/internal/pkg/oauth"
	"github.com/crewlabs/crew-backend-go/internal/pkg/session"
	"github.com/crewlabs/crew-backend-go/internal/repository/postgresql"
	authService "github.com/crewlabs/crew-backend-go/internal/service/auth"
	invitationService "github.com/crewlabs/crew-backend-go/internal/service/invitation"
	notificationService "github.com/crewlabs/crew-backend-go/internal/service/notification"
	scheduleService "github.com/crewlabs/crew-backend-go/internal/service/schedule"
	teamService "github.com/crewlabs/crew-backend-go/internal/service/team"
	userService "github.com/crewlabs/crew-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	invitationMailer := mailer.NewMailer(cfg.SMTP)
	sessionStore := session.NewStore()

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, JWTService)
	teamSvc := teamService.NewTeamService(teamRepo, db)
	invitationSvc := invitationService.NewInvitationService(invitationRepo, teamRepo, userRepo, notificationRepo, db, invitationMailer, cfg.App.BaseURL)
	userSvc := userService.NewUserService(userRepo, teamRepo, invitationSvc, db)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, teamRepo, notificationRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:              cfg,
		JWTService:          JWTService,
		SessionStore:        sessionStore,
		UserRepo:            userRepo,
		AuthHandler:         appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService),
		TeamHandler:         appHTTP.NewTeamHandler(teamSvc),
		UserHandler:         appHTTP.NewUserHandler(userSvc),
		InvitationHandler:   appHTTP.NewInvitationHandler(invitationSvc),
		ScheduleHandler:     appHTTP.NewScheduleHandler(scheduleSvc),
		NotificationHandler: appHTTP.NewNotificationHandler(notificationSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
