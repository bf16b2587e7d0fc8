package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"feedbackpulse/docs" // swagger docs
	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/cache"
	"feedbackpulse/internal/config"
	"feedbackpulse/internal/db"
	"feedbackpulse/internal/handler"
	"feedbackpulse/internal/middleware"
	"feedbackpulse/internal/repository"
	"feedbackpulse/internal/router"
	"feedbackpulse/internal/service"
	"feedbackpulse/internal/widget"
)

// @title FeedbackPulse API
// @version 1.0
// @description Feedback collection API: projects, public widget ingestion, labels and session auth.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name fp_session
// @description Session JWT issued by /auth/login. Sent as the fp_session cookie or an Authorization bearer header.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable, running without cache, revocation or rate limiting: %v", err)
	}
	cancel()

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: reset incomplete: %v", err)
		}
		log.Println("Tables dropped")

		// Project ids restart after a reset; cached key lookups would point at the wrong rows.
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cacheClient.DeletePrefix(flushCtx, service.ProjectKeyCachePrefix); err != nil {
			log.Printf("Warning: could not flush cached project keys: %v", err)
		}
		cancel()
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	accountRepo := repository.NewAccountRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	labelRepo := repository.NewLabelRepository(gormDB)

	// Initialize auth components
	sessions := auth.NewSessionService(cfg.SessionSecret, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	guard := service.NewOwnershipGuard(projectRepo, feedbackRepo, labelRepo)
	authService := service.NewAuthService(userRepo, accountRepo, sessions, tokenStore)
	projectService := service.NewProjectService(projectRepo, guard, cacheClient, cfg.AppBaseURL)
	feedbackService := service.NewFeedbackService(projectRepo, feedbackRepo, labelRepo, guard, cacheClient)
	labelService := service.NewLabelService(labelRepo, guard)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, handler.CookieConfig{
		Name:   cfg.SessionCookie,
		Secure: cfg.CookieSecure,
	})
	projectHandler := handler.NewProjectHandler(projectService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	labelHandler := handler.NewLabelHandler(labelService)
	widgetHandler := handler.NewWidgetHandler(widget.Script())

	// Register routes
	router.Register(
		e,
		authHandler,
		projectHandler,
		feedbackHandler,
		labelHandler,
		widgetHandler,
		auth.Middleware(sessions, tokenStore, cfg.SessionCookie),
		middleware.RateLimit(cacheClient, cfg.IngestRateLimit, cfg.IngestRateWindow),
	)

	if providers := cfg.OAuthProviders(); len(providers) > 0 {
		log.Printf("OAuth providers configured: %s", strings.Join(providers, ", "))
	} else {
		log.Println("OAuth providers configured: none (credentials only)")
	}

	// Log swagger full path
	swaggerHost := docs.SwaggerInfo.Host
	if cfg.SwaggerHost != "" {
		swaggerHost = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = swaggerHost
	}
	scheme := "http://"
	if strings.HasPrefix(cfg.SwaggerHost, "https://") {
		scheme = "https://"
		docs.SwaggerInfo.Schemes = []string{"https"}
	}
	log.Printf("Swagger documentation available at: %s%s/swagger/index.html", scheme, swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
