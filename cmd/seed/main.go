package main

import (
	"context"
	"errors"
	"log"

	"feedbackpulse/internal/auth"
	"feedbackpulse/internal/config"
	"feedbackpulse/internal/db"
	apperrors "feedbackpulse/internal/errors"
	"feedbackpulse/internal/model"
	"feedbackpulse/internal/repository"
	"feedbackpulse/internal/service"
)

const (
	demoEmail    = "demo@feedbackpulse.dev"
	demoPassword = "demo-password"
	demoName     = "Demo User"
	demoProject  = "Demo Site"
)

var sampleFeedback = []struct {
	kind    model.FeedbackType
	message string
	name    string
	email   string
	labels  []string
}{
	{model.FeedbackTypeBug, "The checkout button does nothing on Safari.", "Sam", "sam@example.com", []string{"urgent", "checkout"}},
	{model.FeedbackTypeFeature, "Please add a dark mode to the dashboard.", "", "", []string{"ui"}},
	{model.FeedbackTypeOther, "Love the new onboarding flow, great work!", "Riley", "", nil},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)
	labelRepo := repository.NewLabelRepository(gormDB)

	guard := service.NewOwnershipGuard(projectRepo, feedbackRepo, labelRepo)
	authService := service.NewAuthService(userRepo, repository.NewAccountRepository(gormDB), auth.NewSessionService(cfg.SessionSecret, cfg.SessionTTL), nil)
	projectService := service.NewProjectService(projectRepo, guard, nil, cfg.AppBaseURL)
	feedbackService := service.NewFeedbackService(projectRepo, feedbackRepo, labelRepo, guard, nil)
	labelService := service.NewLabelService(labelRepo, guard)

	user, err := authService.Register(ctx, demoEmail, demoPassword, demoName)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		log.Printf("Demo user %s already exists, reusing it", demoEmail)
		user, err = userRepo.FindByEmail(ctx, demoEmail)
	}
	if err != nil {
		log.Fatalf("Failed to prepare demo user: %v", err)
	}
	owner := auth.Identity{UserID: user.ID, Email: user.Email}

	project, err := projectService.Create(ctx, owner, demoProject)
	if err != nil {
		log.Fatalf("Failed to create project: %v", err)
	}
	log.Printf("Created project %q with key %s", project.Name, project.ProjectKey)

	for _, s := range sampleFeedback {
		item, err := feedbackService.Submit(ctx, service.SubmitFeedbackInput{
			ProjectKey: project.ProjectKey,
			Type:       string(s.kind),
			Message:    s.message,
			UserName:   &s.name,
			UserEmail:  &s.email,
		})
		if err != nil {
			log.Fatalf("Failed to submit sample feedback: %v", err)
		}
		for _, label := range s.labels {
			if _, err := labelService.Add(ctx, owner, item.ID, label); err != nil {
				log.Fatalf("Failed to label feedback %d: %v", item.ID, err)
			}
		}
	}

	log.Printf("Seed complete: %d feedback items for %s (password %q)", len(sampleFeedback), demoEmail, demoPassword)
	log.Printf("Embed snippet:\n%s", projectService.EmbedScript(project.ProjectKey))
}
