package main

import (
	"context"
	"time"

	"github.com/fossclubsrm/forms-backend/config"
	"github.com/fossclubsrm/forms-backend/db"
	"github.com/fossclubsrm/forms-backend/handlers"
	"github.com/fossclubsrm/forms-backend/internal/store/mongodb"
	"github.com/fossclubsrm/forms-backend/logger"
	"github.com/fossclubsrm/forms-backend/router"
	"github.com/fossclubsrm/forms-backend/validation"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// The connection manager connects lazily on first use; nothing is dialed
	// here.
	manager := db.NewManager(cfg.Database.URI, cfg.Database.Name)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := manager.Close(ctx); err != nil {
			log.Errorw("Failed to close database connection", "error", err)
		}
	}()

	// Stores
	submissionStore := mongodb.NewSubmissionStore(manager)
	feedbackStore := mongodb.NewFeedbackStore(manager)
	formStore := mongodb.NewFormStore(manager)

	// Handlers
	feedbackValidator := validation.New()
	deps := router.Dependencies{
		Config:           cfg,
		FormHandler:      handlers.NewFormHandler(submissionStore, formStore),
		FeedbackHandler:  handlers.NewFeedbackHandler(feedbackStore, feedbackValidator, cfg),
		FormAdminHandler: handlers.NewFormAdminHandler(formStore, submissionStore),
		HealthHandler:    handlers.NewHealthHandler(),
		Logger:           log,
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
