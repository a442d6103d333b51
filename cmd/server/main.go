package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/helpmeclean/schedule-service/internal/config"
	"github.com/helpmeclean/schedule-service/internal/database"
	"github.com/helpmeclean/schedule-service/internal/domain/contract"
	"github.com/helpmeclean/schedule-service/internal/domain/service"
	"github.com/helpmeclean/schedule-service/internal/handlers"
	"github.com/helpmeclean/schedule-service/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	// Only hand the notifier a client when alerting is actually configured;
	// a typed-nil *slack.Client inside the interface would pass the nil
	// check and then panic on first post.
	var slackClient contract.SlackClient
	if cfg.SlackBotToken != "" {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	services := service.NewInstance(dm, slackClient, cfg.SlackAlertChannel)
	services.Notifier.Start()
	defer services.Notifier.Stop()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	handlers.New(services.Schedule).RegisterRoutes(router)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
