package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/famiglia-rp/meeting-bot/internal/config"
	"github.com/famiglia-rp/meeting-bot/internal/database"
	"github.com/famiglia-rp/meeting-bot/internal/domain/service"
	"github.com/famiglia-rp/meeting-bot/internal/handlers"
	"github.com/famiglia-rp/meeting-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "main").Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, slackClient, cfg.ReminderInterval, cfg.ReminderLookahead)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(slackClient, services.Meeting, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/slack/interactions", handler.HandleInteraction)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
