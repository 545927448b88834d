package config

import (
	"os"
	"time"

	"github.com/famiglia-rp/meeting-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	ReminderInterval   time.Duration
	ReminderLookahead  time.Duration
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./meetings.db"),
		Port:               getEnv("PORT", "3000"),
		ReminderInterval:   getDurationEnv("REMINDER_INTERVAL", domain.DefaultReminderInterval),
		ReminderLookahead:  getDurationEnv("REMINDER_LOOKAHEAD", domain.DefaultReminderLookahead),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
