package config

import "os"

type Config struct {
	DatabasePath      string
	Port              string
	SlackBotToken     string
	SlackAlertChannel string
}

func Load() *Config {
	return &Config{
		DatabasePath:      getEnv("DATABASE_PATH", "./schedule.db"),
		Port:              getEnv("PORT", "3000"),
		SlackBotToken:     getEnv("SLACK_BOT_TOKEN", ""),
		SlackAlertChannel: getEnv("SLACK_ALERT_CHANNEL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
