package config

import (
	"os"

	"github.com/pawmart/pawmart-server/pkg/config"
)

type Config struct {
	ServiceName string

	ServerPort int

	DatabaseURL  string
	DatabaseName string

	AllowedOrigins []string

	KafkaBrokers []string

	AppEnv string
}

func Load() Config {
	cfg := Config{
		ServiceName: config.EnvDefault("SERVICE_NAME", "pawmart"),

		ServerPort: config.EnvIntDefault("PORT", 3000),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		AllowedOrigins: config.CSV(os.Getenv("ALLOWED_ORIGINS")),

		KafkaBrokers: config.CSV(os.Getenv("KAFKA_BROKERS")),

		AppEnv: config.EnvDefault("APP_ENV", "production"),
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmpty(cfg.DatabaseName, "DATABASE_NAME")

	return cfg
}

func (c Config) Development() bool {
	return c.AppEnv == "development"
}
