package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the process. Values come
// from the environment, optionally seeded by a .env file.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Telemetry TelemetryConfig
	Bootstrap BootstrapConfig
}

type ServerConfig struct {
	Addr     string
	LogLevel slog.Level
}

type DatabaseConfig struct {
	Path string
}

type TelemetryConfig struct {
	// Enabled gates the whole OTLP pipeline; logging stays on the
	// console when false.
	Enabled bool
	// OTLPEndpoint is the gRPC collector address. Exporters retry in the
	// background, so a missing collector does not block startup.
	OTLPEndpoint string
}

type BootstrapConfig struct {
	// AdminPassword seeds the default admin account on first start.
	AdminPassword string
}

// Load reads the configuration from the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr:     getEnv("SERVER_ADDR", ":8080"),
			LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./site.db"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getEnvAsBool("TELEMETRY_ENABLED", true),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
		Bootstrap: BootstrapConfig{
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
