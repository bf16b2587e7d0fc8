package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	DatabaseDSN string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SwaggerHost string
	ResetDB     bool

	SessionSecret string
	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool

	// AppBaseURL is the public origin used to build embed snippets.
	AppBaseURL string

	IngestRateLimit  int
	IngestRateWindow time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: could not load .env: %v", err)
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseDSN: getEnv("DATABASE_DSN", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/feedbackpulse?charset=utf8mb4&parseTime=True&loc=Local")),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ResetDB:     getEnvBool("RESET_DB", false),

		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
		SessionCookie: getEnv("SESSION_COOKIE", "fp_session"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 30*24)) * time.Hour,
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),

		AppBaseURL: strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),

		IngestRateLimit:  getEnvInt("INGEST_RATE_LIMIT", 30),
		IngestRateWindow: time.Duration(getEnvInt("INGEST_RATE_WINDOW_SECONDS", 60)) * time.Second,

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GitHubClientID:     os.Getenv("GITHUB_ID"),
		GitHubClientSecret: os.Getenv("GITHUB_SECRET"),
	}
}

// OAuthProviders lists the providers that have both a client id and secret.
func (c *Config) OAuthProviders() []string {
	var providers []string
	if c.GoogleClientID != "" && c.GoogleClientSecret != "" {
		providers = append(providers, "google")
	}
	if c.GitHubClientID != "" && c.GitHubClientSecret != "" {
		providers = append(providers, "github")
	}
	return providers
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
