package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env selects the operating mode. Development relaxes the waitlist
// credential requirement; production does not.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	ListenAddr string
	Env        string

	// Waitlist provider (Loops).
	LoopsAPIKey        string
	LoopsAPIURL        string
	WaitlistTimeoutSec int

	// Analytics collector (PostHog-compatible).
	PostHogAPIKey string
	PostHogHost   string

	// Showcase session engine.
	MaxSessions    int
	SessionIdleSec int
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() *Config {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		Env:        getEnv("APP_ENV", EnvProduction),

		LoopsAPIKey:        getEnv("LOOPS_API_KEY", ""),
		LoopsAPIURL:        getEnv("LOOPS_API_URL", "https://app.loops.so/api/v1/contacts/create"),
		WaitlistTimeoutSec: getEnvInt("WAITLIST_TIMEOUT_SEC", 10),

		PostHogAPIKey: getEnv("POSTHOG_API_KEY", ""),
		PostHogHost:   getEnv("POSTHOG_HOST", "https://us.i.posthog.com"),

		MaxSessions:    getEnvInt("MAX_SESSIONS", 500),
		SessionIdleSec: getEnvInt("SESSION_IDLE_SEC", 120),
	}
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
