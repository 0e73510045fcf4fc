package config

import (
	"os"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload" // load .env in dev
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Content resource API (exercise picker backend).
	ContentBaseURL string
	ContentTimeout time.Duration

	AuthSecret    string
	CoachUser     string
	CoachPassHash string // bcrypt

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:       addr,
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		ContentBaseURL: envOr("CONTENT_BASE_URL", "http://localhost:8008/api"),
		ContentTimeout: envDuration("CONTENT_TIMEOUT", 30*time.Second),
		AuthSecret:     envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CoachUser:      envOr("COACH_USER", "coach"),
		CoachPassHash:  envOr("COACH_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:8000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
