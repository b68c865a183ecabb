package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port             string
	AppEnv           string
	DatabaseURL      string
	JWTSecret        string
	AllowOrigins     []string
	BcryptCost       int
	SessionTTL       time.Duration
	PasswordResetTTL time.Duration
	FrontendBaseURL  string
	LogstashTCPAddr  string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cost := bcrypt.DefaultCost
	if v, err := strconv.Atoi(getenv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err == nil && v > 0 {
		cost = v
	}

	return Config{
		Port:             getenv("PORT", "8080"),
		AppEnv:           getenv("APP_ENV", "production"),
		DatabaseURL:      must("DATABASE_URL"),
		JWTSecret:        must("JWT_SECRET"),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		BcryptCost:       cost,
		SessionTTL:       duration("SESSION_TTL", 7*24*time.Hour),
		PasswordResetTTL: duration("PASSWORD_RESET_TTL", time.Hour),
		FrontendBaseURL:  getenv("FRONTEND_BASE_URL", "http://localhost:3000"),
		LogstashTCPAddr:  getenv("LOGSTASH_TCP_ADDR", ""),
		SMTPHost:         getenv("SMTP_HOST", ""),
		SMTPPort:         getenv("SMTP_PORT", ""),
		SMTPUsername:     getenv("SMTP_USERNAME", ""),
		SMTPPassword:     getenv("SMTP_PASSWORD", ""),
		SMTPFrom:         getenv("SMTP_FROM", ""),
	}
}

// Development reports whether development-only diagnostics (the reset
// token echo) may be enabled.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func duration(k string, d time.Duration) time.Duration {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s %q, using %s", k, raw, d)
		return d
	}
	return parsed
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
