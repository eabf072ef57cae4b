package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName   string
	AppEnv    string
	Port      string
	StaticDir string

	// Database
	DBDriver     string
	DBConnection string

	// Uploads
	UploadBackend string // "local" or "s3"
	UploadDir     string

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Admin credentials for the listing endpoint
	AdminUsername string
	AdminPassword string

	// Rate limiting for submissions
	RateLimitMax    int
	RateLimitWindow time.Duration

	// CORS
	CORSAllowedOrigins string

	// Observability (optional)
	SentryDSN string

	// S3-compatible storage (only read when UploadBackend == "s3")
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for MinIO, DO Spaces, R2, etc.
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:   envString("APP_NAME", "Springvale Christian Academy"),
		AppEnv:    envString("APP_ENV", "development"),
		Port:      envString("PORT", "3000"),
		StaticDir: envString("STATIC_DIR", "./public"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_PATH", "./data/admissions.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		UploadBackend: envString("UPLOAD_BACKEND", "local"),
		UploadDir:     envString("UPLOAD_DIR", "./uploads"),

		// RESEND_API_KEY optional: without it confirmation emails are disabled
		EmailFrom:    envString("EMAIL_FROM", "noreply@springvale.edu"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		AdminUsername: envRequired("ADMIN_USERNAME"),
		AdminPassword: envRequired("ADMIN_PASSWORD"),

		RateLimitMax:    envInt("RATE_LIMIT_MAX", 5),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", 15*time.Minute),

		CORSAllowedOrigins: envString("CORS_ALLOWED_ORIGINS", "*"),

		SentryDSN: envString("SENTRY_DSN", ""),

		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures services that may be stubbed during local
// development are actually configured before serving real traffic.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development to log confirmation emails instead of sending them")
		os.Exit(1)
	}
	if cfg.UploadBackend == "s3" && (cfg.S3Region == "" || cfg.S3Bucket == "") {
		slog.Error("UPLOAD_BACKEND=s3 requires S3_REGION and S3_BUCKET")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
