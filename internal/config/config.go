package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/robfig/cron/v3"
)

const defaultJWTSecret = "change-me-in-production"

// Config holds the whole application configuration.
// It is populated from environment variables (optionally via a .env file).
type Config struct {
	App       AppConfig
	Sheets    SheetsConfig
	HTTPCache HTTPCacheConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Worker    WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// SheetsConfig points at the Remote Content Source.
// An empty WebAppURL and WorkbookPath leaves every accessor returning no data.
type SheetsConfig struct {
	WebAppURL    string
	WorkbookPath string
	Timeout      time.Duration
}

// HTTPCacheConfig drives the Cache-Control header of list endpoints.
type HTTPCacheConfig struct {
	MaxAge               int // seconds, s-maxage
	StaleWhileRevalidate int // seconds
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// WorkerConfig drives cmd/worker, which keeps the shared Redis response
// cache warm by refetching list endpoints on a schedule.
type WorkerConfig struct {
	APIURL      string // base URL of this API, e.g. http://localhost:8080/api/cms
	WarmCron    string
	SweepCron   string
	Concurrency int
	HealthPort  string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Law Firm CMS API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Sheets: SheetsConfig{
			WebAppURL:    getEnv("SHEETS_WEBAPP_URL", ""),
			WorkbookPath: getEnv("SHEETS_WORKBOOK_PATH", ""),
			Timeout:      time.Duration(getEnvInt("SHEETS_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		HTTPCache: HTTPCacheConfig{
			MaxAge:               getEnvInt("CACHE_MAX_AGE", 300),
			StaleWhileRevalidate: getEnvInt("CACHE_STALE_WHILE_REVALIDATE", 600),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 12),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvInt("RATE_LIMIT_BURST", 30),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		},
		Worker: WorkerConfig{
			APIURL:      getEnv("CMS_API_URL", "http://localhost:8080/api/cms"),
			WarmCron:    getEnv("CACHE_WARM_CRON", "*/4 * * * *"),
			SweepCron:   getEnv("CACHE_SWEEP_CRON", "0 * * * *"),
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 2),
			HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for values the server cannot run with.
// A missing content endpoint is not an error: the API then serves empty lists.
func (c *Config) Validate() error {
	err := validation.Errors{
		"SHEETS_WEBAPP_URL":            validation.Validate(c.Sheets.WebAppURL, is.URL),
		"SHEETS_TIMEOUT_SECONDS":       validation.Validate(int(c.Sheets.Timeout/time.Second), validation.Min(1)),
		"APP_PORT":                     validation.Validate(c.App.Port, validation.Required, is.Port),
		"CACHE_MAX_AGE":                validation.Validate(c.HTTPCache.MaxAge, validation.Min(0)),
		"CACHE_STALE_WHILE_REVALIDATE": validation.Validate(c.HTTPCache.StaleWhileRevalidate, validation.Min(0)),
		"JWT_EXPIRY_HOURS":             validation.Validate(c.JWT.ExpiryHours, validation.Min(1)),
		"RATE_LIMIT_BURST":             validation.Validate(c.RateLimit.Burst, validation.Min(1)),
		"CMS_API_URL":                  validation.Validate(c.Worker.APIURL, validation.Required, is.URL),
		"CACHE_WARM_CRON":              validation.Validate(c.Worker.WarmCron, validation.Required, validation.By(cronSpec)),
		"CACHE_SWEEP_CRON":             validation.Validate(c.Worker.SweepCron, validation.Required, validation.By(cronSpec)),
		"WORKER_CONCURRENCY":           validation.Validate(c.Worker.Concurrency, validation.Min(1)),
		"WORKER_HEALTH_PORT":           validation.Validate(c.Worker.HealthPort, validation.Required, is.Port),
	}.Filter()
	if err != nil {
		return err
	}

	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	return nil
}

// cronSpec accepts the five-field cron syntax the asynq scheduler parses,
// including descriptors like "@every 5m".
func cronSpec(value interface{}) error {
	spec, _ := value.(string)
	if spec == "" {
		return nil
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron spec: %v", err)
	}
	return nil
}

// HasContentSource reports whether any Remote Content Source is configured.
func (c *Config) HasContentSource() bool {
	return c.Sheets.WebAppURL != "" || c.Sheets.WorkbookPath != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
