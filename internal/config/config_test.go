package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SHEETS_WEBAPP_URL", "")
	t.Setenv("SHEETS_WORKBOOK_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 10*time.Second, cfg.Sheets.Timeout)
	assert.Equal(t, 300, cfg.HTTPCache.MaxAge)
	assert.Equal(t, 600, cfg.HTTPCache.StaleWhileRevalidate)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.HasContentSource())
	assert.Equal(t, "*/4 * * * *", cfg.Worker.WarmCron)
	assert.Equal(t, "9999", cfg.Worker.HealthPort)
}

func TestWorkerCronDescriptors(t *testing.T) {
	t.Setenv("CACHE_WARM_CRON", "@every 2m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "@every 2m", cfg.Worker.WarmCron)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHEETS_WEBAPP_URL", "https://script.google.com/macros/s/abc/exec")
	t.Setenv("SHEETS_TIMEOUT_SECONDS", "5")
	t.Setenv("CACHE_MAX_AGE", "60")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ORIGINS", "https://firm.example, https://www.firm.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasContentSource())
	assert.Equal(t, 5*time.Second, cfg.Sheets.Timeout)
	assert.Equal(t, 60, cfg.HTTPCache.MaxAge)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://firm.example", "https://www.firm.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"SHEETS_WEBAPP_URL": "not a url",
		"APP_PORT":          "99999",
		"CACHE_MAX_AGE":     "-1",
		"JWT_EXPIRY_HOURS":  "0",
		"CACHE_WARM_CRON":   "every four minutes",
		"CACHE_SWEEP_CRON":  "61 * * * *",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	require.NoError(t, err)
}

func TestInvalidNumberFallsBackToDefault(t *testing.T) {
	t.Setenv("CACHE_STALE_WHILE_REVALIDATE", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.HTTPCache.StaleWhileRevalidate)
}
