package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		baseURL string
		command string
		args    []string
	}{
		{"equals form", []string{"--api=http://cms.test/api/cms", "news", "--limit", "2"}, "http://cms.test/api/cms", "news", []string{"--limit", "2"}},
		{"space form", []string{"--api", "http://cms.test/api/cms", "profile", "budi"}, "http://cms.test/api/cms", "profile", []string{"budi"}},
		{"no flags", []string{"founders"}, "http://localhost:8080/api/cms", "founders", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CMS_API_URL", "")
			opts, err := parseGlobalFlags(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.baseURL, opts.baseURL)
			assert.Equal(t, tt.command, opts.command)
			assert.Equal(t, tt.args, opts.args)
		})
	}
}

func TestParseGlobalFlagsDurations(t *testing.T) {
	opts, err := parseGlobalFlags([]string{"--ttl", "1m", "-timeout=3s", "sweep"})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, opts.ttl)
	assert.Equal(t, 3*time.Second, opts.timeout)
	assert.Equal(t, "sweep", opts.command)
}

func TestParseGlobalFlagsMissingCommand(t *testing.T) {
	_, err := parseGlobalFlags([]string{"--api", "http://cms.test"})
	assert.Error(t, err)
}

func TestRedisConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")

	cfg := redisConfigFromEnv()
	assert.Equal(t, "localhost:6379", cfg.Host)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 3, cfg.DB)
}
