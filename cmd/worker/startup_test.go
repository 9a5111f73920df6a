package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraCache "lawfirm-cms/internal/infrastructure/cache"
)

func TestHealthURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/health", healthURL("http://localhost:8080/api/cms"))
	assert.Equal(t, "https://firm.example/health", healthURL("https://firm.example/api/cms/?x=1"))
}

func newChecker(t *testing.T, apiURL string) (*HealthChecker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return &HealthChecker{
		redis:  infraCache.NewRedisClient(mr.Addr(), "", 0),
		apiURL: apiURL,
		http:   &http.Client{Timeout: time.Second},
	}, mr
}

func TestCheckAllToleratesMissingAPI(t *testing.T) {
	checker, _ := newChecker(t, "http://127.0.0.1:1/api/cms")
	defer checker.Close()

	assert.NoError(t, checker.checkAll(context.Background()))
}

func TestCheckAllRequiresRedis(t *testing.T) {
	checker, mr := newChecker(t, "http://127.0.0.1:1/api/cms")
	defer checker.Close()
	mr.Close()

	assert.Error(t, checker.checkAll(context.Background()))
}

func TestCheckAPI(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	checker, _ := newChecker(t, api.URL+"/api/cms")
	defer checker.Close()

	require.NoError(t, checker.checkAPI(context.Background()))
}

func TestReadyCheck(t *testing.T) {
	checker, mr := newChecker(t, "")
	defer checker.Close()

	w := httptest.NewRecorder()
	checker.readyCheckHandler(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mr.Close()
	w = httptest.NewRecorder()
	checker.readyCheckHandler(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
