// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"lawfirm-cms/internal/config"
	infraCache "lawfirm-cms/internal/infrastructure/cache"
)

// HealthChecker performs startup health checks and backs /ready.
type HealthChecker struct {
	redis  *infraCache.RedisClient
	apiURL string
	http   *http.Client
}

func newHealthChecker(cfg *config.Config) *HealthChecker {
	return &HealthChecker{
		redis:  infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB),
		apiURL: cfg.Worker.APIURL,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

// startServices logs startup information and serves health endpoints.
func startServices(cfg *config.Config, checker *HealthChecker) {
	log.Println("============================================")
	log.Println("🚀 CMS Cache Worker Started")
	log.Printf("📍 Warming %s", cfg.Worker.APIURL)
	log.Println("============================================")

	go startHealthCheckServer(cfg.Worker.HealthPort, checker)
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll(ctx context.Context) error {
	checks := []struct {
		name     string
		fn       func(context.Context) error
		critical bool
	}{
		{"Redis Connection", h.checkRedis, true},
		{"Content API", h.checkAPI, false},
	}

	for _, check := range checks {
		log.Printf("⏳ Checking %s...\n", check.name)
		if err := check.fn(ctx); err != nil {
			if !check.critical {
				// The API may start after the worker; warm runs retry on schedule.
				log.Printf("⚠️  %s: %v\n", check.name, err)
				continue
			}
			log.Printf("❌ %s: %v\n", check.name, err)
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Printf("✓ %s: OK\n", check.name)
	}

	return nil
}

// checkRedis verifies Redis connection
func (h *HealthChecker) checkRedis(ctx context.Context) error {
	return h.redis.HealthCheck(ctx)
}

// checkAPI verifies the content API answers its health endpoint.
func (h *HealthChecker) checkAPI(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL(h.apiURL), nil)
	if err != nil {
		return err
	}
	resp, err := h.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

// healthURL maps the content API base URL to the server's /health route.
func healthURL(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil {
		return apiURL
	}
	u.Path = "/health"
	u.RawQuery = ""
	return u.String()
}

func (h *HealthChecker) Close() {
	if err := h.redis.Close(); err != nil {
		log.Printf("⚠️  Failed to close Redis: %v", err)
	}
}

// startHealthCheckServer starts HTTP server for health checks
func startHealthCheckServer(port string, checker *HealthChecker) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler)
	mux.HandleFunc("/ready", checker.readyCheckHandler)

	log.Printf("[Health] Starting health check server on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("[Health] Failed to start: %v\n", err)
	}
}

// healthCheckHandler handles /health endpoint
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"UP","service":"cms-cache-worker"}`))
}

// readyCheckHandler handles /ready endpoint (Kubernetes readiness probe)
func (h *HealthChecker) readyCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.checkRedis(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"NOT_READY"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"READY"}`))
}
