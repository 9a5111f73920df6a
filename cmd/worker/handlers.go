package main

import (
	"context"

	"github.com/hibiken/asynq"

	"lawfirm-cms/internal/config"
	"lawfirm-cms/internal/domains/cms/job"
	"lawfirm-cms/internal/shared"
	"lawfirm-cms/pkg/cache"
	"lawfirm-cms/pkg/cmsclient"
	"lawfirm-cms/pkg/container"
	"lawfirm-cms/pkg/logger"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	warmCache  *job.WarmCacheHandler
	sweepCache *job.SweepCacheHandler
}

// initializeHandlers creates all job handlers with their dependencies.
// The returned func releases the cache storage.
func initializeHandlers(cfg *config.Config) (*HandlerRegistry, func()) {
	storage, closeStorage := container.NewCacheStorage(context.Background(), cfg.Redis)

	rc := cache.NewResponseCache(storage,
		cache.WithLogger(logger.Component("worker-cache")),
		cache.WithSingleFlight(),
	)
	client := cmsclient.New(cfg.Worker.APIURL, rc)

	return &HandlerRegistry{
		warmCache:  job.NewWarmCacheHandler(client, cmsclient.ListPaths),
		sweepCache: job.NewSweepCacheHandler(client),
	}, closeStorage
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeWarmCache, h.warmCache.ProcessTask)
	mux.HandleFunc(shared.TypeSweepCache, h.sweepCache.ProcessTask)
}
