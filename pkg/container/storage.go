package container

import (
	"context"
	"log"

	"lawfirm-cms/internal/config"
	infraCache "lawfirm-cms/internal/infrastructure/cache"
	"lawfirm-cms/pkg/cache"
)

// NewCacheStorage returns the response cache storage for Go consumers.
// With REDIS_HOST set it is Redis, shared between processes; if Redis is
// unreachable or unset it falls back to process memory. The returned func
// releases the connection.
func NewCacheStorage(ctx context.Context, cfg config.RedisConfig) (cache.Storage, func()) {
	if cfg.Host == "" {
		return cache.NewMemoryStorage(0), func() {}
	}

	rc := infraCache.NewRedisClient(cfg.Host, cfg.Password, cfg.DB)
	if err := rc.Connect(ctx); err != nil {
		// Redis is an optimization here, not a requirement.
		log.Printf("⚠️  Redis connection failed (non-critical), using memory cache: %v", err)
		_ = rc.Close()
		return cache.NewMemoryStorage(0), func() {}
	}

	return infraCache.NewRedisStorage(rc.Client, 0), func() {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
}
