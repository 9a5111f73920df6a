package main

import (
	"log"

	"github.com/hibiken/asynq"

	"lawfirm-cms/internal/config"
)

// loadConfig loads the shared configuration and checks what the worker needs
// beyond it.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Config] Failed to load: %v", err)
	}
	if cfg.Redis.Host == "" {
		log.Fatal("[Config] REDIS_HOST is required by the worker")
	}

	log.Printf("[Config] Redis: %s, API: %s, warm: %q, sweep: %q",
		cfg.Redis.Host, cfg.Worker.APIURL, cfg.Worker.WarmCron, cfg.Worker.SweepCron)

	return cfg
}

func redisOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
}
