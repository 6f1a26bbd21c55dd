package main

import (
	"os"
	"strconv"

	"blog-backend/internal/config"
)

// workerConfig is the worker-specific slice of configuration.
type workerConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
}

func loadWorkerConfig(cfg *config.Config) *workerConfig {
	concurrency := 10
	if raw := os.Getenv("WORKER_CONCURRENCY"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			concurrency = parsed
		}
	}

	return &workerConfig{
		RedisAddr:     cfg.Redis.Host,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		Concurrency:   concurrency,
	}
}
