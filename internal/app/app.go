package app

import (
	"go-payledger/internal/config"
	"go-payledger/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	cfg := config.Load()

	// Redis opsional: tanpa Redis endpoint tetap jalan, hanya kehilangan
	// proteksi idempotency pada POST.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			zap.L().Warn("redis unavailable, idempotency disabled", zap.Error(err))
		} else {
			rdb = client
		}
	}

	return registerModules(router, cfg, rdb)
}
