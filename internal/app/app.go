package app

import (
	"go-leave/internal/audit"
	"go-leave/internal/config"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the infrastructure the API process must release on exit.
type App struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Recorder audit.Recorder
}

func BuildApp(router *gin.Engine, cfg *config.Config) (*App, error) {
	logger := zap.L()

	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.RedisDB, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}

	// 2. Register Modules & Routes
	svc, err := registerModules(router, db, redisClient, cfg, logger)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	return &App{DB: db, Redis: redisClient, Recorder: svc.audit}, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
