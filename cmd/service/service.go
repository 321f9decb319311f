// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"

	"pangkat-auth/internal/cache"
	"pangkat-auth/internal/config"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/router"
	"pangkat-auth/internal/service"
	"pangkat-auth/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "pangkat-auth/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	audit := service.NewAuditRecorder(db, wp)
	svc := service.NewAuthService(db, wp, audit, cfg)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, svc)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.ListenAddr)
}
