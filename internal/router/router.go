// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"pangkat-auth/internal/cache"
	"pangkat-auth/internal/database"
	"pangkat-auth/internal/handler"
	"pangkat-auth/internal/handler/auth"
	"pangkat-auth/internal/service"
)

// Setup 註冊所有路由並注入相依
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, svc *service.AuthService) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 認證動作分派端點：POST 為 login/register/logout/validate，
	// GET 為 check/users，其餘 method 由 echo 回 405
	h := auth.Handler(svc, db, rdb)
	api.POST("/auth", h)
	api.GET("/auth", h)
}
